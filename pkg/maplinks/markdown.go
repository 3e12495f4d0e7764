package maplinks

import "fmt"

const (
	placeTemplate = "\n### 📍 Location: %s\n\n![Map of %s](%s)\n\n[↗ Open in Google Maps](%s)\n\n"
	routeTemplate = "\n### 🚗 Route: %s to %s\n\n![Route from %s to %s](%s)\n\n[↗ View Step-by-Step Directions on Google Maps](%s)\n\n"
)

func renderPlace(query, imageURL, externalURL string) string {
	return fmt.Sprintf(placeTemplate, query, query, imageURL, externalURL)
}

func renderRoute(origin, destination, imageURL, externalURL string) string {
	return fmt.Sprintf(routeTemplate, origin, destination, origin, destination, imageURL, externalURL)
}
