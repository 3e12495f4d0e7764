package maplinks

import "errors"

// User-facing messages returned by the view helpers when no API key is set.
// The wording differs per view and callers may match on the exact text.
const (
	PlaceMissingKeyMessage = "Error: Google Maps API key is missing."
	RouteMissingKeyMessage = "Error: API Key not configured."
)

var (
	// ErrMissingAPIKey is returned when the builder has no Static Maps key.
	ErrMissingAPIKey = errors.New("maplinks: api key is missing")
	// ErrUnknownKind is returned by Build for unsupported request kinds.
	ErrUnknownKind = errors.New("maplinks: unknown link kind")
	// ErrNilBuilder is returned when methods are called on a nil builder.
	ErrNilBuilder = errors.New("maplinks: builder is nil")
)
