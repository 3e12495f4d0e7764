// Package maplinks builds Google Maps Static Maps URLs and Markdown snippets
// for place and route queries.
//
// The builder never performs network I/O: it only composes URLs. Rendering the
// image is left to whatever host displays the returned Markdown.
//
//	cfg, _ := config.FromEnv(nil)
//	builder := maplinks.New(cfg.Maps)
//	fmt.Print(builder.PlaceView("Eiffel Tower"))
//	fmt.Print(builder.RouteView("New York", "Boston"))
package maplinks
