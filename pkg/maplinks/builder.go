package maplinks

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-maplinks/pkg/config"
	"github.com/goliatone/go-maplinks/pkg/interfaces/logger"
	"github.com/goliatone/go-maplinks/pkg/links"
	"github.com/goliatone/go-maplinks/pkg/secrets"
	"github.com/google/uuid"
)

const (
	placeMarkerColor  = "red"
	originMarker      = "color:green%7Clabel:A%7C"
	destinationMarker = "color:red%7Clabel:B%7C"
	routePathStyle    = "color:0x0000ff|weight:5|"
)

// Builder composes static map URLs and deep links. It is immutable after New
// and safe for concurrent use.
type Builder struct {
	apiKey        string
	imageSize     string
	staticMapURL  string
	searchURL     string
	directionsURL string
	zoom          int
	travelMode    string

	store    links.LinkStore
	observer links.LinkObserver
	policy   links.FailurePolicy
	logger   logger.Logger
	now      func() time.Time
	newID    func() string
}

var _ links.LinkBuilder = (*Builder)(nil)

// Option configures the builder.
type Option func(*Builder)

// New creates a builder from the maps configuration. Blank endpoint fields
// fall back to the package defaults; the API key is kept as given.
func New(cfg config.MapsConfig, opts ...Option) *Builder {
	b := &Builder{
		apiKey:        cfg.APIKey,
		imageSize:     orDefault(cfg.ImageSize, config.DefaultImageSize),
		staticMapURL:  orDefault(cfg.StaticMapURL, config.DefaultStaticMapURL),
		searchURL:     orDefault(cfg.SearchURL, config.DefaultSearchURL),
		directionsURL: orDefault(cfg.DirectionsURL, config.DefaultDirectionsURL),
		zoom:          cfg.Zoom,
		travelMode:    orDefault(cfg.TravelMode, config.DefaultTravelMode),
		store:         &links.NopStore{},
		observer:      &links.NopObserver{},
		policy:        links.FailurePolicy{Store: links.FailureLenient},
		logger:        &logger.Nop{},
		now:           time.Now,
		newID:         uuid.NewString,
	}
	if b.zoom <= 0 {
		b.zoom = config.DefaultZoom
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// WithLogger sets the logger used by Build.
func WithLogger(lgr logger.Logger) Option {
	return func(b *Builder) {
		if lgr != nil {
			b.logger = lgr
		}
	}
}

// WithStore persists link records produced by Build.
func WithStore(store links.LinkStore) Option {
	return func(b *Builder) {
		if store != nil {
			b.store = store
		}
	}
}

// WithObserver receives every successful Build resolution.
func WithObserver(observer links.LinkObserver) Option {
	return func(b *Builder) {
		if observer != nil {
			b.observer = observer
		}
	}
}

// WithFailurePolicy overrides how store errors are handled.
func WithFailurePolicy(policy links.FailurePolicy) Option {
	return func(b *Builder) {
		if policy.Store != "" {
			b.policy = policy
		}
	}
}

// WithClock overrides the clock used for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// WithIDGenerator overrides the record ID generator.
func WithIDGenerator(fn func() string) Option {
	return func(b *Builder) {
		if fn != nil {
			b.newID = fn
		}
	}
}

// PlaceView returns the Markdown block for a single place, or the literal
// missing-key message when no API key is configured. A nil builder also
// yields the missing-key message; use PlaceLinks to tell ErrNilBuilder apart.
func (b *Builder) PlaceView(query string) string {
	resolved, err := b.PlaceLinks(query)
	if err != nil {
		return PlaceMissingKeyMessage
	}
	return resolved.Markdown
}

// RouteView returns the Markdown block for a driving route, or the literal
// missing-key message when no API key is configured. A nil builder also
// yields the missing-key message; use RouteLinks to tell ErrNilBuilder apart.
func (b *Builder) RouteView(origin, destination string) string {
	resolved, err := b.RouteLinks(origin, destination)
	if err != nil {
		return RouteMissingKeyMessage
	}
	return resolved.Markdown
}

// PlaceLinks builds the single-marker map URL, the search deep link and the
// rendered Markdown for query.
func (b *Builder) PlaceLinks(query string) (links.ResolvedLinks, error) {
	if b == nil {
		return links.ResolvedLinks{}, ErrNilBuilder
	}
	if b.apiKey == "" {
		return links.ResolvedLinks{}, ErrMissingAPIKey
	}

	q := Escape(query)

	var sb strings.Builder
	sb.WriteString(b.staticMapURL)
	sb.WriteString("?center=")
	sb.WriteString(q)
	sb.WriteString("&zoom=")
	sb.WriteString(strconv.Itoa(b.zoom))
	sb.WriteString("&size=")
	sb.WriteString(b.imageSize)
	sb.WriteString("&markers=color:" + placeMarkerColor + "%7C")
	sb.WriteString(q)
	sb.WriteString("&key=")
	sb.WriteString(b.apiKey)
	imageURL := sb.String()

	externalURL := b.searchURL + "?api=1&query=" + q

	return links.ResolvedLinks{
		Kind:        links.KindPlace,
		ImageURL:    imageURL,
		ExternalURL: externalURL,
		Markdown:    renderPlace(query, imageURL, externalURL),
	}, nil
}

// RouteLinks builds the two-marker map URL with a connecting path, the
// directions deep link and the rendered Markdown.
func (b *Builder) RouteLinks(origin, destination string) (links.ResolvedLinks, error) {
	if b == nil {
		return links.ResolvedLinks{}, ErrNilBuilder
	}
	if b.apiKey == "" {
		return links.ResolvedLinks{}, ErrMissingAPIKey
	}

	o := Escape(origin)
	d := Escape(destination)

	var sb strings.Builder
	sb.WriteString(b.staticMapURL)
	sb.WriteString("?size=")
	sb.WriteString(b.imageSize)
	sb.WriteString("&markers=" + originMarker)
	sb.WriteString(o)
	sb.WriteString("&markers=" + destinationMarker)
	sb.WriteString(d)
	sb.WriteString("&path=" + routePathStyle)
	sb.WriteString(o)
	sb.WriteString("|")
	sb.WriteString(d)
	sb.WriteString("&key=")
	sb.WriteString(b.apiKey)
	imageURL := sb.String()

	externalURL := b.directionsURL + "?api=1&origin=" + o + "&destination=" + d + "&travelmode=" + Escape(b.travelMode)

	return links.ResolvedLinks{
		Kind:        links.KindRoute,
		ImageURL:    imageURL,
		ExternalURL: externalURL,
		Markdown:    renderRoute(origin, destination, imageURL, externalURL),
	}, nil
}

// Build resolves req, attaches link records, saves them through the store and
// notifies the observer.
func (b *Builder) Build(ctx context.Context, req links.LinkRequest) (links.ResolvedLinks, error) {
	if b == nil {
		return links.ResolvedLinks{}, ErrNilBuilder
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return links.ResolvedLinks{}, err
	}

	var (
		resolved links.ResolvedLinks
		err      error
	)
	switch req.Kind {
	case links.KindPlace:
		resolved, err = b.PlaceLinks(req.Query)
	case links.KindRoute:
		resolved, err = b.RouteLinks(req.Origin, req.Destination)
	default:
		return links.ResolvedLinks{}, fmt.Errorf("%w: %q", ErrUnknownKind, req.Kind)
	}
	if err != nil {
		b.logger.Warn("maplinks build skipped", logger.Field{Key: "kind", Value: string(req.Kind)}, logger.Field{Key: "error", Value: err})
		return links.ResolvedLinks{}, err
	}

	resolved.Records = b.records(req, resolved)

	if err := b.store.Save(ctx, resolved.Records); err != nil {
		if b.policy.Store == links.FailureStrict {
			return links.ResolvedLinks{}, fmt.Errorf("maplinks: save link records: %w", err)
		}
		b.logger.Warn("maplinks store save failed", logger.Field{Key: "error", Value: err})
	}

	b.observer.OnLinksResolved(ctx, links.LinkResolution{Request: req, Resolved: resolved})

	b.logger.Debug("maplinks built",
		logger.Field{Key: "kind", Value: string(resolved.Kind)},
		logger.Field{Key: "image_url", Value: secrets.MaskURLKey(resolved.ImageURL, b.apiKey)},
		logger.Field{Key: "external_url", Value: resolved.ExternalURL},
	)
	return resolved, nil
}

func (b *Builder) records(req links.LinkRequest, resolved links.ResolvedLinks) []links.LinkRecord {
	createdAt := b.now()
	metadata := map[string]any{}
	switch resolved.Kind {
	case links.KindPlace:
		metadata["query"] = req.Query
	case links.KindRoute:
		metadata["origin"] = req.Origin
		metadata["destination"] = req.Destination
		metadata["travel_mode"] = b.travelMode
	}
	for k, v := range req.Metadata {
		if _, exists := metadata[k]; !exists {
			metadata[k] = v
		}
	}

	return []links.LinkRecord{
		b.record(resolved.Kind, links.ResolvedURLImageKey, resolved.ImageURL, createdAt, metadata),
		b.record(resolved.Kind, links.ResolvedURLExternalKey, resolved.ExternalURL, createdAt, metadata),
	}
}

func (b *Builder) record(kind links.Kind, key, url string, createdAt time.Time, metadata map[string]any) links.LinkRecord {
	meta := make(map[string]any, len(metadata)+1)
	for k, v := range metadata {
		meta[k] = v
	}
	meta["link_key"] = key
	return links.LinkRecord{
		ID:        b.newID(),
		Kind:      kind,
		Key:       key,
		URL:       url,
		CreatedAt: createdAt,
		Metadata:  meta,
	}
}

// IsMissingAPIKey reports whether err signals an unconfigured API key.
func IsMissingAPIKey(err error) bool {
	return errors.Is(err, ErrMissingAPIKey)
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
