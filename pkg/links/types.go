package links

import (
	"context"
	"strings"
	"time"
)

const (
	// ResolvedURLImageKey marks the static map image URL.
	ResolvedURLImageKey = "image_url"
	// ResolvedURLExternalKey marks the deep link into the maps UI.
	ResolvedURLExternalKey = "external_url"
)

// Kind selects which view a LinkRequest resolves to.
type Kind string

const (
	KindPlace Kind = "place"
	KindRoute Kind = "route"
)

// ParseKind normalizes raw into a Kind. Unknown values return false.
func ParseKind(raw string) (Kind, bool) {
	switch Kind(strings.ToLower(strings.TrimSpace(raw))) {
	case KindPlace:
		return KindPlace, true
	case KindRoute:
		return KindRoute, true
	default:
		return "", false
	}
}

// LinkBuilder generates resolved links for a request.
type LinkBuilder interface {
	Build(ctx context.Context, req LinkRequest) (ResolvedLinks, error)
}

// LinkRequest captures the free-text inputs of a view.
// Query is used by KindPlace, Origin and Destination by KindRoute.
type LinkRequest struct {
	Kind        Kind
	Query       string
	Origin      string
	Destination string
	Metadata    map[string]any
}

// ResolvedLinks carries the generated URLs, the rendered Markdown and
// optional records for storage/analytics.
type ResolvedLinks struct {
	Kind        Kind
	ImageURL    string
	ExternalURL string
	Markdown    string
	Records     []LinkRecord
}

// LinkRecord represents a stored or auditable link resolution record.
type LinkRecord struct {
	ID        string
	Kind      Kind
	Key       string
	URL       string
	CreatedAt time.Time
	Metadata  map[string]any
}

// LinkStore persists resolved link records.
type LinkStore interface {
	Save(ctx context.Context, records []LinkRecord) error
}

// LinkObserver receives resolved link events.
type LinkObserver interface {
	OnLinksResolved(ctx context.Context, info LinkResolution)
}

// LinkResolution bundles the request and resolved outputs.
type LinkResolution struct {
	Request  LinkRequest
	Resolved ResolvedLinks
}

// FailureMode controls how link store errors are handled.
type FailureMode string

const (
	// FailureStrict aborts processing on error.
	FailureStrict FailureMode = "strict"
	// FailureLenient logs and continues on error.
	FailureLenient FailureMode = "lenient"
)

// ParseFailureMode maps raw config values to a FailureMode, defaulting to lenient.
func ParseFailureMode(raw string) FailureMode {
	if strings.EqualFold(strings.TrimSpace(raw), string(FailureStrict)) {
		return FailureStrict
	}
	return FailureLenient
}

// FailurePolicy configures failure handling per dependency.
type FailurePolicy struct {
	Store FailureMode
}
