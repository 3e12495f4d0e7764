package commands

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-maplinks/pkg/config"
	"github.com/goliatone/go-maplinks/pkg/links"
	"github.com/goliatone/go-maplinks/pkg/maplinks"
)

type captureOutput struct {
	kinds []links.Kind
	views []string
	err   error
}

func (o *captureOutput) Publish(ctx context.Context, kind links.Kind, markdown string) error {
	if o.err != nil {
		return o.err
	}
	o.kinds = append(o.kinds, kind)
	o.views = append(o.views, markdown)
	return nil
}

func TestCatalogCommands(t *testing.T) {
	ctx := context.Background()
	out := &captureOutput{}
	cat, err := NewCatalog(Dependencies{
		Builder: maplinks.New(config.MapsConfig{APIKey: "k"}),
		Output:  out,
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	if err := cat.ShowPlace.Execute(ctx, ShowPlace{Query: "Paris"}); err != nil {
		t.Fatalf("show place: %v", err)
	}
	if err := cat.ShowRoute.Execute(ctx, ShowRoute{Origin: "New York", Destination: "Boston"}); err != nil {
		t.Fatalf("show route: %v", err)
	}

	if len(out.views) != 2 {
		t.Fatalf("expected 2 published views, got %d", len(out.views))
	}
	if out.kinds[0] != links.KindPlace || !strings.Contains(out.views[0], "### 📍 Location: Paris") {
		t.Fatalf("unexpected place view %q", out.views[0])
	}
	if out.kinds[1] != links.KindRoute || !strings.Contains(out.views[1], "### 🚗 Route: New York to Boston") {
		t.Fatalf("unexpected route view %q", out.views[1])
	}
}

func TestCatalogPublishesMissingKeyMessages(t *testing.T) {
	out := &captureOutput{}
	cat, err := NewCatalog(Dependencies{Builder: maplinks.New(config.MapsConfig{}), Output: out})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	_ = cat.ShowPlace.Execute(context.Background(), ShowPlace{Query: "Paris"})
	_ = cat.ShowRoute.Execute(context.Background(), ShowRoute{Origin: "A", Destination: "B"})

	if out.views[0] != maplinks.PlaceMissingKeyMessage || out.views[1] != maplinks.RouteMissingKeyMessage {
		t.Fatalf("unexpected messages %q", out.views)
	}
}

func TestCatalogPublishError(t *testing.T) {
	out := &captureOutput{err: errors.New("closed")}
	cat, err := NewCatalog(Dependencies{Builder: maplinks.New(config.MapsConfig{APIKey: "k"}), Output: out})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if err := cat.ShowPlace.Execute(context.Background(), ShowPlace{Query: "Paris"}); !errors.Is(err, out.err) {
		t.Fatalf("expected wrapped publish error, got %v", err)
	}
}

func TestNewCatalogRequiresDependencies(t *testing.T) {
	if _, err := NewCatalog(Dependencies{Output: &captureOutput{}}); err == nil {
		t.Fatal("expected missing builder error")
	}
	if _, err := NewCatalog(Dependencies{Builder: maplinks.New(config.MapsConfig{})}); err == nil {
		t.Fatal("expected missing output error")
	}
}

type captureObserver struct {
	calls []links.LinkResolution
}

func (o *captureObserver) OnLinksResolved(ctx context.Context, info links.LinkResolution) {
	o.calls = append(o.calls, info)
}

type stubBuilder struct {
	err error
}

func (b stubBuilder) Build(ctx context.Context, req links.LinkRequest) (links.ResolvedLinks, error) {
	return links.ResolvedLinks{}, b.err
}

func TestShowRouteRecordsLinks(t *testing.T) {
	store := links.NewMemoryStore()
	observer := &captureObserver{}
	fixedNow := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	builder := maplinks.New(config.MapsConfig{APIKey: "k"},
		maplinks.WithStore(store),
		maplinks.WithObserver(observer),
		maplinks.WithClock(func() time.Time { return fixedNow }),
	)
	out := &captureOutput{}
	cat, err := NewCatalog(Dependencies{Builder: builder, Output: out})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	msg := ShowRoute{Origin: "New York", Destination: "Boston", Metadata: map[string]any{"session": "s1"}}
	if err := cat.ShowRoute.Execute(context.Background(), msg); err != nil {
		t.Fatalf("show route: %v", err)
	}

	records := store.Records()
	if len(records) != 2 {
		t.Fatalf("expected 2 stored records, got %d", len(records))
	}
	for _, record := range records {
		if record.ID == "" || record.Kind != links.KindRoute || !record.CreatedAt.Equal(fixedNow) {
			t.Fatalf("unexpected record %+v", record)
		}
		if record.Metadata["origin"] != "New York" || record.Metadata["session"] != "s1" {
			t.Fatalf("unexpected record metadata %+v", record.Metadata)
		}
	}
	if len(observer.calls) != 1 {
		t.Fatalf("expected one observer call, got %d", len(observer.calls))
	}
	resolved := observer.calls[0].Resolved
	if len(resolved.Records) != 2 || resolved.Markdown != out.views[0] {
		t.Fatalf("expected observer to see the published view and its records")
	}
}

func TestShowPlaceStrictStoreFailure(t *testing.T) {
	builder := maplinks.New(config.MapsConfig{APIKey: "k"},
		maplinks.WithStore(failingStore{err: errors.New("disk full")}),
		maplinks.WithFailurePolicy(links.FailurePolicy{Store: links.FailureStrict}),
	)
	out := &captureOutput{}
	cat, err := NewCatalog(Dependencies{Builder: builder, Output: out})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if err := cat.ShowPlace.Execute(context.Background(), ShowPlace{Query: "Paris"}); err == nil {
		t.Fatal("expected strict store failure to fail the command")
	}
	if len(out.views) != 0 {
		t.Fatalf("expected nothing published, got %q", out.views)
	}
}

func TestShowPlaceBuildError(t *testing.T) {
	buildErr := errors.New("boom")
	out := &captureOutput{}
	cat, err := NewCatalog(Dependencies{Builder: stubBuilder{err: buildErr}, Output: out})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if err := cat.ShowPlace.Execute(context.Background(), ShowPlace{Query: "Paris"}); !errors.Is(err, buildErr) {
		t.Fatalf("expected wrapped build error, got %v", err)
	}
	if len(out.views) != 0 {
		t.Fatalf("expected nothing published, got %q", out.views)
	}
}

type failingStore struct {
	err error
}

func (s failingStore) Save(ctx context.Context, records []links.LinkRecord) error {
	return s.err
}
