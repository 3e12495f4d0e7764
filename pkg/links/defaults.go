package links

import "context"

// NopStore drops link records. It is the builder default when no store is set.
type NopStore struct{}

var _ LinkStore = (*NopStore)(nil)

func (NopStore) Save(context.Context, []LinkRecord) error { return nil }

// NopObserver ignores resolutions. It is the builder default when no observer is set.
type NopObserver struct{}

var _ LinkObserver = (*NopObserver)(nil)

func (NopObserver) OnLinksResolved(context.Context, LinkResolution) {}

// ObserverFunc adapts a function to LinkObserver.
type ObserverFunc func(ctx context.Context, info LinkResolution)

var _ LinkObserver = ObserverFunc(nil)

// OnLinksResolved calls fn when it is set.
func (fn ObserverFunc) OnLinksResolved(ctx context.Context, info LinkResolution) {
	if fn != nil {
		fn(ctx, info)
	}
}
