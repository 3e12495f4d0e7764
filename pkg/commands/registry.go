package commands

import (
	command "github.com/goliatone/go-command"
	internalcommands "github.com/goliatone/go-maplinks/internal/commands"
	"github.com/goliatone/go-maplinks/pkg/interfaces/logger"
	"github.com/goliatone/go-maplinks/pkg/links"
)

// Re-export request types so consumers need not import internal packages.
type (
	ShowPlace  = internalcommands.ShowPlace
	ShowRoute  = internalcommands.ShowRoute
	Output     = internalcommands.Output
	OutputFunc = internalcommands.OutputFunc
)

// Registry exposes go-command compatible handlers backed by a link builder.
type Registry struct {
	Catalog   *internalcommands.Catalog
	ShowPlace command.Commander[ShowPlace]
	ShowRoute command.Commander[ShowRoute]
}

// Dependencies mirror the internal command dependencies but keep them public.
// Builder is usually a *maplinks.Builder.
type Dependencies struct {
	Builder links.LinkBuilder
	Output  Output
	Logger  logger.Logger
}

// New builds the registry using the provided dependencies.
func New(deps Dependencies) (*Registry, error) {
	catalog, err := internalcommands.NewCatalog(internalcommands.Dependencies{
		Builder: deps.Builder,
		Output:  deps.Output,
		Logger:  deps.Logger,
	})
	if err != nil {
		return nil, err
	}
	return &Registry{
		Catalog:   catalog,
		ShowPlace: catalog.ShowPlace,
		ShowRoute: catalog.ShowRoute,
	}, nil
}

// Commanders returns every handler so callers can register them with go-command registries.
func (r *Registry) Commanders() []any {
	if r == nil {
		return nil
	}
	return []any{
		r.ShowPlace,
		r.ShowRoute,
	}
}
