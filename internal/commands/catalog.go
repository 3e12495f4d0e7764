package commands

import (
	"context"
	"errors"
	"fmt"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-maplinks/pkg/interfaces/logger"
	"github.com/goliatone/go-maplinks/pkg/links"
	"github.com/goliatone/go-maplinks/pkg/maplinks"
)

// Catalog exposes go-command compatible handlers for host transports.
type Catalog struct {
	ShowPlace command.Commander[ShowPlace]
	ShowRoute command.Commander[ShowRoute]
}

// Output receives the rendered Markdown (or the user-facing error line).
type Output interface {
	Publish(ctx context.Context, kind links.Kind, markdown string) error
}

// OutputFunc adapts a function to Output.
type OutputFunc func(ctx context.Context, kind links.Kind, markdown string) error

// Publish calls fn.
func (fn OutputFunc) Publish(ctx context.Context, kind links.Kind, markdown string) error {
	return fn(ctx, kind, markdown)
}

// Dependencies wires the link builder and output sink into the command catalog.
type Dependencies struct {
	Builder links.LinkBuilder
	Output  Output
	Logger  logger.Logger
}

// NewCatalog builds the command catalog using the supplied dependencies.
func NewCatalog(deps Dependencies) (*Catalog, error) {
	if deps.Builder == nil {
		return nil, errors.New("commands: link builder is required")
	}
	if deps.Output == nil {
		return nil, errors.New("commands: output is required")
	}
	if deps.Logger == nil {
		deps.Logger = &logger.Nop{}
	}

	view := viewCommand{builder: deps.Builder, output: deps.Output, logger: deps.Logger}
	return &Catalog{
		ShowPlace: showPlaceCommand{view},
		ShowRoute: showRouteCommand{view},
	}, nil
}

// ShowPlace requests the single-marker view for a free-text place query.
type ShowPlace struct {
	Query    string         `json:"query"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// ShowRoute requests the directions view between two free-text locations.
type ShowRoute struct {
	Origin      string         `json:"origin"`
	Destination string         `json:"destination"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

type viewCommand struct {
	builder links.LinkBuilder
	output  Output
	logger  logger.Logger
}

// render builds req and publishes its Markdown. A missing API key publishes
// missingKey instead of failing the command.
func (c viewCommand) render(ctx context.Context, req links.LinkRequest, missingKey string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	markdown := missingKey
	resolved, err := c.builder.Build(ctx, req)
	switch {
	case err == nil:
		markdown = resolved.Markdown
	case !maplinks.IsMissingAPIKey(err):
		return fmt.Errorf("commands: build %s view: %w", req.Kind, err)
	}
	if err := c.output.Publish(ctx, req.Kind, markdown); err != nil {
		c.logger.Error("commands: publish view failed",
			logger.Field{Key: "kind", Value: string(req.Kind)},
			logger.Field{Key: "error", Value: err},
		)
		return fmt.Errorf("commands: publish %s view: %w", req.Kind, err)
	}
	return nil
}

type showPlaceCommand struct {
	viewCommand
}

func (c showPlaceCommand) Execute(ctx context.Context, msg ShowPlace) error {
	return c.render(ctx, links.LinkRequest{
		Kind:     links.KindPlace,
		Query:    msg.Query,
		Metadata: msg.Metadata,
	}, maplinks.PlaceMissingKeyMessage)
}

type showRouteCommand struct {
	viewCommand
}

func (c showRouteCommand) Execute(ctx context.Context, msg ShowRoute) error {
	return c.render(ctx, links.LinkRequest{
		Kind:        links.KindRoute,
		Origin:      msg.Origin,
		Destination: msg.Destination,
		Metadata:    msg.Metadata,
	}, maplinks.RouteMissingKeyMessage)
}
