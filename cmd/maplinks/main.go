package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goliatone/go-maplinks/pkg/commands"
	"github.com/goliatone/go-maplinks/pkg/config"
	"github.com/goliatone/go-maplinks/pkg/interfaces/logger"
	"github.com/goliatone/go-maplinks/pkg/links"
	"github.com/goliatone/go-maplinks/pkg/maplinks"
	"github.com/goliatone/go-maplinks/pkg/secrets"
	"github.com/sirupsen/logrus"
)

type cli struct {
	APIKey  string `name:"api-key" help:"Static Maps API key (defaults to $GOOGLE_MAPS_API_KEY)."`
	Size    string `name:"size" help:"Image size as WIDTHxHEIGHT (defaults to $IMAGE_SIZE or 600x400)."`
	Verbose bool   `short:"v" help:"Enable debug logging on stderr."`

	Place placeCmd `cmd:"" help:"Render a static map for a place or address."`
	Route routeCmd `cmd:"" help:"Render a static map for a driving route."`
}

type placeCmd struct {
	Query []string `arg:"" help:"Place name or address."`
}

func (c *placeCmd) Run(app *app) error {
	return app.registry.ShowPlace.Execute(app.ctx, commands.ShowPlace{Query: strings.Join(c.Query, " ")})
}

type routeCmd struct {
	Origin      string `arg:"" help:"Starting location."`
	Destination string `arg:"" help:"Destination."`
}

func (c *routeCmd) Run(app *app) error {
	return app.registry.ShowRoute.Execute(app.ctx, commands.ShowRoute{Origin: c.Origin, Destination: c.Destination})
}

type app struct {
	ctx      context.Context
	registry *commands.Registry
}

func main() {
	var args cli
	kctx := kong.Parse(&args,
		kong.Name("maplinks"),
		kong.Description("Build Google Static Maps Markdown for places and routes."),
		kong.UsageOnError(),
	)

	base := logrus.New()
	base.SetOutput(os.Stderr)
	base.SetLevel(logrus.WarnLevel)
	if args.Verbose {
		base.SetLevel(logrus.DebugLevel)
	}
	lgr := logger.NewLogrus(base)

	application, err := newApp(context.Background(), args, os.Stdout, lgr)
	kctx.FatalIfErrorf(err)
	kctx.FatalIfErrorf(kctx.Run(application))
}

func newApp(ctx context.Context, args cli, stdout io.Writer, lgr logger.Logger) (*app, error) {
	cfg, err := config.FromEnv(nil)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if args.APIKey != "" {
		cfg.Maps.APIKey = args.APIKey
	}
	if args.Size != "" {
		cfg.Maps.ImageSize = args.Size
	}

	lgr.Debug("maplinks configured",
		logger.Field{Key: "api_key", Value: secrets.MaskString(cfg.Maps.APIKey)},
		logger.Field{Key: "image_size", Value: cfg.Maps.ImageSize},
	)

	builder := maplinks.New(cfg.Maps,
		maplinks.WithLogger(lgr),
		maplinks.WithObserver(links.ObserverFunc(func(_ context.Context, info links.LinkResolution) {
			lgr.Debug("maplinks resolved",
				logger.Field{Key: "kind", Value: string(info.Resolved.Kind)},
				logger.Field{Key: "records", Value: len(info.Resolved.Records)},
			)
		})),
		maplinks.WithFailurePolicy(links.FailurePolicy{Store: links.ParseFailureMode(cfg.Links.StoreFailure)}),
	)

	registry, err := commands.New(commands.Dependencies{
		Builder: builder,
		Logger:  lgr,
		Output: commands.OutputFunc(func(_ context.Context, _ links.Kind, markdown string) error {
			_, err := io.WriteString(stdout, markdown)
			return err
		}),
	})
	if err != nil {
		return nil, err
	}
	return &app{ctx: ctx, registry: registry}, nil
}
