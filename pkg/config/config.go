package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/goliatone/go-config/cfgx"
)

const (
	// EnvAPIKey names the environment variable holding the Static Maps key.
	EnvAPIKey = "GOOGLE_MAPS_API_KEY"
	// EnvImageSize names the environment variable holding the image size.
	EnvImageSize = "IMAGE_SIZE"

	DefaultImageSize     = "600x400"
	DefaultStaticMapURL  = "https://maps.googleapis.com/maps/api/staticmap"
	DefaultSearchURL     = "https://www.google.com/maps/search/"
	DefaultDirectionsURL = "https://www.google.com/maps/dir/"
	DefaultZoom          = 15
	DefaultTravelMode    = "driving"
)

// Config captures module-level configuration knobs. The maps builder reads
// Maps, the link resolution pipeline reads Links.
type Config struct {
	Maps  MapsConfig  `mapstructure:"maps" json:"maps"`
	Links LinksConfig `mapstructure:"links" json:"links"`
}

// MapsConfig holds the Static Maps key and the endpoints links point at.
// An empty APIKey is valid; view operations report it at call time.
type MapsConfig struct {
	APIKey        string `mapstructure:"api_key" json:"api_key"`
	ImageSize     string `mapstructure:"image_size" json:"image_size"`
	StaticMapURL  string `mapstructure:"static_map_url" json:"static_map_url"`
	SearchURL     string `mapstructure:"search_url" json:"search_url"`
	DirectionsURL string `mapstructure:"directions_url" json:"directions_url"`
	Zoom          int    `mapstructure:"zoom" json:"zoom"`
	TravelMode    string `mapstructure:"travel_mode" json:"travel_mode"`
}

// LinksConfig controls how link store failures are handled.
type LinksConfig struct {
	StoreFailure string `mapstructure:"store_failure" json:"store_failure"`
}

// Defaults returns the baseline configuration.
func Defaults() Config {
	return Config{
		Maps: MapsConfig{
			ImageSize:     DefaultImageSize,
			StaticMapURL:  DefaultStaticMapURL,
			SearchURL:     DefaultSearchURL,
			DirectionsURL: DefaultDirectionsURL,
			Zoom:          DefaultZoom,
			TravelMode:    DefaultTravelMode,
		},
		Links: LinksConfig{
			StoreFailure: "lenient",
		},
	}
}

// Validate ensures required fields are present and sane.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Maps.StaticMapURL) == "" {
		return errors.New("maps.static_map_url is required")
	}
	if strings.TrimSpace(c.Maps.SearchURL) == "" {
		return errors.New("maps.search_url is required")
	}
	if strings.TrimSpace(c.Maps.DirectionsURL) == "" {
		return errors.New("maps.directions_url is required")
	}
	if c.Maps.Zoom <= 0 {
		return fmt.Errorf("maps.zoom must be > 0")
	}
	if strings.TrimSpace(c.Maps.TravelMode) == "" {
		return errors.New("maps.travel_mode is required")
	}
	if !validFailureMode(c.Links.StoreFailure) {
		return fmt.Errorf("links.store_failure must be strict or lenient, got %q", c.Links.StoreFailure)
	}
	return nil
}

// Load decodes arbitrary input (struct, map, cfg struct) using cfgx helpers.
// When cfgx yields a zero value we fall back to a lightweight decoder.
func Load(input any, opts ...LoadOption) (Config, error) {
	settings := loadOptions{}
	for _, opt := range opts {
		opt(&settings)
	}

	cfg, err := cfgx.Build(input, settings.buildOpts...)
	if err != nil {
		return Config{}, err
	}

	if isZero(cfg) {
		if err := decodeFallback(input, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg = cfg.withDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// FromEnv builds a configuration from GOOGLE_MAPS_API_KEY and IMAGE_SIZE.
// A nil lookup reads the process environment.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	maps := map[string]any{}
	if v, ok := lookup(EnvAPIKey); ok {
		maps["api_key"] = v
	}
	if v, ok := lookup(EnvImageSize); ok && strings.TrimSpace(v) != "" {
		maps["image_size"] = v
	}
	return Load(map[string]any{"maps": maps})
}

// LoadOption lets callers amend cfgx build options.
type LoadOption func(*loadOptions)

type loadOptions struct {
	buildOpts []cfgx.Option[Config]
}

// WithBuildOptions forwards cfgx options (preprocessors, hooks, etc.).
func WithBuildOptions(opts ...cfgx.Option[Config]) LoadOption {
	return func(lo *loadOptions) {
		lo.buildOpts = append(lo.buildOpts, opts...)
	}
}

func (c Config) withDefaults() Config {
	defaults := Defaults()

	if c.Maps.ImageSize == "" {
		c.Maps.ImageSize = defaults.Maps.ImageSize
	}
	if c.Maps.StaticMapURL == "" {
		c.Maps.StaticMapURL = defaults.Maps.StaticMapURL
	}
	if c.Maps.SearchURL == "" {
		c.Maps.SearchURL = defaults.Maps.SearchURL
	}
	if c.Maps.DirectionsURL == "" {
		c.Maps.DirectionsURL = defaults.Maps.DirectionsURL
	}
	if c.Maps.Zoom == 0 {
		c.Maps.Zoom = defaults.Maps.Zoom
	}
	if c.Maps.TravelMode == "" {
		c.Maps.TravelMode = defaults.Maps.TravelMode
	}
	if c.Links.StoreFailure == "" {
		c.Links.StoreFailure = defaults.Links.StoreFailure
	}
	return c
}

func validFailureMode(mode string) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "strict", "lenient":
		return true
	default:
		return false
	}
}

func isZero(cfg Config) bool {
	return reflect.DeepEqual(cfg, Config{})
}

func decodeFallback(input any, cfg *Config) error {
	switch v := input.(type) {
	case nil:
		return nil
	case Config:
		*cfg = v
		return nil
	case *Config:
		if v != nil {
			*cfg = *v
		}
		return nil
	case map[string]any:
		return decodeMap(v, cfg)
	default:
		return fmt.Errorf("unsupported config input type: %T", input)
	}
}

func decodeMap(input map[string]any, cfg *Config) error {
	if input == nil {
		return nil
	}
	payload, err := json.Marshal(input)
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, cfg)
}
