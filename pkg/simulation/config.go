package simulation

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"image/color"
	"os"

	"github.com/lao-tseu-is-alive/go-particle-network/pkg/particles"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed config.schema.json
var configSchema string

const configSchemaURL = "config.schema.json"

type Config struct {
	// Window
	WindowTitle  string `json:"windowTitle"`
	WindowWidth  int    `json:"windowWidth"`
	WindowHeight int    `json:"windowHeight"`

	// Seed for particle placement; 0 picks one from the clock.
	Seed uint64 `json:"seed"`

	// Density and connection thresholds
	AreaPerParticle float64 `json:"areaPerParticle"`
	LinkDistance    float64 `json:"linkDistance"`
	PointerDistance float64 `json:"pointerDistance"`

	// Motion and size
	MaxSpeed  float64 `json:"maxSpeed"`
	MinRadius float64 `json:"minRadius"`
	MaxRadius float64 `json:"maxRadius"`

	// Look
	ParticleOpacity float64 `json:"particleOpacity"`
	LinkOpacity     float64 `json:"linkOpacity"`
	PointerOpacity  float64 `json:"pointerOpacity"`
	LinkWidth       float64 `json:"linkWidth"`
	PointerWidth    float64 `json:"pointerWidth"`
	GlowScale       float64 `json:"glowScale"`
	PrimaryColor    string  `json:"primaryColor"`
	SecondaryColor  string  `json:"secondaryColor"`
	BackgroundColor string  `json:"backgroundColor"`

	// Overlays
	ShowPanel bool `json:"showPanel"`
	ShowStats bool `json:"showStats"`

	LogLevel string `json:"logLevel"`
}

func DefaultConfig() *Config {
	fc := particles.DefaultConfig()
	return &Config{
		WindowTitle:     "Constellation",
		WindowWidth:     1280,
		WindowHeight:    800,
		AreaPerParticle: fc.AreaPerParticle,
		LinkDistance:    fc.LinkDistance,
		PointerDistance: fc.PointerDistance,
		MaxSpeed:        fc.MaxSpeed,
		MinRadius:       fc.MinRadius,
		MaxRadius:       fc.MaxRadius,
		ParticleOpacity: fc.ParticleOpacity,
		LinkOpacity:     fc.LinkOpacity,
		PointerOpacity:  fc.PointerOpacity,
		LinkWidth:       fc.LinkWidth,
		PointerWidth:    fc.PointerWidth,
		GlowScale:       fc.GlowScale,
		PrimaryColor:    "#00f0ff",
		SecondaryColor:  "#7000ff",
		BackgroundColor: "#0a0a14",
		ShowStats:       true,
		LogLevel:        "info",
	}
}

// LoadConfig reads a JSON file, validates it against the embedded schema and
// lays it over DefaultConfig, so a file only needs the keys it changes.
func LoadConfig(configFile string) (*Config, error) {
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(b)
}

// ParseConfig is LoadConfig for an in-memory document.
func ParseConfig(data []byte) (*Config, error) {
	sch, err := jsonschema.CompileString(configSchemaURL, configSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks what the schema cannot express: colour parsing and
// cross-field constraints such as minRadius <= maxRadius.
func (c *Config) Validate() error {
	if _, err := c.FieldConfig(); err != nil {
		return err
	}
	if _, err := ParseColor(c.BackgroundColor); err != nil {
		return fmt.Errorf("backgroundColor: %w", err)
	}
	return nil
}

// FieldConfig derives the particle field settings.
func (c *Config) FieldConfig() (particles.Config, error) {
	primary, err := ParseColor(c.PrimaryColor)
	if err != nil {
		return particles.Config{}, fmt.Errorf("primaryColor: %w", err)
	}
	secondary, err := ParseColor(c.SecondaryColor)
	if err != nil {
		return particles.Config{}, fmt.Errorf("secondaryColor: %w", err)
	}

	fc := particles.Config{
		AreaPerParticle: c.AreaPerParticle,
		LinkDistance:    c.LinkDistance,
		PointerDistance: c.PointerDistance,
		MaxSpeed:        c.MaxSpeed,
		MinRadius:       c.MinRadius,
		MaxRadius:       c.MaxRadius,
		ParticleOpacity: c.ParticleOpacity,
		LinkOpacity:     c.LinkOpacity,
		PointerOpacity:  c.PointerOpacity,
		LinkWidth:       c.LinkWidth,
		PointerWidth:    c.PointerWidth,
		GlowScale:       c.GlowScale,
		Primary:         primary,
		Secondary:       secondary,
	}
	if err := fc.Validate(); err != nil {
		return particles.Config{}, fmt.Errorf("invalid field settings: %w", err)
	}
	return fc, nil
}

// Background returns the parsed background colour, black if it does not parse.
func (c *Config) Background() color.RGBA {
	bg, err := ParseColor(c.BackgroundColor)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return bg
}

// ParseColor turns "#rgb" or "#rrggbb" into an opaque colour.
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
