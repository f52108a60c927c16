package simulation

import (
	"image/color"
	"strings"
	"testing"

	"github.com/lao-tseu-is-alive/go-particle-network/pkg/particles"
)

func TestDefaultConfig_FieldConfig(t *testing.T) {
	fc, err := DefaultConfig().FieldConfig()
	if err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	want := particles.DefaultConfig()
	if fc != want {
		t.Errorf("FieldConfig() = %+v; want %+v", fc, want)
	}
}

func TestLoadConfig_RepositoryFile(t *testing.T) {
	cfg, err := LoadConfig("../../configs/constellation.json")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.WindowWidth != 1280 || cfg.WindowHeight != 800 {
		t.Errorf("window = %dx%d; want 1280x800", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.LinkDistance != 150 || cfg.PointerDistance != 200 {
		t.Errorf("thresholds = %v/%v; want 150/200", cfg.LinkDistance, cfg.PointerDistance)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig("does-not-exist.json"); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestParseConfig_PartialKeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{"linkDistance": 90, "primaryColor": "#fff"}`))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.LinkDistance != 90 {
		t.Errorf("LinkDistance = %v; want 90", cfg.LinkDistance)
	}
	if cfg.PointerDistance != 200 || cfg.AreaPerParticle != 15000 {
		t.Errorf("omitted keys should keep defaults, got pointer=%v area=%v", cfg.PointerDistance, cfg.AreaPerParticle)
	}
	fc, err := cfg.FieldConfig()
	if err != nil {
		t.Fatalf("FieldConfig failed: %v", err)
	}
	if fc.Primary != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("Primary = %v; want white", fc.Primary)
	}
}

func TestParseConfig_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"not json", `{linkDistance:`, "decode"},
		{"unknown key", `{"particleCount": 10}`, "validation"},
		{"zero distance", `{"linkDistance": 0}`, "validation"},
		{"opacity above one", `{"linkOpacity": 1.5}`, "validation"},
		{"bad colour", `{"secondaryColor": "purple"}`, "validation"},
		{"bad log level", `{"logLevel": "trace"}`, "validation"},
		{"inverted radii", `{"minRadius": 4, "maxRadius": 2}`, "radius"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.doc))
			if err == nil {
				t.Fatalf("expected an error for %s", tt.doc)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		hex     string
		want    color.RGBA
		wantErr bool
	}{
		{"#00f0ff", color.RGBA{R: 0, G: 240, B: 255, A: 255}, false},
		{"#7000ff", color.RGBA{R: 112, G: 0, B: 255, A: 255}, false},
		{"#f00", color.RGBA{R: 255, A: 255}, false},
		{"00f0ff", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.hex)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v; wantErr %v", tt.hex, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v; want %v", tt.hex, got, tt.want)
		}
	}
}

func TestConfig_Background(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.Background(); got != (color.RGBA{R: 10, G: 10, B: 20, A: 255}) {
		t.Errorf("Background() = %v", got)
	}
	cfg.BackgroundColor = "nope"
	if got := cfg.Background(); got != (color.RGBA{A: 255}) {
		t.Errorf("unparsable background should fall back to black, got %v", got)
	}
}

func TestParseLogLevel(t *testing.T) {
	if ParseLogLevel("DEBUG") != ParseLogLevel("debug") {
		t.Error("level names should be case insensitive")
	}
	if ParseLogLevel("whatever") != ParseLogLevel("info") {
		t.Error("unknown levels should fall back to info")
	}
}
