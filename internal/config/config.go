package config

import (
	"bytes"
	_ "embed"
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/alexiusacademia/rcbdxf/internal/beam"
	"github.com/alexiusacademia/rcbdxf/internal/errs"
)

//go:embed sample_config.toml
var sampleConfig string

// Dimension holds the concrete section size. Pointer fields are mandatory.
type Dimension struct {
	BeamWidth  *float64 `toml:"beam_width"`
	BeamHeight *float64 `toml:"beam_height"`
	CoverDepth float64  `toml:"cover_depth"`
}

// MainRebar holds the top and bottom bars. Gap defaults to twice the bar
// diameter when omitted.
type MainRebar struct {
	Diameter *float64 `toml:"diameter"`
	Gap      *float64 `toml:"gap"`
	Top1     *int     `toml:"top_1"`
	Top2     int      `toml:"top_2"`
	Top3     int      `toml:"top_3"`
	Bottom1  *int     `toml:"bottom_1"`
	Bottom2  int      `toml:"bottom_2"`
	Bottom3  int      `toml:"bottom_3"`
}

// Stirrup is annotation data for the stirrup.
type Stirrup struct {
	Num      int     `toml:"num"`
	Diameter float64 `toml:"diameter"`
	Pitch    float64 `toml:"pitch"`
}

// WebRebar describes the side bars. Diameter defaults to the main bar
// diameter when omitted.
type WebRebar struct {
	NumRow   int      `toml:"num_row"`
	Diameter *float64 `toml:"diameter"`
}

// LayerName names the CAD layers.
type LayerName struct {
	Concrete string `toml:"concrete"`
	Rebar    string `toml:"rebar"`
	Text     string `toml:"text"`
}

// Layout contains drafting settings.
type Layout struct {
	TextHeight  float64 `toml:"text_height"`
	TextOriginY float64 `toml:"text_origin_y"`
	FillOrder   string  `toml:"fill_order"`
	Outline     string  `toml:"outline"`
}

// Config mirrors the TOML input file.
type Config struct {
	BeamName  *string   `toml:"beam_name"`
	Dimension Dimension `toml:"dimension"`
	MainRebar MainRebar `toml:"main_rebar"`
	Stirrup   Stirrup   `toml:"stirrup"`
	WebRebar  WebRebar  `toml:"web_rebar"`
	LayerName LayerName `toml:"layer_name"`
	Layout    Layout    `toml:"layout"`
}

// Load reads the file at path and returns the validated beam description.
func Load(path string) (beam.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return beam.Spec{}, errs.IO(err, "read config %s", path)
	}
	return Parse(data)
}

// Parse decodes TOML data over the defaults and converts it to a beam.Spec.
func Parse(data []byte) (beam.Spec, error) {
	cfg := Default()

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return beam.Spec{}, formatError(err)
	}

	if err := cfg.Validate(); err != nil {
		return beam.Spec{}, err
	}
	return cfg.Spec()
}

// Spec converts a validated Config to a beam.Spec, filling the derived
// defaults exactly once.
func (c *Config) Spec() (beam.Spec, error) {
	fill, err := parseFillOrder(c.Layout.FillOrder)
	if err != nil {
		return beam.Spec{}, err
	}
	outline, err := parseOutline(c.Layout.Outline)
	if err != nil {
		return beam.Spec{}, err
	}

	diameter := *c.MainRebar.Diameter
	gap := defaultGapFactor * diameter
	if c.MainRebar.Gap != nil {
		gap = *c.MainRebar.Gap
	}
	webDiameter := diameter
	if c.WebRebar.Diameter != nil {
		webDiameter = *c.WebRebar.Diameter
	}

	return beam.New(beam.Spec{
		Name:   *c.BeamName,
		Width:  *c.Dimension.BeamWidth,
		Height: *c.Dimension.BeamHeight,
		Cover:  c.Dimension.CoverDepth,
		Main: beam.MainRebar{
			Diameter: diameter,
			Gap:      gap,
			Top:      [3]int{*c.MainRebar.Top1, c.MainRebar.Top2, c.MainRebar.Top3},
			Bottom:   [3]int{*c.MainRebar.Bottom1, c.MainRebar.Bottom2, c.MainRebar.Bottom3},
		},
		Stirrup: beam.Stirrup{
			Count:    c.Stirrup.Num,
			Diameter: c.Stirrup.Diameter,
			Pitch:    c.Stirrup.Pitch,
		},
		Web: beam.WebRebar{
			Rows:     c.WebRebar.NumRow,
			Diameter: webDiameter,
		},
		Layers: beam.Layers{
			Concrete: c.LayerName.Concrete,
			Rebar:    c.LayerName.Rebar,
			Text:     c.LayerName.Text,
		},
		Drafting: beam.Drafting{
			TextHeight:  c.Layout.TextHeight,
			TextOriginY: c.Layout.TextOriginY,
			FillOrder:   fill,
			Outline:     outline,
		},
	})
}

func formatError(err error) error {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, col := decodeErr.Position()
		return errs.Format(err, "parse config at line %d, column %d", row, col)
	}
	var strictErr *toml.StrictMissingError
	if errors.As(err, &strictErr) {
		return errs.Format(err, "unknown keys in config")
	}
	return errs.Format(err, "parse config")
}

// SampleConfig returns the annotated example configuration.
func SampleConfig() string {
	return sampleConfig
}

// CreateSample writes the sample configuration file to path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errs.IO(err, "create config directory")
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return errs.IO(err, "write sample config")
	}
	return nil
}
