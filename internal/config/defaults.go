package config

const (
	defaultCoverDepth    = 40.0
	defaultGapFactor     = 2.0 // gap = factor x main bar diameter
	defaultConcreteLayer = "RC大梁"
	defaultRebarLayer    = "RC鉄筋"
	defaultTextLayer     = "注釈"
	defaultTextHeight    = 100.0
	defaultTextOriginY   = -1000.0
	defaultFillOrder     = "alternating"
	defaultOutline       = "lines"
)

// Default returns a Config populated with the optional defaults. Mandatory
// keys are left nil so Validate can report them as missing.
func Default() Config {
	return Config{
		Dimension: Dimension{
			CoverDepth: defaultCoverDepth,
		},
		LayerName: LayerName{
			Concrete: defaultConcreteLayer,
			Rebar:    defaultRebarLayer,
			Text:     defaultTextLayer,
		},
		Layout: Layout{
			TextHeight:  defaultTextHeight,
			TextOriginY: defaultTextOriginY,
			FillOrder:   defaultFillOrder,
			Outline:     defaultOutline,
		},
	}
}
