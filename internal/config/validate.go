package config

import (
	"strings"

	"github.com/alexiusacademia/rcbdxf/internal/beam"
	"github.com/alexiusacademia/rcbdxf/internal/errs"
)

// Validate reports the first mandatory key missing from the file. Value
// ranges are checked later by beam.Spec.Validate.
func (c *Config) Validate() error {
	required := []struct {
		key     string
		present bool
	}{
		{"beam_name", c.BeamName != nil},
		{"dimension.beam_width", c.Dimension.BeamWidth != nil},
		{"dimension.beam_height", c.Dimension.BeamHeight != nil},
		{"main_rebar.diameter", c.MainRebar.Diameter != nil},
		{"main_rebar.top_1", c.MainRebar.Top1 != nil},
		{"main_rebar.bottom_1", c.MainRebar.Bottom1 != nil},
	}
	for _, r := range required {
		if !r.present {
			return errs.Validation(r.key, "is required")
		}
	}
	return nil
}

func parseFillOrder(value string) (beam.FillOrder, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "alternating":
		return beam.FillAlternating, nil
	case "left-to-right", "linear":
		return beam.FillLeftToRight, nil
	}
	return 0, errs.Validation("layout.fill_order",
		"unknown fill order %q (want \"alternating\" or \"left-to-right\")", value)
}

func parseOutline(value string) (beam.OutlineStyle, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "lines":
		return beam.OutlineLines, nil
	case "polyline":
		return beam.OutlinePolyline, nil
	}
	return 0, errs.Validation("layout.outline",
		"unknown outline style %q (want \"lines\" or \"polyline\")", value)
}
