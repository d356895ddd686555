package beam

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/rcbdxf/internal/errs"
)

// SideMargin is the fixed drafting offset of side bars from the cover line.
const SideMargin = 10.0

// Upper bounds on bar counts. Anything larger is a typo, not a section.
const (
	MaxBarsPerRow = 100
	MaxWebRows    = 100
)

// Validate checks every geometric precondition of the section. The first
// violation is returned as an errs.CodeValidation error naming the config key.
func (s Spec) Validate() error {
	checks := []func() error{
		s.validateName,
		s.validateFinite,
		s.validateDimensions,
		s.validateRowCounts,
		s.validateFit,
		s.validateWeb,
		s.validateStirrup,
		s.validateDrafting,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func (s Spec) validateName() error {
	if strings.TrimSpace(s.Name) == "" {
		return errs.Validation("beam_name", "must not be empty")
	}
	return nil
}

// validateFinite rejects NaN and infinities, which pass every ordered
// comparison below.
func (s Spec) validateFinite() error {
	values := []struct {
		field string
		value float64
	}{
		{"dimension.beam_width", s.Width},
		{"dimension.beam_height", s.Height},
		{"dimension.cover_depth", s.Cover},
		{"main_rebar.diameter", s.Main.Diameter},
		{"main_rebar.gap", s.Main.Gap},
		{"web_rebar.diameter", s.Web.Diameter},
		{"stirrup.diameter", s.Stirrup.Diameter},
		{"stirrup.pitch", s.Stirrup.Pitch},
		{"layout.text_height", s.Drafting.TextHeight},
		{"layout.text_origin_y", s.Drafting.TextOriginY},
	}
	for _, v := range values {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return errs.Validation(v.field, "must be a finite number, got %g", v.value)
		}
	}
	return nil
}

func (s Spec) validateDimensions() error {
	positive := []struct {
		field string
		value float64
	}{
		{"dimension.beam_width", s.Width},
		{"dimension.beam_height", s.Height},
		{"dimension.cover_depth", s.Cover},
		{"main_rebar.diameter", s.Main.Diameter},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return errs.Validation(p.field, "must be positive, got %g", p.value)
		}
	}
	if s.Main.Gap < 0 {
		return errs.Validation("main_rebar.gap", "must not be negative, got %g", s.Main.Gap)
	}
	return nil
}

func (s Spec) validateRowCounts() error {
	groups := []struct {
		name string
		rows [3]int
	}{
		{"top", s.Main.Top},
		{"bottom", s.Main.Bottom},
	}
	for _, g := range groups {
		for i, n := range g.rows {
			if n < 0 {
				return errs.Validation(rowField(g.name, i), "must not be negative, got %d", n)
			}
			if n > MaxBarsPerRow {
				return errs.Validation(rowField(g.name, i), "%d bars exceed the limit of %d", n, MaxBarsPerRow)
			}
		}
		if g.rows[0] < 2 {
			return errs.Validation(rowField(g.name, 0), "%s rebar count %d < 2", g.name, g.rows[0])
		}
		for i := 1; i < 3; i++ {
			if g.rows[i] > g.rows[0] {
				return errs.Validation(rowField(g.name, i),
					"%d bars exceed the %d bars of the first row", g.rows[i], g.rows[0])
			}
		}
		if g.rows[2] > 0 && g.rows[1] == 0 {
			return errs.Validation(rowField(g.name, 2), "third row requires a second row")
		}
	}
	if s.overflowRows() && s.Main.Gap <= 0 {
		return errs.Validation("main_rebar.gap", "must be positive when a second or third row is present")
	}
	return nil
}

func (s Spec) validateFit() error {
	need := 2*s.Cover + s.Main.Diameter
	if s.Width <= need {
		return errs.Validation("dimension.beam_width",
			"width %g must exceed 2*cover + diameter = %g", s.Width, need)
	}
	if s.Height <= need {
		return errs.Validation("dimension.beam_height",
			"height %g must exceed 2*cover + diameter = %g", s.Height, need)
	}

	r := s.Main.Diameter / 2
	bottomTop := s.Cover + r + float64(occupiedRows(s.Main.Bottom)-1)*s.Main.Gap
	topBottom := s.Height - s.Cover - r - float64(occupiedRows(s.Main.Top)-1)*s.Main.Gap
	if bottomTop >= topBottom {
		return errs.Validation("main_rebar.gap",
			"bottom rows reach y=%g, overlapping top rows starting at y=%g", bottomTop, topBottom)
	}
	return nil
}

func (s Spec) validateWeb() error {
	if s.Web.Rows < 0 {
		return errs.Validation("web_rebar.num_row", "must not be negative, got %d", s.Web.Rows)
	}
	if s.Web.Rows > MaxWebRows {
		return errs.Validation("web_rebar.num_row", "%d rows exceed the limit of %d", s.Web.Rows, MaxWebRows)
	}
	if s.Web.Diameter < 0 {
		return errs.Validation("web_rebar.diameter", "must not be negative, got %g", s.Web.Diameter)
	}
	if s.Web.Rows == 0 {
		return nil
	}
	if s.Web.Diameter <= 0 {
		return errs.Validation("web_rebar.diameter", "must be positive when side rows are present, got %g", s.Web.Diameter)
	}
	if need := 2*s.Cover + 2*s.Main.Diameter; s.Height <= need {
		return errs.Validation("web_rebar.num_row",
			"height %g leaves no room for side bars (needs > %g)", s.Height, need)
	}
	if need := 2 * (s.Cover + SideMargin); s.Width <= need {
		return errs.Validation("web_rebar.num_row",
			"width %g leaves no room for side bars (needs > %g)", s.Width, need)
	}
	return nil
}

func (s Spec) validateStirrup() error {
	if s.Stirrup.Count < 0 {
		return errs.Validation("stirrup.num", "must not be negative, got %d", s.Stirrup.Count)
	}
	if s.Stirrup.Count == 0 {
		return nil
	}
	if s.Stirrup.Diameter <= 0 {
		return errs.Validation("stirrup.diameter", "must be positive, got %g", s.Stirrup.Diameter)
	}
	if s.Stirrup.Pitch <= 0 {
		return errs.Validation("stirrup.pitch", "must be positive, got %g", s.Stirrup.Pitch)
	}
	return nil
}

func (s Spec) validateDrafting() error {
	if s.Drafting.TextHeight <= 0 {
		return errs.Validation("layout.text_height", "must be positive, got %g", s.Drafting.TextHeight)
	}
	layers := []struct {
		field string
		name  string
	}{
		{"layer_name.concrete", s.Layers.Concrete},
		{"layer_name.rebar", s.Layers.Rebar},
		{"layer_name.text", s.Layers.Text},
	}
	for _, l := range layers {
		if strings.TrimSpace(l.name) == "" {
			return errs.Validation(l.field, "must not be empty")
		}
	}
	return nil
}

func (s Spec) overflowRows() bool {
	return s.Main.Top[1] > 0 || s.Main.Top[2] > 0 || s.Main.Bottom[1] > 0 || s.Main.Bottom[2] > 0
}

func occupiedRows(rows [3]int) int {
	n := 0
	for _, c := range rows {
		if c > 0 {
			n++
		}
	}
	return n
}

func rowField(group string, row int) string {
	return fmt.Sprintf("main_rebar.%s_%d", group, row+1)
}
