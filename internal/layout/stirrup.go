package layout

import (
	"github.com/alexiusacademia/rcbdxf/internal/beam"
	"github.com/alexiusacademia/rcbdxf/internal/draw"
)

// stirrup draws the stirrup as its inset rectangle (bottom, top, left, right)
// followed by one tie line under each occupied overflow row: bottom row 2,
// bottom row 3, top row 2, top row 3.
func stirrup(s beam.Spec) []draw.Command {
	w, h, c := s.Width, s.Height, s.Cover
	r := s.Main.Diameter / 2
	g := s.Main.Gap
	layer := s.Layers.Rebar

	hline := func(y float64) draw.Command {
		return draw.Line{
			P1:    draw.Point{X: c + r, Y: y},
			P2:    draw.Point{X: w - c - r, Y: y},
			Layer: layer,
		}
	}
	vline := func(x float64) draw.Command {
		return draw.Line{
			P1:    draw.Point{X: x, Y: c + r},
			P2:    draw.Point{X: x, Y: h - c - r},
			Layer: layer,
		}
	}

	cmds := []draw.Command{
		hline(c),
		hline(h - c),
		vline(c),
		vline(w - c),
	}

	ties := []struct {
		count int
		y     float64
	}{
		{s.Main.Bottom[1], c + g},
		{s.Main.Bottom[2], c + 2*g},
		{s.Main.Top[1], h - c - 2*r - g},
		{s.Main.Top[2], h - c - 2*r - 2*g},
	}
	for _, t := range ties {
		if t.count > 0 {
			cmds = append(cmds, hline(t.y))
		}
	}
	return cmds
}
