package layout

import (
	"math"

	"github.com/alexiusacademia/rcbdxf/internal/beam"
	"github.com/alexiusacademia/rcbdxf/internal/draw"
	"github.com/alexiusacademia/rcbdxf/internal/errs"
)

const (
	// crossOverhang extends a rebar cross-mark past the bar circle.
	crossOverhang = 1.0
	// sideMarkSize is the half-length of a side bar cross and the offset of
	// its guide line.
	sideMarkSize = 10.0
)

// RowPositions returns the x-coordinates of count bars filled alternately
// from both ends: even indices step right from left, odd indices step left
// from right, each by (i/2)*spacing.
//
// For count=3, spacing=140, left=50, right=350 the result is [50 350 190].
func RowPositions(count int, spacing, left, right float64) []float64 {
	xs := make([]float64, count)
	for i := range xs {
		step := float64(i/2) * spacing
		if i%2 == 0 {
			xs[i] = left + step
		} else {
			xs[i] = right - step
		}
	}
	return xs
}

// LinearPositions returns the x-coordinates of count bars placed strictly
// left to right starting at left.
func LinearPositions(count int, spacing, left float64) []float64 {
	xs := make([]float64, count)
	for i := range xs {
		xs[i] = left + float64(i)*spacing
	}
	return xs
}

// Bar is a placed main bar.
type Bar struct {
	Center draw.Point
	Group  string // "top" or "bottom"
	Row    int    // 0 for the row nearest the face
}

// MainRebarCoords places all main bars: the bottom group first (rows stacking
// upward from the bottom face), then the top group (rows stacking downward).
// The horizontal pitch of each group comes from its first-row count.
func MainRebarCoords(s beam.Spec) ([]Bar, error) {
	r := s.Main.Diameter / 2
	left := s.Cover + r
	right := s.Width - s.Cover - r

	groups := []struct {
		name  string
		rows  [3]int
		baseY float64
		dir   float64
	}{
		{"bottom", s.Main.Bottom, s.Cover + r, 1},
		{"top", s.Main.Top, s.Height - s.Cover - r, -1},
	}

	var bars []Bar
	for _, g := range groups {
		if g.rows[0] < 2 {
			return nil, errs.Validation("main_rebar."+g.name+"_1",
				"%s rebar count %d < 2", g.name, g.rows[0])
		}
		dx := (right - left) / float64(g.rows[0]-1)

		for k, n := range g.rows {
			y := g.baseY + g.dir*float64(k)*s.Main.Gap
			for _, x := range rowXs(s.Drafting.FillOrder, n, dx, left, right) {
				bars = append(bars, Bar{Center: draw.Point{X: x, Y: y}, Group: g.name, Row: k})
			}
		}
	}
	return bars, nil
}

func rowXs(order beam.FillOrder, n int, dx, left, right float64) []float64 {
	if order == beam.FillLeftToRight {
		return LinearPositions(n, dx, left)
	}
	return RowPositions(n, dx, left, right)
}

// SideRebarCoords places the side bars in left/right pairs, bottom row first.
// It returns nil when s has no side rows.
func SideRebarCoords(s beam.Spec) []draw.Point {
	n := s.Web.Rows
	if n <= 0 {
		return nil
	}

	d := s.Main.Diameter
	dy := (s.Height - 2*s.Cover - 2*d) / float64(n+1)
	xl := s.Cover + beam.SideMargin
	xr := s.Width - s.Cover - beam.SideMargin

	pts := make([]draw.Point, 0, 2*n)
	for i := 1; i <= n; i++ {
		y := s.Cover + d + float64(i)*dy
		pts = append(pts, draw.Point{X: xl, Y: y}, draw.Point{X: xr, Y: y})
	}
	return pts
}

func rebarSymbols(s beam.Spec, bars []Bar) []draw.Command {
	r := s.Main.Diameter / 2
	layer := s.Layers.Rebar

	cmds := make([]draw.Command, 0, 3*len(bars))
	for _, b := range bars {
		cmds = append(cmds, draw.Circle{Center: b.Center, Radius: r, Layer: layer})
		cmds = append(cmds, cross(b.Center, r+crossOverhang, layer)...)
	}
	return cmds
}

func sideRebar(s beam.Spec) []draw.Command {
	pts := SideRebarCoords(s)
	if len(pts) == 0 {
		return nil
	}
	layer := s.Layers.Rebar

	cmds := make([]draw.Command, 0, 2*len(pts)+len(pts)/2)
	for _, p := range pts {
		cmds = append(cmds, cross(p, sideMarkSize, layer)...)
	}
	for i := 0; i+1 < len(pts); i += 2 {
		l, r := pts[i], pts[i+1]
		cmds = append(cmds, draw.Line{
			P1:    draw.Point{X: l.X - sideMarkSize, Y: l.Y + sideMarkSize},
			P2:    draw.Point{X: r.X + sideMarkSize, Y: r.Y + sideMarkSize},
			Layer: layer,
		})
	}
	return cmds
}

// cross returns two diagonal lines through c whose ends lie at distance
// half from c.
func cross(c draw.Point, half float64, layer string) []draw.Command {
	k := half / math.Sqrt2
	return []draw.Command{
		draw.Line{
			P1:    draw.Point{X: c.X - k, Y: c.Y + k},
			P2:    draw.Point{X: c.X + k, Y: c.Y - k},
			Layer: layer,
		},
		draw.Line{
			P1:    draw.Point{X: c.X - k, Y: c.Y - k},
			P2:    draw.Point{X: c.X + k, Y: c.Y + k},
			Layer: layer,
		},
	}
}
