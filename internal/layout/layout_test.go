package layout

import (
	"math"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/alexiusacademia/rcbdxf/internal/beam"
	"github.com/alexiusacademia/rcbdxf/internal/draw"
	"github.com/alexiusacademia/rcbdxf/internal/errs"
)

const eps = 1e-9

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// exampleSpec is the 400x600 section with 2 top and 3 bottom bars.
func exampleSpec() beam.Spec {
	return beam.Spec{
		Name:   "G1",
		Width:  400,
		Height: 600,
		Cover:  40,
		Main: beam.MainRebar{
			Diameter: 20,
			Gap:      80,
			Top:      [3]int{2, 0, 0},
			Bottom:   [3]int{3, 0, 0},
		},
		Layers:   beam.Layers{Concrete: "concrete", Rebar: "rebar", Text: "text"},
		Drafting: beam.Drafting{TextHeight: 100, TextOriginY: -1000},
	}
}

func ofKind(cmds []draw.Command, layer string, kind draw.Kind) []draw.Command {
	var out []draw.Command
	for _, c := range cmds {
		if c.LayerName() == layer && c.Kind() == kind {
			out = append(out, c)
		}
	}
	return out
}

func TestRowPositionsAlternates(t *testing.T) {
	assert.Equal(t, []float64{50, 350, 200}, RowPositions(3, 150, 50, 350))
	assert.Equal(t, []float64{50, 350, 150, 250}, RowPositions(4, 100, 50, 350))
	assert.Equal(t, []float64{50, 350}, RowPositions(2, 300, 50, 350))
	assert.Empty(t, RowPositions(0, 100, 50, 350))
}

func TestRowPositionsSymmetric(t *testing.T) {
	const w, cover, r = 400.0, 40.0, 10.0
	left, right := cover+r, w-cover-r

	for n := 2; n <= 9; n++ {
		xs := RowPositions(n, (right-left)/float64(n-1), left, right)
		require.Len(t, xs, n)

		sorted := append([]float64(nil), xs...)
		sort.Float64s(sorted)
		assert.InDelta(t, left, sorted[0], eps, "n=%d", n)
		assert.InDelta(t, right, sorted[n-1], eps, "n=%d", n)
		for i := range sorted {
			assert.InDelta(t, w, sorted[i]+sorted[n-1-i], eps, "n=%d i=%d", n, i)
		}
	}
}

func TestLinearPositions(t *testing.T) {
	assert.Equal(t, []float64{50, 200, 350}, LinearPositions(3, 150, 50))
}

func TestMainRebarCoordsExample(t *testing.T) {
	bars, err := MainRebarCoords(exampleSpec())
	require.NoError(t, err)

	want := []Bar{
		{Center: draw.Point{X: 50, Y: 50}, Group: "bottom", Row: 0},
		{Center: draw.Point{X: 350, Y: 50}, Group: "bottom", Row: 0},
		{Center: draw.Point{X: 200, Y: 50}, Group: "bottom", Row: 0},
		{Center: draw.Point{X: 50, Y: 550}, Group: "top", Row: 0},
		{Center: draw.Point{X: 350, Y: 550}, Group: "top", Row: 0},
	}
	assert.Empty(t, cmp.Diff(want, bars))
}

func TestMainRebarCoordsOverflowRows(t *testing.T) {
	s := exampleSpec()
	s.Main.Bottom = [3]int{4, 2, 2}
	s.Main.Top = [3]int{3, 2, 0}

	bars, err := MainRebarCoords(s)
	require.NoError(t, err)
	require.Len(t, bars, 13)

	rowY := map[[2]int]float64{}
	for _, b := range bars {
		key := [2]int{b.Row, 0}
		if b.Group == "top" {
			key[1] = 1
		}
		rowY[key] = b.Center.Y
	}
	assert.Equal(t, 50.0, rowY[[2]int{0, 0}])
	assert.Equal(t, 130.0, rowY[[2]int{1, 0}])
	assert.Equal(t, 210.0, rowY[[2]int{2, 0}])
	assert.Equal(t, 550.0, rowY[[2]int{0, 1}])
	assert.Equal(t, 470.0, rowY[[2]int{1, 1}])

	// overflow rows reuse the first-row pitch: bottom dx=100, top dx=150
	assert.Equal(t, draw.Point{X: 50, Y: 130}, bars[4].Center)
	assert.Equal(t, draw.Point{X: 350, Y: 130}, bars[5].Center)
	assert.Equal(t, draw.Point{X: 200, Y: 550}, bars[10].Center)
}

func TestMainRebarCoordsLeftToRight(t *testing.T) {
	s := exampleSpec()
	s.Drafting.FillOrder = beam.FillLeftToRight

	bars, err := MainRebarCoords(s)
	require.NoError(t, err)
	xs := []float64{bars[0].Center.X, bars[1].Center.X, bars[2].Center.X}
	assert.Equal(t, []float64{50, 200, 350}, xs)
}

func TestGenerateExample(t *testing.T) {
	cmds, err := Generate(exampleSpec())
	require.NoError(t, err)

	// 4 outline + 5 bars * 3 + 4 stirrup + 4 labels
	assert.Len(t, cmds, 27)

	outline := ofKind(cmds, "concrete", draw.KindLine)
	require.Len(t, outline, 4)
	corners := Outline(400, 600)
	for i, c := range outline {
		l := c.(draw.Line)
		assert.Equal(t, corners[i], l.P1)
		assert.Equal(t, corners[(i+1)%4], l.P2)
	}

	circles := ofKind(cmds, "rebar", draw.KindCircle)
	require.Len(t, circles, 5)
	for _, c := range circles {
		assert.Equal(t, 10.0, c.(draw.Circle).Radius)
	}

	// crosses (10 lines) + stirrup rectangle (4 lines), no tie lines
	assert.Len(t, ofKind(cmds, "rebar", draw.KindLine), 14)
	assert.Len(t, ofKind(cmds, "text", draw.KindText), 4)
}

func TestGenerateEmissionOrder(t *testing.T) {
	s := exampleSpec()
	s.Web = beam.WebRebar{Rows: 1, Diameter: 10}
	cmds, err := Generate(s)
	require.NoError(t, err)

	layers := make([]string, len(cmds))
	for i, c := range cmds {
		layers[i] = c.LayerName()
	}
	// concrete block, then rebar block, then text block
	lastConcrete, firstText := -1, len(cmds)
	for i, l := range layers {
		if l == "concrete" {
			lastConcrete = i
		}
		if l == "text" && i < firstText {
			firstText = i
		}
	}
	assert.Equal(t, 3, lastConcrete)
	for i := lastConcrete + 1; i < firstText; i++ {
		assert.Equal(t, "rebar", layers[i], "index %d", i)
	}
	for i := firstText; i < len(cmds); i++ {
		assert.Equal(t, "text", layers[i], "index %d", i)
	}

	// first rebar command is the first bar's circle
	assert.Equal(t, draw.KindCircle, cmds[4].Kind())
}

func TestGenerateCrossMarks(t *testing.T) {
	cmds, err := Generate(exampleSpec())
	require.NoError(t, err)

	// circle, then its two diagonals
	center := cmds[4].(draw.Circle).Center
	for _, c := range cmds[5:7] {
		l := c.(draw.Line)
		assert.InDelta(t, 11.0, math.Hypot(l.P1.X-center.X, l.P1.Y-center.Y), eps)
		assert.InDelta(t, 11.0, math.Hypot(l.P2.X-center.X, l.P2.Y-center.Y), eps)
		assert.InDelta(t, center.X, (l.P1.X+l.P2.X)/2, eps)
		assert.InDelta(t, center.Y, (l.P1.Y+l.P2.Y)/2, eps)
		slope := (l.P2.Y - l.P1.Y) / (l.P2.X - l.P1.X)
		assert.InDelta(t, 1.0, math.Abs(slope), eps)
	}
}

func TestGenerateRejectsSmallRowCounts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*beam.Spec)
	}{
		{"bottom row of one", func(s *beam.Spec) { s.Main.Bottom[0] = 1 }},
		{"top row of zero", func(s *beam.Spec) { s.Main.Top[0] = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := exampleSpec()
			tt.mutate(&s)

			cmds, err := Generate(s)
			assert.Nil(t, cmds)
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.CodeValidation))
			assert.Contains(t, err.Error(), "rebar count")
		})
	}
}

func TestMainRebarCoordsRejectsSmallRowCounts(t *testing.T) {
	s := exampleSpec()
	s.Main.Bottom[0] = 1
	bars, err := MainRebarCoords(s)
	assert.Nil(t, bars)
	assert.True(t, errs.Is(err, errs.CodeValidation))
}

func TestSideRebar(t *testing.T) {
	t.Run("no rows", func(t *testing.T) {
		assert.Nil(t, SideRebarCoords(exampleSpec()))
		assert.Nil(t, sideRebar(exampleSpec()))
	})

	for _, n := range []int{1, 2, 3} {
		s := exampleSpec()
		s.Web.Rows = n

		pts := SideRebarCoords(s)
		require.Len(t, pts, 2*n)

		dy := (600.0 - 80 - 40) / float64(n+1)
		for i := 0; i < n; i++ {
			y := 40 + 20 + float64(i+1)*dy
			assert.InDelta(t, 50.0, pts[2*i].X, eps)
			assert.InDelta(t, 350.0, pts[2*i+1].X, eps)
			assert.InDelta(t, y, pts[2*i].Y, eps)
			assert.InDelta(t, y, pts[2*i+1].Y, eps)
		}

		cmds := sideRebar(s)
		// two lines per cross-mark, one guide per row
		require.Len(t, cmds, 4*n+n)
		for i, c := range cmds[4*n:] {
			l := c.(draw.Line)
			assert.InDelta(t, 40.0, l.P1.X, eps)
			assert.InDelta(t, 360.0, l.P2.X, eps)
			assert.InDelta(t, pts[2*i].Y+10, l.P1.Y, eps)
			assert.InDelta(t, l.P1.Y, l.P2.Y, eps)
		}
	}
}

func TestStirrup(t *testing.T) {
	t.Run("rectangle only", func(t *testing.T) {
		cmds := stirrup(exampleSpec())
		want := []draw.Command{
			draw.Line{P1: draw.Point{X: 50, Y: 40}, P2: draw.Point{X: 350, Y: 40}, Layer: "rebar"},
			draw.Line{P1: draw.Point{X: 50, Y: 560}, P2: draw.Point{X: 350, Y: 560}, Layer: "rebar"},
			draw.Line{P1: draw.Point{X: 40, Y: 50}, P2: draw.Point{X: 40, Y: 550}, Layer: "rebar"},
			draw.Line{P1: draw.Point{X: 360, Y: 50}, P2: draw.Point{X: 360, Y: 550}, Layer: "rebar"},
		}
		assert.Empty(t, cmp.Diff(want, cmds))
	})

	t.Run("tie per occupied row", func(t *testing.T) {
		s := exampleSpec()
		s.Main.Bottom = [3]int{3, 2, 2}
		s.Main.Top = [3]int{2, 2, 0}

		cmds := stirrup(s)
		require.Len(t, cmds, 7)
		ys := []float64{
			cmds[4].(draw.Line).P1.Y,
			cmds[5].(draw.Line).P1.Y,
			cmds[6].(draw.Line).P1.Y,
		}
		assert.Equal(t, []float64{120, 200, 460}, ys)
	})
}

func TestLabels(t *testing.T) {
	s := exampleSpec()
	assert.Equal(t, []string{"G1", "400x600", "2-D20", "3-D20"}, Labels(s))

	s.Main.Top = [3]int{3, 2, 0}
	s.Main.Diameter = 22.5
	s.Stirrup = beam.Stirrup{Count: 2, Diameter: 10, Pitch: 200}
	s.Web = beam.WebRebar{Rows: 2, Diameter: 13}
	assert.Equal(t,
		[]string{"G1", "400x600", "5-D22.5", "3-D22.5", "2-D10@200", "4-D13"},
		Labels(s))
}

func TestAnnotationsStackDownward(t *testing.T) {
	cmds := annotations(exampleSpec())
	require.Len(t, cmds, 4)
	for i, c := range cmds {
		txt := c.(draw.Text)
		assert.Equal(t, draw.Point{X: 0, Y: -1000 - 200*float64(i)}, txt.Position)
		assert.Equal(t, 100.0, txt.Height)
		assert.Equal(t, draw.AlignCenter, txt.HAlign)
		assert.Equal(t, "text", txt.Layer)
	}
}

func TestOutlinePolyline(t *testing.T) {
	s := exampleSpec()
	s.Drafting.Outline = beam.OutlinePolyline

	cmds, err := Generate(s)
	require.NoError(t, err)
	poly, ok := cmds[0].(draw.Polyline)
	require.True(t, ok)
	assert.True(t, poly.Closed)
	assert.Equal(t, Outline(400, 600), poly.Points)
	assert.Equal(t, draw.KindCircle, cmds[1].Kind())
}

func TestGenerateIsDeterministic(t *testing.T) {
	s := exampleSpec()
	s.Main.Bottom = [3]int{5, 3, 0}
	s.Web = beam.WebRebar{Rows: 2, Diameter: 10}
	s.Stirrup = beam.Stirrup{Count: 2, Diameter: 10, Pitch: 150}

	first, err := Generate(s)
	require.NoError(t, err)
	second, err := Generate(s)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(first, second))
}
