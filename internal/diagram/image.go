package diagram

import (
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/rcbdxf/internal/draw"
	"github.com/alexiusacademia/rcbdxf/internal/errs"
)

// CircleSegments is the number of chords used to approximate a circle.
const CircleSegments = 48

// RoleColor returns the preview stroke colour for layers of role r. The
// hues follow the DXF layer colours, darkened for a white background.
func RoleColor(r draw.Role) color.Color {
	switch r {
	case draw.RoleConcrete:
		return color.RGBA{R: 184, G: 134, B: 11, A: 255}
	case draw.RoleRebar:
		return color.RGBA{R: 0, G: 139, B: 139, A: 255}
	case draw.RoleText:
		return color.RGBA{R: 0, G: 128, B: 0, A: 255}
	}
	return color.Black
}

// ExportPreview renders cmds to an image file. The format follows the
// extension of filename (.png, .svg or .pdf); any other name gets .png
// appended.
func ExportPreview(cmds []draw.Command, roles draw.Roles, title, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X (mm)"
	p.Y.Label.Text = "Y (mm)"

	for _, c := range cmds {
		col := RoleColor(roles.Of(c.LayerName()))
		switch v := c.(type) {
		case draw.Line:
			if err := addPath(p, plotter.XYs{{X: v.P1.X, Y: v.P1.Y}, {X: v.P2.X, Y: v.P2.Y}}, col); err != nil {
				return err
			}
		case draw.Circle:
			if err := addPath(p, circleXYs(v), col); err != nil {
				return err
			}
		case draw.Polyline:
			if err := addPath(p, polylineXYs(v), col); err != nil {
				return err
			}
		case draw.Text:
			l, err := plotter.NewLabels(plotter.XYLabels{
				XYs:    []plotter.XY{{X: v.Position.X, Y: v.Position.Y}},
				Labels: []string{v.Value},
			})
			if err != nil {
				return errs.Format(err, "preview label %q", v.Value)
			}
			for i := range l.TextStyle {
				l.TextStyle[i].Color = col
				l.TextStyle[i].XAlign = xAlign(v.HAlign)
			}
			p.Add(l)
		}
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch
	if box, ok := draw.Bounds(cmds); ok {
		pad := 0.05 * math.Max(box.Width(), box.Height())
		p.X.Min, p.X.Max = box.MinX-pad, box.MaxX+pad
		p.Y.Min, p.Y.Max = box.MinY-pad, box.MaxY+pad
		height = fitHeight(width, box.Width()+2*pad, box.Height()+2*pad)
	}

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errs.IO(err, "create preview directory")
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	if err := p.Save(width, height, filename); err != nil {
		return errs.IO(err, "save preview %s", filename)
	}
	return nil
}

func addPath(p *plot.Plot, xys plotter.XYs, col color.Color) error {
	line, err := plotter.NewLine(xys)
	if err != nil {
		return errs.Format(err, "preview path")
	}
	line.LineStyle.Width = vg.Points(1)
	line.LineStyle.Color = col
	p.Add(line)
	return nil
}

func circleXYs(c draw.Circle) plotter.XYs {
	xys := make(plotter.XYs, CircleSegments+1)
	for i := range xys {
		a := 2 * math.Pi * float64(i) / CircleSegments
		xys[i] = plotter.XY{
			X: c.Center.X + c.Radius*math.Cos(a),
			Y: c.Center.Y + c.Radius*math.Sin(a),
		}
	}
	return xys
}

func polylineXYs(pl draw.Polyline) plotter.XYs {
	xys := make(plotter.XYs, 0, len(pl.Points)+1)
	for _, pt := range pl.Points {
		xys = append(xys, plotter.XY{X: pt.X, Y: pt.Y})
	}
	if pl.Closed && len(pl.Points) > 0 {
		xys = append(xys, xys[0])
	}
	return xys
}

func xAlign(h draw.HAlign) text.XAlignment {
	switch h {
	case draw.AlignCenter:
		return text.XCenter
	case draw.AlignRight:
		return text.XRight
	}
	return text.XLeft
}

// fitHeight keeps the drawing aspect ratio, clamped to a printable page.
func fitHeight(width vg.Length, w, h float64) vg.Length {
	if w <= 0 {
		return width
	}
	height := width * vg.Length(h/w)
	return vg.Length(math.Min(math.Max(float64(height), float64(3*vg.Inch)), float64(12*vg.Inch)))
}
