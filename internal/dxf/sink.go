// Package dxf writes draw commands to an AutoCAD DXF file.
package dxf

import (
	"os"
	"path/filepath"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/entity"

	"github.com/alexiusacademia/rcbdxf/internal/draw"
	"github.com/alexiusacademia/rcbdxf/internal/errs"
)

// RoleColor returns the ACI colour number used for layers of the given role.
func RoleColor(r draw.Role) color.ColorNumber {
	switch r {
	case draw.RoleConcrete:
		return color.Yellow
	case draw.RoleRebar:
		return color.Cyan
	case draw.RoleText:
		return color.Green
	}
	return color.White
}

// Sink writes commands to a DXF drawing. Layers are created in order of
// first use and coloured by their role in Roles.
type Sink struct {
	Roles draw.Roles
}

var _ draw.Sink = Sink{}

// Write renders cmds in order and saves the drawing to path.
func (s Sink) Write(cmds []draw.Command, path string) error {
	d := dxf.NewDrawing()

	for _, name := range draw.Layers(cmds) {
		col := RoleColor(s.Roles.Of(name))
		if l, err := d.Layer(name, false); err == nil {
			// Layer "0" comes with every drawing and is shared between
			// drawings, so its colour is restored once this one is saved.
			prev := l.Color
			l.Color = col
			defer func() { l.Color = prev }()
			continue
		}
		if _, err := d.AddLayer(name, col, dxf.DefaultLineType, false); err != nil {
			return errs.IO(err, "add layer %q", name)
		}
	}

	current := ""
	for i, c := range cmds {
		if layer := c.LayerName(); layer != current {
			if err := d.ChangeLayer(layer); err != nil {
				return errs.IO(err, "select layer %q", layer)
			}
			current = layer
		}
		if err := emit(d, c); err != nil {
			return errs.IO(err, "write entity %d (%s)", i, c.Kind())
		}
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errs.IO(err, "create output directory")
		}
	}
	if err := d.SaveAs(path); err != nil {
		return errs.IO(err, "save %s", path)
	}
	return nil
}

func emit(d *drawing.Drawing, c draw.Command) error {
	var err error
	switch v := c.(type) {
	case draw.Line:
		_, err = d.Line(v.P1.X, v.P1.Y, 0, v.P2.X, v.P2.Y, 0)
	case draw.Circle:
		_, err = d.Circle(v.Center.X, v.Center.Y, 0, v.Radius)
	case draw.Polyline:
		vertices := make([][]float64, len(v.Points))
		for i, p := range v.Points {
			vertices[i] = []float64{p.X, p.Y}
		}
		_, err = d.LwPolyline(v.Closed, vertices...)
	case draw.Text:
		var t *entity.Text
		t, err = d.Text(v.Value, v.Position.X, v.Position.Y, 0, v.Height)
		if err == nil {
			t.Anchor(textAnchor(v.HAlign, v.VAlign))
		}
	}
	return err
}

var anchors = [4][3]int{
	{entity.LEFT_BASE, entity.CENTER_BASE, entity.RIGHT_BASE},
	{entity.LEFT_BOTTOM, entity.CENTER_BOTTOM, entity.RIGHT_BOTTOM},
	{entity.LEFT_CENTER, entity.CENTER_CENTER, entity.RIGHT_CENTER},
	{entity.LEFT_TOP, entity.CENTER_TOP, entity.RIGHT_TOP},
}

// textAnchor maps a justification onto a TEXT anchor. The writer only emits
// the alignment point (group 11) when the vertical flag is set, so centred or
// right-aligned baseline text is anchored at the bottom instead.
func textAnchor(h draw.HAlign, v draw.VAlign) int {
	row, col := int(v), int(h)
	if row < 0 || row > 3 || col < 0 || col > 2 {
		return entity.LEFT_BASE
	}
	if v == draw.AlignBaseline && h != draw.AlignLeft {
		row = int(draw.AlignBottom)
	}
	return anchors[row][col]
}
