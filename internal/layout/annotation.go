package layout

import (
	"fmt"
	"strconv"

	"github.com/alexiusacademia/rcbdxf/internal/beam"
	"github.com/alexiusacademia/rcbdxf/internal/draw"
)

// Labels returns the annotation lines in drawing order: name, size, top bars,
// bottom bars, then stirrup and web bars when present.
func Labels(s beam.Spec) []string {
	d := formatLength(s.Main.Diameter)
	labels := []string{
		s.Name,
		formatLength(s.Width) + "x" + formatLength(s.Height),
		fmt.Sprintf("%d-D%s", s.Main.TopTotal(), d),
		fmt.Sprintf("%d-D%s", s.Main.BottomTotal(), d),
	}

	if s.Stirrup.Count > 0 {
		labels = append(labels, fmt.Sprintf("%d-D%s@%s",
			s.Stirrup.Count, formatLength(s.Stirrup.Diameter), formatLength(s.Stirrup.Pitch)))
	}
	if s.Web.Rows > 0 {
		labels = append(labels, fmt.Sprintf("%d-D%s", 2*s.Web.Rows, formatLength(s.Web.Diameter)))
	}
	return labels
}

// annotations stacks the labels downward from TextOriginY, two text heights
// apart, centred on x=0.
func annotations(s beam.Spec) []draw.Command {
	th := s.Drafting.TextHeight
	labels := Labels(s)

	cmds := make([]draw.Command, 0, len(labels))
	for i, value := range labels {
		cmds = append(cmds, draw.Text{
			Position: draw.Point{X: 0, Y: s.Drafting.TextOriginY - 2*float64(i)*th},
			Height:   th,
			Value:    value,
			Layer:    s.Layers.Text,
			HAlign:   draw.AlignCenter,
			VAlign:   draw.AlignBaseline,
		})
	}
	return cmds
}

// formatLength prints v in its shortest form: 400, 12.5.
func formatLength(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
