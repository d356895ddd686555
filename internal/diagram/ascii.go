// Package diagram renders draw commands for human review: image previews
// through gonum/plot and character drawings for the terminal.
package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/alexiusacademia/rcbdxf/internal/draw"
)

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

type canvas struct {
	cells [][]rune
	box   draw.Box
	scale float64 // columns per drawing unit
}

func newCanvas(box draw.Box, cols int) *canvas {
	scale := 1.0
	if box.Width() > 0 {
		scale = float64(cols-1) / box.Width()
	}
	rows := int(math.Round(box.Height()*scale/cellAspect)) + 1

	cells := make([][]rune, rows)
	for i := range cells {
		cells[i] = []rune(strings.Repeat(" ", cols))
	}
	return &canvas{cells: cells, box: box, scale: scale}
}

func (c *canvas) cell(p draw.Point) (row, col int) {
	col = int(math.Round((p.X - c.box.MinX) * c.scale))
	row = len(c.cells) - 1 - int(math.Round((p.Y-c.box.MinY)*c.scale/cellAspect))
	return row, col
}

func (c *canvas) plot(p draw.Point, ch rune) {
	row, col := c.cell(p)
	if row < 0 || row >= len(c.cells) || col < 0 || col >= len(c.cells[row]) {
		return
	}
	c.cells[row][col] = ch
}

func (c *canvas) segment(a, b draw.Point, ch rune) {
	r0, c0 := c.cell(a)
	r1, c1 := c.cell(b)
	steps := max(abs(r1-r0), abs(c1-c0))*2 + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.plot(draw.Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}, ch)
	}
}

func (c *canvas) String() string {
	var sb strings.Builder
	for _, row := range c.cells {
		sb.WriteString("  ")
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteString("\n")
	}
	return sb.String()
}

// segmentRune picks a stroke character from the on-screen slope.
func segmentRune(a, b draw.Point) rune {
	dx := b.X - a.X
	dy := (b.Y - a.Y) / cellAspect
	switch {
	case math.Abs(dy) <= math.Abs(dx)*0.4:
		return '-'
	case math.Abs(dx) <= math.Abs(dy)*0.4:
		return '|'
	case dx*dy > 0:
		return '/'
	}
	return '\\'
}

// RenderASCII draws the geometry of cmds on a grid cols characters wide,
// y axis up. Circles are drawn with 'o'. Text values are listed below the
// grid in emission order. An empty string is returned when there is nothing
// to draw.
func RenderASCII(cmds []draw.Command, cols int) string {
	var shapes []draw.Command
	var labels []string
	for _, c := range cmds {
		if t, ok := c.(draw.Text); ok {
			labels = append(labels, t.Value)
			continue
		}
		shapes = append(shapes, c)
	}

	box, ok := draw.Bounds(shapes)
	if !ok && len(labels) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  SECTION\n")
	sb.WriteString("  ───────\n")

	if ok {
		cv := newCanvas(box, max(cols, 2))
		for _, c := range shapes {
			switch v := c.(type) {
			case draw.Line:
				cv.segment(v.P1, v.P2, segmentRune(v.P1, v.P2))
			case draw.Polyline:
				pts := v.Points
				if v.Closed && len(pts) > 0 {
					pts = append(pts[:len(pts):len(pts)], pts[0])
				}
				for i := 1; i < len(pts); i++ {
					cv.segment(pts[i-1], pts[i], segmentRune(pts[i-1], pts[i]))
				}
			case draw.Circle:
				for i := 0; i < CircleSegments; i++ {
					a := 2 * math.Pi * float64(i) / CircleSegments
					cv.plot(draw.Point{
						X: v.Center.X + v.Radius*math.Cos(a),
						Y: v.Center.Y + v.Radius*math.Sin(a),
					}, 'o')
				}
				cv.plot(v.Center, 'o')
			}
		}
		sb.WriteString(cv.String())
	}

	if len(labels) > 0 {
		sb.WriteString("\n")
		for _, l := range labels {
			sb.WriteString(fmt.Sprintf("  %s\n", l))
		}
	}
	return sb.String()
}

// DrawSummaryBox creates a summary box for results. Widths are measured in
// terminal cells so wide characters stay aligned.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := runewidth.StringWidth(title)
	for _, line := range lines {
		maxLen = max(maxLen, runewidth.StringWidth(line))
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", runewidth.FillRight(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", runewidth.FillRight(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
