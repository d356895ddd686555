package draw

import "math"

// Box is an axis-aligned bounding box.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent of the box.
func (b Box) Height() float64 { return b.MaxY - b.MinY }

// Bounds computes the bounding box of all geometry in cmds. Text contributes
// its anchor point only. The second result is false when cmds is empty.
func Bounds(cmds []Command) (Box, bool) {
	b := Box{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	found := false

	add := func(p Point) {
		b.MinX = math.Min(b.MinX, p.X)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxY = math.Max(b.MaxY, p.Y)
		found = true
	}

	for _, c := range cmds {
		switch v := c.(type) {
		case Line:
			add(v.P1)
			add(v.P2)
		case Circle:
			add(Point{X: v.Center.X - v.Radius, Y: v.Center.Y - v.Radius})
			add(Point{X: v.Center.X + v.Radius, Y: v.Center.Y + v.Radius})
		case Polyline:
			for _, p := range v.Points {
				add(p)
			}
		case Text:
			add(v.Position)
		}
	}

	if !found {
		return Box{}, false
	}
	return b, true
}

// Stat counts the commands of each kind on one layer.
type Stat struct {
	Layer     string
	Lines     int
	Circles   int
	Polylines int
	Texts     int
}

// Total returns the number of commands counted in s.
func (s Stat) Total() int {
	return s.Lines + s.Circles + s.Polylines + s.Texts
}

// Stats tallies cmds per layer, in order of first use.
func Stats(cmds []Command) []Stat {
	index := make(map[string]int)
	var stats []Stat
	for _, c := range cmds {
		name := c.LayerName()
		i, ok := index[name]
		if !ok {
			i = len(stats)
			index[name] = i
			stats = append(stats, Stat{Layer: name})
		}
		switch c.Kind() {
		case KindLine:
			stats[i].Lines++
		case KindCircle:
			stats[i].Circles++
		case KindPolyline:
			stats[i].Polylines++
		case KindText:
			stats[i].Texts++
		}
	}
	return stats
}
