// Package draw defines the format-independent drawing primitives produced by
// the layout engine and consumed by sinks.
//
// A Command is one of Line, Circle, Polyline or Text. Commands are plain
// values; once emitted they are never modified. Sinks receive the whole
// ordered slice and must preserve its order, since later entities are drawn
// on top of earlier ones and layer grouping follows emission order.
package draw

// Point represents a 2D coordinate in beam-local drawing units (mm).
type Point struct {
	X float64
	Y float64
}

// Kind identifies the variant of a Command.
type Kind int

const (
	KindLine Kind = iota
	KindCircle
	KindPolyline
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindCircle:
		return "circle"
	case KindPolyline:
		return "polyline"
	case KindText:
		return "text"
	}
	return "unknown"
}

// Command is a single drawing primitive.
type Command interface {
	Kind() Kind
	LayerName() string

	command()
}

// Line is a straight segment from P1 to P2.
type Line struct {
	P1, P2 Point
	Layer  string
}

// Circle is a full circle.
type Circle struct {
	Center Point
	Radius float64
	Layer  string
}

// Polyline is an open or closed chain of vertices.
type Polyline struct {
	Points []Point
	Closed bool
	Layer  string
}

// HAlign is the horizontal justification of a Text.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign is the vertical justification of a Text.
type VAlign int

const (
	AlignBaseline VAlign = iota
	AlignBottom
	AlignMiddle
	AlignTop
)

// Text is a single-line label anchored at Position.
type Text struct {
	Position Point
	Height   float64
	Value    string
	Layer    string
	HAlign   HAlign
	VAlign   VAlign
}

func (Line) Kind() Kind     { return KindLine }
func (Circle) Kind() Kind   { return KindCircle }
func (Polyline) Kind() Kind { return KindPolyline }
func (Text) Kind() Kind     { return KindText }

func (l Line) LayerName() string     { return l.Layer }
func (c Circle) LayerName() string   { return c.Layer }
func (p Polyline) LayerName() string { return p.Layer }
func (t Text) LayerName() string     { return t.Layer }

func (Line) command()     {}
func (Circle) command()   {}
func (Polyline) command() {}
func (Text) command()     {}

// Sink persists an ordered command sequence to path.
type Sink interface {
	Write(cmds []Command, path string) error
}
