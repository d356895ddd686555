package beam

import "github.com/alexiusacademia/rcbdxf/internal/draw"

// Spec describes a rectangular reinforced concrete beam cross-section to be
// drawn. All lengths share one unit (mm). A Spec is built once by the config
// loader through New and is treated as read-only afterwards.
type Spec struct {
	Name string // beam mark, e.g. "G1"

	// Geometry (mm)
	Width  float64 // b - beam width
	Height float64 // h - total depth
	Cover  float64 // clear cover to the stirrup

	Main     MainRebar
	Stirrup  Stirrup
	Web      WebRebar
	Layers   Layers
	Drafting Drafting
}

// MainRebar holds the longitudinal top and bottom bars. Index 0 of Top and
// Bottom is the row nearest the face; rows 1 and 2 are overflow rows.
type MainRebar struct {
	Diameter float64 // bar diameter (mm)
	Gap      float64 // centre-to-centre spacing between rows (mm)
	Top      [3]int
	Bottom   [3]int
}

// TopTotal returns the number of top bars over all rows.
func (m MainRebar) TopTotal() int { return m.Top[0] + m.Top[1] + m.Top[2] }

// BottomTotal returns the number of bottom bars over all rows.
func (m MainRebar) BottomTotal() int { return m.Bottom[0] + m.Bottom[1] + m.Bottom[2] }

// Stirrup is used for annotation only; the drawn stirrup follows the cover.
type Stirrup struct {
	Count    int     // legs
	Diameter float64 // mm
	Pitch    float64 // spacing along the span (mm)
}

// WebRebar describes side bars placed between the top and bottom bands.
type WebRebar struct {
	Rows     int     // number of horizontal rows, one bar each side
	Diameter float64 // mm, annotation only
}

// Layers names the CAD layer used for each group of entities.
type Layers struct {
	Concrete string
	Rebar    string
	Text     string
}

// Roles maps the layer names to their presentation role.
func (l Layers) Roles() draw.Roles {
	return draw.Roles{
		l.Concrete: draw.RoleConcrete,
		l.Rebar:    draw.RoleRebar,
		l.Text:     draw.RoleText,
	}
}

// FillOrder selects how bars of a row are numbered across the width.
type FillOrder int

const (
	// FillAlternating places bars from both edges inward, alternating
	// left and right.
	FillAlternating FillOrder = iota
	// FillLeftToRight places bars strictly from the left edge.
	FillLeftToRight
)

func (f FillOrder) String() string {
	if f == FillLeftToRight {
		return "left-to-right"
	}
	return "alternating"
}

// OutlineStyle selects how the concrete outline is emitted.
type OutlineStyle int

const (
	OutlineLines    OutlineStyle = iota // four separate lines
	OutlinePolyline                     // one closed polyline
)

func (o OutlineStyle) String() string {
	if o == OutlinePolyline {
		return "polyline"
	}
	return "lines"
}

// Drafting holds presentation settings.
type Drafting struct {
	TextHeight  float64 // height of annotation text (mm)
	TextOriginY float64 // y of the first annotation line
	FillOrder   FillOrder
	Outline     OutlineStyle
}

// New validates s and returns it. Defaults are not applied here; callers
// pass a fully populated Spec.
func New(s Spec) (Spec, error) {
	if err := s.Validate(); err != nil {
		return Spec{}, err
	}
	return s, nil
}
