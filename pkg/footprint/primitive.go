package footprint

import "math"

// Layer names used by the generators.
const (
	LayerFrontCopper = "F.Cu"
	LayerFrontSilk   = "F.SilkS"
	LayerFrontFab    = "F.Fab"
	LayerFrontPaste  = "F.Paste"
	LayerFrontMask   = "F.Mask"
	LayerCourtyard   = "F.CrtYd"
	LayerComments    = "Cmts.User"
	LayerAllCopper   = "*.Cu"
	LayerAllMask     = "*.Mask"
)

// Default layer sets by pad kind.
var (
	ThroughHoleLayers = []string{LayerAllCopper, LayerAllMask, LayerFrontSilk}
	SurfaceLayers     = []string{LayerFrontCopper, LayerFrontPaste, LayerFrontMask}
)

// Primitive is one drawable element of a footprint. The set of
// implementations is closed: [Pad], [Circle] and [Text].
type Primitive interface {
	primitive()
}

// PadKind is the mounting technology of a pad.
type PadKind string

const (
	PadThroughHole   PadKind = "thru_hole"
	PadNPThroughHole PadKind = "np_thru_hole"
	PadSMD           PadKind = "smd"
	PadConnect       PadKind = "connect"
)

// PadShape is the copper outline of a pad.
type PadShape string

const (
	ShapeCircle    PadShape = "circle"
	ShapeRect      PadShape = "rect"
	ShapeOval      PadShape = "oval"
	ShapeTrapezoid PadShape = "trapezoid"
)

// Pad is a copper pad, optionally drilled.
//
// Layers distinguishes nil from empty: nil selects the default set for Kind,
// an empty non-nil slice writes an explicit empty layer list (a bare hole).
type Pad struct {
	Number    string
	Kind      PadKind
	Shape     PadShape
	At        *Point
	Size      Size
	Drill     float64 // 0 omits the drill clause
	Layers    []string
	Clearance float64 // 0 omits the clearance clause
}

// NoLayers is the explicit empty layer list.
func NoLayers() []string { return []string{} }

// Circle is an outline drawn on a graphic layer. KiCad encodes the radius as
// the distance between Center and End.
type Circle struct {
	Center Point
	End    Point
	Layer  string
	Width  float64
}

// CircleAt returns a circle of the given diameter centred on c, with the end
// point placed on the positive X axis.
func CircleAt(c Point, diameter float64, layer string, width float64) Circle {
	return Circle{
		Center: c,
		End:    Pt(c.X+diameter/2.0, c.Y),
		Layer:  layer,
		Width:  width,
	}
}

// Radius returns the distance between Center and End.
func (c Circle) Radius() float64 {
	return math.Hypot(c.End.X-c.Center.X, c.End.Y-c.Center.Y)
}

// TextRole is the kind of a footprint text field.
type TextRole string

const (
	TextReference TextRole = "reference"
	TextValue     TextRole = "value"
	TextUser      TextRole = "user"
)

// Text is a footprint label.
type Text struct {
	Role      TextRole
	Content   string
	At        Point
	Layer     string
	Size      float64 // font height and width
	Thickness float64
}

func (Pad) primitive()    {}
func (Circle) primitive() {}
func (Text) primitive()   {}
