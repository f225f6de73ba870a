package footprint

// Point is a 2D coordinate in millimetres.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Size is a width/height pair in millimetres.
type Size struct {
	W, H float64
}

// Square returns a Size with equal sides.
func Square(d float64) Size { return Size{W: d, H: d} }

// Footprint is one KiCad module document.
type Footprint struct {
	Name        string
	Layer       string
	Tedit       uint32 // edit timestamp, written as upper-case hex
	Origin      *Point // optional (at X Y) line after the header
	Description string
	Tags        string
	Primitives  []Primitive
}

// Add appends primitives in document order.
func (f *Footprint) Add(p ...Primitive) {
	f.Primitives = append(f.Primitives, p...)
}

// Pads returns the pads of f in document order.
func (f *Footprint) Pads() []Pad {
	var pads []Pad
	for _, p := range f.Primitives {
		if pad, ok := p.(Pad); ok {
			pads = append(pads, pad)
		}
	}
	return pads
}

// Circles returns the circles of f in document order.
func (f *Footprint) Circles() []Circle {
	var circles []Circle
	for _, p := range f.Primitives {
		if c, ok := p.(Circle); ok {
			circles = append(circles, c)
		}
	}
	return circles
}

// Texts returns the text labels of f in document order.
func (f *Footprint) Texts() []Text {
	var texts []Text
	for _, p := range f.Primitives {
		if t, ok := p.(Text); ok {
			texts = append(texts, t)
		}
	}
	return texts
}
