package kicad

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/footgen/pkg/errors"
	"github.com/matzehuels/footgen/pkg/footprint"
)

// Option configures [Render] and the per-primitive formatters.
type Option func(*renderer)

type renderer struct {
	num   NumberFormat
	padAt NumberFormat
}

// WithNumberFormat sets the format used for every number. Defaults to
// [Significant](3).
func WithNumberFormat(f NumberFormat) Option { return func(r *renderer) { r.num = f } }

// WithPadPositionFormat sets the format used for pad (at X Y) clauses only.
// Defaults to the general number format.
func WithPadPositionFormat(f NumberFormat) Option { return func(r *renderer) { r.padAt = f } }

func newRenderer(opts ...Option) renderer {
	r := renderer{num: Significant(3)}
	for _, opt := range opts {
		opt(&r)
	}
	if r.padAt == nil {
		r.padAt = r.num
	}
	return r
}

// Render serializes fp as a complete module document.
//
// It returns an error if a pad cannot be written (see [FormatPad]); in that
// case no partial output is returned.
func Render(fp footprint.Footprint, opts ...Option) ([]byte, error) {
	if err := errors.ValidateFootprintName(fp.Name); err != nil {
		return nil, err
	}
	r := newRenderer(opts...)

	layer := fp.Layer
	if layer == "" {
		layer = footprint.LayerFrontCopper
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "(module %s (layer %s) (tedit %X)\n", fp.Name, layer, fp.Tedit)
	if fp.Origin != nil {
		fmt.Fprintf(&buf, "  (at %s %s)\n", r.num(fp.Origin.X), r.num(fp.Origin.Y))
	}
	if fp.Description != "" {
		fmt.Fprintf(&buf, "  (descr %s)\n", quote(fp.Description))
	}
	if fp.Tags != "" {
		fmt.Fprintf(&buf, "  (tags %s)\n", quote(fp.Tags))
	}

	for i, p := range fp.Primitives {
		if err := r.primitive(&buf, p); err != nil {
			return nil, fmt.Errorf("%s: primitive %d: %w", fp.Name, i, err)
		}
	}

	buf.WriteString(")\n")
	return buf.Bytes(), nil
}

func (r *renderer) primitive(buf *bytes.Buffer, p footprint.Primitive) error {
	switch p := p.(type) {
	case footprint.Text:
		r.text(buf, p)
	case footprint.Circle:
		r.circle(buf, p)
	case footprint.Pad:
		return r.pad(buf, p)
	default:
		return errors.New(errors.ErrCodeUnsupported, "primitive %T not supported", p)
	}
	return nil
}

// FormatText renders a single fp_text block, including its trailing newline.
func FormatText(t footprint.Text, opts ...Option) string {
	r := newRenderer(opts...)
	var buf bytes.Buffer
	r.text(&buf, t)
	return buf.String()
}

// FormatCircle renders a single fp_circle line, including its trailing newline.
func FormatCircle(c footprint.Circle, opts ...Option) string {
	r := newRenderer(opts...)
	var buf bytes.Buffer
	r.circle(&buf, c)
	return buf.String()
}

// FormatPad renders a single pad line, including its trailing newline.
// Unknown shapes, and unknown kinds without explicit layers, are rejected
// with an errors.ErrCodeUnsupported error.
func FormatPad(p footprint.Pad, opts ...Option) (string, error) {
	r := newRenderer(opts...)
	var buf bytes.Buffer
	if err := r.pad(&buf, p); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *renderer) text(buf *bytes.Buffer, t footprint.Text) {
	fmt.Fprintf(buf, "  (fp_text %s %s (at %s %s) (layer %s)\n",
		t.Role, t.Content, r.num(t.At.X), r.num(t.At.Y), t.Layer)
	fmt.Fprintf(buf, "    (effects (font (size %s %s) (thickness %s)))\n",
		r.num(t.Size), r.num(t.Size), r.num(t.Thickness))
	buf.WriteString("  )\n")
}

func (r *renderer) circle(buf *bytes.Buffer, c footprint.Circle) {
	fmt.Fprintf(buf, "  (fp_circle (center %s %s) (end %s %s) (layer %s) (width %s))\n",
		r.num(c.Center.X), r.num(c.Center.Y), r.num(c.End.X), r.num(c.End.Y), c.Layer, r.num(c.Width))
}

func (r *renderer) pad(buf *bytes.Buffer, p footprint.Pad) error {
	if !validShapes[p.Shape] {
		return errors.New(errors.ErrCodeUnsupported, "pad %s: shape %q not supported", p.Number, p.Shape)
	}
	layers, err := padLayers(p)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  (pad %s %s %s", p.Number, p.Kind, p.Shape)
	if p.At != nil {
		fmt.Fprintf(&b, " (at %s %s)", r.padAt(p.At.X), r.padAt(p.At.Y))
	}
	fmt.Fprintf(&b, " (size %s %s)", r.num(p.Size.W), r.num(p.Size.H))
	if p.Drill != 0 {
		fmt.Fprintf(&b, " (drill %s)", r.num(p.Drill))
	}
	if len(layers) > 0 {
		fmt.Fprintf(&b, " (layers %s)", strings.Join(layers, " "))
	} else {
		b.WriteString(" (layers)")
	}
	if p.Clearance != 0 {
		fmt.Fprintf(&b, " (clearance %s)", r.num(p.Clearance))
	}
	b.WriteString(")\n")

	buf.WriteString(b.String())
	return nil
}

var validShapes = map[footprint.PadShape]bool{
	footprint.ShapeCircle:    true,
	footprint.ShapeRect:      true,
	footprint.ShapeOval:      true,
	footprint.ShapeTrapezoid: true,
}

// padLayers resolves the layer list of p, applying the per-kind default when
// p.Layers is nil.
func padLayers(p footprint.Pad) ([]string, error) {
	if p.Layers != nil {
		return p.Layers, nil
	}
	switch p.Kind {
	case footprint.PadThroughHole, footprint.PadNPThroughHole:
		return footprint.ThroughHoleLayers, nil
	case footprint.PadSMD, footprint.PadConnect:
		return footprint.SurfaceLayers, nil
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "pad %s: type %q not supported", p.Number, p.Kind)
	}
}
