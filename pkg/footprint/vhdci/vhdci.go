// Package vhdci lays out the 68-pin VHDCI connector footprint.
//
// The connector has four staggered rows. The first half of the pins
// alternates between rows 2 (odd) and 3 (even); the second half alternates
// between rows 0 (odd) and 1 (even). Within a row, pins advance along X by
// the pitch:
//
//	x = RowX[row] + column*Pitch
//	y = RowY[row]
//
// Geometry.Footprint returns the full document; RenderOptions returns the
// number formats the connector is written with.
package vhdci

import (
	"strconv"

	"github.com/matzehuels/footgen/pkg/errors"
	"github.com/matzehuels/footgen/pkg/footprint"
	"github.com/matzehuels/footgen/pkg/kicad"
)

// Rows is the number of pad rows.
const Rows = 4

// Geometry holds the connector constants.
type Geometry struct {
	Name      string
	Tedit     uint32
	Pins      int
	Pitch     float64
	RowX      [Rows]float64
	RowY      [Rows]float64
	PadSize   float64
	Drill     float64
	Clearance float64

	Reference   string
	ReferenceAt footprint.Point
	Value       string
	ValueAt     footprint.Point
	TextSize    float64
	TextWidth   float64
}

// Default is the VHDCI-68 footprint.
var Default = defaultGeometry()

func defaultGeometry() Geometry {
	baseX := -16.175
	baseY := 0.0
	return Geometry{
		Name:  "VHDCI",
		Tedit: 0x5478A913,
		Pins:  68,
		Pitch: 1.6,
		RowX: [Rows]float64{
			baseX + 3.175,
			baseX + 2.775 + 0.8 + 0.4,
			baseX + 2.775,
			baseX + 2.775 + 0.8,
		},
		RowY: [Rows]float64{
			baseY + 1.15,
			baseY,
			baseY - 1.2,
			baseY - 1.2 - 1.15,
		},
		PadSize:   1,
		Drill:     0.6,
		Clearance: 0.1,

		Reference:   "VHDCI",
		ReferenceAt: footprint.Pt(0, -27.94),
		Value:       "VAL**",
		ValueAt:     footprint.Pt(0, 20.32),
		TextSize:    1.5,
		TextWidth:   0.15,
	}
}

// Validate checks that the pin count splits evenly across the rows.
func (g Geometry) Validate() error {
	if g.Pins <= 0 || g.Pins%Rows != 0 {
		return errors.New(errors.ErrCodeInvalidInput, "pin count %d must be a positive multiple of %d", g.Pins, Rows)
	}
	if g.Pitch <= 0 {
		return errors.New(errors.ErrCodeInvalidGeometry, "pitch must be positive, got %g", g.Pitch)
	}
	if g.Drill <= 0 || g.PadSize < g.Drill {
		return errors.New(errors.ErrCodeInvalidGeometry, "pad %g must be at least drill %g (> 0)", g.PadSize, g.Drill)
	}
	return nil
}

// Slot returns the row and column of pin (1-based).
func (g Geometry) Slot(pin int) (row, col int, err error) {
	if pin < 1 || pin > g.Pins {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "pin %d out of range [1, %d]", pin, g.Pins)
	}
	half := g.Pins / 2
	odd := pin%2 == 1
	if pin <= half {
		row = 3
		if odd {
			row = 2
		}
		return row, (pin - 1) / 2, nil
	}
	row = 1
	if odd {
		row = 0
	}
	return row, (pin - 1 - half) / 2, nil
}

// PinPosition returns the pad centre of pin (1-based).
func (g Geometry) PinPosition(pin int) (footprint.Point, error) {
	row, col, err := g.Slot(pin)
	if err != nil {
		return footprint.Point{}, err
	}
	return footprint.Pt(g.RowX[row]+float64(col)*g.Pitch, g.RowY[row]), nil
}

// Footprint builds the connector document: reference and value labels
// followed by one circular through-hole pad per pin.
func (g Geometry) Footprint() (footprint.Footprint, error) {
	if err := g.Validate(); err != nil {
		return footprint.Footprint{}, err
	}

	fp := footprint.Footprint{
		Name:  g.Name,
		Layer: footprint.LayerFrontCopper,
		Tedit: g.Tedit,
	}
	fp.Add(
		footprint.Text{
			Role:      footprint.TextReference,
			Content:   g.Reference,
			At:        g.ReferenceAt,
			Layer:     footprint.LayerFrontSilk,
			Size:      g.TextSize,
			Thickness: g.TextWidth,
		},
		footprint.Text{
			Role:      footprint.TextValue,
			Content:   g.Value,
			At:        g.ValueAt,
			Layer:     footprint.LayerFrontSilk,
			Size:      g.TextSize,
			Thickness: g.TextWidth,
		},
	)

	for pin := 1; pin <= g.Pins; pin++ {
		at, err := g.PinPosition(pin)
		if err != nil {
			return footprint.Footprint{}, err
		}
		fp.Add(footprint.Pad{
			Number:    strconv.Itoa(pin),
			Kind:      footprint.PadThroughHole,
			Shape:     footprint.ShapeCircle,
			At:        &at,
			Size:      footprint.Square(g.PadSize),
			Drill:     g.Drill,
			Layers:    footprint.ThroughHoleLayers,
			Clearance: g.Clearance,
		})
	}
	return fp, nil
}

// RenderOptions returns the connector's number formats: pad positions with
// six decimals, everything else in shortest form.
func RenderOptions() []kicad.Option {
	return []kicad.Option{
		kicad.WithNumberFormat(kicad.Shortest),
		kicad.WithPadPositionFormat(kicad.Fixed(6)),
	}
}
