package mountinghole

import (
	"fmt"
	"math"

	"github.com/matzehuels/footgen/pkg/footprint"
)

const (
	textSize      = 1.0
	textThickness = 0.15
	screwWidth    = 0.15

	courtyardWidth   = 0.05
	courtyardSpacing = 0.5
	courtyardGrid    = 0.05

	// Extension is the file extension of generated footprints.
	Extension = ".kicad_mod"
)

// FileName returns the output file name for c.
func FileName(c Config) string {
	return Name(c) + Extension
}

// CourtyardDiameter returns the keep-out diameter of c: the larger of screw
// head and ring (or drill) plus spacing, rounded up to the courtyard grid.
func CourtyardDiameter(c Config) float64 {
	return roundUp(math.Max(c.ScrewDiameter(), c.RingDiameter())+courtyardSpacing, courtyardGrid)
}

func roundUp(v, step float64) float64 {
	return math.Ceil(v/step) * step
}

// Build lays out the footprint for c, stamped with the tedit timestamp.
func Build(c Config, tedit uint32) (footprint.Footprint, error) {
	if err := c.Validate(); err != nil {
		return footprint.Footprint{}, fmt.Errorf("%s: %w", Name(c), err)
	}

	name := Name(c)
	screw := c.ScrewDiameter()
	origin := footprint.Pt(0, 0)
	textOffset := screw/2.0 + textSize

	fp := footprint.Footprint{
		Name:        name,
		Layer:       footprint.LayerFrontCopper,
		Tedit:       tedit,
		Origin:      &origin,
		Description: Description(c),
		Tags:        Tags(c),
	}

	fp.Add(
		footprint.Text{
			Role:      footprint.TextReference,
			Content:   "REF**",
			At:        footprint.Pt(0, -textOffset),
			Layer:     footprint.LayerFrontSilk,
			Size:      textSize,
			Thickness: textThickness,
		},
		footprint.Text{
			Role:      footprint.TextValue,
			Content:   name,
			At:        footprint.Pt(0, textOffset),
			Layer:     footprint.LayerFrontFab,
			Size:      textSize,
			Thickness: textThickness,
		},
		footprint.CircleAt(origin, screw, footprint.LayerComments, screwWidth),
		footprint.CircleAt(origin, CourtyardDiameter(c), footprint.LayerCourtyard, courtyardWidth),
	)

	pad := footprint.Pad{
		Number: "1",
		Kind:   footprint.PadThroughHole,
		Shape:  footprint.ShapeCircle,
		At:     &origin,
		Size:   footprint.Square(c.RingDiameter()),
		Drill:  c.Drill,
		Layers: footprint.NoLayers(),
	}
	if c.HasPad() {
		pad.Layers = footprint.ThroughHoleLayers
	}
	fp.Add(pad)

	return fp, nil
}
