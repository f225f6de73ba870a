package footprint

import (
	"math"
	"testing"
)

func TestFootprintAccessors(t *testing.T) {
	var fp Footprint
	fp.Add(
		Text{Role: TextReference, Content: "REF**"},
		CircleAt(Pt(0, 0), 6, LayerComments, 0.15),
		Pad{Number: "1", Kind: PadThroughHole, Shape: ShapeCircle},
		Text{Role: TextValue, Content: "VAL"},
		Pad{Number: "2", Kind: PadSMD, Shape: ShapeRect},
	)

	if got := len(fp.Primitives); got != 5 {
		t.Fatalf("Primitives = %d, want 5", got)
	}
	pads := fp.Pads()
	if len(pads) != 2 || pads[0].Number != "1" || pads[1].Number != "2" {
		t.Errorf("Pads() = %+v, want pads 1 and 2 in order", pads)
	}
	if got := len(fp.Circles()); got != 1 {
		t.Errorf("Circles() = %d, want 1", got)
	}
	texts := fp.Texts()
	if len(texts) != 2 || texts[0].Role != TextReference || texts[1].Role != TextValue {
		t.Errorf("Texts() = %+v, want reference then value", texts)
	}
}

func TestCircleAt(t *testing.T) {
	c := CircleAt(Pt(1, 2), 5.6, LayerCourtyard, 0.05)
	if c.End != Pt(3.8, 2) {
		t.Errorf("End = %+v, want (3.8, 2)", c.End)
	}
	if math.Abs(c.Radius()-2.8) > 1e-12 {
		t.Errorf("Radius() = %v, want 2.8", c.Radius())
	}
}

func TestNoLayers(t *testing.T) {
	l := NoLayers()
	if l == nil {
		t.Fatal("NoLayers() must be non-nil to differ from the default set")
	}
	if len(l) != 0 {
		t.Errorf("NoLayers() = %v, want empty", l)
	}
}
