package mountinghole

import (
	"testing"
)

func TestBuildTableSize(t *testing.T) {
	table := BuildTable()
	// 11 plain diameters + 7 threads + 3 standards x 6 threads, each twice
	if got, want := len(table), 2*(11+7+3*6); got != want {
		t.Errorf("len(BuildTable()) = %d, want %d", got, want)
	}
}

func TestBuildTableOrder(t *testing.T) {
	table := BuildTable()

	first := table[0]
	if first.Drill != 2.5 || first.HasPad() || len(first.Labels) != 0 {
		t.Errorf("table[0] = %+v, want bare 2.5mm hole", first)
	}
	if second := table[1]; second.Drill != 2.5 || !second.HasPad() {
		t.Errorf("table[1] = %+v, want ringed 2.5mm hole", second)
	}

	// First metric entry follows the 22 plain entries.
	if m := table[22]; len(m.Labels) != 1 || m.Labels[0] != "M2" || m.Drill != 2.2 {
		t.Errorf("table[22] = %+v, want M2 clearance hole", m)
	}

	// First head-standard entry follows the 14 metric entries.
	h := table[36]
	if len(h.Labels) != 2 || h.Labels[0] != "M2" || h.Labels[1] != "DIN965" {
		t.Errorf("table[36] labels = %v, want [M2 DIN965]", h.Labels)
	}

	last := table[len(table)-1]
	if len(last.Labels) != 2 || last.Labels[0] != "M6" || last.Labels[1] != "ISO7380" || !last.HasPad() {
		t.Errorf("last entry = %+v, want ringed M6 ISO7380", last)
	}
}

func TestPlainDiametersRing(t *testing.T) {
	for _, c := range BuildTable()[:22] {
		if c.Pad == nil {
			continue
		}
		if *c.Pad != 2*c.Drill {
			t.Errorf("drill %v: pad = %v, want %v", c.Drill, *c.Pad, 2*c.Drill)
		}
	}
}

func TestHeadStandardEntries(t *testing.T) {
	for _, c := range BuildTable()[36:] {
		if c.Screw == nil {
			t.Fatalf("%s: head-standard entry without screw diameter", Name(c))
		}
		if c.Pad != nil && *c.Pad != *c.Screw {
			t.Errorf("%s: pad = %v, want screw %v", Name(c), *c.Pad, *c.Screw)
		}
	}
}

func TestMissingHeadRadiusIsSkipped(t *testing.T) {
	for _, c := range BuildTable() {
		if len(c.Labels) == 2 && c.Labels[0] == "M8" {
			t.Errorf("unexpected M8 head-standard entry %s", Name(c))
		}
	}

	cat := Catalog{
		Threads: []Thread{{"M3", 3.2}},
		Heads:   []HeadStandard{{"X", []HeadRadius{{"M3", 2.8}, {"M99", 10}}}},
	}
	if got := len(cat.Table()); got != 4 {
		t.Errorf("len(Table()) = %d, want 4 (M3 bare + ring, X/M3 bare + ring)", got)
	}
}

func TestTableValid(t *testing.T) {
	for _, c := range BuildTable() {
		if err := c.Validate(); err != nil {
			t.Errorf("%s: Validate() error: %v", Name(c), err)
		}
	}
}

func TestDefaultCatalogIsCopy(t *testing.T) {
	a := DefaultCatalog()
	a.Diameters[0] = 99
	if b := DefaultCatalog(); b.Diameters[0] != 2.5 {
		t.Error("DefaultCatalog() must return independent slices")
	}
}
