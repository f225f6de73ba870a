package mountinghole

// Thread is an ISO metric thread with its clearance-hole drill diameter.
type Thread struct {
	Name  string
	Drill float64
}

// HeadRadius is the screw-head radius of one thread size under a standard.
type HeadRadius struct {
	Thread string
	Radius float64
}

// HeadStandard is a screw-head standard and its per-thread head radii.
type HeadStandard struct {
	Name  string
	Radii []HeadRadius
}

// Catalog holds the lookup tables the mounting-hole table is built from.
// Slices keep the iteration order, which is part of the generated text.
type Catalog struct {
	Diameters []float64
	Threads   []Thread
	Heads     []HeadStandard
}

// DefaultCatalog returns a fresh copy of the built-in tables.
func DefaultCatalog() Catalog {
	return Catalog{
		// sizes in the old library
		Diameters: []float64{2.5, 2.7, 3.0, 3.5, 3.7, 4.0, 4.5, 5.0, 5.5, 6.0, 6.5},
		Threads: []Thread{
			{"M2", 2.2},
			{"M2.5", 2.7},
			{"M3", 3.2},
			{"M4", 4.3},
			{"M5", 5.3},
			{"M6", 6.4},
			{"M8", 8.4},
		},
		Heads: []HeadStandard{
			{"DIN965", []HeadRadius{
				{"M2", 1.9}, {"M2.5", 2.35}, {"M3", 2.8}, {"M4", 3.75}, {"M5", 4.6}, {"M6", 5.5},
			}},
			{"ISO14580", []HeadRadius{
				{"M2", 1.9}, {"M2.5", 2.25}, {"M3", 2.75}, {"M4", 3.5}, {"M5", 4.25}, {"M6", 5},
			}},
			{"ISO7380", []HeadRadius{
				{"M2", 1.75}, {"M2.5", 2.25}, {"M3", 2.85}, {"M4", 3.8}, {"M5", 4.75}, {"M6", 5.25},
			}},
		},
	}
}

// BuildTable enumerates the built-in mounting-hole table.
func BuildTable() []Config {
	return DefaultCatalog().Table()
}

// Table enumerates c in order: plain diameters, metric threads, then each
// head standard. Every size yields a bare hole followed by a ringed one.
func (c Catalog) Table() []Config {
	var table []Config

	for _, d := range c.Diameters {
		table = append(table,
			Config{Drill: d, Labels: []string{}},
			Config{Drill: d, Pad: Diameter(2.0 * d), Labels: []string{}},
		)
	}

	for _, t := range c.Threads {
		table = append(table,
			Config{Drill: t.Drill, Labels: []string{t.Name}},
			Config{Drill: t.Drill, Pad: Diameter(2.0 * t.Drill), Labels: []string{t.Name}},
		)
	}

	for _, h := range c.Heads {
		for _, r := range h.Radii {
			drill, ok := c.threadDrill(r.Thread)
			if !ok {
				continue
			}
			screw := 2.0 * r.Radius
			table = append(table,
				Config{Drill: drill, Screw: Diameter(screw), Labels: []string{r.Thread, h.Name}},
				Config{Drill: drill, Pad: Diameter(screw), Screw: Diameter(screw), Labels: []string{r.Thread, h.Name}},
			)
		}
	}

	return table
}

func (c Catalog) threadDrill(name string) (float64, bool) {
	for _, t := range c.Threads {
		if t.Name == name {
			return t.Drill, true
		}
	}
	return 0, false
}
