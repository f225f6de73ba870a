package mountinghole

import (
	"testing"

	"github.com/matzehuels/footgen/pkg/errors"
)

func TestNaming(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		id    string
		descr string
		tags  string
	}{
		{
			name:  "screw head with pad",
			cfg:   Config{Drill: 3.2, Pad: Diameter(2 * 2.8), Screw: Diameter(2 * 2.8), Labels: []string{"M3", "DIN965"}},
			id:    "MountingHole_3-2mm_M3_DIN965_Pad",
			descr: "Mounting Hole 3.2mm, M3, DIN965",
			tags:  "mounting hole 3.2mm m3 din965",
		},
		{
			name:  "plain integer diameter, no pad",
			cfg:   Config{Drill: 3.0},
			id:    "MountingHole_3mm",
			descr: "Mounting Hole 3mm, no annular",
			tags:  "mounting hole 3mm no annular",
		},
		{
			name:  "plain with pad",
			cfg:   Config{Drill: 2.5, Pad: Diameter(5)},
			id:    "MountingHole_2-5mm_Pad",
			descr: "Mounting Hole 2.5mm",
			tags:  "mounting hole 2.5mm",
		},
		{
			name:  "dotted thread label",
			cfg:   Config{Drill: 2.7, Labels: []string{"M2.5"}},
			id:    "MountingHole_2-7mm_M2-5",
			descr: "Mounting Hole 2.7mm, no annular, M2.5",
			tags:  "mounting hole 2.7mm no annular m2.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Name(tt.cfg); got != tt.id {
				t.Errorf("Name() = %q, want %q", got, tt.id)
			}
			if got := Description(tt.cfg); got != tt.descr {
				t.Errorf("Description() = %q, want %q", got, tt.descr)
			}
			if got := Tags(tt.cfg); got != tt.tags {
				t.Errorf("Tags() = %q, want %q", got, tt.tags)
			}
		})
	}
}

func TestNamesUnique(t *testing.T) {
	table := BuildTable()
	seen := make(map[string]bool, len(table))
	for _, c := range table {
		name := Name(c)
		if seen[name] {
			t.Errorf("duplicate identifier %s", name)
		}
		seen[name] = true
	}
	if err := CheckUnique(table); err != nil {
		t.Errorf("CheckUnique(BuildTable()) error: %v", err)
	}
}

func TestCheckUniqueDuplicate(t *testing.T) {
	table := append(BuildTable(), Config{Drill: 3.2, Labels: []string{"M3"}})
	err := CheckUnique(table)
	if !errors.Is(err, errors.ErrCodeDuplicateName) {
		t.Errorf("CheckUnique() error = %v, want %v", err, errors.ErrCodeDuplicateName)
	}
}

func TestFileName(t *testing.T) {
	if got := FileName(Config{Drill: 4.3, Labels: []string{"M4"}}); got != "MountingHole_4-3mm_M4.kicad_mod" {
		t.Errorf("FileName() = %q", got)
	}
}
