package mountinghole

import (
	"strings"

	"github.com/matzehuels/footgen/pkg/errors"
	"github.com/matzehuels/footgen/pkg/kicad"
)

var sig3 = kicad.Significant(3)

// Name returns the canonical identifier, e.g. MountingHole_3-2mm_M3_DIN965_Pad.
func Name(c Config) string {
	var b strings.Builder
	b.WriteString("MountingHole")
	b.WriteString(strings.ReplaceAll("_"+sig3(c.Drill)+"mm", ".", "-"))
	for _, l := range c.Labels {
		b.WriteString("_" + strings.ReplaceAll(l, ".", "-"))
	}
	if c.HasPad() {
		b.WriteString("_Pad")
	}
	return b.String()
}

// Description returns the human readable description.
func Description(c Config) string {
	var b strings.Builder
	b.WriteString("Mounting Hole " + sig3(c.Drill) + "mm")
	if !c.HasPad() {
		b.WriteString(", no annular")
	}
	for _, l := range c.Labels {
		b.WriteString(", " + l)
	}
	return b.String()
}

// Tags returns the space separated, lower-case search tags.
func Tags(c Config) string {
	var b strings.Builder
	b.WriteString("mounting hole " + sig3(c.Drill) + "mm")
	if !c.HasPad() {
		b.WriteString(" no annular")
	}
	for _, l := range c.Labels {
		b.WriteString(" " + strings.ToLower(l))
	}
	return b.String()
}

// CheckUnique returns an errors.ErrCodeDuplicateName error naming the first
// two entries of table that derive the same identifier.
func CheckUnique(table []Config) error {
	seen := make(map[string]int, len(table))
	for i, c := range table {
		name := Name(c)
		if j, ok := seen[name]; ok {
			return errors.New(errors.ErrCodeDuplicateName, "entries %d and %d both generate %s", j, i, name)
		}
		seen[name] = i
	}
	return nil
}
