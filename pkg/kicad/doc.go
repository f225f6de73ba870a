// Package kicad serializes [footprint.Footprint] values into the KiCad
// legacy footprint grammar (.kicad_mod).
//
// # Overview
//
// The output is a single s-expression block:
//
//	(module <name> (layer F.Cu) (tedit <HEX>)
//	  (at 0 0)
//	  (descr "...")
//	  (tags "...")
//	  (fp_text reference ...)
//	  (fp_text value ...)
//	  (fp_circle ...)
//	  (pad ...)
//	)
//
// The (at), (descr) and (tags) lines are only written when the footprint
// carries them. Primitives are written in the order they were added.
//
// # Number Formats
//
// Footprint libraries are diffed byte-for-byte, so numeric precision is part
// of the contract. [Render] writes every number with a [NumberFormat]:
//
//   - [Significant]: printf %.Ng, used by the mounting-hole family
//   - [Fixed]: printf %.Nf, used for connector pad positions
//   - [Shortest]: the shortest representation that round-trips
//
// [WithPadPositionFormat] overrides the format of pad (at X Y) clauses only.
//
//	data, err := kicad.Render(fp,
//	    kicad.WithNumberFormat(kicad.Shortest),
//	    kicad.WithPadPositionFormat(kicad.Fixed(6)),
//	)
//
// # Pads
//
// A pad with nil Layers gets the default set for its kind: through-hole
// kinds use "*.Cu *.Mask F.SilkS", surface kinds use "F.Cu F.Paste F.Mask".
// Any other kind without explicit layers is rejected with an
// errors.ErrCodeUnsupported error rather than written as a malformed pad.
package kicad
