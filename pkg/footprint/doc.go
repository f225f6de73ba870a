// Package footprint defines the geometric model shared by the footprint
// generators and the KiCad serializer.
//
// # Overview
//
// A [Footprint] is an ordered list of [Primitive] values plus the metadata
// KiCad stores in the module header (name, edit timestamp, description and
// search tags). Primitives form a closed set:
//
//   - [Text]: reference and value labels
//   - [Circle]: documentation and courtyard outlines
//   - [Pad]: copper pads and drilled holes
//
// All coordinates are in millimetres, with KiCad's orientation (Y grows
// downwards).
//
// # Lifecycle
//
// Generators build one Footprint per parameter set; nothing in this package
// holds state across footprints. The serializer in package kicad consumes a
// Footprint without modifying it.
//
//	fp := footprint.Footprint{
//	    Name:  "VHDCI",
//	    Layer: footprint.LayerFrontCopper,
//	    Tedit: 0x5478A913,
//	}
//	fp.Add(footprint.Pad{Number: "1", Kind: footprint.PadThroughHole, Shape: footprint.ShapeCircle})
package footprint
