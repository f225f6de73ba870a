// Package pkg provides the core libraries for footgen footprint generation.
//
// # Overview
//
// footgen turns parameter tables into KiCad footprint files. The pkg
// directory is organized as follows:
//
//  1. [footprint] - Domain model (pads, circles, texts) and the generators
//     in [footprint/vhdci] and [footprint/mountinghole]
//  2. [kicad] - Serializer for the legacy .kicad_mod s-expression format
//  3. [emit] - Sinks that write serialized documents to files or streams
//  4. [pipeline] - Orchestration (build → render → emit)
//  5. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The typical data flow through footgen:
//
//	Parameter table / config file
//	         ↓
//	    [footprint/...] generator (layout)
//	         ↓
//	    [kicad] package (serialize)
//	         ↓
//	    [emit] package (file or stdout)
//
// # Quick Start
//
//	table := mountinghole.BuildTable()
//	sink, _ := emit.NewDir("MountingHole.pretty")
//	res, err := pipeline.NewRunner(nil).MountingHoles(ctx, sink, table, pipeline.Options{Jobs: 4})
package pkg
