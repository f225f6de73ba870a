// Package mountinghole generates the mounting-hole footprint family.
//
// # Table
//
// [BuildTable] enumerates the built-in parameter table as an ordered
// cross product of:
//
//   - plain drill diameters, each without and with a 2x annular ring
//   - ISO metric thread clearance holes, each without and with a 2x ring
//   - metric threads under three screw-head standards (DIN965, ISO14580,
//     ISO7380), each without a ring and with a ring sized to the head
//
// A standard that lists no head radius for a thread simply contributes no
// entry for it.
//
// # Naming
//
// Every [Config] derives a canonical identifier, description and tag string:
//
//	MountingHole_3-2mm_M3_DIN965_Pad
//	Mounting Hole 3.2mm, M3, DIN965
//	mounting hole 3.2mm m3 din965
//
// The identifier doubles as the output file name, so [CheckUnique] guards
// tables extended with user-supplied entries.
//
// # Layout
//
// [Build] turns a Config into a footprint with a screw-head outline on
// Cmts.User, a courtyard circle rounded outward to a 0.05 mm grid, and one
// through-hole pad at the origin.
package mountinghole
