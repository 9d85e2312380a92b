// Package export projects parsed parameter-definition trees into JSON.
//
// Two shapes are produced. The descriptive form keeps every node as a
// typed record with stable field presence, suited to tooling that wants
// the full picture. The compact form nests container and parameter names
// directly as object keys, the convention consumed by the keyword search
// and configuration layers. Both encodings are deterministic: projecting
// the same tree twice yields byte-identical output.
package export
