// Package crown defines the data model consumed by the extraction
// compiler: a crown tree describing how positions in an untyped input
// tree correspond to a flat set of model fields, the per-branch policy
// for unexpected input data, and the routing of collected overflow to
// dedicated target fields.
//
// Crowns are pure values. They are built once, ahead of compilation, by
// whatever resolves a model's name layout, and are treated as immutable
// afterwards. Validate catches malformed trees early; a crown that skips
// validation and violates the documented invariants is a programmer
// error, not a runtime concern of the compiler.
package crown
