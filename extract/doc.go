// Package extract compiles a crown name layout into a single reusable
// extraction procedure.
//
// The compiler walks the crown tree once and lowers it into a flat
// instruction program: positional reads, container shape checks,
// extra-data policy enforcement and loader calls, all addressing a
// per-call frame of slots instead of recursing over the input at
// runtime. A naive tree-walking extractor would pay one call per
// nesting level per input value; the flat program pays a single
// dispatch loop.
//
// Compilation is a one-shot synchronous step. The resulting Procedure
// holds no mutable state and is safe for concurrent use; per-call
// bookkeeping (overflow holders, collected errors) lives in a frame
// local to one Extract invocation.
package extract
