// Package matrix offers dense float64 storage for pairwise tables.
//
// The matrix package provides:
//
//   - Dense, a row-major n×m buffer with bounds-checked At/Set that return
//     sentinel errors instead of panicking and reject NaN/±Inf writes.
//   - Symmetric writes (SetSym, AddSym) that keep a square table symmetric
//     by construction.
//   - Blend, the in-place dst ← keep·dst + src kernel used for
//     decay-then-deposit update cycles.
//   - Validators (ValidateSquare, ValidateSymmetric, ...) shared by callers.
//
// Matrices are best for dense or small problems where O(n²) memory is
// acceptable, e.g. pheromone and distance tables of a tour heuristic.
package matrix
