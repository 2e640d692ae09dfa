// Package lapackgen generates ergonomic Go wrappers for raw LAPACK bindings.
//
// A raw LAPACK binding is a C-calling-convention prototype that
// communicates exclusively through pointer arguments. lapackgen reads
// such prototypes from extern "C" blocks and mechanically derives, for
// each one, a wrapper that takes values, slices, and pointers instead of
// raw pointers, and calls the raw symbol through recovered pointers.
//
// # Architecture Overview
//
// The module is organized into small packages with distinct
// responsibilities:
//
//	lapackgen/           Root package: per-block and whole-file generation
//	├── cdecl/           C prototype parsing: extern block → declaration
//	├── wrap/            Name classification, safe signatures, call
//	│                    expressions, wrapper emission
//	├── errors/          Structured error types for all phases
//	└── cmd/lapackgen/   CLI with list, generate, and interactive modes
//
// # Quick Start
//
// Generate a cgo file from a header:
//
//	src, err := lapackgen.Generate(header, lapackgen.Options{Package: "lapack"})
//
// Or transform one block:
//
//	unit, err := lapackgen.Wrap(`extern "C" {
//		void dgetrs_(const char *trans, const int *n, const int *nrhs,
//		             const double *A, const int *lda, const int *ipiv,
//		             double *B, const int *ldb, int *info);
//	}`)
//
// The generated wrapper keeps the raw prototype beside it:
//
//	func dgetrs(trans byte, n int32, nrhs int32, A []float64, lda int32,
//		ipiv []int32, B []float64, ldb int32, info *int32) {
//		ctrans := C.char(trans)
//		C.dgetrs_(&ctrans, (*C.int)(unsafe.Pointer(&n)), ...)
//	}
//
// Wrappers are unchecked: slice lengths are never validated against the
// dimension and stride arguments beside them. Each wrapper's doc comment
// carries that contract.
//
// The transformation is pure and per-declaration: no state survives a
// block, so blocks can be processed in any order.
package lapackgen
