// Package wrap derives ergonomic Go wrappers from raw LAPACK declarations.
//
// A raw declaration communicates exclusively through pointers. The wrap
// transformation replaces each pointer with a safe-facing type chosen by
// a name convention, and generates the inverse call-site expression that
// recovers a compatible pointer when invoking the raw symbol:
//
//	raw parameter            safe parameter       call argument
//	──────────────────────────────────────────────────────────────────────
//	int *info                *int32               (*C.int)(unsafe.Pointer(info))
//	const double *A          []float64            (*C.double)(unsafe.Pointer(unsafe.SliceData(A)))
//	double *work             []float64            (*C.double)(unsafe.Pointer(unsafe.SliceData(work)))
//	const int *n             int32                (*C.int)(unsafe.Pointer(&n))
//	const char *trans        byte                 ctrans := C.char(trans); &ctrans
//
// Array views recover their pointer through unsafe.SliceData, which is
// valid for a zero-length slice, so quick-return calls with empty views
// reach the routine instead of panicking.
//
// The name convention is closed: a, b, ipiv, and work are the matrix,
// right-hand-side, pivot, and workspace arguments of this class of
// routine; info is the status output; everything else is a scalar
// control argument passed by value. Classify is the single source of
// truth for that table, shared by Signature and Call so the two stay
// inverse by construction.
//
// Wrappers are deliberately unchecked: nothing ties a slice's length to
// the dimension and stride scalars beside it. The generated doc comment
// marks each wrapper accordingly; callers own that contract.
package wrap
