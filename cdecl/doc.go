// Package cdecl parses raw LAPACK prototypes out of extern "C" blocks.
//
// The raw API surface this module targets is narrow by construction:
// every parameter is a constant or mutable pointer to a simple named
// type, bound to a plain identifier, with an optional non-pointer return
// type. The parser enforces that contract and fails hard on anything
// else, since a declaration outside the contract cannot be wrapped
// safely downstream.
//
// Basic usage:
//
//	decl, err := cdecl.Parse(`extern "C" {
//		void dgetrs_(const char *trans, const int *n, double *B, int *info);
//	}`)
//
// Each extern "C" block holds exactly one prototype; that block is the
// unit of transformation. ParseAll handles headers containing several
// independent blocks. Line comments, block comments, and preprocessor
// lines are ignored.
//
// Not supported: pointer-to-pointer, array declarators, function
// pointers, multi-word types (unsigned int), and anonymous parameters.
// All of these produce structured errors from the errors package rather
// than a partial declaration.
package cdecl
