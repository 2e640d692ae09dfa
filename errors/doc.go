// Package errors provides structured error types for the lapackgen generator.
//
// Errors are categorized by Phase (where in the transformation the error
// occurred) and Kind (error category). Every failure the generator can
// produce is fatal for the declaration being transformed: a malformed
// extern block, a parameter outside the named-pointer contract, or a
// pointee the type table cannot map all abort the run with no partial
// output, since a silently degraded wrapper would reach calling code.
//
// Use the convenience constructors for the common cases:
//
//	err := errors.Structural(line, "extern block must hold exactly one declaration")
//	err := errors.Shape("dgetrs_", "n", "parameter is not a pointer")
//	err := errors.Unsupported("dgetrs_", "A", "pointer to pointer to \"double\" is not supported")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
