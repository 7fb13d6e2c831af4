// Package errors provides structured error types for the riff-kit library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: the enclosing chunk name
// path, the absolute byte offset in the parsed buffer, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindTruncated).
//		Path("RIFF", "LIST").
//		Offset(44).
//		Detail("chunk header needs 8 bytes, have 3").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Truncated(path, 44, "chunk header needs %d bytes, have %d", 8, 3)
//	err := errors.OutOfRange(10, 5)
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on Phase and Kind, so a bare error built from the same pair acts
// as a sentinel for every decorated instance.
package errors
