// Package errors provides structured error types for the component linker.
//
// Errors are categorized by Stage (where in the run the error occurred) and
// Kind (error category). Every failure is fatal; nothing is retried. The
// chain of causes is preserved through Unwrap and rendered by WriteChain as
// a top-level message followed by a numbered causal chain:
//
//	error: failed to encode component
//
//	Caused by:
//	    0: wasm-tools exited with status 1
//	    1: import `wasi:cli/environment` not found
//
// Construct errors with New or Wrap:
//
//	err := errors.Wrap(errors.StageLink, errors.KindSubprocess, cause,
//		"failed to spawn %q", linker)
//
// All errors support the standard errors.Is/As; Is matches on Stage and
// Kind so callers can test for a category without string comparison.
package errors
