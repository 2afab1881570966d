package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Stage indicates where in the run the error occurred
type Stage string

const (
	StageExpand   Stage = "expand"   // response-file expansion
	StageParse    Stage = "parse"    // argument classification and parsing
	StageLink     Stage = "link"     // external linker invocation
	StageInspect  Stage = "inspect"  // core module inspection
	StageMerge    Stage = "merge"    // interface world merging
	StageAssemble Stage = "assemble" // component assembly
	StageWrite    Stage = "write"    // artifact output
)

// Kind categorizes the error
type Kind string

const (
	KindConfig     Kind = "config"     // bad syntax, unknown flag, conflicting options
	KindIO         Kind = "io"         // unreadable or unwritable files
	KindSubprocess Kind = "subprocess" // spawned tool failed
	KindFormat     Kind = "format"     // malformed binary or descriptor
)

// Error is the structured error type used throughout the linker
type Error struct {
	Stage  Stage
	Kind   Kind
	Detail string
	Cause  error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Detail
	}
	return e.Detail + ": " + e.Cause.Error()
}

// Message returns this error's own message without the cause chain.
func (e *Error) Message() string {
	return e.Detail
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by stage and kind
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Stage == t.Stage && e.Kind == t.Kind
	}
	return false
}

// New creates an error with a formatted detail message
func New(stage Stage, kind Kind, format string, args ...any) *Error {
	return &Error{
		Stage:  stage,
		Kind:   kind,
		Detail: fmt.Sprintf(format, args...),
	}
}

// Wrap creates an error with a formatted detail message and a cause
func Wrap(stage Stage, kind Kind, cause error, format string, args ...any) *Error {
	return &Error{
		Stage:  stage,
		Kind:   kind,
		Detail: fmt.Sprintf(format, args...),
		Cause:  cause,
	}
}

// As finds the first error in err's chain matching target; see the
// standard library's errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Chain returns the per-level messages of err's unwrap chain, outermost
// first. Levels built with fmt.Errorf("...: %w", cause) repeat the cause's
// message as a suffix; that suffix is trimmed so each level contributes
// only its own context.
func Chain(err error) []string {
	var msgs []string
	for err != nil {
		next := errors.Unwrap(err)
		msg := err.Error()
		if e, ok := err.(*Error); ok {
			msg = e.Message()
		} else if next != nil {
			msg = strings.TrimSuffix(msg, ": "+next.Error())
		}
		msgs = append(msgs, msg)
		err = next
	}
	return msgs
}

// WriteChain prints err as a top-level message followed by the numbered
// causal chain, lowest-level cause last.
func WriteChain(w io.Writer, err error) {
	msgs := Chain(err)
	if len(msgs) == 0 {
		return
	}
	fmt.Fprintf(w, "error: %s\n", msgs[0])
	if len(msgs) == 1 {
		return
	}
	fmt.Fprintf(w, "\nCaused by:\n")
	for i, msg := range msgs[1:] {
		fmt.Fprintf(w, "%5d: %s\n", i, strings.ReplaceAll(msg, "\n", "\n       "))
	}
}
