package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse  Phase = "parse"  // bytes to chunk tree
	PhaseEncode Phase = "encode" // chunk tree to bytes
	PhaseBuild  Phase = "build"  // tree construction
	PhaseLookup Phase = "lookup" // child access
)

// Kind categorizes the error
type Kind string

const (
	KindTruncated      Kind = "truncated"
	KindInvalidLength  Kind = "invalid_length"
	KindInvalidChunk   Kind = "invalid_chunk"
	KindNotFound       Kind = "not_found"
	KindOutOfRange     Kind = "out_of_range"
	KindBufferTooSmall Kind = "buffer_too_small"
	KindIO             Kind = "io"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
	Offset int64
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Offset >= 0 {
		fmt.Fprintf(&b, " (offset %d)", e.Offset)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder. The offset starts out as -1,
// meaning no byte position applies.
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Path sets the enclosing chunk name path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Offset sets the absolute byte position in the parsed buffer
func (b *Builder) Offset(off int64) *Builder {
	b.err.Offset = off
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Truncated creates a truncated-input parse error
func Truncated(path []string, offset int64, format string, args ...any) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindTruncated,
		Path:   path,
		Offset: offset,
		Detail: fmt.Sprintf(format, args...),
	}
}

// InvalidLength creates an error for a declared length that cannot be
// represented once header and padding are added
func InvalidLength(path []string, offset int64, declared, max uint32) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidLength,
		Path:   path,
		Offset: offset,
		Detail: fmt.Sprintf("declared length %d exceeds maximum %d", declared, max),
	}
}

// InvalidChunk creates a construction error
func InvalidChunk(format string, args ...any) *Error {
	return &Error{
		Phase:  PhaseBuild,
		Kind:   KindInvalidChunk,
		Offset: -1,
		Detail: fmt.Sprintf(format, args...),
	}
}

// NotFound creates a not-found lookup error
func NotFound(what, key string) *Error {
	return &Error{
		Phase:  PhaseLookup,
		Kind:   KindNotFound,
		Offset: -1,
		Detail: fmt.Sprintf("%s %q not found", what, key),
	}
}

// OutOfRange creates an index lookup error
func OutOfRange(index, length int) *Error {
	return &Error{
		Phase:  PhaseLookup,
		Kind:   KindOutOfRange,
		Offset: -1,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
	}
}

// BufferTooSmall creates a destination capacity error
func BufferTooSmall(need, have int) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindBufferTooSmall,
		Offset: -1,
		Detail: fmt.Sprintf("destination needs %d bytes, have %d", need, have),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Offset: -1,
		Detail: detail,
		Cause:  cause,
	}
}
