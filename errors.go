package wordusage

import (
	"errors"
	"fmt"

	errorutil "github.com/projectdiscovery/utils/errors"
)

// ErrorKind classifies failures surfaced to the user
type ErrorKind int

const (
	// ErrUsage is returned when the command is invoked with wrong arguments
	ErrUsage ErrorKind = iota + 1
	// ErrNotFound is returned when the input document does not exist
	ErrNotFound
	// ErrIO is returned when input is unreadable or output is unwritable
	ErrIO
	// ErrEncoding is returned when input is not valid text in the expected encoding
	ErrEncoding
	// ErrConfig is returned for invalid config or reference corpus files
	ErrConfig
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUsage:
		return "usage error"
	case ErrNotFound:
		return "not found"
	case ErrIO:
		return "io error"
	case ErrEncoding:
		return "encoding error"
	case ErrConfig:
		return "config error"
	}
	return "unknown error"
}

// Error implements the error interface so that a kind can be used
// as an errors.Is target (ex: errors.Is(err, wordusage.ErrIO))
func (k ErrorKind) Error() string {
	return k.String()
}

// Error is a classified wordusage failure
type Error struct {
	Kind ErrorKind
	// Path is the file involved, if any
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%v: %v: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the kind of this error
func (e *Error) Is(target error) bool {
	kind, ok := target.(ErrorKind)
	return ok && kind == e.Kind
}

// newError wraps err with a kind, tagging it for consistent output
func newError(kind ErrorKind, path string, err error) *Error {
	if err == nil {
		err = errorutil.NewWithTag("wordusage", "%v", kind)
	}
	return &Error{Kind: kind, Path: path, Err: err}
}

// KindOf returns the kind of err or 0 when err is not a classified error
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
