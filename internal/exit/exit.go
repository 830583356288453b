package exit

import (
	"errors"
	"fmt"

	"github.com/samatild/azvmprofilefetcher/internal/imds"
)

// Process exit statuses.
const (
	CodeUsage       = 1
	CodeUnavailable = 2
	CodeTransport   = 3
	CodeOutput      = 4
)

type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code int, err error) error {
	return &Error{Code: code, Err: err}
}

// FromFetch maps a metadata fetch failure onto its exit status.
func FromFetch(err error) error {
	var unavailable *imds.UnavailableError
	if errors.As(err, &unavailable) {
		return New(CodeUnavailable, err)
	}
	return New(CodeTransport, err)
}

// CodeOf returns the status carried by err, or CodeUsage for plain errors.
func CodeOf(err error) int {
	var exitErr *Error
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return CodeUsage
}
