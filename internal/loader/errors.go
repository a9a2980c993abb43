package loader

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors wrapped by LineError.
var (
	// ErrMalformedLine is a line with the wrong number of fields.
	ErrMalformedLine = errors.New("loader: malformed line")

	// ErrBadCost is a link cost that is not an integer in [0, core.MaxCost].
	ErrBadCost = errors.New("loader: bad link cost")

	// ErrDuplicateBag is a bag ID seen twice; the first entry wins.
	ErrDuplicateBag = errors.New("loader: duplicate bag id")

	// ErrDuplicateFlight is a flight ID seen twice; the first entry wins.
	ErrDuplicateFlight = errors.New("loader: duplicate flight id")

	// ErrOutsideSection is content before the first or after the last section.
	ErrOutsideSection = errors.New("loader: content outside any section")
)

// LineError describes one rejected input line.
type LineError struct {
	Section Section
	Line    int // 1-based
	Text    string
	Err     error
}

// Error implements error.
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d (%s): %v: %q", e.Line, e.Section, e.Err, e.Text)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *LineError) Unwrap() error { return e.Err }
