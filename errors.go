package catgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/catgo/dict"
)

var (
	// ErrIncompatibleSources is returned when two categorical columns cannot
	// be proven to share one code space. User-recoverable: produce both
	// columns under a shared string cache scope and retry.
	ErrIncompatibleSources = errors.New("cannot compare categoricals originating from different sources; consider setting a global string cache")

	// ErrStaleRevMap indicates that a code could not be resolved against the
	// column's reverse mapping. This never happens for correctly scoped
	// usage and is treated as an internal-consistency bug, not user error.
	//
	// The original underlying error can be accessed via errors.Unwrap.
	ErrStaleRevMap = errors.New("stale categorical reverse mapping")

	// ErrDuplicateCategory is returned by FromDictionary when the supplied
	// category list contains the same string twice.
	ErrDuplicateCategory = errors.New("duplicate category value")
)

// ErrLengthMismatch indicates an elementwise operation on columns of
// different lengths.
type ErrLengthMismatch struct {
	Left  int
	Right int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: left column has %d rows, right has %d", e.Left, e.Right)
}

// translateError normalizes subpackage errors into the public taxonomy.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var oor *dict.ErrOutOfRange
	if errors.As(err, &oor) {
		return fmt.Errorf("%w: %w", ErrStaleRevMap, err)
	}

	return err
}
