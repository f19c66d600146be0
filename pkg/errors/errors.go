package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
)

// Error kinds. Every error returned by the filescan packages wraps exactly
// one of these, so callers can branch with errors.Is.
var (
	// ErrNotFound reports that a path is empty or does not exist at call time.
	ErrNotFound = stderrors.New("not found")

	// ErrIO reports that a path exists but the operation could not complete.
	ErrIO = stderrors.New("i/o failure")

	// ErrInvalidPattern reports a malformed match rule.
	ErrInvalidPattern = stderrors.New("invalid pattern")

	// ErrOutOfBounds reports an index outside a collection.
	ErrOutOfBounds = stderrors.New("index out of range")

	// ErrUnsupported reports a query the platform or backend cannot answer,
	// such as creation time on filesystems that do not record it.
	// Re-exported from the standard library.
	ErrUnsupported = stderrors.ErrUnsupported
)

// NotFound builds an ErrNotFound for op on path. cause may be nil.
func NotFound(op, path string, cause error) error {
	if cause == nil {
		return fmt.Errorf("failed to %s %q: %w", op, path, ErrNotFound)
	}

	return fmt.Errorf("failed to %s %q: %w: %w", op, path, ErrNotFound, cause)
}

// IO builds an ErrIO for op on path wrapping cause.
func IO(op, path string, cause error) error {
	return fmt.Errorf("failed to %s %q: %w: %w", op, path, ErrIO, cause)
}

// InvalidPattern builds an ErrInvalidPattern naming the offending rule.
func InvalidPattern(rule string, cause error) error {
	return fmt.Errorf("%w %q: %w", ErrInvalidPattern, rule, cause)
}

// OutOfBounds builds an ErrOutOfBounds for index against length.
func OutOfBounds(index, length int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrOutOfBounds, index, length)
}

// Unsupported builds an ErrUnsupported for a query on path.
func Unsupported(query, path string) error {
	return fmt.Errorf("%s unavailable for %q: %w", query, path, ErrUnsupported)
}

// Classify maps a raw filesystem error to a kind: missing paths become
// ErrNotFound, everything else ErrIO. Errors that already carry a kind
// are returned unchanged.
func Classify(op, path string, err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, ErrNotFound), stderrors.Is(err, ErrIO),
		stderrors.Is(err, ErrUnsupported):
		return err
	case stderrors.Is(err, fs.ErrNotExist):
		return NotFound(op, path, err)
	default:
		return IO(op, path, err)
	}
}
