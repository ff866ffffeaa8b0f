package aggregate

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is matched by errors.Is when discovery found nothing to render.
var ErrEmptyInput = errors.New("no markdown files found")

// DiscoveryError reports a failure walking the documentation root.
type DiscoveryError struct {
	Root string
	Err  error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discover %s: %v", e.Root, e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// EmptyInputError is returned by Render when there are no entries.
type EmptyInputError struct {
	Root string
}

func (e *EmptyInputError) Error() string {
	if e.Root == "" {
		return ErrEmptyInput.Error()
	}
	return fmt.Sprintf("%s in %s", ErrEmptyInput, e.Root)
}

func (e *EmptyInputError) Unwrap() error { return ErrEmptyInput }

// ReadError names the file that could not be read or decoded.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a failure creating or replacing the output file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
