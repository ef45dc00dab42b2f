package geometry

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every NotFoundError through errors.Is
	ErrNotFound = errors.New("not found")
	// ErrBinarySTL is returned by text transforms handed a binary STL file
	ErrBinarySTL = errors.New("binary STL has no solid name lines")
)

// NotFoundError reports a missing geometry directory or a geometry set
// without any surface files in it.
type NotFoundError struct {
	Path   string
	Reason string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
