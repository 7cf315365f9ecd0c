package apiguide

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every [NotFoundError] with errors.Is.
var ErrNotFound = errors.New("not found")

// NotFoundKind tells what was dereferenced.
type NotFoundKind int

const (
	notFoundInvalid NotFoundKind = iota
	NotFoundCategory
	NotFoundGuideline
)

func (k NotFoundKind) String() string {
	switch k {
	case NotFoundCategory:
		return "category"
	case NotFoundGuideline:
		return "guideline"
	default:
		return fmt.Sprintf("unknown-kind(%d)", k)
	}
}

// NotFoundError is returned when a category name or a guideline identifier does not exist.
type NotFoundError struct {
	Kind NotFoundKind
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// Is makes errors.Is(err, ErrNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
