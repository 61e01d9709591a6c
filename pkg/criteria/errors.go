package criteria

import (
	"fmt"

	"github.com/borsuksoftware/conical-es/pkg/models"
)

// ErrConfiguration marks every error caused by bad caller input. None of them
// are retried.
var ErrConfiguration = models.ErrConfiguration

// MissingCriteriaError reports the lowest index in [0, Expected) that has no
// record.
type MissingCriteriaError struct {
	Index    int
	Expected int
}

func (e *MissingCriteriaError) Error() string {
	return fmt.Sprintf("search criteria #%d doesn't exist, expected %d criteria", e.Index, e.Expected)
}

func (e *MissingCriteriaError) Unwrap() error { return ErrConfiguration }

// UnknownValueError is returned when a token does not belong to an enumerated
// field's value set.
type UnknownValueError struct {
	Field Field
	Value string
	Index int
	Err   error
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("search criteria #%d: unrecognised %s '%s'", e.Index, e.Field, e.Value)
}

func (e *UnknownValueError) Unwrap() []error { return []error{ErrConfiguration, e.Err} }

// UnknownFieldError is returned for a criteria name that is not recognised.
type UnknownFieldError struct {
	Name  string
	Index int
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown search criteria name '%s' found for idx #%d", e.Name, e.Index)
}

func (e *UnknownFieldError) Unwrap() error { return ErrConfiguration }

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}
