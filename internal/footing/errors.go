package footing

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every *ValidationError with errors.Is
	ErrValidation = errors.New("validation error")

	// ErrDomain matches every *DomainError with errors.Is
	ErrDomain = errors.New("domain error")
)

// ValidationError represents invalid geometry or load input.
// It is returned before any load case is evaluated.
type ValidationError struct {
	Case string // offending load case, empty for geometry errors
	msg  string
}

func (e *ValidationError) Error() string {
	if e.Case != "" {
		return fmt.Sprintf("load case %q: %s", e.Case, e.msg)
	}
	return e.msg
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// DomainError represents a formula evaluated outside its domain,
// such as a division by zero.
type DomainError struct {
	Case string
	msg  string
}

func (e *DomainError) Error() string {
	if e.Case != "" {
		return fmt.Sprintf("load case %q: %s", e.Case, e.msg)
	}
	return e.msg
}

func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

// withCase tags an engine error with the load case it came from
func withCase(err error, name string) error {
	var ve *ValidationError
	if errors.As(err, &ve) && ve.Case == "" {
		return &ValidationError{Case: name, msg: ve.msg}
	}
	var de *DomainError
	if errors.As(err, &de) && de.Case == "" {
		return &DomainError{Case: name, msg: de.msg}
	}
	return err
}
