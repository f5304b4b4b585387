package domain

import "errors"

// Error kinds. Every typed error below unwraps to one of these, so callers can
// branch on the kind with errors.Is without caring which parameter or
// collaborator was involved.
var (
	ErrMissingParam      = errors.New("missing param")
	ErrInvalidParam      = errors.New("invalid param")
	ErrMissingDependency = errors.New("missing dependency")
)

// MissingParamError reports a required input that was absent or blank.
type MissingParamError struct {
	Param string
}

func NewMissingParamError(param string) *MissingParamError {
	return &MissingParamError{Param: param}
}

func (e *MissingParamError) Error() string {
	return "missing param: " + e.Param
}

func (e *MissingParamError) Unwrap() error { return ErrMissingParam }

// Is matches another MissingParamError naming the same parameter.
func (e *MissingParamError) Is(target error) bool {
	var t *MissingParamError
	if !errors.As(target, &t) {
		return false
	}
	return t.Param == e.Param
}

// InvalidParamError reports an input that is present but malformed.
type InvalidParamError struct {
	Param string
}

func NewInvalidParamError(param string) *InvalidParamError {
	return &InvalidParamError{Param: param}
}

func (e *InvalidParamError) Error() string {
	return "invalid param: " + e.Param
}

func (e *InvalidParamError) Unwrap() error { return ErrInvalidParam }

func (e *InvalidParamError) Is(target error) bool {
	var t *InvalidParamError
	if !errors.As(target, &t) {
		return false
	}
	return t.Param == e.Param
}

// MissingDependencyError reports a collaborator that was never wired in.
// Name is the collaborator's role, e.g. "tokenGenerator".
type MissingDependencyError struct {
	Name string
}

func NewMissingDependencyError(name string) *MissingDependencyError {
	return &MissingDependencyError{Name: name}
}

func (e *MissingDependencyError) Error() string {
	return "missing dependency: " + e.Name
}

func (e *MissingDependencyError) Unwrap() error { return ErrMissingDependency }

func (e *MissingDependencyError) Is(target error) bool {
	var t *MissingDependencyError
	if !errors.As(target, &t) {
		return false
	}
	return t.Name == e.Name
}
