package reference

import "fmt"

type DuplicateError struct {
	Kind Kind
	Code string
}

func (e DuplicateError) Error() string {
	return fmt.Sprintf("%s code %q already exists", e.Kind, e.Code)
}

type NotFoundError struct {
	Kind Kind
	Code string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("could not find %s code %q", e.Kind, e.Code)
}

type ValidationError struct {
	Err error
}

func (e ValidationError) Error() string {
	return e.Err.Error()
}
