package asset

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyName    = errors.New("asset does not have a name")
	ErrNothingToDo  = errors.New("no importable lines found")
	ErrInvalidCount = errors.New("tag count must be between 1 and 100")
)

type InvalidTagError struct {
	Tag string
}

func (err InvalidTagError) Error() string {
	return fmt.Sprintf("invalid tag format: %q", err.Tag)
}

type ValidationError struct {
	Err error
}

func (e ValidationError) Error() string {
	return e.Err.Error()
}
