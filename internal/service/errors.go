package service

import (
	"errors"
	"fmt"
	"tush00nka/studybud/internal/repository"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("you're not allowed here")
	ErrUnauthenticated = errors.New("authentication required")
	ErrValidation      = errors.New("invalid input")
	ErrConflict        = errors.New("already exists")
	ErrUnavailable     = errors.New("not available")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// lookup turns a repository miss into ErrNotFound naming what was missing.
func lookup(what string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%s %w", what, ErrNotFound)
	}
	return err
}
