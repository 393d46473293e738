package experience

import "errors"

var (
	// ErrExperienceNotFound indicates the entry doesn't exist.
	ErrExperienceNotFound = errors.New("experience not found")
	// ErrInvalidInput indicates invalid experience input.
	ErrInvalidInput = errors.New("invalid experience input")
)
