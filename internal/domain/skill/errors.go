package skill

import "errors"

var (
	// ErrSkillNotFound indicates the skill doesn't exist.
	ErrSkillNotFound = errors.New("skill not found")
	// ErrInvalidInput indicates invalid skill input.
	ErrInvalidInput = errors.New("invalid skill input")
)
