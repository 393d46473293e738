package gadget

import "errors"

var (
	// ErrGadgetNotFound indicates the gadget doesn't exist.
	ErrGadgetNotFound = errors.New("gadget not found")
	// ErrGadgetExists indicates the requested ID is already taken.
	ErrGadgetExists = errors.New("gadget id already exists")
	// ErrInvalidInput indicates invalid gadget input.
	ErrInvalidInput = errors.New("invalid gadget input")
)
