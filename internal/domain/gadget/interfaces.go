package gadget

import "context"

// Repository provides persistence for gadgets.
type Repository interface {
	Create(ctx context.Context, g *Gadget) error
	List(ctx context.Context) ([]Gadget, error)
	Update(ctx context.Context, g *Gadget) error
	Delete(ctx context.Context, id string) error
}
