package experience

import "context"

// Repository provides persistence for experience entries. Entries cannot be
// deleted.
type Repository interface {
	Create(ctx context.Context, exp *Experience) error
	List(ctx context.Context) ([]Experience, error)
	Update(ctx context.Context, exp *Experience) error
}
