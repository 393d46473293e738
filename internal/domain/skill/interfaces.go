package skill

import "context"

// Repository provides persistence for skills.
type Repository interface {
	Create(ctx context.Context, sk *Skill) error
	List(ctx context.Context) ([]Skill, error)
	Update(ctx context.Context, sk *Skill) error
	Delete(ctx context.Context, id int64) error
}
