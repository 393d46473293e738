package message

import "context"

// Repository provides persistence for messages.
type Repository interface {
	Create(ctx context.Context, msg *Message) error
	List(ctx context.Context) ([]Message, error)
	MarkRead(ctx context.Context, id string) error
}
