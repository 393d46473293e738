package sqlite

import (
	"context"
	"fmt"

	"github.com/rpggio/comicfolio/internal/domain/message"
)

var _ message.Repository = (*MessageRepository)(nil)

// MessageRepository implements message.Repository for SQLite
type MessageRepository struct {
	db *DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create inserts a message
func (r *MessageRepository) Create(ctx context.Context, msg *message.Message) error {
	query := `
		INSERT INTO messages (id, codename, email, content, timestamp, read)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		msg.ID,
		msg.Codename,
		msg.Email,
		msg.Content,
		msg.Timestamp,
		boolToInt(msg.Read),
	)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// List returns all messages, newest first
func (r *MessageRepository) List(ctx context.Context) ([]message.Message, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, codename, email, content, timestamp, read
		FROM messages
		ORDER BY timestamp DESC, rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	list := []message.Message{}
	for rows.Next() {
		var (
			msg  message.Message
			read int
		)
		if err := rows.Scan(&msg.ID, &msg.Codename, &msg.Email, &msg.Content, &msg.Timestamp, &read); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		msg.Read = read != 0
		list = append(list, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", err)
	}
	return list, nil
}

// MarkRead sets the read flag
func (r *MessageRepository) MarkRead(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE messages SET read = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
	}
	return expectOneRow(res)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
