package message

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/comicfolio/internal/repository"
)

// Service handles the contact inbox.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new message service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// Create accepts an anonymous submission. New messages are unread.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Receipt, error) {
	if strings.TrimSpace(req.Codename) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Content) == "" {
		return nil, ErrInvalidInput
	}

	msg := &Message{
		ID:        uuid.NewString(),
		Codename:  req.Codename,
		Email:     req.Email,
		Content:   req.Content,
		Timestamp: s.now().UnixMilli(),
		Read:      false,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("creating message: %w", err)
	}
	s.logger.Info("message received", "id", msg.ID, "codename", msg.Codename)

	return &Receipt{Success: true, ID: msg.ID, Timestamp: msg.Timestamp}, nil
}

// List returns all messages, newest first.
func (s *Service) List(ctx context.Context) ([]Message, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	return list, nil
}

// MarkRead flags a message as read. Marking twice is not an error.
func (s *Service) MarkRead(ctx context.Context, id string) error {
	if err := s.repo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMessageNotFound
		}
		return fmt.Errorf("marking message read: %w", err)
	}
	return nil
}

// Unread counts messages not yet marked read.
func Unread(list []Message) int {
	n := 0
	for _, m := range list {
		if !m.Read {
			n++
		}
	}
	return n
}
