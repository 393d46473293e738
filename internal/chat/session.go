// Package chat keeps the transcript of a conversation with the portfolio
// assistant.
package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/comicfolio/internal/gemini"
)

// Role marks who produced a message.
type Role string

const (
	RoleUser  Role = gemini.RoleUser
	RoleModel Role = gemini.RoleModel
)

const (
	Greeting        = "GREETINGS CITIZEN! I am the Portfolio Assistant. Ask me anything about the developer!"
	MissingKeyReply = "SYSTEM ERROR: API_KEY_MISSING. Please configure the neural link (env variables)."
	FailureReply    = "COMMUNICATION BREAKDOWN! The signal was intercepted by a villain (API Error)."
)

var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrBusy         = errors.New("a reply is already pending")
)

// Message is one transcript entry. Timestamp is Unix milliseconds.
type Message struct {
	ID        string
	Role      Role
	Text      string
	Timestamp int64
}

// Generator produces a reply from prior turns and a new prompt. Both
// *gemini.Client and *client.Client satisfy it.
type Generator interface {
	Generate(ctx context.Context, history []gemini.Turn, prompt string) (string, error)
}

// Option configures a Session.
type Option func(*Session)

// WithMaxHistory caps how many prior messages are forwarded. Zero, the
// default, forwards the whole transcript.
func WithMaxHistory(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxHistory = n
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// Session is a single conversation. Only one Send may be in flight.
type Session struct {
	gen        Generator
	logger     *slog.Logger
	now        func() time.Time
	maxHistory int

	mu         sync.Mutex
	transcript []Message
	busy       bool
}

// NewSession starts a conversation seeded with the greeting.
func NewSession(gen Generator, opts ...Option) *Session {
	s := &Session{
		gen:    gen,
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.transcript = []Message{s.newMessage(RoleModel, Greeting)}
	return s
}

func (s *Session) newMessage(role Role, text string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		Timestamp: s.now().UnixMilli(),
	}
}

// Transcript returns a copy of the conversation so far.
func (s *Session) Transcript() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Busy reports whether a reply is pending.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Send appends the user's text, waits for the reply and appends it. A
// generation failure is answered in-band and is not returned as an error.
func (s *Session) Send(ctx context.Context, text string) (Message, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, ErrEmptyMessage
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return Message{}, ErrBusy
	}
	history := s.history()
	s.transcript = append(s.transcript, s.newMessage(RoleUser, text))
	s.busy = true
	s.mu.Unlock()

	reply, err := s.gen.Generate(ctx, history, text)
	if err != nil {
		s.logger.Warn("chat generation failed", "error", err)
		if errors.Is(err, gemini.ErrNotConfigured) {
			reply = MissingKeyReply
		} else {
			reply = FailureReply
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.newMessage(RoleModel, reply)
	s.transcript = append(s.transcript, msg)
	s.busy = false
	return msg, nil
}

// history converts the transcript before the new prompt. Callers hold mu.
func (s *Session) history() []gemini.Turn {
	msgs := s.transcript
	if s.maxHistory > 0 && len(msgs) > s.maxHistory {
		msgs = msgs[len(msgs)-s.maxHistory:]
	}
	turns := make([]gemini.Turn, 0, len(msgs))
	for _, m := range msgs {
		turns = append(turns, gemini.Turn{Role: string(m.Role), Text: m.Text})
	}
	return turns
}
