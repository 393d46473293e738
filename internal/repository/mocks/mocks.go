package mocks

import (
	"context"
	"time"

	"github.com/rpggio/comicfolio/internal/domain/account"
	"github.com/rpggio/comicfolio/internal/domain/experience"
	"github.com/rpggio/comicfolio/internal/domain/gadget"
	"github.com/rpggio/comicfolio/internal/domain/message"
	"github.com/rpggio/comicfolio/internal/domain/project"
	"github.com/rpggio/comicfolio/internal/domain/skill"
	"github.com/stretchr/testify/mock"
)

// ProjectRepository is a mock for project.Repository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Get(ctx context.Context, id int64) (*project.Project, error) {
	args := m.Called(ctx, id)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Update(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ExperienceRepository is a mock for experience.Repository.
type ExperienceRepository struct {
	mock.Mock
}

func (m *ExperienceRepository) Create(ctx context.Context, exp *experience.Experience) error {
	args := m.Called(ctx, exp)
	return args.Error(0)
}

func (m *ExperienceRepository) List(ctx context.Context) ([]experience.Experience, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]experience.Experience); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ExperienceRepository) Update(ctx context.Context, exp *experience.Experience) error {
	args := m.Called(ctx, exp)
	return args.Error(0)
}

// SkillRepository is a mock for skill.Repository.
type SkillRepository struct {
	mock.Mock
}

func (m *SkillRepository) Create(ctx context.Context, sk *skill.Skill) error {
	args := m.Called(ctx, sk)
	return args.Error(0)
}

func (m *SkillRepository) List(ctx context.Context) ([]skill.Skill, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]skill.Skill); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SkillRepository) Update(ctx context.Context, sk *skill.Skill) error {
	args := m.Called(ctx, sk)
	return args.Error(0)
}

func (m *SkillRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// GadgetRepository is a mock for gadget.Repository.
type GadgetRepository struct {
	mock.Mock
}

func (m *GadgetRepository) Create(ctx context.Context, g *gadget.Gadget) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *GadgetRepository) List(ctx context.Context) ([]gadget.Gadget, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]gadget.Gadget); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *GadgetRepository) Update(ctx context.Context, g *gadget.Gadget) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *GadgetRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MessageRepository is a mock for message.Repository.
type MessageRepository struct {
	mock.Mock
}

func (m *MessageRepository) Create(ctx context.Context, msg *message.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MessageRepository) List(ctx context.Context) ([]message.Message, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]message.Message); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MessageRepository) MarkRead(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// AccountRepository is a mock for account.Repository.
type AccountRepository struct {
	mock.Mock
}

func (m *AccountRepository) CreateUser(ctx context.Context, user *account.User, passwordHash string) error {
	args := m.Called(ctx, user, passwordHash)
	return args.Error(0)
}

func (m *AccountRepository) GetUser(ctx context.Context, id string) (*account.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*account.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AccountRepository) GetUserByEmail(ctx context.Context, email string) (*account.User, string, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*account.User); ok {
		return user, args.String(1), args.Error(2)
	}
	return nil, args.String(1), args.Error(2)
}

func (m *AccountRepository) CreateSession(ctx context.Context, sess *account.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *AccountRepository) GetSession(ctx context.Context, token string) (*account.Session, error) {
	args := m.Called(ctx, token)
	if sess, ok := args.Get(0).(*account.Session); ok {
		return sess, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AccountRepository) DeleteSession(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *AccountRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}
