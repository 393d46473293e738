package store_test

import (
	"context"
	"strconv"
	"sync"

	"github.com/rpggio/comicfolio/internal/domain/experience"
	"github.com/rpggio/comicfolio/internal/domain/gadget"
	"github.com/rpggio/comicfolio/internal/domain/message"
	"github.com/rpggio/comicfolio/internal/domain/project"
	"github.com/rpggio/comicfolio/internal/domain/skill"
	"github.com/rpggio/comicfolio/internal/store"
)

// fakeAPI is an in-memory backend. Setting fail[method] makes that method
// return the error; calls counts every invocation by method name.
type fakeAPI struct {
	mu          sync.Mutex
	projects    []project.Project
	experiences []experience.Experience
	skills      []skill.Skill
	gadgets     []gadget.Gadget
	messages    []message.Message
	nextID      int64
	fail        map[string]error
	calls       map[string]int
}

var _ store.API = (*fakeAPI)(nil)

func newFakeAPI() *fakeAPI {
	return &fakeAPI{nextID: 1, fail: map[string]error{}, calls: map[string]int{}}
}

func (f *fakeAPI) enter(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[method]++
	return f.fail[method]
}

func (f *fakeAPI) setFail(method string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail[method] = err
}

func (f *fakeAPI) count(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeAPI) id() int64 {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeAPI) ListProjects(context.Context) ([]project.Project, error) {
	if err := f.enter("ListProjects"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]project.Project(nil), f.projects...), nil
}

func (f *fakeAPI) CreateProject(_ context.Context, p project.Project) (*project.Project, error) {
	if err := f.enter("CreateProject"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = f.id()
	f.projects = append(f.projects, p)
	return &p, nil
}

func (f *fakeAPI) UpdateProject(_ context.Context, p project.Project) error {
	if err := f.enter("UpdateProject"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.projects {
		if f.projects[i].ID == p.ID {
			f.projects[i] = p
		}
	}
	return nil
}

func (f *fakeAPI) DeleteProject(_ context.Context, id int64) error {
	if err := f.enter("DeleteProject"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.projects[:0]
	for _, p := range f.projects {
		if p.ID != id {
			out = append(out, p)
		}
	}
	f.projects = out
	return nil
}

func (f *fakeAPI) ListExperiences(context.Context) ([]experience.Experience, error) {
	if err := f.enter("ListExperiences"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]experience.Experience(nil), f.experiences...), nil
}

func (f *fakeAPI) CreateExperience(_ context.Context, e experience.Experience) (*experience.Experience, error) {
	if err := f.enter("CreateExperience"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	e.ID = f.id()
	f.experiences = append(f.experiences, e)
	return &e, nil
}

func (f *fakeAPI) UpdateExperience(_ context.Context, e experience.Experience) error {
	if err := f.enter("UpdateExperience"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.experiences {
		if f.experiences[i].ID == e.ID {
			f.experiences[i] = e
		}
	}
	return nil
}

func (f *fakeAPI) ListSkills(context.Context) ([]skill.Skill, error) {
	if err := f.enter("ListSkills"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]skill.Skill(nil), f.skills...), nil
}

func (f *fakeAPI) CreateSkill(_ context.Context, s skill.Skill) (*skill.Skill, error) {
	if err := f.enter("CreateSkill"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	s.ID = f.id()
	f.skills = append(f.skills, s)
	return &s, nil
}

func (f *fakeAPI) UpdateSkill(_ context.Context, s skill.Skill) error {
	if err := f.enter("UpdateSkill"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.skills {
		if f.skills[i].ID == s.ID {
			f.skills[i] = s
		}
	}
	return nil
}

func (f *fakeAPI) DeleteSkill(_ context.Context, id int64) error {
	if err := f.enter("DeleteSkill"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.skills[:0]
	for _, s := range f.skills {
		if s.ID != id {
			out = append(out, s)
		}
	}
	f.skills = out
	return nil
}

func (f *fakeAPI) ListGadgets(context.Context) ([]gadget.Gadget, error) {
	if err := f.enter("ListGadgets"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]gadget.Gadget(nil), f.gadgets...), nil
}

func (f *fakeAPI) CreateGadget(_ context.Context, g gadget.Gadget) (*gadget.Gadget, error) {
	if err := f.enter("CreateGadget"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gadgets = append(f.gadgets, g)
	return &g, nil
}

func (f *fakeAPI) UpdateGadget(_ context.Context, g gadget.Gadget) error {
	if err := f.enter("UpdateGadget"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.gadgets {
		if f.gadgets[i].ID == g.ID {
			f.gadgets[i] = g
		}
	}
	return nil
}

func (f *fakeAPI) DeleteGadget(_ context.Context, id string) error {
	if err := f.enter("DeleteGadget"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.gadgets[:0]
	for _, g := range f.gadgets {
		if g.ID != id {
			out = append(out, g)
		}
	}
	f.gadgets = out
	return nil
}

func (f *fakeAPI) ListMessages(context.Context) ([]message.Message, error) {
	if err := f.enter("ListMessages"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]message.Message(nil), f.messages...), nil
}

func (f *fakeAPI) SendMessage(_ context.Context, req message.CreateRequest) (*message.Receipt, error) {
	if err := f.enter("SendMessage"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	id := "m" + strconv.FormatInt(f.id(), 10)
	f.messages = append(f.messages, message.Message{ID: id, Codename: req.Codename, Email: req.Email, Content: req.Content})
	return &message.Receipt{Success: true, ID: id}, nil
}

func (f *fakeAPI) MarkMessageRead(_ context.Context, id string) error {
	if err := f.enter("MarkMessageRead"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.messages {
		if f.messages[i].ID == id {
			f.messages[i].Read = true
		}
	}
	return nil
}
