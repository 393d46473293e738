package dashboard

import (
	"context"
	"errors"
	"sync"

	"github.com/rpggio/comicfolio/internal/store"
)

// Mode says what saving an editor does.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// ErrNoDraft means Save was called with no open editor.
var ErrNoDraft = errors.New("no open editor")

// SaveFunc persists a draft according to mode.
type SaveFunc[T any] func(ctx context.Context, mode Mode, draft T) error

// Editor is an edit buffer for one item. The mode is fixed when the buffer
// opens and never inferred from the draft contents.
type Editor[T any] struct {
	save SaveFunc[T]

	mu    sync.Mutex
	open  bool
	mode  Mode
	draft T
	gen   uint64
}

func NewEditor[T any](save SaveFunc[T]) *Editor[T] {
	return &Editor[T]{save: save}
}

// BeginCreate opens the buffer on a fresh template.
func (e *Editor[T]) BeginCreate(template T) {
	e.begin(ModeCreate, template)
}

// BeginEdit opens the buffer on a copy of an existing item.
func (e *Editor[T]) BeginEdit(item T) {
	e.begin(ModeEdit, item)
}

func (e *Editor[T]) begin(mode Mode, draft T) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.open = true
	e.mode = mode
	e.draft = draft
	e.gen++
}

// Discard closes the buffer without saving.
func (e *Editor[T]) Discard() {
	e.mu.Lock()
	defer e.mu.Unlock()
	var zero T
	e.open = false
	e.mode = ""
	e.draft = zero
	e.gen++
}

func (e *Editor[T]) Open() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.open
}

func (e *Editor[T]) Mode() Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// Draft returns the buffered item.
func (e *Editor[T]) Draft() T {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft
}

// Edit changes the draft in place. It is a no-op when closed.
func (e *Editor[T]) Edit(fn func(draft *T)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.open {
		fn(&e.draft)
	}
}

// Save persists a snapshot of the draft. Once the write has landed the
// buffer closes, unless it was reopened or discarded while the save was in
// flight. That includes ErrReloadFailed, which is still returned. Any other
// failure leaves the buffer open with the draft intact.
func (e *Editor[T]) Save(ctx context.Context) error {
	e.mu.Lock()
	if !e.open {
		e.mu.Unlock()
		return ErrNoDraft
	}
	mode, draft, gen := e.mode, e.draft, e.gen
	e.mu.Unlock()

	err := e.save(ctx, mode, draft)
	if err != nil && !errors.Is(err, store.ErrReloadFailed) {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gen == gen {
		var zero T
		e.open = false
		e.mode = ""
		e.draft = zero
		e.gen++
	}
	return err
}
