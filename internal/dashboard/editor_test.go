package dashboard

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rpggio/comicfolio/internal/store"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int
	Name string
}

type recorder struct {
	modes  []Mode
	drafts []item
	err    error
}

func (r *recorder) save(_ context.Context, mode Mode, draft item) error {
	r.modes = append(r.modes, mode)
	r.drafts = append(r.drafts, draft)
	return r.err
}

func TestEditor_SaveDispatchesOnModeNotID(t *testing.T) {
	rec := &recorder{}
	e := NewEditor(rec.save)

	e.BeginCreate(item{ID: 7, Name: "has an id"})
	require.NoError(t, e.Save(context.Background()))

	e.BeginEdit(item{Name: "no id"})
	require.NoError(t, e.Save(context.Background()))

	require.Equal(t, []Mode{ModeCreate, ModeEdit}, rec.modes)
}

func TestEditor_SaveClosesOnSuccess(t *testing.T) {
	rec := &recorder{}
	e := NewEditor(rec.save)

	e.BeginEdit(item{ID: 1, Name: "a"})
	e.Edit(func(d *item) { d.Name = "b" })
	require.Equal(t, "b", e.Draft().Name)

	require.NoError(t, e.Save(context.Background()))
	require.False(t, e.Open())
	require.Equal(t, item{ID: 1, Name: "b"}, rec.drafts[0])
	require.ErrorIs(t, e.Save(context.Background()), ErrNoDraft)
}

func TestEditor_SaveFailureKeepsDraft(t *testing.T) {
	rec := &recorder{err: errors.New("nope")}
	e := NewEditor(rec.save)

	e.BeginCreate(item{Name: "keep me"})
	require.Error(t, e.Save(context.Background()))
	require.True(t, e.Open())
	require.Equal(t, ModeCreate, e.Mode())
	require.Equal(t, "keep me", e.Draft().Name)
}

func TestEditor_ReloadFailureAfterCreateClosesBuffer(t *testing.T) {
	rec := &recorder{err: fmt.Errorf("%w: %w", store.ErrReloadFailed, errors.New("list unavailable"))}
	e := NewEditor(rec.save)

	e.BeginCreate(item{Name: "landed"})
	err := e.Save(context.Background())
	require.ErrorIs(t, err, store.ErrReloadFailed)
	require.False(t, e.Open())
	require.Empty(t, e.Mode())

	require.ErrorIs(t, e.Save(context.Background()), ErrNoDraft)
	require.Equal(t, []Mode{ModeCreate}, rec.modes)
}

func TestEditor_ReopenDuringSaveIsNotClosed(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	e := NewEditor(func(context.Context, Mode, item) error {
		close(started)
		<-release
		return nil
	})

	e.BeginCreate(item{Name: "first"})
	done := make(chan error, 1)
	go func() { done <- e.Save(context.Background()) }()
	<-started

	e.BeginEdit(item{ID: 2, Name: "second"})
	close(release)
	require.NoError(t, <-done)

	require.True(t, e.Open())
	require.Equal(t, ModeEdit, e.Mode())
	require.Equal(t, "second", e.Draft().Name)
}

func TestEditor_EditWhenClosedIsNoop(t *testing.T) {
	e := NewEditor((&recorder{}).save)
	e.Edit(func(d *item) { d.Name = "x" })
	require.Empty(t, e.Draft().Name)
	require.False(t, e.Open())
}

func TestDispatch_UnknownMode(t *testing.T) {
	save := dispatch(
		func(context.Context, item) error { return nil },
		func(context.Context, item) error { return nil },
	)
	require.ErrorIs(t, save(context.Background(), Mode("upsert"), item{}), ErrUnknownMode)
}
