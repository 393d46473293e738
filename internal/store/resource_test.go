package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResource_ListReturnsCopy(t *testing.T) {
	r := NewResource("numbers", func(context.Context) ([]int, error) { return []int{1, 2}, nil }, nil)
	require.NoError(t, r.Refresh(context.Background()))

	list := r.List()
	list[0] = 99
	require.Equal(t, []int{1, 2}, r.List())
}

func TestResource_NilFetchBecomesEmpty(t *testing.T) {
	r := NewResource("empty", func(context.Context) ([]int, error) { return nil, nil }, nil)
	require.NoError(t, r.Refresh(context.Background()))
	require.True(t, r.Loaded())
	require.NotNil(t, r.List())
	require.Zero(t, r.Len())
}

func TestResource_StaleRefreshIsDropped(t *testing.T) {
	type answer struct {
		items []int
		err   error
	}
	calls := make(chan chan answer, 2)
	r := NewResource("numbers", func(context.Context) ([]int, error) {
		reply := make(chan answer)
		calls <- reply
		a := <-reply
		return a.items, a.err
	}, nil)

	ctx := context.Background()
	firstDone := make(chan error, 1)
	go func() { firstDone <- r.Refresh(ctx) }()
	first := <-calls

	secondDone := make(chan error, 1)
	go func() { secondDone <- r.Refresh(ctx) }()
	second := <-calls

	second <- answer{items: []int{2}}
	require.NoError(t, <-secondDone)
	require.Equal(t, []int{2}, r.List())

	first <- answer{items: []int{1}}
	require.NoError(t, <-firstDone)
	require.Equal(t, []int{2}, r.List(), "older answer must not overwrite newer one")
}

func TestResource_StaleFailureDoesNotSetErr(t *testing.T) {
	calls := make(chan chan error, 2)
	r := NewResource("numbers", func(context.Context) ([]int, error) {
		reply := make(chan error)
		calls <- reply
		if err := <-reply; err != nil {
			return nil, err
		}
		return []int{7}, nil
	}, nil)

	ctx := context.Background()
	firstDone := make(chan error, 1)
	go func() { firstDone <- r.Refresh(ctx) }()
	first := <-calls
	secondDone := make(chan error, 1)
	go func() { secondDone <- r.Refresh(ctx) }()
	second := <-calls

	second <- nil
	require.NoError(t, <-secondDone)
	first <- errors.New("late failure")
	require.Error(t, <-firstDone)
	require.NoError(t, r.Err())
}

func TestResource_MutateOrdersRefreshAfterWrite(t *testing.T) {
	var log []string
	r := NewResource("numbers", func(context.Context) ([]int, error) {
		log = append(log, "fetch")
		return []int{1}, nil
	}, nil)

	err := r.Mutate(context.Background(), func(context.Context) error {
		log = append(log, "write")
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"write", "fetch"}, log)
}
