package memory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textsum/internal/history"
)

func ids(items []history.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestNewStorage_InvalidCapacity(t *testing.T) {
	_, err := NewStorage(0)
	assert.Error(t, err)
}

func TestStorage_AddAssignsID(t *testing.T) {
	s, err := NewStorage(5)
	require.NoError(t, err)

	item, err := s.Add(history.Item{InputText: "in", Summary: "out"})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)

	got, err := s.Get(item.ID)
	require.NoError(t, err)
	assert.Equal(t, item, got)
}

func TestStorage_DuplicateID(t *testing.T) {
	s, err := NewStorage(5)
	require.NoError(t, err)

	_, err = s.Add(history.Item{ID: "a"})
	require.NoError(t, err)
	_, err = s.Add(history.Item{ID: "a"})
	assert.Error(t, err)
}

func TestStorage_ListNewestFirst(t *testing.T) {
	s, err := NewStorage(5)
	require.NoError(t, err)

	for _, id := range []string{"a", "b", "c"} {
		_, err := s.Add(history.Item{ID: id})
		require.NoError(t, err)
	}
	_, err = s.Get("a")
	require.NoError(t, err)

	assert.Equal(t, []string{"c", "b", "a"}, ids(s.List()))
}

func TestStorage_EvictsOldest(t *testing.T) {
	s, err := NewStorage(3)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := s.Add(history.Item{ID: fmt.Sprint(i)})
		require.NoError(t, err)
	}

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"4", "3", "2"}, ids(s.List()))
	_, err = s.Get("0")
	assert.ErrorIs(t, err, history.ErrNotFound)
}

func TestStorage_Remove(t *testing.T) {
	s, err := NewStorage(3)
	require.NoError(t, err)
	_, err = s.Add(history.Item{ID: "a"})
	require.NoError(t, err)
	_, err = s.Add(history.Item{ID: "b"})
	require.NoError(t, err)

	require.NoError(t, s.Remove("a"))
	assert.ErrorIs(t, s.Remove("a"), history.ErrNotFound)
	assert.Equal(t, []string{"b"}, ids(s.List()))
}

func TestStorage_Clear(t *testing.T) {
	s, err := NewStorage(3)
	require.NoError(t, err)
	_, err = s.Add(history.Item{ID: "a"})
	require.NoError(t, err)

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.List())
}
