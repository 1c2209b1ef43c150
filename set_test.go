package chainmap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_Basic(t *testing.T) {
	s := NewSet[string](16)

	require.NoError(t, s.Add("foo"))
	assert.True(t, s.Contains("foo"))
	assert.False(t, s.Contains("bar"))
	assert.Equal(t, 1, s.Size())

	err := s.Add("foo")
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Equal(t, 1, s.Size())

	assert.True(t, s.Remove("foo"))
	assert.False(t, s.Contains("foo"))
	assert.False(t, s.Remove("foo"))
}

func TestSet_Put(t *testing.T) {
	s := NewSet[int](16)

	assert.False(t, s.Put(1))
	assert.True(t, s.Put(1))
	assert.Equal(t, 1, s.Size())
}

func TestSet_Items(t *testing.T) {
	s := NewSet[string](16)

	want := map[string]struct{}{}
	for i := range 30 {
		k := fmt.Sprintf("key%d", i)
		want[k] = struct{}{}
		require.NoError(t, s.Add(k))
	}

	items := s.Items()
	require.Len(t, items, s.Size())

	got := map[string]struct{}{}
	for _, k := range items {
		got[k] = struct{}{}
	}
	assert.Equal(t, want, got)

	// All follows the same ordering as Items.
	i := 0
	for k := range s.All() {
		require.Equal(t, items[i], k)
		i++
	}
}

func TestSet_Growth(t *testing.T) {
	s := NewSet[int](16)

	for i := range 500 {
		require.NoError(t, s.Add(i))
	}

	assert.Greater(t, s.Capacity(), 16)
	assert.Zero(t, s.Capacity()%16)

	for i := range 500 {
		require.True(t, s.Contains(i))
	}
}

func TestSet_Clear(t *testing.T) {
	s := NewSet[int](16)

	for i := range 100 {
		require.NoError(t, s.Add(i))
	}

	s.Clear()

	assert.Equal(t, 0, s.Size())
	assert.Equal(t, DefaultCapacity, s.Capacity())
	assert.False(t, s.Contains(0))
}
