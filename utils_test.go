package chainmap

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCapacityFromSize(t *testing.T) {
	sizeOfEntry := unsafe.Sizeof(entry[int, int]{})

	tests := []struct {
		name string
		size uintptr
		want int
	}{
		{"zero", 0, 0},
		{"less than one entry", sizeOfEntry - 1, 0},
		{"three entries", sizeOfEntry * 3, 4},
		{"thirty entries", sizeOfEntry * 30, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CapacityFromSize[int, int](tt.size)
			require.Equal(t, tt.want, got)
		})
	}

	t.Run("usage with New", func(t *testing.T) {
		capacity := CapacityFromSize[int, int](sizeOfEntry * 30)
		require.Equal(t, 40, capacity)

		m := New[int, int](capacity)
		require.Equal(t, 40, m.Capacity())

		// 30 entries fit without triggering growth (30/40 = 0.75).
		for i := range 30 {
			require.NoError(t, m.Add(i, i))
		}
		require.Equal(t, 40, m.Capacity())
	})
}

type testStringer struct{}

func (testStringer) String() string { return "stringer" }

func TestStringForm(t *testing.T) {
	require.Equal(t, "foo", stringForm("foo"))
	require.Equal(t, "5", stringForm(5))
	require.Equal(t, "stringer", stringForm(testStringer{}))
}
