package gallery

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextPreviousClosed(t *testing.T) {
	for c := First; c <= Size; c++ {
		require.True(t, Valid(Next(c)), "Next(%d) = %d", c, Next(c))
		require.True(t, Valid(Previous(c)), "Previous(%d) = %d", c, Previous(c))
	}
}

func TestNextPreviousInverse(t *testing.T) {
	for c := First; c <= Size; c++ {
		require.Equal(t, c, Previous(Next(c)))
		require.Equal(t, c, Next(Previous(c)))
	}
}

func TestTransitions(t *testing.T) {
	tests := []struct {
		name string
		fn   func(int) int
		in   int
		want int
	}{
		{"next 1", Next, 1, 2},
		{"next 4", Next, 4, 5},
		{"next wraps", Next, 5, 1},
		{"previous 5", Previous, 5, 4},
		{"previous 2", Previous, 2, 1},
		{"previous wraps", Previous, 1, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.fn(tt.in))
		})
	}
}

func TestTransitionsStayInRangeOutsideDomain(t *testing.T) {
	for _, c := range []int{-11, -1, 0, 6, 10, 1 << 20} {
		require.True(t, Valid(Next(c)), "Next(%d)", c)
		require.True(t, Valid(Previous(c)), "Previous(%d)", c)
	}
}
