package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "b"}, "b"), "Should return the first match")
	require.Equal(t, -1, FindIndex([]string{"a"}, "c"))
	require.Equal(t, -1, FindIndex(nil, 0))
}

func TestOther(t *testing.T) {
	pair := [2]string{"1", "2"}

	require.Equal(t, "2", Other(pair, "1"))
	require.Equal(t, "1", Other(pair, "2"))
}
