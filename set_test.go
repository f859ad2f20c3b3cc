package main

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	set := SetOf(3, 1, 3, 2)
	require.Equal(t, 3, set.Len())
	require.True(t, set.Has(1))
	require.False(t, set.Has(4))

	set.Remove(1)
	require.False(t, set.Has(1))

	set.Insert(7)
	require.Equal(t, []int{2, 3, 7}, slices.Sorted(set.Iter()))

	var empty Set[string]
	require.False(t, empty.Has("a"))
	require.Zero(t, empty.Len())
}
