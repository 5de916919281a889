package rbvec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilderCompletes(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	requireT := require.New(t)
	//
	b := NewBuilder[int]()
	requireT.NoError(b.Append(1, 2, 3))
	requireT.NoError(b.Append(4))
	requireT.Equal(4, b.Len())
	v := b.Vector()
	requireT.Equal([]int{1, 2, 3, 4}, v.Values())
	requireT.ErrorIs(b.Append(5), ErrVectorCompleted)
	requireT.Equal(v, b.Vector())

	b.Reset()
	requireT.NoError(b.Append(9))
	requireT.Equal("[9]", b.Vector().String())
}

func TestBuilderKeepsBranchingForEmptyVector(t *testing.T) {
	requireT := require.New(t)

	b, err := NewBuilderWithBranching[uint8](3)
	requireT.NoError(err)
	v := b.Vector()
	requireT.True(v.IsVoid())
	requireT.Equal(3, v.BranchingBits())
}

func TestNilBuilder(t *testing.T) {
	var b *Builder[int]
	require.ErrorIs(t, b.Append(1), ErrIllegalArguments)
	require.True(t, b.Vector().IsVoid())
	require.NotPanics(t, b.Reset)
	require.Equal(t, 0, b.Len())
}
