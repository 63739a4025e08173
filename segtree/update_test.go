package segtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rangefold/monoid"
	"github.com/katalvlaran/rangefold/segtree"
)

// TestUpdate_PropagatesToQueries walks the classic flow: build, overwrite
// one element, observe every covering range change.
func TestUpdate_PropagatesToQueries(t *testing.T) {
	st, err := segtree.New([]int{1, 2, 3, 4}, monoid.Sum[int]())
	require.NoError(t, err)

	st.Update(0, 10)

	firstTwo, err := st.Query(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 12, firstTwo)

	all, err := st.Query(0, 4)
	require.NoError(t, err)
	assert.Equal(t, 19, all)

	assert.Equal(t, 10, st.Get(0))
	assert.Equal(t, 19, st.Total())
}

// TestUpdate_LeavesNeighborsAlone ensures a point write touches exactly
// one logical element.
func TestUpdate_LeavesNeighborsAlone(t *testing.T) {
	st, err := segtree.New([]int{1, 2, 3, 4, 5, 6, 7}, monoid.Sum[int]())
	require.NoError(t, err)

	st.Update(3, -4)

	assert.Equal(t, []int{1, 2, 3, -4, 5, 6, 7}, st.Leaves())
}

// TestUpdate_KeepsConcatOrder updates the middle of a non-commutative,
// non-power-of-two tree and checks the fold order end to end.
func TestUpdate_KeepsConcatOrder(t *testing.T) {
	st, err := segtree.New([]string{"a", "b", "c", "d", "e"}, monoid.Concat())
	require.NoError(t, err)

	st.Update(2, "C")

	assert.Equal(t, "abCde", st.Total())
	mid, err := st.Query(1, 4)
	require.NoError(t, err)
	assert.Equal(t, "bCd", mid)
}

// TestUpdate_PanicsOutOfRange pins the unchecked contract: panic, never a
// silent write into internal nodes.
func TestUpdate_PanicsOutOfRange(t *testing.T) {
	st, err := segtree.New([]int{1, 2, 3, 4}, monoid.Sum[int]())
	require.NoError(t, err)

	assert.Panics(t, func() { st.Update(-1, 9) })
	assert.Panics(t, func() { st.Update(4, 9) })
	assert.Equal(t, 10, st.Total(), "failed updates must not leak partial writes")
}

// TestSet_Checked verifies the error-returning write-through.
func TestSet_Checked(t *testing.T) {
	st, err := segtree.New([]int{1, 2, 3, 4}, monoid.Sum[int]())
	require.NoError(t, err)

	require.NoError(t, st.Set(1, 20))
	assert.Equal(t, 28, st.Total())

	assert.ErrorIs(t, st.Set(-1, 0), segtree.ErrOutOfRange)
	assert.ErrorIs(t, st.Set(4, 0), segtree.ErrOutOfRange)
	assert.Equal(t, 28, st.Total(), "rejected writes must not change state")
}

// TestAssign replaces contents wholesale and rebuilds.
func TestAssign(t *testing.T) {
	st, err := segtree.New([]int{1, 2, 3, 4, 5}, monoid.Sum[int]())
	require.NoError(t, err)

	require.NoError(t, st.Assign([]int{10, 20, 30, 40, 50}))
	assert.Equal(t, 150, st.Total())

	mid, err := st.Query(1, 4)
	require.NoError(t, err)
	assert.Equal(t, 90, mid)

	fresh, err := segtree.New([]int{10, 20, 30, 40, 50}, monoid.Sum[int]())
	require.NoError(t, err)
	assert.Equal(t, fresh.Leaves(), st.Leaves())
}

// TestAssign_LengthMismatch keeps the tree intact on rejected input.
func TestAssign_LengthMismatch(t *testing.T) {
	st, err := segtree.New([]int{1, 2, 3}, monoid.Sum[int]())
	require.NoError(t, err)

	assert.ErrorIs(t, st.Assign([]int{1, 2}), segtree.ErrLengthMismatch)
	assert.ErrorIs(t, st.Assign([]int{1, 2, 3, 4}), segtree.ErrLengthMismatch)
	assert.Equal(t, 6, st.Total(), "rejected assign must not change state")
}
