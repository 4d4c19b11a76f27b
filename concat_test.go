package catgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/catgo/testutil"
)

func TestConcatLocalReconciles(t *testing.T) {
	left, err := Cast(NewStringColumn("foo", "bar"))
	require.NoError(t, err)
	right, err := Cast(NewStringColumn("bar", "baz"))
	require.NoError(t, err)

	out, err := Concat(left, right)
	require.NoError(t, err)

	// Left codes dominate; right-only values are appended in the right
	// side's first-seen order.
	assert.Equal(t, []string{"foo", "bar", "baz"}, out.Categories())
	assert.Equal(t, []uint32{0, 1, 1, 2}, out.Codes())

	sc, err := out.CastUtf8()
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar", "bar", "baz"}, sc.Values)

	// The inputs keep their original dictionaries.
	assert.Equal(t, []string{"foo", "bar"}, left.Categories())
	assert.Equal(t, []string{"bar", "baz"}, right.Categories())
}

func TestConcatSharedScopeFastPath(t *testing.T) {
	t.Cleanup(ResetStringCache)

	h := EnterStringCache()
	defer h.Release()

	left, err := Cast(NewStringColumn("a", "b"))
	require.NoError(t, err)
	right, err := Cast(NewStringColumn("b", "c"))
	require.NoError(t, err)

	out, err := Concat(left, right)
	require.NoError(t, err)

	assert.Equal(t, RevMapGlobal, out.RevMap().Kind())
	sc, err := out.CastUtf8()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "b", "c"}, sc.Values)
}

func TestConcatClearsSortedFlag(t *testing.T) {
	t.Cleanup(ResetStringCache)

	h := EnterStringCache()
	defer h.Release()

	left, err := Cast(NewStringColumn("a", "a", "b", "b"))
	require.NoError(t, err)
	left.SetSorted(true)
	right, err := Cast(NewStringColumn("a", "a", "b", "b"))
	require.NoError(t, err)
	right.SetSorted(true)

	out, err := Concat(left, right)
	require.NoError(t, err)

	// Appending a second sorted run breaks global row order.
	assert.False(t, out.IsSorted())

	counts, err := out.ValueCounts(false)
	require.NoError(t, err)
	assert.Equal(t, []ValueCount{
		{Value: "a", Count: 4},
		{Value: "b", Count: 4},
	}, counts)
}

func TestConcatIncompatibleSources(t *testing.T) {
	t.Cleanup(ResetStringCache)

	h1 := EnterStringCache()
	g1, err := Cast(NewStringColumn("a"))
	require.NoError(t, err)
	h1.Release()

	h2 := EnterStringCache()
	g2, err := Cast(NewStringColumn("a"))
	require.NoError(t, err)
	h2.Release()

	local, err := Cast(NewStringColumn("a"))
	require.NoError(t, err)

	_, err = Concat(g1, g2)
	assert.ErrorIs(t, err, ErrIncompatibleSources)

	_, err = Concat(g1, local)
	assert.ErrorIs(t, err, ErrIncompatibleSources)

	_, err = Concat(local, g1)
	assert.ErrorIs(t, err, ErrIncompatibleSources)
}

func TestConcatSharedLocalDictionary(t *testing.T) {
	col, err := Cast(NewStringColumn("a", "b", "c"))
	require.NoError(t, err)

	head, err := col.Slice(0, 1)
	require.NoError(t, err)

	out, err := Concat(col, head)
	require.NoError(t, err)

	sc, err := out.CastUtf8()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "a"}, sc.Values)
}

func TestConcatPreservesNulls(t *testing.T) {
	left, err := Cast(NewNullableStringColumn([]*string{ptr("a"), nil}))
	require.NoError(t, err)
	right, err := Cast(NewNullableStringColumn([]*string{nil, ptr("b")}))
	require.NoError(t, err)

	out, err := Concat(left, right)
	require.NoError(t, err)

	sc, err := out.CastUtf8()
	require.NoError(t, err)
	got := sc.ToPointers()
	require.Len(t, got, 4)
	assert.Equal(t, "a", *got[0])
	assert.Nil(t, got[1])
	assert.Nil(t, got[2])
	assert.Equal(t, "b", *got[3])
}

func TestConcatLargeColumnParallelTranslate(t *testing.T) {
	rng := testutil.NewRNG(7)

	leftWords := rng.Words(1000, 50)
	rightWords := rng.Words(100_000, 500)

	left, err := Cast(NewStringColumn(leftWords...))
	require.NoError(t, err)
	right, err := Cast(NewStringColumn(rightWords...))
	require.NoError(t, err)

	out, err := Concat(left, right, WithParallelism(4))
	require.NoError(t, err)
	require.Equal(t, len(leftWords)+len(rightWords), out.Len())

	sc, err := out.CastUtf8()
	require.NoError(t, err)
	assert.Equal(t, append(append([]string{}, leftWords...), rightWords...), sc.Values)
}
