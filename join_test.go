package catgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOuterJoinSharedScope(t *testing.T) {
	t.Cleanup(ResetStringCache)

	h := EnterStringCache()
	left, err := Cast(NewStringColumn("foo", "bar"))
	require.NoError(t, err)
	right, err := Cast(NewStringColumn("bar", "baz"))
	require.NoError(t, err)
	h.Release()

	// The join itself runs after the scope closed; the generation stamps
	// still prove both columns share one code space.
	res, err := JoinOn(left, right, JoinOuter)
	require.NoError(t, err)

	keys, err := res.Keys.CastUtf8()
	require.NoError(t, err)
	assert.Equal(t, []string{"bar", "baz", "foo"}, keys.Values)

	assert.Equal(t, []int{1, -1, 0}, res.LeftRows)
	assert.Equal(t, []int{0, 1, -1}, res.RightRows)

	// The union dictionary keeps left-first, then right-only ordering.
	assert.Equal(t, []string{"foo", "bar", "baz"}, res.Keys.Categories())
}

func TestOuterJoinLocalReconciles(t *testing.T) {
	left, err := Cast(NewStringColumn("foo", "bar"))
	require.NoError(t, err)
	right, err := Cast(NewStringColumn("bar", "baz"))
	require.NoError(t, err)

	res, err := JoinOn(left, right, JoinOuter)
	require.NoError(t, err)

	keys, err := res.Keys.CastUtf8()
	require.NoError(t, err)
	assert.Equal(t, []string{"bar", "baz", "foo"}, keys.Values)
	assert.Equal(t, []string{"foo", "bar", "baz"}, res.Keys.Categories())

	// Right codes were rewritten into the union space.
	require.NotNil(t, res.Translation)
	assert.Equal(t, []uint32{1, 2}, res.Translation)
}

func TestInnerJoin(t *testing.T) {
	t.Cleanup(ResetStringCache)

	h := EnterStringCache()
	defer h.Release()

	left, err := Cast(NewStringColumn("a", "b", "c", "b"))
	require.NoError(t, err)
	right, err := Cast(NewStringColumn("b", "d", "a"))
	require.NoError(t, err)

	res, err := JoinOn(left, right, JoinInner)
	require.NoError(t, err)

	keys, err := res.Keys.CastUtf8()
	require.NoError(t, err)

	// Matches in left-row order, one output row per (left, right) pair.
	assert.Equal(t, []string{"a", "b", "b"}, keys.Values)
	assert.Equal(t, []int{0, 1, 3}, res.LeftRows)
	assert.Equal(t, []int{2, 0, 0}, res.RightRows)
}

func TestJoinDuplicateKeysMultiply(t *testing.T) {
	left, err := Cast(NewStringColumn("k", "k"))
	require.NoError(t, err)
	right, err := Cast(NewStringColumn("k", "k"))
	require.NoError(t, err)

	res, err := JoinOn(left, right, JoinInner)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Keys.Len())
}

func TestJoinNullKeysNeverMatch(t *testing.T) {
	t.Cleanup(ResetStringCache)

	h := EnterStringCache()
	defer h.Release()

	left, err := Cast(NewNullableStringColumn([]*string{ptr("a"), nil}))
	require.NoError(t, err)
	right, err := Cast(NewNullableStringColumn([]*string{nil, ptr("a")}))
	require.NoError(t, err)

	inner, err := JoinOn(left, right, JoinInner)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.Keys.Len())
	assert.Equal(t, []int{0}, inner.LeftRows)
	assert.Equal(t, []int{1}, inner.RightRows)

	outer, err := JoinOn(left, right, JoinOuter)
	require.NoError(t, err)
	// One match plus one unmatched null row per side.
	assert.Equal(t, 3, outer.Keys.Len())
	assert.True(t, outer.Keys.IsNull(0))
	assert.True(t, outer.Keys.IsNull(2))
}

func TestJoinIncompatibleSourcesFailsEagerly(t *testing.T) {
	t.Cleanup(ResetStringCache)

	h1 := EnterStringCache()
	left, err := Cast(NewStringColumn("a"))
	require.NoError(t, err)
	h1.Release()

	h2 := EnterStringCache()
	right, err := Cast(NewStringColumn("a"))
	require.NoError(t, err)
	h2.Release()

	res, err := JoinOn(left, right, JoinOuter)
	assert.ErrorIs(t, err, ErrIncompatibleSources)
	assert.Nil(t, res)
}

func TestJoinMetricsRecorded(t *testing.T) {
	mc := &BasicMetricsCollector{}

	left, err := Cast(NewStringColumn("a", "b"))
	require.NoError(t, err)
	right, err := Cast(NewStringColumn("b", "c"))
	require.NoError(t, err)

	_, err = JoinOn(left, right, JoinInner, WithMetricsCollector(mc))
	require.NoError(t, err)
	assert.Equal(t, int64(1), mc.JoinCount.Load())
	assert.Equal(t, int64(0), mc.JoinErrors.Load())

	h := EnterStringCache()
	t.Cleanup(ResetStringCache)
	global, err := Cast(NewStringColumn("a", "b"))
	require.NoError(t, err)
	h.Release()

	_, err = JoinOn(left, global, JoinInner, WithMetricsCollector(mc))
	require.Error(t, err)
	assert.Equal(t, int64(2), mc.JoinCount.Load())
	assert.Equal(t, int64(1), mc.JoinErrors.Load())
}
