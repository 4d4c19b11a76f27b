package catgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/catgo/dict"
)

func TestRevMapKindString(t *testing.T) {
	assert.Equal(t, "Local", RevMapLocal.String())
	assert.Equal(t, "Global", RevMapGlobal.String())
	assert.Equal(t, "Unknown", RevMapKind(9).String())
}

func TestRevMapSameSource(t *testing.T) {
	shared := dict.FromValues([]string{"a"})

	tests := []struct {
		name string
		a, b *RevMap
		want bool
	}{
		{"GlobalSameGeneration", newGlobalRevMap(3, dict.New()), newGlobalRevMap(3, dict.New()), true},
		{"GlobalDifferentGeneration", newGlobalRevMap(3, dict.New()), newGlobalRevMap(4, dict.New()), false},
		{"LocalSharedDictionary", newLocalRevMap(shared), newLocalRevMap(shared), true},
		{"LocalIndependent", newLocalRevMap(dict.FromValues([]string{"a"})), newLocalRevMap(dict.FromValues([]string{"a"})), false},
		{"GlobalVersusLocal", newGlobalRevMap(0, dict.New()), newLocalRevMap(shared), false},
		{"NilOther", newLocalRevMap(shared), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.SameSource(tt.b))
		})
	}
}

func TestRevMapLookupDoesNotGrow(t *testing.T) {
	rm := newLocalRevMap(dict.FromValues([]string{"a", "b"}))

	_, ok := rm.Lookup("zzz")
	assert.False(t, ok)
	assert.Equal(t, 2, rm.Len())

	s, err := rm.Decode(1)
	require.NoError(t, err)
	assert.Equal(t, "b", s)

	_, err = rm.Decode(2)
	assert.Error(t, err)
}
