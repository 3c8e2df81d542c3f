package ev

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, num, den int64) Value {
	t.Helper()
	v, ok := New(num, den)
	require.True(t, ok, "New(%d, %d)", num, den)
	return v
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		num, den int64
		ok       bool
		str      string
	}{
		{name: "simple fraction", num: 1, den: 2, ok: true, str: "1/2"},
		{name: "negative numerator", num: -10, den: 10, ok: true, str: "-1"},
		{name: "reduces", num: 2, den: 4, ok: true, str: "1/2"},
		{name: "negative denominator normalizes", num: 1, den: -2, ok: true, str: "-1/2"},
		{name: "zero denominator rejected", num: 1, den: 0, ok: false},
		{name: "zero value", num: 0, den: 10, ok: true, str: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := New(tt.num, tt.den)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.str, v.String())
			}
		})
	}
}

func TestValueEqualIgnoresRepresentation(t *testing.T) {
	// 1/2 must equal 2/4 and 5/10: cameras are not consistent about the
	// denominators they write.
	half := mustNew(t, 1, 2)
	assert.True(t, half.Equal(mustNew(t, 2, 4)))
	assert.True(t, half.Equal(mustNew(t, 5, 10)))
	assert.False(t, half.Equal(mustNew(t, 1, 3)))

	assert.True(t, mustNew(t, -10, 10).Equal(FromInt(-1)))
}

func TestValueSub(t *testing.T) {
	// 15/10 - 5/10 = 1
	got := mustNew(t, 15, 10).Sub(mustNew(t, 5, 10))
	assert.True(t, got.Equal(FromInt(1)))

	// -5/10 - 5/10 = -1
	got = mustNew(t, -5, 10).Sub(mustNew(t, 5, 10))
	assert.True(t, got.Equal(mustNew(t, -10, 10)))
}

func TestValueIsZero(t *testing.T) {
	assert.True(t, mustNew(t, 0, 10).IsZero())
	assert.True(t, Value{}.IsZero(), "zero Value is 0 EV")
	assert.False(t, mustNew(t, 1, 10).IsZero())
}

func TestValueNumDen(t *testing.T) {
	v := mustNew(t, -20, 10)
	assert.Equal(t, int64(-2), v.Num())
	assert.Equal(t, int64(1), v.Den())
}
