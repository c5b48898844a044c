package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNG_Reset(t *testing.T) {
	rng := NewRNG(4711)

	first := []int{rng.Intn(1000), rng.Intn(1000), rng.Intn(1000)}
	rng.Reset()
	second := []int{rng.Intn(1000), rng.Intn(1000), rng.Intn(1000)}

	assert.Equal(t, first, second)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestPerm(t *testing.T) {
	rng := NewRNG(4711)

	p := rng.Perm(64)

	assert.Len(t, p, 64)
	seen := make(map[int]bool, 64)
	for _, v := range p {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 64)
		seen[v] = true
	}
	assert.Len(t, seen, 64)
}

func TestBitPattern(t *testing.T) {
	rng := NewRNG(4711)

	t.Run("empty density", func(t *testing.T) {
		for _, v := range rng.BitPattern(100, 0) {
			assert.False(t, v)
		}
	})

	t.Run("full density", func(t *testing.T) {
		for _, v := range rng.BitPattern(100, 1) {
			assert.True(t, v)
		}
	})

	t.Run("partial density", func(t *testing.T) {
		p := rng.BitPattern(10000, 0.3)
		assert.Len(t, p, 10000)

		set := 0
		for _, v := range p {
			if v {
				set++
			}
		}
		assert.InDelta(t, 3000, set, 300)
	})
}
