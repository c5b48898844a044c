package bitarray

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitarray/testutil"
)

// checkAgainst verifies every observable property of b against the oracle.
func checkAgainst(t *testing.T, b *BitArray, oracle *bitset.BitSet) {
	t.Helper()

	n := b.BitCount()
	require.Equal(t, int(oracle.Count()), b.CountSetBits())
	require.Equal(t, b.CountSetBits() == n, b.AllSet())

	firstSet, firstUnset := -1, -1
	for i := range n {
		got := b.Get(i)
		require.Equal(t, oracle.Test(uint(i)), got, "bit %d", i)

		if got && firstSet < 0 {
			firstSet = i
		}
		if !got && firstUnset < 0 {
			firstUnset = i
		}
	}

	idx, ok := b.FirstSetBit()
	require.Equal(t, firstSet >= 0, ok)
	if ok {
		require.Equal(t, firstSet, idx)
	}

	idx, ok = b.FirstUnsetBit()
	require.Equal(t, firstUnset >= 0, ok)
	if ok {
		require.Equal(t, firstUnset, idx)
	}
}

func TestRandomOperations(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for _, n := range []int{1, 5, 31, 32, 33, 63, 64, 65, 100, 257} {
		b := New(n)
		oracle := bitset.New(uint(n))

		for step := range 2000 {
			i := rng.Intn(n)

			switch rng.Intn(4) {
			case 0:
				b.Set(i)
				oracle.Set(uint(i))
			case 1:
				b.Unset(i)
				oracle.Clear(uint(i))
			case 2:
				v := rng.Bool()
				b.SetBit(i, v)
				oracle.SetTo(uint(i), v)
			case 3:
				if rng.Intn(100) == 0 {
					b.Reset()
					oracle.ClearAll()
				}
			}

			if step%50 == 0 {
				checkAgainst(t, b, oracle)
			}
		}

		checkAgainst(t, b, oracle)
	}
}

func TestFillAndDrain(t *testing.T) {
	rng := testutil.NewRNG(42)

	for _, n := range []int{1, 32, 33, 190} {
		b := New(n)
		oracle := bitset.New(uint(n))

		for _, i := range rng.Perm(n) {
			b.Set(i)
			oracle.Set(uint(i))
			checkAgainst(t, b, oracle)
		}
		require.True(t, b.AllSet())

		for _, i := range rng.Perm(n) {
			b.Unset(i)
			oracle.Clear(uint(i))
			checkAgainst(t, b, oracle)
		}
		require.Equal(t, 0, b.CountSetBits())
	}
}

func TestBitPatterns(t *testing.T) {
	rng := testutil.NewRNG(7)

	for _, density := range []float64{0, 0.01, 0.5, 0.99, 1} {
		pattern := rng.BitPattern(500, density)

		b := New(len(pattern))
		oracle := bitset.New(uint(len(pattern)))
		for i, v := range pattern {
			b.SetBit(i, v)
			oracle.SetTo(uint(i), v)
		}

		checkAgainst(t, b, oracle)

		for from := -3; from < len(pattern)+3; from += 7 {
			atom := b.AtomFromIndex(from)
			for bit := range AtomBits {
				index := from + bit
				want := index >= 0 && index < len(pattern) && pattern[index]
				require.Equal(t, want, atom&(1<<bit) != 0, "from %d bit %d", from, bit)
			}
		}
	}
}
