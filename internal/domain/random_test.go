package domain_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dabron/scythe/internal/domain"
)

// deterministicRNG returns values from a pre-set sequence.
type deterministicRNG struct {
	values []int
	idx    int
}

func (r *deterministicRNG) Intn(n int) int {
	v := r.values[r.idx%len(r.values)] % n
	r.idx++
	return v
}

// pcgRNG is a seeded uniform source for property runs.
type pcgRNG struct{ r *rand.Rand }

func newPCG(seed uint64) *pcgRNG { return &pcgRNG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))} }

func (p *pcgRNG) Intn(n int) int { return p.r.IntN(n) }

func TestShuffle_ZerosRotateFront(t *testing.T) {
	s := []string{"a", "b", "c", "d"}
	domain.Shuffle(&deterministicRNG{values: []int{0}}, s)

	// Each step swaps position i with 0.
	require.Equal(t, []string{"b", "c", "d", "a"}, s)
}

func TestShuffle_KeepsElements(t *testing.T) {
	rng := newPCG(7)
	s := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	domain.Shuffle(rng, s)

	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, s)
}

func TestShuffle_ReachesEveryPermutation(t *testing.T) {
	rng := newPCG(11)
	counts := map[[3]int]int{}
	for range 6000 {
		s := []int{0, 1, 2}
		domain.Shuffle(rng, s)
		counts[[3]int{s[0], s[1], s[2]}]++
	}

	require.Len(t, counts, 6)
	for perm, c := range counts {
		assert.InDelta(t, 1000, c, 150, "permutation %v", perm)
	}
}

func TestPickIndex(t *testing.T) {
	t.Run("returns value in range", func(t *testing.T) {
		rng := newPCG(3)
		for range 100 {
			i := domain.PickIndex(rng, 4)
			require.GreaterOrEqual(t, i, 0)
			require.Less(t, i, 4)
		}
	})

	t.Run("panics on empty range", func(t *testing.T) {
		assert.PanicsWithError(t, "random range must not be empty: pick from 0", func() {
			domain.PickIndex(newPCG(1), 0)
		})
	})
}

func TestPickOne(t *testing.T) {
	t.Run("does not reorder input", func(t *testing.T) {
		items := []string{"x", "y", "z"}
		got := domain.PickOne(&deterministicRNG{values: []int{0}}, items)

		assert.Equal(t, "y", got)
		assert.Equal(t, []string{"x", "y", "z"}, items)
	})

	t.Run("every entry is reachable", func(t *testing.T) {
		rng := newPCG(5)
		seen := map[string]bool{}
		for range 500 {
			seen[domain.PickOne(rng, []string{"a", "b", "c", "d", "e", "f"})] = true
		}
		assert.Len(t, seen, 6)
	})

	t.Run("panics on empty list", func(t *testing.T) {
		assert.Panics(t, func() { domain.PickOne(newPCG(1), []string{}) })
	})
}
