package domain

import "fmt"

// Shuffle permutes s in place with a Fisher-Yates shuffle driven by rng.
func Shuffle[T any](rng RNG, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// PickIndex returns a uniform index in [0, n). It panics when n <= 0: asking
// for a number from an empty range is a programming error.
func PickIndex(rng RNG, n int) int {
	if n <= 0 {
		panic(fmt.Errorf("%w: pick from %d", ErrEmptyRange, n))
	}
	return rng.Intn(n)
}

// PickOne shuffles a copy of items and returns its first element. items is
// left untouched.
func PickOne[T any](rng RNG, items []T) T {
	if len(items) == 0 {
		panic(fmt.Errorf("%w: pick from empty list", ErrEmptyRange))
	}
	c := append([]T(nil), items...)
	Shuffle(rng, c)
	return c[0]
}
