package card

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeck(seed uint64) *Deck {
	return NewDeckWithSource(rand.NewPCG(seed, seed))
}

func TestNewDeck(t *testing.T) {
	t.Parallel()

	d := NewDeck()
	assert.Len(t, d.cards, 52)
	assert.ElementsMatch(t, Canonical(), d.cards)
}

func TestDeck_DrawWithoutReplacement(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 3, 17, 51, 52} {
		d := newTestDeck(uint64(n) + 7)

		drawn := make([]Card, 0, n)
		for range n {
			drawn = append(drawn, d.Draw())
		}

		seen := make(map[Card]bool)
		for _, c := range drawn {
			require.False(t, seen[c], "card %s drawn twice", c)
			seen[c] = true
		}

		union := append(append([]Card{}, drawn...), d.cards...)
		assert.ElementsMatch(t, Canonical(), union, "draws=%d", n)
	}
}

func TestDeck_DrawReshufflesWhenEmpty(t *testing.T) {
	t.Parallel()

	d := newTestDeck(42)
	for range 52 {
		d.Draw()
	}
	assert.Empty(t, d.cards)

	c := d.Draw()
	assert.Contains(t, Canonical(), c)
	assert.Len(t, d.cards, 51)
	assert.NotContains(t, d.cards, c)
}

func TestDeck_Reset(t *testing.T) {
	t.Parallel()

	d := newTestDeck(3)
	for range 10 {
		d.Draw()
	}
	d.Reset()

	assert.Len(t, d.cards, 52)
	assert.ElementsMatch(t, Canonical(), d.cards)
}

func TestDeck_SeededShuffleIsReproducible(t *testing.T) {
	t.Parallel()

	a := newTestDeck(99)
	b := newTestDeck(99)
	assert.Equal(t, a.cards, b.cards)
	assert.NotEqual(t, Canonical(), a.cards)
}
