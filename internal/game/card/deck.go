package card

import (
	"math/rand/v2"
)

// Deck 定义一副牌. Draw never runs dry: an empty deck is rebuilt and shuffled.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck returns a shuffled deck seeded from the runtime's entropy.
func NewDeck() *Deck {
	return NewDeckWithSource(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewDeckWithSource returns a shuffled deck driven by src.
func NewDeckWithSource(src rand.Source) *Deck {
	d := &Deck{rng: rand.New(src)}
	d.Reset()
	return d
}

// Reset regenerates all 52 cards and shuffles them.
func (d *Deck) Reset() {
	d.cards = Canonical()
	d.Shuffle()
}

// Shuffle permutes the remaining cards uniformly.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card.
func (d *Deck) Draw() Card {
	if len(d.cards) == 0 {
		d.Reset()
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c
}
