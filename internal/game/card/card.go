package card

import (
	"strconv"
)

// Suit 定义花色. The numeric order is the tie-break order.
type Suit int

// Rank 定义点数
type Rank int

// CardColor 定义牌的颜色
type CardColor int

const (
	Black CardColor = iota
	Red
)

const (
	Clubs    Suit = iota // Tép
	Diamonds             // Rô
	Hearts               // Cơ
	Spades               // Bích
)

var suitSymbols = map[Suit]string{
	Spades:   "♠",
	Hearts:   "♥",
	Diamonds: "♦",
	Clubs:    "♣",
}

var suitLabels = map[Suit]string{
	Spades:   "Bích",
	Hearts:   "Cơ",
	Diamonds: "Rô",
	Clubs:    "Tép",
}

// Suits lists every suit from weakest to strongest.
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return ""
}

// Label returns the table name of the suit.
func (s Suit) Label() string {
	return suitLabels[s]
}

// Strength is the suit rank used to break ties on points.
func (s Suit) Strength() int {
	return int(s)
}

const (
	RankA Rank = iota + 1
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ
	RankQ
	RankK
)

var rankNames = map[Rank]string{
	RankA: "A",
	RankJ: "J",
	RankQ: "Q",
	RankK: "K",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// Card 定义一张牌
type Card struct {
	Suit Suit
	Rank Rank
}

// PointValue returns the card's contribution to a hand total.
func (c Card) PointValue() int {
	if c.Rank >= Rank10 {
		return 10
	}
	return int(c.Rank)
}

// SuitRank returns the card's tie-break strength.
func (c Card) SuitRank() int {
	return c.Suit.Strength()
}

func (c Card) Color() CardColor {
	if c.Suit == Hearts || c.Suit == Diamonds {
		return Red
	}
	return Black
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Canonical returns the 52 distinct cards in suit then rank order.
func Canonical() []Card {
	cards := make([]Card, 0, 52)
	for _, s := range Suits {
		for r := RankA; r <= RankK; r++ {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}
	return cards
}
