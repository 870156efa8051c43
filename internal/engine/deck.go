package engine

import (
	"math/rand"

	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/game"
)

// ShuffleDeck returns a uniformly random permutation of deck using the
// provided source. The input slice is not mutated. rand.Shuffle performs
// a Fisher–Yates pass, which gives a uniform distribution (unlike the
// random-comparator sort this replaces).
func ShuffleDeck(rng *rand.Rand, deck []string) []string {
	out := make([]string, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// DrawInitialHand resolves the top HandSize deck entries into cards. An
// entry with no catalog counterpart fails the whole draw: a partial hand
// silently flowing into combat is exactly the defect this guard exists
// to prevent.
func DrawInitialHand(deck []string, r Rules) ([]game.Card, error) {
	if len(deck) < r.HandSize {
		return nil, ErrDeckExhausted
	}
	hand := make([]game.Card, 0, r.HandSize)
	for _, name := range deck[:r.HandSize] {
		card, ok := r.Catalog.ByName(name)
		if !ok {
			return nil, ErrCardNotFound
		}
		hand = append(hand, card)
	}
	return hand, nil
}

// DrawCard returns the replacement card for the given turn: deck position
// (turnNumber + DrawOffset) mod len(deck). Draws are simple positional
// indexing; there is no discard tracking, so a position already dealt can
// in principle recur with other deck sizes than the standard 10.
func DrawCard(deck []string, turnNumber int, r Rules) (game.Card, error) {
	if len(deck) == 0 {
		return game.Card{}, ErrDeckExhausted
	}
	name := deck[(turnNumber+r.DrawOffset)%len(deck)]
	card, ok := r.Catalog.ByName(name)
	if !ok {
		return game.Card{}, ErrCardNotFound
	}
	return card, nil
}
