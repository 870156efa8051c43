package engine

import (
	"errors"
	"math/rand"
	"sort"
	"testing"
)

func deckOfTen() []string {
	return []string{"Tabby", "Rex", "Pepe", "Whiskers", "Doge", "Grumpy", "Nyan", "Shiba", "Cheems", "Wojak"}
}

func TestShuffleDeck_PreservesCardsAndInput(t *testing.T) {
	src := deckOfTen()
	orig := append([]string(nil), src...)
	out := ShuffleDeck(rand.New(rand.NewSource(42)), src)

	for i, name := range orig {
		if src[i] != name {
			t.Fatalf("input deck was mutated at %d: %q -> %q", i, name, src[i])
		}
	}
	a := append([]string(nil), orig...)
	b := append([]string(nil), out...)
	sort.Strings(a)
	sort.Strings(b)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("shuffle changed the deck contents: %v vs %v", orig, out)
		}
	}
}

func TestShuffleDeck_SeedDeterministic(t *testing.T) {
	first := ShuffleDeck(rand.New(rand.NewSource(7)), deckOfTen())
	second := ShuffleDeck(rand.New(rand.NewSource(7)), deckOfTen())
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed produced different orders: %v vs %v", first, second)
		}
	}
}

func TestDrawInitialHand(t *testing.T) {
	r := testRules(t)
	deck := deckOfTen()
	hand, err := DrawInitialHand(deck, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hand) != r.HandSize {
		t.Fatalf("expected %d cards, got %d", r.HandSize, len(hand))
	}
	if hand[0].Name != deck[0] || hand[1].Name != deck[1] {
		t.Fatalf("initial hand must be the top of the deck, got %v", hand)
	}
}

func TestDrawInitialHand_UnknownCard(t *testing.T) {
	r := testRules(t)
	_, err := DrawInitialHand([]string{"Tabby", "NotACard"}, r)
	if !errors.Is(err, ErrCardNotFound) {
		t.Fatalf("expected ErrCardNotFound, got %v", err)
	}
}

// With the standard 10-card deck, hand size 2 and draw offset 1, the
// replacement draws for turns 1..8 must cover deck positions 2..9 and
// never revisit the two initial-hand positions.
func TestDrawCard_PositionsNeverCollideWithInitialHand(t *testing.T) {
	r := testRules(t)
	deck := deckOfTen()
	seen := make(map[string]bool)
	for turn := 1; turn <= r.MaxTurns; turn++ {
		card, err := DrawCard(deck, turn, r)
		if err != nil {
			t.Fatalf("turn %d: unexpected error: %v", turn, err)
		}
		want := deck[(turn+r.DrawOffset)%len(deck)]
		if card.Name != want {
			t.Fatalf("turn %d: drew %q, want %q", turn, card.Name, want)
		}
		if card.Name == deck[0] || card.Name == deck[1] {
			t.Fatalf("turn %d: draw %q collides with the initial hand", turn, card.Name)
		}
		if seen[card.Name] {
			t.Fatalf("turn %d: position %q drawn twice", turn, card.Name)
		}
		seen[card.Name] = true
	}
}

func TestDrawCard_EmptyDeck(t *testing.T) {
	r := testRules(t)
	if _, err := DrawCard(nil, 1, r); !errors.Is(err, ErrDeckExhausted) {
		t.Fatalf("expected ErrDeckExhausted, got %v", err)
	}
}

func TestDrawCard_WrapsAround(t *testing.T) {
	r := testRules(t)
	deck := []string{"Tabby", "Rex", "Pepe"}
	// turn 5 with offset 1 on a 3-card deck indexes (5+1) mod 3 = 0.
	card, err := DrawCard(deck, 5, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if card.Name != "Tabby" {
		t.Fatalf("expected wrap-around to Tabby, got %q", card.Name)
	}
}
