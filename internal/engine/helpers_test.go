package engine

import (
	"testing"

	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/game"
)

// testCards covers all three factions with a spread of stat shapes. Tabby
// and Rex reproduce the canonical worked example: speed 5 vs defense 9
// resolves to a 13-13 tie once both bonuses land.
func testCards() []game.Card {
	mk := func(id int, name string, faction game.FactionType, atk, def, spd int) game.Card {
		return game.Card{
			ID:      id,
			Name:    name,
			Faction: faction,
			Powers: []game.Power{
				{Kind: game.PowerAttack, Value: atk},
				{Kind: game.PowerDefense, Value: def},
				{Kind: game.PowerSpeed, Value: spd},
			},
		}
	}
	return []game.Card{
		mk(1, "Tabby", game.FactionCat, 5, 4, 5),
		mk(2, "Rex", game.FactionDog, 4, 9, 2),
		mk(3, "Pepe", game.FactionMeme, 6, 6, 6),
		mk(4, "Whiskers", game.FactionCat, 9, 1, 1),
		mk(5, "Doge", game.FactionDog, 7, 5, 6),
		mk(6, "Grumpy", game.FactionCat, 3, 8, 2),
		mk(7, "Nyan", game.FactionCat, 2, 2, 9),
		mk(8, "Shiba", game.FactionDog, 6, 4, 7),
		mk(9, "Cheems", game.FactionMeme, 4, 5, 3),
		mk(10, "Wojak", game.FactionMeme, 5, 7, 4),
	}
}

func testRules(t *testing.T) Rules {
	t.Helper()
	catalog, err := game.NewCatalog(testCards())
	if err != nil {
		t.Fatalf("failed to build test catalog: %v", err)
	}
	return DefaultRules(catalog)
}

func cardByName(t *testing.T, r Rules, name string) game.Card {
	t.Helper()
	card, ok := r.Catalog.ByName(name)
	if !ok {
		t.Fatalf("card %q not in test catalog", name)
	}
	return card
}

// repeat builds a deck of n copies of name.
func repeat(name string, n int) []string {
	deck := make([]string, n)
	for i := range deck {
		deck[i] = name
	}
	return deck
}

func newTestMatch(deckP1, deckP2 []string) *game.Match {
	return &game.Match{
		Name: "test",
		Players: []game.Player{
			{PlayerUUID: "p1", PlayerName: "P1", Deck: deckP1},
			{PlayerUUID: "p2", PlayerName: "P2", Deck: deckP2},
		},
	}
}
