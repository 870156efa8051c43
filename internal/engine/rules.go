package engine

import "github.com/tcxcx/cats-dogs-memes95-sub000/internal/game"

// Default balance values. The bonuses stack independently, so a card at a
// double disadvantage can lose even with the higher base stat.
const (
	DefaultFactionBonus = 8
	DefaultPowerBonus   = 4
	DefaultWinThreshold = 4
	DefaultMaxTurns     = 8
	DefaultHandSize     = 2
	DefaultDrawOffset   = 1
)

// Rules bundles the catalog and every tunable the engine consults. One
// Rules value is shared read-only by all matches; matches never mutate it.
type Rules struct {
	Catalog *game.Catalog

	// FactionOrder and PowerOrder define cyclic adjacency for the two
	// advantage systems. Both must have exactly three members.
	FactionOrder []game.FactionType
	PowerOrder   []game.PowerKind

	// FactionBonus is added to the cyclically favored side's power value;
	// PowerBonus is its smaller attribute-level counterpart.
	FactionBonus int
	PowerBonus   int

	// WinThreshold ends the match as soon as a score reaches it;
	// MaxTurns caps the match length regardless of score.
	WinThreshold int
	MaxTurns     int

	// HandSize is the number of cards dealt from the top of the deck at
	// match start. DrawOffset shifts the positional replacement draw:
	// turn n draws deck position (n + DrawOffset) mod len(deck). With a
	// 10-card deck, hand size 2 and offset 1, turns 1..8 draw positions
	// 2..9 — the deck is exhausted exactly, and the replacement draws
	// never revisit the initial hand.
	HandSize   int
	DrawOffset int
}

// DefaultRules returns the standard ruleset over the given catalog.
func DefaultRules(catalog *game.Catalog) Rules {
	return Rules{
		Catalog:      catalog,
		FactionOrder: game.FactionOrder,
		PowerOrder:   game.PowerOrder,
		FactionBonus: DefaultFactionBonus,
		PowerBonus:   DefaultPowerBonus,
		WinThreshold: DefaultWinThreshold,
		MaxTurns:     DefaultMaxTurns,
		HandSize:     DefaultHandSize,
		DrawOffset:   DefaultDrawOffset,
	}
}
