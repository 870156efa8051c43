package game

import (
	"fmt"
	"strings"
)

// FactionType is one of the three card factions. The cyclic order defined
// by FactionOrder drives the type-advantage rule: each faction beats the
// next one in the cycle and loses to the previous one.
type FactionType string

const (
	FactionCat  FactionType = "Cat"
	FactionDog  FactionType = "Dog"
	FactionMeme FactionType = "Meme"
)

// FactionOrder is the canonical cyclic ordering used for the type-advantage
// calculation. Do not reorder: the relation Cat→Dog→Meme→Cat is part of the
// game rules.
var FactionOrder = []FactionType{FactionCat, FactionDog, FactionMeme}

// PowerKind identifies one of the three power attributes every card carries.
// PowerOrder defines the cyclic adjacency used for the attribute-advantage
// rule, analogous to FactionOrder.
type PowerKind string

const (
	PowerAttack  PowerKind = "attack"
	PowerDefense PowerKind = "defense"
	PowerSpeed   PowerKind = "speed"
)

var PowerOrder = []PowerKind{PowerAttack, PowerDefense, PowerSpeed}

// ParseFaction returns the FactionType for a config/API string.
func ParseFaction(s string) (FactionType, bool) {
	switch FactionType(strings.TrimSpace(s)) {
	case FactionCat:
		return FactionCat, true
	case FactionDog:
		return FactionDog, true
	case FactionMeme:
		return FactionMeme, true
	}
	return "", false
}

// ParsePowerKind returns the PowerKind for a config/API string.
func ParsePowerKind(s string) (PowerKind, bool) {
	switch PowerKind(strings.ToLower(strings.TrimSpace(s))) {
	case PowerAttack:
		return PowerAttack, true
	case PowerDefense:
		return PowerDefense, true
	case PowerSpeed:
		return PowerSpeed, true
	}
	return "", false
}

// Power is a single attribute entry on a card.
type Power struct {
	Kind  PowerKind `json:"kind"`
	Value int       `json:"value"`
}

// Card is an immutable catalog entry. Cards are read-only reference data
// loaded from configuration at startup; they are never mutated at runtime
// and are never persisted (the config file is the source of truth, the
// same way the entity stats work in the server config).
type Card struct {
	ID      int         `json:"id"`
	Name    string      `json:"name"`
	Faction FactionType `json:"faction"`
	// Subtype is a decorative glyph shown by clients; it carries no game
	// semantics.
	Subtype string  `json:"subtype"`
	Powers  []Power `json:"powers"`
	// AssetRef is an opaque display reference (image path or token URI).
	AssetRef string `json:"asset_ref"`
}

// PowerValue returns the base value for the given kind and whether the
// card carries that kind at all.
func (c Card) PowerValue(kind PowerKind) (int, bool) {
	for _, p := range c.Powers {
		if p.Kind == kind {
			return p.Value, true
		}
	}
	return 0, false
}

// PowerIndex returns the position of kind inside the card's power list,
// or -1 when absent. Callers use it to build the play payload submitted
// to the external rollup collaborator.
func (c Card) PowerIndex(kind PowerKind) int {
	for i, p := range c.Powers {
		if p.Kind == kind {
			return i
		}
	}
	return -1
}

// Catalog is the static card catalog, frozen at process start. Lookups of
// unknown names are programming errors upstream, not recoverable
// conditions, so the accessors simply report found/not-found.
type Catalog struct {
	cards  []Card
	byName map[string]Card
	byID   map[int]Card
}

// NewCatalog builds a catalog and validates uniqueness of ids and names
// plus the per-card invariant of exactly one power entry per kind.
func NewCatalog(cards []Card) (*Catalog, error) {
	cat := &Catalog{
		cards:  make([]Card, len(cards)),
		byName: make(map[string]Card, len(cards)),
		byID:   make(map[int]Card, len(cards)),
	}
	copy(cat.cards, cards)
	for _, c := range cat.cards {
		if c.Name == "" {
			return nil, fmt.Errorf("catalog: card id %d has empty name", c.ID)
		}
		if _, dup := cat.byName[c.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate card name %q", c.Name)
		}
		if _, dup := cat.byID[c.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate card id %d", c.ID)
		}
		if len(c.Powers) != len(PowerOrder) {
			return nil, fmt.Errorf("catalog: card %q has %d powers, want %d", c.Name, len(c.Powers), len(PowerOrder))
		}
		for _, kind := range PowerOrder {
			v, ok := c.PowerValue(kind)
			if !ok {
				return nil, fmt.Errorf("catalog: card %q missing power %q", c.Name, kind)
			}
			if v < 0 {
				return nil, fmt.Errorf("catalog: card %q has negative %q value %d", c.Name, kind, v)
			}
		}
		if _, ok := ParseFaction(string(c.Faction)); !ok {
			return nil, fmt.Errorf("catalog: card %q has unknown faction %q", c.Name, c.Faction)
		}
		cat.byName[c.Name] = c
		cat.byID[c.ID] = c
	}
	return cat, nil
}

// ByName returns the card with the given name.
func (c *Catalog) ByName(name string) (Card, bool) {
	card, ok := c.byName[name]
	return card, ok
}

// ByID returns the card with the given id.
func (c *Catalog) ByID(id int) (Card, bool) {
	card, ok := c.byID[id]
	return card, ok
}

// Cards returns a copy of all catalog entries in load order.
func (c *Catalog) Cards() []Card {
	out := make([]Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// Len returns the number of cards in the catalog.
func (c *Catalog) Len() int { return len(c.cards) }
