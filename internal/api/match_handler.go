package api

import (
	"math/rand"
	"time"

	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/engine"
	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/storage"
)

// Deck constraints enforced at the deck-building surface. The engine
// itself accepts any ordered name list; these bounds belong to the outer
// collection/deck-builder contract.
const (
	DeckSize      = 10
	MaxCardCopies = 3
)

// MatchHandler groups all match-related HTTP handlers.
type MatchHandler struct {
	repo          storage.Repository
	rules         engine.Rules
	rng           *rand.Rand
	actionTimeout time.Duration
}

// NewMatchHandler creates a MatchHandler with the given repository,
// ruleset, randomness source (deck shuffles, join codes) and per-turn
// action timeout.
func NewMatchHandler(repo storage.Repository, rules engine.Rules, rng *rand.Rand, actionTimeout time.Duration) *MatchHandler {
	return &MatchHandler{repo: repo, rules: rules, rng: rng, actionTimeout: actionTimeout}
}
