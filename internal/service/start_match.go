package service

import (
	"math/rand"
	"time"

	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/engine"
	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/game"
)

// StartMatch performs all server-side initialization when a match begins:
// it shuffles both decks, deals the initial hands, runs the first draw
// phase so clients land directly in prep, arms the action deadline and
// persists the match.
func StartMatch(repo MatchRepo, m *game.Match, r engine.Rules, rng *rand.Rand, actionTimeout time.Duration) error {
	if len(m.Players) != 2 {
		return ErrPlayersNotReady
	}
	for i := range m.Players {
		if len(m.Players[i].Deck) == 0 {
			return ErrPlayersNotReady
		}
	}
	if m.Status == game.StatusInProgress || m.Status == game.StatusFinished {
		return ErrMatchNotInProgress
	}

	if err := engine.BeginMatch(m, r, rng); err != nil {
		return err
	}
	if err := engine.AdvanceDraw(m, r); err != nil {
		return err
	}
	m.Message = "The match has started. Choose your card and power."
	m.ActionDeadline = time.Now().Add(actionTimeout)
	return repo.UpdateMatch(m)
}
