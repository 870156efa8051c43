package service

import (
	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/engine"
	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/game"
)

// AutoSelect picks a play for a seat without a human behind it: the card
// and power kind with the highest base value in the current hand. Ties
// prefer the lowest hand index, then the earliest kind in the configured
// power order, which keeps the policy fully deterministic for replays
// and the simulator.
func AutoSelect(m *game.Match, seat int, r engine.Rules) (int, game.PowerKind, error) {
	if seat < 0 || seat >= len(m.Players) {
		return 0, "", engine.ErrPlayerCount
	}
	hand := m.Players[seat].Hand
	if len(hand) == 0 {
		return 0, "", engine.ErrHandIndexOutOfRange
	}

	bestIdx := -1
	bestKind := game.PowerKind("")
	bestValue := -1
	for i, name := range hand {
		card, ok := r.Catalog.ByName(name)
		if !ok {
			return 0, "", engine.ErrCardNotFound
		}
		for _, kind := range r.PowerOrder {
			v, ok := card.PowerValue(kind)
			if !ok {
				return 0, "", engine.ErrPowerNotFound
			}
			if v > bestValue {
				bestIdx = i
				bestKind = kind
				bestValue = v
			}
		}
	}
	return bestIdx, bestKind, nil
}
