package engine

import "github.com/tcxcx/cats-dogs-memes95-sub000/internal/game"

// TurnResult is the outcome of a single resolved turn. At most one side
// scores; ties award nothing to either side.
type TurnResult struct {
	Player1Points int
	Player2Points int
}

// factionDelta returns (i1 - i2) mod n for the positions of a and b
// inside order, where n = len(order). The second return is false when
// either value is absent from order.
func factionDelta(order []game.FactionType, a, b game.FactionType) (int, bool) {
	i1, i2 := -1, -1
	for i, t := range order {
		if t == a {
			i1 = i
		}
		if t == b {
			i2 = i
		}
	}
	if i1 < 0 || i2 < 0 {
		return 0, false
	}
	n := len(order)
	return ((i1-i2)%n + n) % n, true
}

func powerDelta(order []game.PowerKind, a, b game.PowerKind) (int, bool) {
	i1, i2 := -1, -1
	for i, k := range order {
		if k == a {
			i1 = i
		}
		if k == b {
			i2 = i
		}
	}
	if i1 < 0 || i2 < 0 {
		return 0, false
	}
	n := len(order)
	return ((i1-i2)%n + n) % n, true
}

// ResolveTurn computes one turn's outcome from the two played cards and
// the two chosen power kinds. It is pure: no state is read or written
// outside its arguments, and a failed resolution has no side effects.
//
// The comparison stacks two independent cyclic advantage systems on top
// of the base values. For each system, delta = (index1 - index2) mod 3
// over the configured order: delta 1 grants the bonus to player 2's
// value, delta 2 grants it to player 1's value, delta 0 (same element)
// grants nothing. The higher final value scores one point; equal values
// score for neither side.
func ResolveTurn(cardP1, cardP2 game.Card, kindP1, kindP2 game.PowerKind, r Rules) (TurnResult, error) {
	v1, ok := cardP1.PowerValue(kindP1)
	if !ok {
		return TurnResult{}, ErrPowerNotFound
	}
	v2, ok := cardP2.PowerValue(kindP2)
	if !ok {
		return TurnResult{}, ErrPowerNotFound
	}

	fd, ok := factionDelta(r.FactionOrder, cardP1.Faction, cardP2.Faction)
	if !ok {
		return TurnResult{}, ErrFactionNotKnown
	}
	switch fd {
	case 1:
		v2 += r.FactionBonus
	case 2:
		v1 += r.FactionBonus
	}

	pd, ok := powerDelta(r.PowerOrder, kindP1, kindP2)
	if !ok {
		return TurnResult{}, ErrPowerKindNotKnown
	}
	switch pd {
	case 1:
		v2 += r.PowerBonus
	case 2:
		v1 += r.PowerBonus
	}

	switch {
	case v1 > v2:
		return TurnResult{Player1Points: 1}, nil
	case v2 > v1:
		return TurnResult{Player2Points: 1}, nil
	}
	return TurnResult{}, nil
}
