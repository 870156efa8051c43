package engine

import (
	"fmt"
	"math/rand"

	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/game"
)

// BeginMatch shuffles both decks, deals the initial hands, records the
// shuffled decks in the game log and enters the first draw phase. The
// match must hold exactly two seats with decks attached. Validation runs
// before any mutation: a failed begin leaves the match untouched.
func BeginMatch(m *game.Match, r Rules, rng *rand.Rand) error {
	if len(m.Players) != 2 {
		return ErrPlayerCount
	}

	decks := make([][]string, 2)
	hands := make([][]game.Card, 2)
	for i := range m.Players {
		decks[i] = ShuffleDeck(rng, m.Players[i].Deck)
		hand, err := DrawInitialHand(decks[i], r)
		if err != nil {
			return err
		}
		hands[i] = hand
	}

	for i := range m.Players {
		p := &m.Players[i]
		p.Deck = decks[i]
		p.Hand = make([]string, 0, len(hands[i]))
		for _, c := range hands[i] {
			p.Hand = append(p.Hand, c.Name)
		}
		p.Score = 0
	}
	m.ClearSelections()
	m.Log = game.GameLog{}
	m.Log.RecordDecks(decks[0], decks[1])
	m.Status = game.StatusInProgress
	m.Phase = game.PhaseDraw
	m.TurnCount = 1
	m.Winner = 0
	m.Message = "The match has started."
	return nil
}

// AdvanceDraw performs the draw phase: each seat draws this turn's
// replacement card from its deck. Both draws are resolved before either
// hand is touched so a failing draw leaves no partial mutation.
func AdvanceDraw(m *game.Match, r Rules) error {
	if m.Status != game.StatusInProgress || m.Phase != game.PhaseDraw {
		return ErrWrongPhase
	}
	drawn := make([]game.Card, 2)
	for i := range m.Players {
		card, err := DrawCard(m.Players[i].Deck, m.TurnCount, r)
		if err != nil {
			return err
		}
		drawn[i] = card
	}
	for i := range m.Players {
		m.Players[i].Hand = append(m.Players[i].Hand, drawn[i].Name)
	}
	m.Phase = game.PhasePrep
	return nil
}

// SubmitSelection commits one seat's play for the current turn: the card
// at handIndex becomes the active card and kind its chosen power. The
// card is removed from the hand at-most-once; a second submission for
// the same turn is rejected. When both seats have committed, the match
// advances to the combat phase.
func SubmitSelection(m *game.Match, seat int, handIndex int, kind game.PowerKind, r Rules) error {
	if m.Status != game.StatusInProgress || m.Phase != game.PhasePrep {
		return ErrWrongPhase
	}
	if seat < 0 || seat >= len(m.Players) {
		return ErrPlayerCount
	}
	p := &m.Players[seat]
	if p.HasSelected {
		return ErrAlreadySelected
	}
	if handIndex < 0 || handIndex >= len(p.Hand) {
		return ErrHandIndexOutOfRange
	}
	card, ok := r.Catalog.ByName(p.Hand[handIndex])
	if !ok {
		return ErrCardNotFound
	}
	powerIndex := card.PowerIndex(kind)
	if powerIndex < 0 {
		return ErrPowerNotFound
	}

	p.ActiveCard = card.Name
	p.ActiveHandIndex = handIndex
	p.SelectedPower = kind
	p.SelectedPowerIndex = powerIndex
	p.HasSelected = true
	p.Hand = append(p.Hand[:handIndex], p.Hand[handIndex+1:]...)

	if m.BothSelected() {
		m.Phase = game.PhaseCombat
	}
	return nil
}

// ResolveCombat runs the battle resolver over both active cards and
// accumulates the returned points. Preconditions are checked and the
// resolution computed before any score mutation, so a failed combat is
// side-effect free.
func ResolveCombat(m *game.Match, r Rules) error {
	if m.Status != game.StatusInProgress || m.Phase != game.PhaseCombat {
		return ErrWrongPhase
	}
	if !m.BothSelected() {
		return ErrMissingSelection
	}
	p1 := &m.Players[0]
	p2 := &m.Players[1]
	card1, ok := r.Catalog.ByName(p1.ActiveCard)
	if !ok {
		return ErrCardNotFound
	}
	card2, ok := r.Catalog.ByName(p2.ActiveCard)
	if !ok {
		return ErrCardNotFound
	}

	result, err := ResolveTurn(card1, card2, p1.SelectedPower, p2.SelectedPower, r)
	if err != nil {
		return err
	}

	p1.Score += result.Player1Points
	p2.Score += result.Player2Points
	m.LastTurnSummary = turnSummary(card1, card2, p1.SelectedPower, p2.SelectedPower, result)
	m.Phase = game.PhaseCheck
	return nil
}

// FinishCheck closes the turn: it appends the turn record to the game
// log, clears both selections and either ends the match or returns to
// the draw phase for the next turn. The turn counter increments exactly
// once here and nowhere else.
func FinishCheck(m *game.Match, r Rules) error {
	if m.Status != game.StatusInProgress || m.Phase != game.PhaseCheck {
		return ErrWrongPhase
	}
	p1 := &m.Players[0]
	p2 := &m.Players[1]
	m.Log.RecordTurn(game.TurnEntry{
		TurnNumber: m.TurnCount,
		Played: game.PlayedCards{
			CardP1:       p1.ActiveCard,
			CardP2:       p2.ActiveCard,
			PowerP1:      p1.SelectedPower,
			PowerP2:      p2.SelectedPower,
			HandIndexP1:  p1.ActiveHandIndex,
			HandIndexP2:  p2.ActiveHandIndex,
			PowerIndexP1: p1.SelectedPowerIndex,
			PowerIndexP2: p2.SelectedPowerIndex,
		},
		ScoreP1: p1.Score,
		ScoreP2: p2.Score,
	})
	m.ClearSelections()

	if IsOver(m, r) {
		winner := DetermineWinner(p1.Score, p2.Score)
		if err := m.Log.RecordWinner(winner); err != nil {
			return err
		}
		m.Winner = winner
		m.Status = game.StatusFinished
		m.Phase = game.PhaseFinished
		switch winner {
		case game.WinnerDraw:
			m.Message = "The match ended in a draw."
		default:
			m.Message = fmt.Sprintf("Victory for %s", m.Players[winner-1].PlayerName)
		}
		return nil
	}

	m.TurnCount++
	m.Phase = game.PhaseDraw
	m.Message = "New turn. Choose your card and power."
	return nil
}

func turnSummary(card1, card2 game.Card, kind1, kind2 game.PowerKind, result TurnResult) string {
	outcome := "tie, no point awarded"
	switch {
	case result.Player1Points > 0:
		outcome = "point to player 1"
	case result.Player2Points > 0:
		outcome = "point to player 2"
	}
	return fmt.Sprintf("%s (%s) vs %s (%s): %s", card1.Name, kind1, card2.Name, kind2, outcome)
}
