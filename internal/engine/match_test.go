package engine

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/game"
)

// playTurn drives one full draw→prep→combat→check cycle with both seats
// playing hand index 0 and the given power kinds.
func playTurn(t *testing.T, m *game.Match, r Rules, k1, k2 game.PowerKind) {
	t.Helper()
	if err := AdvanceDraw(m, r); err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	if err := SubmitSelection(m, 0, 0, k1, r); err != nil {
		t.Fatalf("p1 selection failed: %v", err)
	}
	if err := SubmitSelection(m, 1, 0, k2, r); err != nil {
		t.Fatalf("p2 selection failed: %v", err)
	}
	if err := ResolveCombat(m, r); err != nil {
		t.Fatalf("combat failed: %v", err)
	}
	if err := FinishCheck(m, r); err != nil {
		t.Fatalf("check failed: %v", err)
	}
}

func TestBeginMatch(t *testing.T) {
	r := testRules(t)
	m := newTestMatch(deckOfTen(), deckOfTen())
	if err := BeginMatch(m, r, rand.New(rand.NewSource(3))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Status != game.StatusInProgress || m.Phase != game.PhaseDraw {
		t.Fatalf("expected in-progress draw phase, got %s/%s", m.Status, m.Phase)
	}
	if m.TurnCount != 1 {
		t.Fatalf("turn count must start at 1, got %d", m.TurnCount)
	}
	for i := range m.Players {
		if len(m.Players[i].Hand) != r.HandSize {
			t.Fatalf("seat %d: expected hand of %d, got %d", i, r.HandSize, len(m.Players[i].Hand))
		}
	}
	if len(m.Log.DeckP1) != 10 || len(m.Log.DeckP2) != 10 {
		t.Fatalf("log must record both shuffled decks")
	}
	for i, name := range m.Players[0].Deck {
		if m.Log.DeckP1[i] != name {
			t.Fatalf("logged deck differs from the player's shuffled deck at %d", i)
		}
	}
}

func TestMatch_EarlyWinAtTurnFour(t *testing.T) {
	r := testRules(t)
	// Whiskers (Cat, attack 9) has both the faction bonus and the raw
	// stats over Rex (Dog, attack 4): player 1 scores every turn and
	// the match must end once the threshold of 4 is reached.
	m := newTestMatch(repeat("Whiskers", 10), repeat("Rex", 10))
	if err := BeginMatch(m, r, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("begin failed: %v", err)
	}

	turns := 0
	prevP1, prevP2 := 0, 0
	for m.Status == game.StatusInProgress {
		playTurn(t, m, r, game.PowerAttack, game.PowerAttack)
		turns++
		p1, p2 := m.Players[0].Score, m.Players[1].Score
		if p1 < prevP1 || p2 < prevP2 {
			t.Fatalf("score decreased: %d-%d after %d-%d", p1, p2, prevP1, prevP2)
		}
		if (p1-prevP1)+(p2-prevP2) > 1 {
			t.Fatalf("more than one point awarded in a single turn")
		}
		prevP1, prevP2 = p1, p2
		if turns > r.MaxTurns {
			t.Fatalf("match did not terminate")
		}
	}

	if turns != r.WinThreshold {
		t.Fatalf("expected the match to end at turn %d, ended at %d", r.WinThreshold, turns)
	}
	if m.Winner != game.WinnerPlayer1 {
		t.Fatalf("expected winner 1, got %d", m.Winner)
	}
	if m.Phase != game.PhaseFinished || m.Status != game.StatusFinished {
		t.Fatalf("expected finished state, got %s/%s", m.Status, m.Phase)
	}
	if m.Log.Winner == nil || *m.Log.Winner != game.WinnerPlayer1 {
		t.Fatalf("log winner not recorded")
	}
	if len(m.Log.Turns) != turns {
		t.Fatalf("expected %d log entries, got %d", turns, len(m.Log.Turns))
	}
}

func TestMatch_AllTiesEndsInDrawAtTurnLimit(t *testing.T) {
	r := testRules(t)
	// Identical meme mirrors with identical picks tie every turn.
	m := newTestMatch(repeat("Pepe", 10), repeat("Pepe", 10))
	if err := BeginMatch(m, r, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("begin failed: %v", err)
	}

	turns := 0
	for m.Status == game.StatusInProgress {
		playTurn(t, m, r, game.PowerAttack, game.PowerAttack)
		turns++
		if turns > r.MaxTurns {
			t.Fatalf("match did not terminate at the turn limit")
		}
	}
	if turns != r.MaxTurns {
		t.Fatalf("expected %d turns, got %d", r.MaxTurns, turns)
	}
	if m.Winner != game.WinnerDraw {
		t.Fatalf("expected a draw, got winner %d", m.Winner)
	}
	if m.Players[0].Score != 0 || m.Players[1].Score != 0 {
		t.Fatalf("tie turns must not award points, got %d-%d", m.Players[0].Score, m.Players[1].Score)
	}
}

func TestSubmitSelection_RemovesCardOnce(t *testing.T) {
	r := testRules(t)
	m := newTestMatch(deckOfTen(), deckOfTen())
	if err := BeginMatch(m, r, rand.New(rand.NewSource(5))); err != nil {
		t.Fatalf("begin failed: %v", err)
	}
	if err := AdvanceDraw(m, r); err != nil {
		t.Fatalf("draw failed: %v", err)
	}

	handBefore := len(m.Players[0].Hand)
	played := m.Players[0].Hand[1]
	if err := SubmitSelection(m, 0, 1, game.PowerAttack, r); err != nil {
		t.Fatalf("selection failed: %v", err)
	}
	if len(m.Players[0].Hand) != handBefore-1 {
		t.Fatalf("card was not removed from the hand")
	}
	if m.Players[0].ActiveCard != played || m.Players[0].ActiveHandIndex != 1 {
		t.Fatalf("selection not recorded: %+v", m.Players[0])
	}
	if err := SubmitSelection(m, 0, 0, game.PowerSpeed, r); !errors.Is(err, ErrAlreadySelected) {
		t.Fatalf("expected ErrAlreadySelected on the second submission, got %v", err)
	}
}

func TestSubmitSelection_Validation(t *testing.T) {
	r := testRules(t)
	m := newTestMatch(deckOfTen(), deckOfTen())
	if err := BeginMatch(m, r, rand.New(rand.NewSource(5))); err != nil {
		t.Fatalf("begin failed: %v", err)
	}

	// prep has not started yet
	if err := SubmitSelection(m, 0, 0, game.PowerAttack, r); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("expected ErrWrongPhase before the draw, got %v", err)
	}
	if err := AdvanceDraw(m, r); err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	if err := SubmitSelection(m, 0, 99, game.PowerAttack, r); !errors.Is(err, ErrHandIndexOutOfRange) {
		t.Fatalf("expected ErrHandIndexOutOfRange, got %v", err)
	}
	if err := SubmitSelection(m, 0, 0, game.PowerKind("luck"), r); !errors.Is(err, ErrPowerNotFound) {
		t.Fatalf("expected ErrPowerNotFound, got %v", err)
	}
}

func TestResolveCombat_RequiresBothSelections(t *testing.T) {
	r := testRules(t)
	m := newTestMatch(deckOfTen(), deckOfTen())
	if err := BeginMatch(m, r, rand.New(rand.NewSource(5))); err != nil {
		t.Fatalf("begin failed: %v", err)
	}
	if err := AdvanceDraw(m, r); err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	if err := SubmitSelection(m, 0, 0, game.PowerAttack, r); err != nil {
		t.Fatalf("selection failed: %v", err)
	}
	// still prep: only one seat committed
	if err := ResolveCombat(m, r); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("expected ErrWrongPhase with one selection, got %v", err)
	}
}

func TestResolveCombat_FailureLeavesScoreUntouched(t *testing.T) {
	r := testRules(t)
	m := newTestMatch(repeat("Pepe", 10), repeat("Pepe", 10))
	if err := BeginMatch(m, r, rand.New(rand.NewSource(5))); err != nil {
		t.Fatalf("begin failed: %v", err)
	}
	if err := AdvanceDraw(m, r); err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	if err := SubmitSelection(m, 0, 0, game.PowerAttack, r); err != nil {
		t.Fatalf("p1 selection failed: %v", err)
	}
	if err := SubmitSelection(m, 1, 0, game.PowerAttack, r); err != nil {
		t.Fatalf("p2 selection failed: %v", err)
	}

	// A ruleset whose faction order omits Meme makes resolution fail
	// after all preconditions pass.
	broken := r
	broken.FactionOrder = []game.FactionType{game.FactionCat, game.FactionDog}
	if err := ResolveCombat(m, broken); !errors.Is(err, ErrFactionNotKnown) {
		t.Fatalf("expected ErrFactionNotKnown, got %v", err)
	}
	if m.Players[0].Score != 0 || m.Players[1].Score != 0 {
		t.Fatalf("failed combat mutated the score: %d-%d", m.Players[0].Score, m.Players[1].Score)
	}
	if m.Phase != game.PhaseCombat {
		t.Fatalf("failed combat must stay in the combat phase, got %s", m.Phase)
	}

	// The same turn still resolves under the intact rules.
	if err := ResolveCombat(m, r); err != nil {
		t.Fatalf("combat failed under intact rules: %v", err)
	}
}

func TestFinishCheck_LogEntryCarriesPlayIndices(t *testing.T) {
	r := testRules(t)
	m := newTestMatch(deckOfTen(), deckOfTen())
	if err := BeginMatch(m, r, rand.New(rand.NewSource(9))); err != nil {
		t.Fatalf("begin failed: %v", err)
	}
	if err := AdvanceDraw(m, r); err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	p1Card := m.Players[0].Hand[2]
	p2Card := m.Players[1].Hand[0]
	if err := SubmitSelection(m, 0, 2, game.PowerSpeed, r); err != nil {
		t.Fatalf("p1 selection failed: %v", err)
	}
	if err := SubmitSelection(m, 1, 0, game.PowerDefense, r); err != nil {
		t.Fatalf("p2 selection failed: %v", err)
	}
	if err := ResolveCombat(m, r); err != nil {
		t.Fatalf("combat failed: %v", err)
	}
	if err := FinishCheck(m, r); err != nil {
		t.Fatalf("check failed: %v", err)
	}

	if len(m.Log.Turns) != 1 {
		t.Fatalf("expected one log entry, got %d", len(m.Log.Turns))
	}
	entry := m.Log.Turns[0]
	if entry.TurnNumber != 1 {
		t.Fatalf("expected turn number 1, got %d", entry.TurnNumber)
	}
	if entry.Played.CardP1 != p1Card || entry.Played.CardP2 != p2Card {
		t.Fatalf("log entry cards do not match the plays: %+v", entry.Played)
	}
	if entry.Played.HandIndexP1 != 2 || entry.Played.HandIndexP2 != 0 {
		t.Fatalf("log entry hand indices wrong: %+v", entry.Played)
	}
	if entry.Played.PowerIndexP1 != 2 || entry.Played.PowerIndexP2 != 1 {
		t.Fatalf("log entry power indices wrong: %+v", entry.Played)
	}
	if m.Players[0].HasSelected || m.Players[1].HasSelected {
		t.Fatalf("selections must be cleared in check")
	}
	if m.TurnCount != 2 || m.Phase != game.PhaseDraw {
		t.Fatalf("expected turn 2 draw phase, got turn %d phase %s", m.TurnCount, m.Phase)
	}
}
