package game

import "errors"

// ErrWinnerAlreadyRecorded is returned when a second winner write is
// attempted on a game log. The log feeds an external commitment/signing
// collaborator, so a silent overwrite would desynchronize what was
// already submitted.
var ErrWinnerAlreadyRecorded = errors.New("game log: winner already recorded")

// PlayedCards captures both sides of a resolved turn. The hand and power
// indices record positions at the moment of play so callers can rebuild
// the exact payload submitted to the rollup service.
type PlayedCards struct {
	CardP1  string    `json:"card_p1"`
	CardP2  string    `json:"card_p2"`
	PowerP1 PowerKind `json:"power_p1"`
	PowerP2 PowerKind `json:"power_p2"`

	HandIndexP1  int `json:"hand_index_p1"`
	HandIndexP2  int `json:"hand_index_p2"`
	PowerIndexP1 int `json:"power_index_p1"`
	PowerIndexP2 int `json:"power_index_p2"`
}

// TurnEntry is one per-turn record in the game log.
type TurnEntry struct {
	TurnNumber int         `json:"turn_number"`
	Played     PlayedCards `json:"played_cards"`
	ScoreP1    int         `json:"score_p1"`
	ScoreP2    int         `json:"score_p2"`
}

// GameLog is the append-only ledger of a match: the initial decks, one
// entry per resolved turn, and the final winner. Prior entries are never
// mutated; the winner is set exactly once.
type GameLog struct {
	DeckP1 []string    `json:"deck_p1"`
	DeckP2 []string    `json:"deck_p2"`
	Turns  []TurnEntry `json:"turns"`
	// Winner is nil until the match completes; then 0 draw, 1 or 2.
	Winner *int `json:"winner"`
}

// RecordDecks stores the shuffled starting decks. Called once at match
// start, before any turn is played.
func (l *GameLog) RecordDecks(deckP1, deckP2 []string) {
	l.DeckP1 = append([]string(nil), deckP1...)
	l.DeckP2 = append([]string(nil), deckP2...)
}

// RecordTurn appends one resolved turn.
func (l *GameLog) RecordTurn(entry TurnEntry) {
	l.Turns = append(l.Turns, entry)
}

// RecordWinner sets the final result. A second call is rejected.
func (l *GameLog) RecordWinner(result int) error {
	if l.Winner != nil {
		return ErrWinnerAlreadyRecorded
	}
	w := result
	l.Winner = &w
	return nil
}
