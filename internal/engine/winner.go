package engine

import "github.com/tcxcx/cats-dogs-memes95-sub000/internal/game"

// DetermineWinner maps a final score to a result code: 1 or 2 for the
// leading player, 0 for a draw. Pure query, usable both at the natural
// terminal and for early game-over checks.
func DetermineWinner(scoreP1, scoreP2 int) int {
	switch {
	case scoreP1 > scoreP2:
		return game.WinnerPlayer1
	case scoreP2 > scoreP1:
		return game.WinnerPlayer2
	}
	return game.WinnerDraw
}

// IsOver reports whether the match reached a terminal condition: either
// score at the win threshold, or the current turn at the turn limit.
// Evaluated at the check boundary, before the turn counter moves on.
func IsOver(m *game.Match, r Rules) bool {
	if len(m.Players) != 2 {
		return false
	}
	if m.Players[0].Score >= r.WinThreshold || m.Players[1].Score >= r.WinThreshold {
		return true
	}
	return m.TurnCount >= r.MaxTurns
}
