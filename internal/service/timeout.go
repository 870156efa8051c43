package service

import (
	"time"

	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/game"
)

// HandleTimedOutMatch ends a match whose prep phase outlived its action
// deadline. The match finishes with no recorded winner and is excluded
// from player stats (StatsCounted blocks later updates). The game log
// keeps its turns but never receives a winner entry, so downstream
// commitment consumers can tell an abandoned match from a played-out
// draw.
func HandleTimedOutMatch(repo MatchRepo, m *game.Match) error {
	if m.Status != game.StatusInProgress || m.Phase != game.PhasePrep {
		return nil
	}

	summary := "Turn timed out: "
	if len(m.Players) == 2 {
		p1Selected := m.Players[0].HasSelected
		p2Selected := m.Players[1].HasSelected
		switch {
		case !p1Selected && !p2Selected:
			summary += "both players failed to select within the allotted time."
		case p1Selected && !p2Selected:
			summary += m.Players[1].PlayerName + " did not select in time."
		case !p1Selected && p2Selected:
			summary += m.Players[0].PlayerName + " did not select in time."
		default:
			summary += "no resolution was reached."
		}
	} else {
		summary += "no resolution was reached due to inactivity."
	}

	m.Status = game.StatusFinished
	m.Phase = game.PhaseFinished
	m.Winner = game.WinnerDraw
	m.Message = "Match ended due to inactivity"
	m.LastTurnSummary = summary
	m.StatsCounted = true
	m.ActionDeadline = time.Time{}
	return repo.UpdateMatch(m)
}
