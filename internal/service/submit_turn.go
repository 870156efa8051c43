package service

import (
	"time"

	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/engine"
	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/game"
)

// SubmitTurn stores a player's card/power selection for the current turn
// and, once both seats have committed, drives the combat and check phases
// to completion. It returns the updated match and whether the turn was
// resolved. In vs-computer matches the computer seat's play is
// auto-selected right after the human's.
func SubmitTurn(repo MatchRepo, matchID uint, playerUUID string, handIndex int, kind game.PowerKind, r engine.Rules, actionTimeout time.Duration) (*game.Match, bool, error) {
	m, err := repo.GetMatchByID(matchID)
	if err != nil || m == nil {
		return nil, false, ErrMatchNotFound
	}
	if m.Status != game.StatusInProgress {
		return nil, false, ErrMatchNotInProgress
	}
	if m.Phase != game.PhasePrep {
		return nil, false, ErrSelectionsLocked
	}

	seat := -1
	for i := range m.Players {
		if m.Players[i].PlayerUUID == playerUUID {
			seat = i
			break
		}
	}
	if seat < 0 {
		return nil, false, ErrPlayerNotInMatch
	}
	if m.Players[seat].IsComputer {
		return nil, false, ErrComputerSeat
	}

	if err := engine.SubmitSelection(m, seat, handIndex, kind, r); err != nil {
		return nil, false, err
	}

	// Auto-play any computer seat that has not committed yet.
	if m.VsComputer && m.Phase == game.PhasePrep {
		for i := range m.Players {
			if !m.Players[i].IsComputer || m.Players[i].HasSelected {
				continue
			}
			idx, autoKind, err := AutoSelect(m, i, r)
			if err != nil {
				return nil, false, err
			}
			if err := engine.SubmitSelection(m, i, idx, autoKind, r); err != nil {
				return nil, false, err
			}
		}
	}

	resolved := false
	if m.Phase == game.PhaseCombat {
		if err := engine.ResolveCombat(m, r); err != nil {
			return nil, false, err
		}
		if err := engine.FinishCheck(m, r); err != nil {
			return nil, false, err
		}
		resolved = true

		if m.Status == game.StatusFinished {
			if !m.StatsCounted {
				_ = repo.UpdateStatsOnMatchEnd(m)
				m.StatsCounted = true
			}
		} else {
			// Next turn: run the draw phase immediately and re-arm the
			// prep deadline.
			if err := engine.AdvanceDraw(m, r); err != nil {
				return nil, resolved, err
			}
			m.ActionDeadline = time.Now().Add(actionTimeout)
		}
	}

	if err := repo.UpdateMatch(m); err != nil {
		return nil, resolved, err
	}
	return m, resolved, nil
}
