package service

import (
	"errors"

	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/game"
)

// MatchRepo is the narrow persistence surface the service layer needs.
// storage.Repository satisfies it; tests substitute an in-memory fake.
type MatchRepo interface {
	GetMatchByID(id uint) (*game.Match, error)
	UpdateMatch(m *game.Match) error
	UpdateStatsOnMatchEnd(m *game.Match) error
}

var (
	ErrMatchNotFound      = errors.New("match not found")
	ErrMatchNotInProgress = errors.New("match is not in progress")
	ErrSelectionsLocked   = errors.New("selections are locked; resolving current turn")
	ErrPlayerNotInMatch   = errors.New("player not in match")
	ErrComputerSeat       = errors.New("cannot submit for the computer seat")
	ErrPlayersNotReady    = errors.New("both players must join with decks before starting")
)
