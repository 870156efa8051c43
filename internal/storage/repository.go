package storage

import (
	"time"

	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/game"
)

// Repository is the persistence collaborator consumed by the service and
// API layers. The engine itself never touches it: callers load a match,
// run engine transitions on it and persist the result.
type Repository interface {
	CreateMatch(m *game.Match) error
	GetMatchByID(id uint) (*game.Match, error)
	FindMatchByJoinCode(code string) (*game.Match, error)
	UpdateMatch(m *game.Match) error
	// GetPublicMatches lists non-private matches waiting for players or
	// in progress.
	GetPublicMatches() ([]game.Match, error)
	RemovePlayerByUUID(matchID uint, playerUUID string) error

	// FindTimedOutMatches returns in-progress matches in the prep phase
	// whose action deadline is at or before now. The caller decides how
	// to resolve them.
	FindTimedOutMatches(now time.Time) ([]game.Match, error)

	// Player profile bookkeeping
	UpsertProfile(playerUUID, playerName string) error
	UpdateStatsOnMatchEnd(m *game.Match) error
	GetStatsByUUID(playerUUID string) (*game.Profile, error)
	GetTopPlayers(limit int) ([]game.Profile, error)
}
