package storage

import (
	"time"

	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/game"

	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

// NewSQLiteRepository wraps a gorm handle in the Repository interface.
func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateMatch(m *game.Match) error {
	return r.db.Create(m).Error
}

func (r *sqliteRepository) GetMatchByID(id uint) (*game.Match, error) {
	var m game.Match
	if err := r.db.Preload("Players").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *sqliteRepository) FindMatchByJoinCode(code string) (*game.Match, error) {
	var m game.Match
	if err := r.db.Preload("Players").Where("join_code = ?", code).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *sqliteRepository) UpdateMatch(m *game.Match) error {
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(m).Error
}

func (r *sqliteRepository) GetPublicMatches() ([]game.Match, error) {
	var matches []game.Match
	err := r.db.Preload("Players").
		Where("private = ? AND status IN ?", false, []string{game.StatusWaiting, game.StatusInProgress}).
		Order("created_at DESC").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *sqliteRepository) RemovePlayerByUUID(matchID uint, playerUUID string) error {
	return r.db.Where("match_id = ? AND player_uuid = ?", matchID, playerUUID).Delete(&game.Player{}).Error
}

func (r *sqliteRepository) FindTimedOutMatches(now time.Time) ([]game.Match, error) {
	var matches []game.Match
	err := r.db.Preload("Players").
		Where("status = ? AND phase = ? AND action_deadline <= ? AND action_deadline > ?",
			game.StatusInProgress, game.PhasePrep, now, time.Time{}).
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *sqliteRepository) UpsertProfile(playerUUID, playerName string) error {
	var p game.Profile
	err := r.db.Where("player_uuid = ?", playerUUID).First(&p).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.Create(&game.Profile{PlayerUUID: playerUUID, PlayerName: playerName}).Error
	}
	if err != nil {
		return err
	}
	if playerName != "" && playerName != p.PlayerName {
		p.PlayerName = playerName
		return r.db.Save(&p).Error
	}
	return nil
}

// UpdateStatsOnMatchEnd bumps games-played for both seats and credits the
// winner (or a draw for both). Matches ended by inactivity set
// StatsCounted beforehand and never reach this method twice.
func (r *sqliteRepository) UpdateStatsOnMatchEnd(m *game.Match) error {
	if m.Status != game.StatusFinished || len(m.Players) != 2 {
		return nil
	}
	for i := range m.Players {
		seat := &m.Players[i]
		if err := r.UpsertProfile(seat.PlayerUUID, seat.PlayerName); err != nil {
			return err
		}
		var p game.Profile
		if err := r.db.Where("player_uuid = ?", seat.PlayerUUID).First(&p).Error; err != nil {
			return err
		}
		p.GamesPlayed++
		switch m.Winner {
		case game.WinnerDraw:
			p.Draws++
		case i + 1:
			p.Wins++
		}
		if err := r.db.Save(&p).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *sqliteRepository) GetStatsByUUID(playerUUID string) (*game.Profile, error) {
	var p game.Profile
	if err := r.db.Where("player_uuid = ?", playerUUID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *sqliteRepository) GetTopPlayers(limit int) ([]game.Profile, error) {
	var players []game.Profile
	err := r.db.Order("wins DESC, games_played ASC").Limit(limit).Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}
