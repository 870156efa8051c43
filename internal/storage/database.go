package storage

import (
	"os"
	"path/filepath"

	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens (creating if needed) the SQLite database at the
// given path and keeps the schema updated via AutoMigrate. Cards are not
// persisted: the catalog comes from the config file, which stays the
// single source of truth for card stats.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	if dir := filepath.Dir(dataSourceName); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&game.Match{}, &game.Player{}, &game.Profile{}); err != nil {
		return nil, err
	}
	return db, nil
}
