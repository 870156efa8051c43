package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/api"
	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/config"
	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/constants"
	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/engine"
	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/game"
	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/logging"
	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/service"
	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env when present; real env vars win over file values.
	_ = godotenv.Load()

	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = constants.DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Fatal("Missing or invalid configuration", err, logging.Fields{constants.LogFieldConfig: configPath, "hint": "create a cdm_config.json with a 'card_list' array of card objects (id,name,faction,subtype,attack,defense,speed,asset) and optional keys: server.address, rules.{win_threshold,max_turns,action_timeout_seconds}"})
	}

	catalog, err := game.NewCatalog(cfg.Cards)
	if err != nil {
		logging.Fatal("Invalid card catalog", err, logging.Fields{constants.LogFieldConfig: configPath})
	}
	rules := engine.DefaultRules(catalog)
	if cfg.WinThreshold > 0 {
		rules.WinThreshold = cfg.WinThreshold
	}
	if cfg.MaxTurns > 0 {
		rules.MaxTurns = cfg.MaxTurns
	}

	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = constants.DefaultDBPath
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	repo := storage.NewSQLiteRepository(db)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	handler := api.NewMatchHandler(repo, rules, rng, cfg.ActionTimeout)

	startTimeoutScanner(repo)

	router := gin.Default()
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, api.Version)
		apiRoutes.GET(constants.RouteCards, handler.ListCards)
		apiRoutes.GET(constants.RoutePublicMatches, handler.ListPublicMatches)
		apiRoutes.GET(constants.RouteLeaderboard, handler.ListLeaderboard)
		apiRoutes.GET(constants.RoutePlayerStats, handler.GetPlayerStats)

		apiRoutes.POST(constants.RouteMatches, handler.CreateMatch)
		apiRoutes.POST(constants.RouteMatchesJoin, handler.JoinMatch)
		apiRoutes.GET(constants.RouteMatchByCode, handler.GetMatch)
		apiRoutes.POST(constants.RouteMatchStart, handler.StartMatch)
		apiRoutes.POST(constants.RouteMatchTurn, handler.SubmitTurn)
		apiRoutes.POST(constants.RouteMatchLeave, handler.LeaveMatch)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr, constants.LogFieldCardCount: catalog.Len()})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}

// startTimeoutScanner periodically ends matches whose prep phase outlived
// its action deadline. Expired matches finish with no winner and do not
// affect player stats.
func startTimeoutScanner(repo storage.Repository) {
	go func() {
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			matches, err := repo.FindTimedOutMatches(time.Now())
			if err != nil {
				logging.Error("timeout scanner failed", err, nil)
				continue
			}
			for i := range matches {
				m := &matches[i]
				if err := service.HandleTimedOutMatch(repo, m); err != nil {
					logging.Error("failed to expire match", err, logging.Fields{constants.LogFieldMatchID: m.ID})
				}
			}
		}
	}()
}
