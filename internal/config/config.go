package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/game"
)

type cardEntry struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Faction string `json:"faction"`
	Subtype string `json:"subtype"`
	Attack  int    `json:"attack"`
	Defense int    `json:"defense"`
	Speed   int    `json:"speed"`
	Asset   string `json:"asset"`
}

type rawConfig struct {
	CardList []cardEntry `json:"card_list"`
	Server   *struct {
		Address string `json:"address"`
	} `json:"server"`
	Rules *struct {
		WinThreshold         int `json:"win_threshold"`
		MaxTurns             int `json:"max_turns"`
		ActionTimeoutSeconds int `json:"action_timeout_seconds"`
	} `json:"rules"`
}

// LoadedConfig contains the card catalog to serve, the address to bind to
// and optional rule overrides.
type LoadedConfig struct {
	Cards         []game.Card
	ServerAddress string
	WinThreshold  int
	MaxTurns      int
	ActionTimeout time.Duration
}

// LoadConfig reads the configuration file at path. It requires the key
// `card_list` (snake_case) and validates each entry before building the
// catalog cards.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	entries := rc.CardList
	if len(entries) == 0 {
		return nil, fmt.Errorf("config file %s: card_list is empty (provide 'card_list' array)", path)
	}

	out := make([]game.Card, 0, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("config file %s: card entry missing 'name'", path)
		}
		faction, ok := game.ParseFaction(e.Faction)
		if !ok {
			return nil, fmt.Errorf("config file %s: card '%s' has unknown faction '%s'", path, e.Name, e.Faction)
		}
		if e.Attack < 0 || e.Defense < 0 || e.Speed < 0 {
			return nil, fmt.Errorf("config file %s: card '%s' has a negative power value", path, e.Name)
		}
		out = append(out, game.Card{
			ID:      e.ID,
			Name:    e.Name,
			Faction: faction,
			Subtype: e.Subtype,
			Powers: []game.Power{
				{Kind: game.PowerAttack, Value: e.Attack},
				{Kind: game.PowerDefense, Value: e.Defense},
				{Kind: game.PowerSpeed, Value: e.Speed},
			},
			AssetRef: e.Asset,
		})
	}

	cfg := &LoadedConfig{
		Cards:         out,
		ServerAddress: ":8080",
		WinThreshold:  0,
		MaxTurns:      0,
		ActionTimeout: 2 * time.Minute,
	}
	if rc.Server != nil && rc.Server.Address != "" {
		cfg.ServerAddress = rc.Server.Address
	}
	if rc.Rules != nil {
		if rc.Rules.WinThreshold < 0 || rc.Rules.MaxTurns < 0 || rc.Rules.ActionTimeoutSeconds < 0 {
			return nil, fmt.Errorf("config file %s: rules values must be non-negative", path)
		}
		cfg.WinThreshold = rc.Rules.WinThreshold
		cfg.MaxTurns = rc.Rules.MaxTurns
		if rc.Rules.ActionTimeoutSeconds > 0 {
			cfg.ActionTimeout = time.Duration(rc.Rules.ActionTimeoutSeconds) * time.Second
		}
	}
	return cfg, nil
}
