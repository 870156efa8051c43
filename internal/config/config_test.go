package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/game"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cdm_config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"card_list": [
			{"id": 1, "name": "Tabby", "faction": "Cat", "subtype": "😺", "attack": 5, "defense": 4, "speed": 5, "asset": "cards/tabby.png"},
			{"id": 2, "name": "Rex", "faction": "Dog", "attack": 4, "defense": 9, "speed": 2}
		],
		"server": {"address": ":9090"},
		"rules": {"win_threshold": 3, "max_turns": 6, "action_timeout_seconds": 30}
	}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cfg.Cards))
	}
	c := cfg.Cards[0]
	if c.Faction != game.FactionCat || len(c.Powers) != 3 {
		t.Fatalf("card not built correctly: %+v", c)
	}
	if v, _ := c.PowerValue(game.PowerDefense); v != 4 {
		t.Fatalf("defense = %d, want 4", v)
	}
	if cfg.ServerAddress != ":9090" {
		t.Fatalf("server address = %q", cfg.ServerAddress)
	}
	if cfg.WinThreshold != 3 || cfg.MaxTurns != 6 {
		t.Fatalf("rule overrides not applied: %+v", cfg)
	}
	if cfg.ActionTimeout != 30*time.Second {
		t.Fatalf("action timeout = %v", cfg.ActionTimeout)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, `{"card_list": [{"id": 1, "name": "Tabby", "faction": "Cat", "attack": 1, "defense": 1, "speed": 1}]}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != ":8080" {
		t.Fatalf("default address = %q", cfg.ServerAddress)
	}
	if cfg.ActionTimeout != 2*time.Minute {
		t.Fatalf("default action timeout = %v", cfg.ActionTimeout)
	}
}

func TestLoadConfig_Rejections(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"empty card list", `{"card_list": []}`},
		{"missing name", `{"card_list": [{"id": 1, "faction": "Cat", "attack": 1, "defense": 1, "speed": 1}]}`},
		{"unknown faction", `{"card_list": [{"id": 1, "name": "X", "faction": "Dragon", "attack": 1, "defense": 1, "speed": 1}]}`},
		{"negative power", `{"card_list": [{"id": 1, "name": "X", "faction": "Cat", "attack": -1, "defense": 1, "speed": 1}]}`},
		{"malformed json", `{"card_list": [`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tc.body)); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestLoadConfig_FileMissing(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
