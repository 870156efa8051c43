package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/config"
	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/engine"
	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/game"
	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/logging"
	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/service"
)

// cdm-sim plays one fully automated match between two computer seats and
// prints the resulting game log as JSON. The same seed always produces
// the same match, which makes it handy for balancing card stats and for
// eyeballing engine changes.
func main() {
	configPath := flag.String("config", "./cdm_config.json", "path to the card config file")
	seed := flag.Int64("seed", 1, "deterministic seed for deck building and shuffling")
	deckSize := flag.Int("deck-size", 10, "cards per deck")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logging.Fatal("Missing or invalid configuration", err, logging.Fields{"config_path": *configPath})
	}
	catalog, err := game.NewCatalog(cfg.Cards)
	if err != nil {
		logging.Fatal("Invalid card catalog", err, nil)
	}
	rules := engine.DefaultRules(catalog)

	rng := rand.New(rand.NewSource(*seed))
	m := &game.Match{
		Name: "simulation",
		Players: []game.Player{
			{PlayerUUID: "sim-p1", PlayerName: "Sim One", IsComputer: true, Deck: buildDeck(catalog, rng, *deckSize)},
			{PlayerUUID: "sim-p2", PlayerName: "Sim Two", IsComputer: true, Deck: buildDeck(catalog, rng, *deckSize)},
		},
	}

	if err := engine.BeginMatch(m, rules, rng); err != nil {
		logging.Fatal("failed to begin match", err, nil)
	}
	for m.Status == game.StatusInProgress {
		if err := playTurn(m, rules); err != nil {
			logging.Fatal("simulation failed", err, logging.Fields{"turn": m.TurnCount})
		}
		fmt.Fprintf(os.Stderr, "turn %d: %s [%d-%d]\n",
			len(m.Log.Turns), m.LastTurnSummary, m.Players[0].Score, m.Players[1].Score)
	}
	fmt.Fprintln(os.Stderr, m.Message)

	out, err := json.MarshalIndent(m.Log, "", "  ")
	if err != nil {
		logging.Fatal("failed to encode game log", err, nil)
	}
	fmt.Println(string(out))
}

func playTurn(m *game.Match, rules engine.Rules) error {
	if err := engine.AdvanceDraw(m, rules); err != nil {
		return err
	}
	for seat := range m.Players {
		idx, kind, err := service.AutoSelect(m, seat, rules)
		if err != nil {
			return err
		}
		if err := engine.SubmitSelection(m, seat, idx, kind, rules); err != nil {
			return err
		}
	}
	if err := engine.ResolveCombat(m, rules); err != nil {
		return err
	}
	return engine.FinishCheck(m, rules)
}

// buildDeck shuffles the catalog and deals deckSize names, wrapping
// around for catalogs smaller than the deck.
func buildDeck(catalog *game.Catalog, rng *rand.Rand, deckSize int) []string {
	cards := catalog.Cards()
	names := make([]string, len(cards))
	for i, card := range cards {
		names[i] = card.Name
	}
	shuffled := engine.ShuffleDeck(rng, names)
	deck := make([]string, 0, deckSize)
	for len(deck) < deckSize {
		for _, name := range shuffled {
			deck = append(deck, name)
			if len(deck) == deckSize {
				break
			}
		}
	}
	return deck
}
