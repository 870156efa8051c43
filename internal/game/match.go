package game

import (
	"time"

	"gorm.io/gorm"
)

// Match lifecycle status.
const (
	StatusWaiting    = "waiting_for_players"
	StatusInProgress = "in_progress"
	StatusFinished   = "finished"
)

// Turn phases. A turn is one full draw→prep→combat→check cycle; finished is
// the terminal pseudo-phase entered when the win threshold or the turn
// limit is reached.
const (
	PhaseDraw     = "draw"
	PhasePrep     = "prep"
	PhaseCombat   = "combat"
	PhaseCheck    = "check"
	PhaseFinished = "finished"
)

// Winner codes for a finished match.
const (
	WinnerDraw    = 0
	WinnerPlayer1 = 1
	WinnerPlayer2 = 2
)

// Match is the aggregate state of one game between two players. It is
// owned by exactly one match lifecycle: created waiting, advanced turn by
// turn while in progress, and never shared between matches. All engine
// transitions take the match explicitly; there is no module-level game
// state anywhere in this codebase.
type Match struct {
	gorm.Model
	Name     string `json:"name" gorm:"size:32"`
	Private  bool   `json:"private"`
	JoinCode string `json:"join_code" gorm:"unique"`
	// VsComputer marks single-player matches where the second seat is
	// auto-played by the service layer.
	VsComputer bool     `json:"vs_computer"`
	Players    []Player `json:"players"`
	Status     string   `json:"status"`
	Phase      string   `json:"phase"`
	// TurnCount is the number of the turn currently being played, starting
	// at 1. It increments exactly once per completed turn, in the check
	// phase, and never decreases.
	TurnCount int `json:"turn_count"`
	// Winner is meaningful only when Status is finished: 0 draw, 1 or 2.
	Winner          int    `json:"winner"`
	Message         string `json:"message"`
	LastTurnSummary string `json:"last_turn_summary"`
	// Log is the append-only game log, stored as a JSON document alongside
	// the match row. External rollup/commitment collaborators consume it
	// verbatim.
	Log GameLog `json:"log" gorm:"serializer:json"`
	// ActionDeadline bounds how long the prep phase may wait for player
	// selections before the timeout scanner ends the match.
	ActionDeadline time.Time `json:"action_deadline"`
	StatsCounted   bool      `json:"-"`
}

// Player is one seat in a match. Decks are ordered card-name lists owned
// exclusively by this seat; hands hold card names resolved against the
// catalog on demand.
type Player struct {
	gorm.Model
	MatchID    uint     `json:"-"`
	PlayerUUID string   `json:"player_uuid"`
	PlayerName string   `json:"player_name"`
	IsComputer bool     `json:"is_computer"`
	Deck       []string `json:"deck" gorm:"serializer:json"`
	Hand       []string `json:"hand" gorm:"serializer:json"`
	Score      int      `json:"score"`

	// Per-turn selection state, cleared in the check phase.
	HasSelected bool   `json:"has_selected"`
	ActiveCard  string `json:"active_card"`
	// ActiveHandIndex is the hand position the active card occupied at the
	// moment of play, before removal. Together with SelectedPowerIndex it
	// forms the payload external submission layers sign and commit.
	ActiveHandIndex    int       `json:"active_hand_index"`
	SelectedPower      PowerKind `json:"selected_power"`
	SelectedPowerIndex int       `json:"selected_power_index"`
}

// TableName keeps seat rows in a dedicated table.
func (Player) TableName() string { return "match_players" }

// Profile stores unique player identity and aggregate stats across matches.
type Profile struct {
	gorm.Model
	PlayerUUID  string `json:"player_uuid" gorm:"uniqueIndex"`
	PlayerName  string `json:"player_name"`
	GamesPlayed int    `json:"games_played"`
	Wins        int    `json:"wins"`
	Draws       int    `json:"draws"`
}

func (Profile) TableName() string { return "player_profiles" }

// PlayerByUUID returns the seat belonging to uuid, or nil.
func (m *Match) PlayerByUUID(uuid string) *Player {
	for i := range m.Players {
		if m.Players[i].PlayerUUID == uuid {
			return &m.Players[i]
		}
	}
	return nil
}

// ClearSelections resets both seats' per-turn selection state.
func (m *Match) ClearSelections() {
	for i := range m.Players {
		p := &m.Players[i]
		p.HasSelected = false
		p.ActiveCard = ""
		p.ActiveHandIndex = 0
		p.SelectedPower = ""
		p.SelectedPowerIndex = 0
	}
}

// BothSelected reports whether both seats committed a card and power for
// the current turn.
func (m *Match) BothSelected() bool {
	if len(m.Players) != 2 {
		return false
	}
	return m.Players[0].HasSelected && m.Players[1].HasSelected
}
