package api

import (
	"net/http"

	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/constants"
	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/engine"
	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/game"
	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/logging"
	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateMatchRequest struct {
	Name       string   `json:"name"`
	Private    bool     `json:"private"`
	VsComputer bool     `json:"vs_computer"`
	PlayerUUID string   `json:"player_uuid"`
	PlayerName string   `json:"player_name"`
	Deck       []string `json:"deck"`
}

type JoinMatchRequest struct {
	JoinCode   string   `json:"join_code"`
	PlayerUUID string   `json:"player_uuid"`
	PlayerName string   `json:"player_name"`
	Deck       []string `json:"deck"`
}

type matchActionRequest struct {
	PlayerUUID string `json:"player_uuid"`
}

// CreateMatch creates a new match with the caller in seat 1. Decks come
// from the external deck builder as ordered card-name lists and are
// validated here against the catalog. A missing player UUID gets one
// generated server-side.
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if len(req.Name) > 32 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrMatchNameExceeds})
		return
	}
	if msg := validateDeck(req.Deck, h.rules.Catalog); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: msg})
		return
	}
	if req.PlayerUUID == "" {
		req.PlayerUUID = uuid.NewString()
	}

	m := &game.Match{
		Name:       req.Name,
		Private:    req.Private,
		VsComputer: req.VsComputer,
		JoinCode:   generateJoinCode(h.rng),
		Status:     game.StatusWaiting,
		Players: []game.Player{
			{PlayerUUID: req.PlayerUUID, PlayerName: req.PlayerName, Deck: req.Deck},
		},
	}
	if req.VsComputer {
		m.Players = append(m.Players, game.Player{
			PlayerUUID: uuid.NewString(),
			PlayerName: "Computer",
			IsComputer: true,
			Deck:       h.computerDeck(),
		})
	}

	if err := h.repo.CreateMatch(m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateMatch})
		return
	}
	if err := h.repo.UpsertProfile(req.PlayerUUID, req.PlayerName); err != nil {
		logging.Error("failed to upsert profile", err, logging.Fields{constants.LogFieldPlayer: req.PlayerUUID})
	}
	logging.Info("match created", logging.Fields{constants.LogFieldMatchID: m.ID, constants.LogFieldJoinCode: m.JoinCode})
	out, err := MarshalIntoSnakeTimestamps(m)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncodeMatch})
		return
	}
	c.JSON(http.StatusCreated, out)
}

// computerDeck builds a deck for the computer seat by shuffling the full
// catalog and taking the first DeckSize names. Small catalogs wrap around
// while respecting the copy limit.
func (h *MatchHandler) computerDeck() []string {
	cards := h.rules.Catalog.Cards()
	names := make([]string, len(cards))
	for i, card := range cards {
		names[i] = card.Name
	}
	shuffled := engine.ShuffleDeck(h.rng, names)
	deck := make([]string, 0, DeckSize)
	for copies := 0; copies < MaxCardCopies && len(deck) < DeckSize; copies++ {
		for _, name := range shuffled {
			deck = append(deck, name)
			if len(deck) == DeckSize {
				break
			}
		}
	}
	return deck
}

// JoinMatch adds a second player to a waiting match.
func (h *MatchHandler) JoinMatch(c *gin.Context) {
	var req JoinMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	code := normalizeJoinCode(req.JoinCode)
	if code == "" || !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidMatchID})
		return
	}
	m, err := h.repo.FindMatchByJoinCode(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		return
	}
	if m.Status != game.StatusWaiting {
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrMatchAlreadyStarted})
		return
	}
	if len(m.Players) >= 2 {
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrMatchFull})
		return
	}
	if req.PlayerUUID == "" {
		req.PlayerUUID = uuid.NewString()
	}
	if m.PlayerByUUID(req.PlayerUUID) != nil {
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrPlayerNotInThisMatch})
		return
	}
	if msg := validateDeck(req.Deck, h.rules.Catalog); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: msg})
		return
	}

	m.Players = append(m.Players, game.Player{
		PlayerUUID: req.PlayerUUID,
		PlayerName: req.PlayerName,
		Deck:       req.Deck,
	})
	if err := h.repo.UpdateMatch(m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdateMatch})
		return
	}
	if err := h.repo.UpsertProfile(req.PlayerUUID, req.PlayerName); err != nil {
		logging.Error("failed to upsert profile", err, logging.Fields{constants.LogFieldPlayer: req.PlayerUUID})
	}
	out, err := MarshalIntoSnakeTimestamps(m)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncodeMatch})
		return
	}
	c.JSON(http.StatusOK, out)
}

// StartMatch shuffles decks, deals hands and opens the first turn.
func (h *MatchHandler) StartMatch(c *gin.Context) {
	code := normalizeJoinCode(c.Param("matchCode"))
	if code == "" || !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidMatchID})
		return
	}
	var req matchActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	m, err := h.repo.FindMatchByJoinCode(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		return
	}
	if m.PlayerByUUID(req.PlayerUUID) == nil {
		c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrPlayerNotInThisMatch})
		return
	}
	if m.Status != game.StatusWaiting {
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrMatchAlreadyStarted})
		return
	}
	if len(m.Players) != 2 {
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrNotEnoughPlayers})
		return
	}

	if err := service.StartMatch(h.repo, m, h.rules, h.rng, h.actionTimeout); err != nil {
		logging.Error("failed to start match", err, logging.Fields{constants.LogFieldMatchID: m.ID})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdateMatch})
		return
	}
	logging.Info("match started", logging.Fields{constants.LogFieldMatchID: m.ID})
	out, err := MarshalIntoSnakeTimestamps(m)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncodeMatch})
		return
	}
	c.JSON(http.StatusOK, out)
}

// LeaveMatch removes a player from a match that has not started yet.
func (h *MatchHandler) LeaveMatch(c *gin.Context) {
	code := normalizeJoinCode(c.Param("matchCode"))
	if code == "" || !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidMatchID})
		return
	}
	var req matchActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	m, err := h.repo.FindMatchByJoinCode(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		return
	}
	if m.Status != game.StatusWaiting {
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrCannotLeaveAfterMatchStart})
		return
	}
	if m.PlayerByUUID(req.PlayerUUID) == nil {
		c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrPlayerNotInThisMatch})
		return
	}
	if err := h.repo.RemovePlayerByUUID(m.ID, req.PlayerUUID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedRemovePlayer})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "Left the match"})
}
