package api

import (
	"errors"
	"net/http"

	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/constants"
	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/engine"
	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/game"
	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type TurnRequest struct {
	PlayerUUID string `json:"player_uuid"`
	HandIndex  int    `json:"hand_index"`
	Power      string `json:"power"`
}

// SubmitTurn stores a player's card/power selection for the current turn
// and reports whether the turn was resolved.
func (h *MatchHandler) SubmitTurn(c *gin.Context) {
	code := normalizeJoinCode(c.Param("matchCode"))
	if code == "" || !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidMatchID})
		return
	}
	m, err := h.repo.FindMatchByJoinCode(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		return
	}
	var req TurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	kind, ok := game.ParsePowerKind(req.Power)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidSelection})
		return
	}

	m2, resolved, err := service.SubmitTurn(h.repo, m.ID, req.PlayerUUID, req.HandIndex, kind, h.rules, h.actionTimeout)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMatchNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		case errors.Is(err, service.ErrMatchNotInProgress):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrMatchNotInProgress})
		case errors.Is(err, service.ErrSelectionsLocked):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrSelectionsLockedResolving})
		case errors.Is(err, service.ErrPlayerNotInMatch), errors.Is(err, service.ErrComputerSeat):
			c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrPlayerNotInThisMatch})
		case errors.Is(err, engine.ErrAlreadySelected):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrAlreadySelectedThisTurn})
		case errors.Is(err, engine.ErrHandIndexOutOfRange),
			errors.Is(err, engine.ErrPowerNotFound),
			errors.Is(err, engine.ErrCardNotFound):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidSelection})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedStoreTurn})
		}
		return
	}

	if resolved {
		c.JSON(http.StatusOK, gin.H{
			constants.JSONKeyMessage: "Turn resolved",
			"turn":                   m2.TurnCount,
			"status":                 m2.Status,
			"last_turn_summary":      m2.LastTurnSummary,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "Selection stored. Waiting for opponent."})
}
