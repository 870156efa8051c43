package api

import (
	"net/http"
	"strconv"

	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/constants"
	"github.com/tcxcx/cats-dogs-memes95-sub000/internal/version"

	"github.com/gin-gonic/gin"
)

// ListCards returns every card in the catalog.
func (h *MatchHandler) ListCards(c *gin.Context) {
	c.JSON(http.StatusOK, h.rules.Catalog.Cards())
}

// ListPublicMatches returns all public matches waiting for players or in
// progress.
func (h *MatchHandler) ListPublicMatches(c *gin.Context) {
	matches, err := h.repo.GetPublicMatches()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchMatches})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(matches)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncodeMatches})
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListLeaderboard returns the top players by wins, limited to 10 by default.
func (h *MatchHandler) ListLeaderboard(c *gin.Context) {
	limit := 10
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	players, err := h.repo.GetTopPlayers(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(players)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetPlayerStats returns aggregate stats for one player UUID.
func (h *MatchHandler) GetPlayerStats(c *gin.Context) {
	uuid := c.Query("player_uuid")
	if uuid == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrPlayerUUIDRequired})
		return
	}
	stats, err := h.repo.GetStatsByUUID(uuid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrFailedFetchStats})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(stats)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchStats})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetMatch returns a match by join code, including the full game log.
func (h *MatchHandler) GetMatch(c *gin.Context) {
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
	out, err := MarshalIntoSnakeTimestamps(m)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncodeMatch})
		return
	}
	c.JSON(http.StatusOK, out)
}

// Version returns build metadata injected at build time.
func Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": version.Version,
		"commit":  version.Commit,
		"date":    version.Date,
	})
}
