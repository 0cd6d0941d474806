package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
	"github.com/iamasit07/5-in-a-row/backend/internal/service/match"
	"github.com/iamasit07/5-in-a-row/backend/internal/transport/http/middleware"
	"github.com/iamasit07/5-in-a-row/backend/pkg/auth"
)

type MatchHandler struct {
	Matches *match.Manager
}

func NewMatchHandler(mm *match.Manager) *MatchHandler {
	return &MatchHandler{Matches: mm}
}

type createMatchRequest struct {
	Tier  domain.Tier  `json:"tier"`
	Color domain.Color `json:"color"`
}

type createMatchResponse struct {
	Token string      `json:"token"`
	State match.State `json:"state"`
}

type moveRequest struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

// CreateMatch starts a game against the engine and returns the token that
// authorizes moves in it.
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	req := createMatchRequest{Tier: domain.Normal, Color: domain.ColorBlack}
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	m, err := h.Matches.CreateMatch(c.Request.Context(), req.Tier, req.Color)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := auth.GenerateMatchToken(m.ID, m.HumanColor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, createMatchResponse{Token: token, State: m.Snapshot()})
}

func (h *MatchHandler) GetMatch(c *gin.Context) {
	m, err := h.Matches.GetMatch(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m.Snapshot())
}

// MakeMove plays the token holder's stone and returns the engine reply.
func (h *MatchHandler) MakeMove(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "row and col are required"})
		return
	}

	m, err := h.Matches.GetMatch(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if color, ok := middleware.ColorFromContext(c); !ok || color != m.HumanColor {
		c.JSON(http.StatusForbidden, gin.H{"error": "Token color does not match"})
		return
	}

	result, err := m.HandleMove(c.Request.Context(), domain.Position{Row: *req.Row, Col: *req.Col})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
