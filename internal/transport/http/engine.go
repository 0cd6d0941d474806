package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
	"github.com/iamasit07/5-in-a-row/backend/internal/service/bot"
	"github.com/iamasit07/5-in-a-row/backend/internal/service/decision"
)

type EngineHandler struct {
	Decisions *decision.Service
}

func NewEngineHandler(ds *decision.Service) *EngineHandler {
	return &EngineHandler{Decisions: ds}
}

type tierResponse struct {
	Tier        domain.Tier `json:"tier"`
	Opponent    string      `json:"opponent"`
	SearchDepth int         `json:"searchDepth"`
	Breadth     int         `json:"breadth"`
	OpeningBook bool        `json:"openingBook"`
}

type decideRequest struct {
	Board   [][]int           `json:"board" binding:"required"`
	History []domain.Position `json:"history"`
	Color   string            `json:"color"`
	Tier    string            `json:"tier" binding:"required"`
}

type decideResponse struct {
	Move    *domain.Position `json:"move"`
	Draw    bool             `json:"draw"`
	Stage   bot.Stage        `json:"stage"`
	Cached  bool             `json:"cached"`
	Elapsed int64            `json:"elapsedMs"`
}

func (h *EngineHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetTiers lists the engine strengths and their search settings.
func (h *EngineHandler) GetTiers(c *gin.Context) {
	response := make([]tierResponse, 0, len(domain.Tiers))
	for _, tier := range domain.Tiers {
		cfg, _ := bot.ConfigFor(tier)
		response = append(response, tierResponse{
			Tier:        tier,
			Opponent:    domain.GetBotName(tier),
			SearchDepth: cfg.SearchDepth,
			Breadth:     cfg.Breadth,
			OpeningBook: cfg.OpeningBook,
		})
	}
	c.JSON(http.StatusOK, response)
}

// Decide answers a one-off position without creating a match.
func (h *EngineHandler) Decide(c *gin.Context) {
	var req decideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	tier, err := domain.ParseTier(req.Tier)
	if err != nil {
		respondError(c, err)
		return
	}
	board, err := domain.BoardFromInts(req.Board)
	if err != nil {
		respondError(c, err)
		return
	}
	for _, pos := range req.History {
		if !pos.Valid() {
			respondError(c, fmt.Errorf("history entry %s: %w", pos, domain.ErrOutOfRange))
			return
		}
	}

	// an unparseable color is passed through as the zero color so each tier
	// applies its own validation
	color, _ := domain.ParseColor(req.Color)

	res, err := h.Decisions.Decide(c.Request.Context(), decision.Request{
		Board:   board,
		History: req.History,
		Color:   color,
		Tier:    tier,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	response := decideResponse{
		Draw:    !res.OK,
		Stage:   res.Stage,
		Cached:  res.Cached,
		Elapsed: res.Elapsed.Milliseconds(),
	}
	if res.OK {
		move := res.Move
		response.Move = &move
	}
	c.JSON(http.StatusOK, response)
}
