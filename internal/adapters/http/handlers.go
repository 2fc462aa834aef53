// Package httpadapter exposes the game service as a JSON API.
package httpadapter

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"svw.info/sudokugame/internal/domain"
	"svw.info/sudokugame/internal/solver"
	"svw.info/sudokugame/internal/usecase"
)

type Handler struct {
	uc *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{uc: uc} }

// Register mounts all routes under /api/v1.
func (h *Handler) Register(e *gin.Engine) {
	v1 := e.Group("/api").Group("/v1")
	v1.POST("/verify", h.Verify)
	v1.POST("/generate", h.Generate)
	v1.POST("/solve", h.Solve)
	v1.POST("/derive", h.Derive)
	v1.GET("/catalog", h.Catalog)
	v1.GET("/boards/:difficulty", h.LoadBoard)
	v1.PUT("/boards/:difficulty", h.SaveBoard)
	v1.POST("/actions", h.RecordAction)
	v1.POST("/actions/undo", h.UndoAction)
}

type boardReq struct {
	Board [9][9]uint8 `json:"board"`
}

func (h *Handler) Verify(c *gin.Context) {
	var req boardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}
	b := &domain.Board{Values: req.Board}
	res, err := h.uc.Verify(c, b)
	if err != nil {
		log.Err(err).Msg("verify board")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "verification unavailable", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

type generateReq struct {
	Difficulty string `json:"difficulty"`
	Seed       int64  `json:"seed,omitempty"`
}

func (h *Handler) Generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}
	diff, ok := domain.ParseDifficulty(req.Difficulty)
	if !ok || diff == domain.Current {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown difficulty", "message": req.Difficulty})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p, st, err := h.uc.Generate(c, seed, diff)
	if err != nil {
		log.Err(err).Str("difficulty", diff.String()).Msg("generate puzzle")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "generation failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"board":      p.Board,
		"seed":       p.Seed,
		"difficulty": diff.String(),
		"durationMs": st.Duration.Milliseconds(),
		"nodes":      st.Nodes,
	})
}

func (h *Handler) Solve(c *gin.Context) {
	var req boardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}
	b := &domain.Board{Values: req.Board}
	sol, st, err := h.uc.Solve(c, b)
	switch {
	case errors.Is(err, solver.ErrShapeMismatch):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "shape mismatch", "message": err.Error()})
		return
	case errors.Is(err, solver.ErrUnsolvable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unsolvable", "message": err.Error(), "nodes": st.Nodes})
		return
	case err != nil:
		log.Err(err).Msg("solve board")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "solve failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"placements": sol,
		"durationMs": st.Duration.Milliseconds(),
		"nodes":      st.Nodes,
	})
}

type deriveReq struct {
	Board [9][9]uint8 `json:"board"`
	Seed  int64       `json:"seed,omitempty"`
}

func (h *Handler) Derive(c *gin.Context) {
	var req deriveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := &domain.Board{Values: req.Board}
	if err := h.uc.DeriveGames(c, seed, source); err != nil {
		if errors.Is(err, usecase.ErrSourceInvalid) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "source invalid", "message": err.Error()})
			return
		}
		log.Err(err).Msg("derive games")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "derive failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) Catalog(c *gin.Context) {
	cat, err := h.uc.Catalog(c)
	if err != nil {
		log.Err(err).Msg("read catalog")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cat)
}

func difficultyParam(c *gin.Context) (domain.Difficulty, bool) {
	d, ok := domain.ParseDifficulty(c.Param("difficulty"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown difficulty", "message": c.Param("difficulty")})
	}
	return d, ok
}

func (h *Handler) LoadBoard(c *gin.Context) {
	d, ok := difficultyParam(c)
	if !ok {
		return
	}
	b, err := h.uc.LoadBoard(c, d)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no saved board", "message": d.String()})
			return
		}
		log.Err(err).Str("difficulty", d.String()).Msg("load board")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) SaveBoard(c *gin.Context) {
	d, ok := difficultyParam(c)
	if !ok {
		return
	}
	var req boardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}
	b := &domain.Board{Values: req.Board}
	if err := h.uc.SaveBoard(c, b, d); err != nil {
		log.Err(err).Str("difficulty", d.String()).Msg("save board")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) RecordAction(c *gin.Context) {
	var a domain.Action
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}
	if err := h.uc.RecordAction(c, a); err != nil {
		log.Err(err).Msg("record action")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "record failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) UndoAction(c *gin.Context) {
	a, err := h.uc.UndoAction(c)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "nothing to undo", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, a)
}
