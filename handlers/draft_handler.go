package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SauravRai18/vidhi/repository"
	"github.com/SauravRai18/vidhi/service"
)

// DraftHandler handles HTTP requests for drafts
type DraftHandler struct {
	drafts    *service.DraftService
	draftRepo *repository.DraftRepository
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(drafts *service.DraftService, draftRepo *repository.DraftRepository) *DraftHandler {
	return &DraftHandler{drafts: drafts, draftRepo: draftRepo}
}

// List handles GET /api/drafts
func (h *DraftHandler) List(c *gin.Context) {
	drafts, err := h.draftRepo.All(c.Request.Context(), c.Query("matterId"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list drafts")
		return
	}
	respondOK(c, drafts)
}

// Unlinked handles GET /api/drafts/unlinked
func (h *DraftHandler) Unlinked(c *gin.Context) {
	drafts, err := h.draftRepo.Unlinked(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list drafts")
		return
	}
	respondOK(c, drafts)
}

// Create handles POST /api/drafts
func (h *DraftHandler) Create(c *gin.Context) {
	var req struct {
		Title    string `json:"title"`
		Type     string `json:"type"`
		Content  string `json:"content"`
		MatterID string `json:"matterId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	draft, err := h.drafts.CreateDraft(c.Request.Context(), service.CreateDraftInput{
		Title:    req.Title,
		Type:     req.Type,
		Content:  req.Content,
		MatterID: req.MatterID,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create draft")
		return
	}
	respondCreated(c, draft)
}

// SaveContent handles PUT /api/drafts/:id/content
func (h *DraftHandler) SaveContent(c *gin.Context) {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	draft, err := h.drafts.SaveContent(c.Request.Context(), c.Param("id"), req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDraftNotFound):
			respondError(c, http.StatusNotFound, "DRAFT_NOT_FOUND", "Draft not found")
		case errors.Is(err, repository.ErrStaleDraftVersion):
			respondError(c, http.StatusConflict, "STALE_VERSION", "Draft was modified by a newer save")
		default:
			respondError(c, http.StatusInternalServerError, "SAVE_FAILED", "Failed to save draft")
		}
		return
	}
	respondOK(c, draft)
}

// Generate handles POST /api/drafts/generate
func (h *DraftHandler) Generate(c *gin.Context) {
	var req struct {
		Title string         `json:"title"`
		Data  map[string]any `json:"data" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	draft, err := h.drafts.Generate(c.Request.Context(), req.Title, req.Data)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "GENERATION_FAILED", "Failed to generate draft")
		return
	}
	respondCreated(c, draft)
}
