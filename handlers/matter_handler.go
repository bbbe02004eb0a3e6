package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SauravRai18/vidhi/repository"
	"github.com/SauravRai18/vidhi/service"
)

// MatterHandler handles HTTP requests for matters, clients, hearings
// and cross-entity linking
type MatterHandler struct {
	matters     *service.MatterService
	links       *service.LinkService
	matterRepo  *repository.MatterRepository
	clientRepo  *repository.ClientRepository
	hearingRepo *repository.HearingRepository
}

// NewMatterHandler creates a new matter handler
func NewMatterHandler(matters *service.MatterService, links *service.LinkService, matterRepo *repository.MatterRepository, clientRepo *repository.ClientRepository, hearingRepo *repository.HearingRepository) *MatterHandler {
	return &MatterHandler{
		matters:     matters,
		links:       links,
		matterRepo:  matterRepo,
		clientRepo:  clientRepo,
		hearingRepo: hearingRepo,
	}
}

// ListMatters handles GET /api/matters
func (h *MatterHandler) ListMatters(c *gin.Context) {
	matters, err := h.matterRepo.All(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list matters")
		return
	}
	respondOK(c, matters)
}

// CreateMatter handles POST /api/matters
func (h *MatterHandler) CreateMatter(c *gin.Context) {
	var req struct {
		ClientID   string   `json:"clientId"`
		Title      string   `json:"title"`
		Court      string   `json:"court"`
		CaseNumber string   `json:"caseNumber"`
		Tags       []string `json:"tags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	matter, err := h.matters.CreateMatter(c.Request.Context(), service.CreateMatterInput{
		ClientID:   req.ClientID,
		Title:      req.Title,
		Court:      req.Court,
		CaseNumber: req.CaseNumber,
		Tags:       req.Tags,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create matter")
		return
	}
	respondCreated(c, matter)
}

// TouchMatter handles POST /api/matters/:id/access
func (h *MatterHandler) TouchMatter(c *gin.Context) {
	if err := h.matters.UpdateLastAccessed(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update matter")
		return
	}
	respondOK(c, gin.H{"touched": true})
}

// LinkDocument handles POST /api/matters/:id/link-document
func (h *MatterHandler) LinkDocument(c *gin.Context) {
	var req struct {
		DocumentID string `json:"documentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if err := h.links.LinkDocument(c.Request.Context(), c.Param("id"), req.DocumentID); err != nil {
		respondError(c, http.StatusInternalServerError, "LINK_FAILED", "Failed to link document")
		return
	}
	respondOK(c, gin.H{"linked": true})
}

// LinkDraft handles POST /api/matters/:id/link-draft
func (h *MatterHandler) LinkDraft(c *gin.Context) {
	var req struct {
		DraftID string `json:"draftId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if err := h.links.LinkDraft(c.Request.Context(), c.Param("id"), req.DraftID); err != nil {
		respondError(c, http.StatusInternalServerError, "LINK_FAILED", "Failed to link draft")
		return
	}
	respondOK(c, gin.H{"linked": true})
}

// ListClients handles GET /api/clients
func (h *MatterHandler) ListClients(c *gin.Context) {
	clients, err := h.clientRepo.All(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list clients")
		return
	}
	respondOK(c, clients)
}

// CreateClient handles POST /api/clients
func (h *MatterHandler) CreateClient(c *gin.Context) {
	var req struct {
		Name         string `json:"name"`
		ContactEmail string `json:"contactEmail"`
		ContactPhone string `json:"contactPhone"`
		GSTIN        string `json:"gstin"`
		Type         string `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	client, err := h.matters.CreateClient(c.Request.Context(), service.CreateClientInput{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		GSTIN:        req.GSTIN,
		Type:         req.Type,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create client")
		return
	}
	respondCreated(c, client)
}

// ListHearings handles GET /api/hearings
func (h *MatterHandler) ListHearings(c *gin.Context) {
	hearings, err := h.hearingRepo.All(c.Request.Context(), c.Query("matterId"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list hearings")
		return
	}
	respondOK(c, hearings)
}

// UpcomingHearings handles GET /api/hearings/upcoming
func (h *MatterHandler) UpcomingHearings(c *gin.Context) {
	hearings, err := h.hearingRepo.Upcoming(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list hearings")
		return
	}
	respondOK(c, hearings)
}

// AddHearing handles POST /api/hearings
func (h *MatterHandler) AddHearing(c *gin.Context) {
	var req struct {
		MatterID   string `json:"matterId" binding:"required"`
		Date       int64  `json:"date"`
		Purpose    string `json:"purpose"`
		Bench      string `json:"bench"`
		ItemNumber string `json:"itemNumber"`
		CourtRoom  string `json:"courtRoom"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	hearing, err := h.matters.AddHearing(c.Request.Context(), service.AddHearingInput{
		MatterID:   req.MatterID,
		Date:       req.Date,
		Purpose:    req.Purpose,
		Bench:      req.Bench,
		ItemNumber: req.ItemNumber,
		CourtRoom:  req.CourtRoom,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to add hearing")
		return
	}
	respondCreated(c, hearing)
}

// SeedFirm handles POST /api/seed
func (h *MatterHandler) SeedFirm(c *gin.Context) {
	if err := h.matters.SeedFirmData(c.Request.Context()); err != nil {
		respondError(c, http.StatusInternalServerError, "SEED_FAILED", "Failed to seed firm data")
		return
	}
	respondOK(c, gin.H{"seeded": true})
}
