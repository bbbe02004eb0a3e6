package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SauravRai18/vidhi/models"
	"github.com/SauravRai18/vidhi/repository"
	"github.com/SauravRai18/vidhi/service"
)

// AdminHandler handles HTTP requests for dashboards, compliance and
// the audit trail
type AdminHandler struct {
	dashboard  *service.DashboardService
	compliance *service.ComplianceService
	audit      *repository.AuditRepository
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(dashboard *service.DashboardService, compliance *service.ComplianceService, audit *repository.AuditRepository) *AdminHandler {
	return &AdminHandler{dashboard: dashboard, compliance: compliance, audit: audit}
}

// Dashboard handles GET /api/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.dashboard.FirmStats(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DASHBOARD_FAILED", "Failed to build dashboard")
		return
	}
	respondOK(c, stats)
}

// Platform handles GET /api/admin/platform
func (h *AdminHandler) Platform(c *gin.Context) {
	stats, err := h.dashboard.Platform(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "PLATFORM_FAILED", "Failed to build platform stats")
		return
	}
	respondOK(c, stats)
}

// AuditTrail handles GET /api/admin/audit. An optional firmId query
// narrows the trail to one tenant; omitting it returns all entries.
func (h *AdminHandler) AuditTrail(c *gin.Context) {
	logs, err := h.audit.List(c.Request.Context(), c.Query("firmId"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "AUDIT_FAILED", "Failed to load audit trail")
		return
	}
	respondOK(c, logs)
}

// ListCompliance handles GET /api/compliance
func (h *AdminHandler) ListCompliance(c *gin.Context) {
	items, err := h.compliance.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list compliance items")
		return
	}
	respondOK(c, items)
}

// UpdateComplianceStatus handles PUT /api/compliance/:id/status
func (h *AdminHandler) UpdateComplianceStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	item, err := h.compliance.UpdateStatus(c.Request.Context(), c.Param("id"), models.ComplianceStatus(req.Status))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update compliance item")
		return
	}
	if item == nil {
		respondError(c, http.StatusNotFound, "ITEM_NOT_FOUND", "Compliance item not found")
		return
	}
	respondOK(c, item)
}

// SeedCompliance handles POST /api/compliance/seed
func (h *AdminHandler) SeedCompliance(c *gin.Context) {
	if err := h.compliance.SeedDefaults(c.Request.Context()); err != nil {
		respondError(c, http.StatusInternalServerError, "SEED_FAILED", "Failed to seed compliance items")
		return
	}
	respondOK(c, gin.H{"seeded": true})
}
