package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SauravRai18/vidhi/models"
	"github.com/SauravRai18/vidhi/service"
)

// ResearchHandler handles HTTP requests for the AI research surfaces
type ResearchHandler struct {
	research *service.ResearchService
}

// NewResearchHandler creates a new research handler
func NewResearchHandler(research *service.ResearchService) *ResearchHandler {
	return &ResearchHandler{research: research}
}

// Ask handles POST /api/research/ask
func (h *ResearchHandler) Ask(c *gin.Context) {
	var req struct {
		MatterID string   `json:"matterId" binding:"required"`
		Query    string   `json:"query" binding:"required"`
		Contexts []string `json:"contexts"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	msg, err := h.research.Ask(c.Request.Context(), req.MatterID, req.Query, req.Contexts)
	if err != nil {
		if errors.Is(err, service.ErrNoResearchCredits) {
			respondError(c, http.StatusPaymentRequired, "NO_CREDITS", "Research credits exhausted")
			return
		}
		respondError(c, http.StatusInternalServerError, "RESEARCH_FAILED", "Failed to run research query")
		return
	}
	respondOK(c, msg)
}

// History handles GET /api/research/history/:matterId
func (h *ResearchHandler) History(c *gin.Context) {
	history, err := h.research.History(c.Request.Context(), c.Param("matterId"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "HISTORY_FAILED", "Failed to load chat history")
		return
	}
	respondOK(c, history)
}

// SummarizeJudgment handles POST /api/summarize/judgment
func (h *ResearchHandler) SummarizeJudgment(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	summary, err := h.research.AnalyzeJudgment(c.Request.Context(), req.Text)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "ANALYSIS_FAILED", "Failed to summarize judgment")
		return
	}
	respondOK(c, summary)
}

// ReviewContract handles POST /api/contracts/review
func (h *ResearchHandler) ReviewContract(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	audit, err := h.research.ReviewContract(c.Request.Context(), req.Text)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "REVIEW_FAILED", "Failed to review contract")
		return
	}
	respondOK(c, audit)
}

// AnalyzeDocument handles POST /api/documents/analyze
func (h *ResearchHandler) AnalyzeDocument(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
		Type string `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	analysis, err := h.research.AnalyzeDocument(c.Request.Context(), req.Text, models.DocumentType(req.Type))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "ANALYSIS_FAILED", "Failed to analyze document")
		return
	}
	respondOK(c, gin.H{"analysis": analysis})
}

// ExplainConcept handles POST /api/research/explain
func (h *ResearchHandler) ExplainConcept(c *gin.Context) {
	var req struct {
		Concept string `json:"concept" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	explanation, err := h.research.ExplainConcept(c.Request.Context(), req.Concept)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "EXPLAIN_FAILED", "Failed to explain concept")
		return
	}
	respondOK(c, gin.H{"explanation": explanation})
}

// SuggestStrategy handles POST /api/research/strategy
func (h *ResearchHandler) SuggestStrategy(c *gin.Context) {
	var req struct {
		Facts    string   `json:"facts" binding:"required"`
		Contexts []string `json:"contexts"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	content, score, basis, err := h.research.SuggestStrategy(c.Request.Context(), req.Facts, req.Contexts)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "STRATEGY_FAILED", "Failed to suggest strategy")
		return
	}
	respondOK(c, gin.H{
		"strategy":          content,
		"confidenceScore":   score,
		"legalBasisSummary": basis,
	})
}

// HearingBrief handles POST /api/research/hearing-brief
func (h *ResearchHandler) HearingBrief(c *gin.Context) {
	var req struct {
		Title    string   `json:"title" binding:"required"`
		Facts    string   `json:"facts"`
		Purpose  string   `json:"purpose"`
		Contexts []string `json:"contexts"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	brief, err := h.research.HearingBrief(c.Request.Context(), req.Title, req.Facts, req.Purpose, req.Contexts)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "BRIEF_FAILED", "Failed to generate hearing brief")
		return
	}
	respondOK(c, gin.H{"brief": brief})
}
