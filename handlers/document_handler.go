package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SauravRai18/vidhi/models"
	"github.com/SauravRai18/vidhi/repository"
	"github.com/SauravRai18/vidhi/service"
)

const maxUploadSize = 10 * 1024 * 1024 // 10MB

// DocumentHandler handles HTTP requests for document ingestion and
// retrieval
type DocumentHandler struct {
	documents *service.DocumentService
	docRepo   *repository.DocumentRepository
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documents *service.DocumentService, docRepo *repository.DocumentRepository) *DocumentHandler {
	return &DocumentHandler{documents: documents, docRepo: docRepo}
}

// Upload handles POST /api/documents/upload
func (h *DocumentHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "NO_FILE", "No file provided")
		return
	}
	if fileHeader.Size > maxUploadSize {
		respondError(c, http.StatusBadRequest, "FILE_TOO_LARGE", "File exceeds the 10MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "READ_FAILED", "Failed to read upload")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "READ_FAILED", "Failed to read upload")
		return
	}

	doc, err := h.documents.Ingest(c.Request.Context(), service.IngestInput{
		Title:    c.PostForm("title"),
		Type:     models.DocumentType(c.PostForm("type")),
		Filename: fileHeader.Filename,
		Raw:      raw,
		MatterID: c.PostForm("matterId"),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "INGEST_FAILED", "Failed to ingest document")
		return
	}
	respondCreated(c, doc)
}

// List handles GET /api/documents. The result includes shared global
// reference documents alongside the firm's own.
func (h *DocumentHandler) List(c *gin.Context) {
	docs, err := h.docRepo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list documents")
		return
	}
	respondOK(c, docs)
}

// Unlinked handles GET /api/documents/unlinked
func (h *DocumentHandler) Unlinked(c *gin.Context) {
	docs, err := h.docRepo.Unlinked(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list documents")
		return
	}
	respondOK(c, docs)
}

// Delete handles DELETE /api/documents/:id. Global documents are not
// deletable; the call is a no-op for them.
func (h *DocumentHandler) Delete(c *gin.Context) {
	if err := h.documents.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete document")
		return
	}
	respondOK(c, gin.H{"deleted": true})
}
