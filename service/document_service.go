package service

import (
	"bytes"
	"context"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/SauravRai18/vidhi/blobstore"
	"github.com/SauravRai18/vidhi/models"
	"github.com/SauravRai18/vidhi/repository"
)

// TextExtractor converts an uploaded binary file into plain text. Real
// deployments plug in an OCR or PDF-parsing backend.
type TextExtractor interface {
	Extract(ctx context.Context, filename string, raw []byte) (string, error)
}

// PlainTextExtractor treats the upload as UTF-8 text, replacing
// invalid bytes. It is the default extractor.
type PlainTextExtractor struct{}

// Extract returns the file contents as a string.
func (PlainTextExtractor) Extract(ctx context.Context, filename string, raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	return string(bytes.ToValidUTF8(raw, []byte("�"))), nil
}

// DocumentService ingests documents, retains the raw upload and runs
// the Processing-to-Indexed transition as explicit persisted jobs.
type DocumentService struct {
	documents *repository.DocumentRepository
	jobs      *repository.JobRepository
	blobs     blobstore.BlobStore
	extractor TextExtractor
	identity  repository.Identity
	logger    *zap.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(documents *repository.DocumentRepository, jobs *repository.JobRepository, blobs blobstore.BlobStore, extractor TextExtractor, identity repository.Identity, logger *zap.Logger) *DocumentService {
	if extractor == nil {
		extractor = PlainTextExtractor{}
	}
	return &DocumentService{
		documents: documents,
		jobs:      jobs,
		blobs:     blobs,
		extractor: extractor,
		identity:  identity,
		logger:    logger,
	}
}

// IngestInput carries one upload
type IngestInput struct {
	Title    string
	Type     models.DocumentType
	Filename string
	Raw      []byte
	MatterID string
	Tags     []string
}

// Ingest stores the raw file, extracts its text and persists the
// document with status Processing. A pending indexing job records the
// outstanding transition; ReconcilePending completes it.
func (s *DocumentService) Ingest(ctx context.Context, in IngestInput) (*models.LegalDocument, error) {
	id := models.NewID("doc")

	path, err := s.blobs.Upload(ctx, id, in.Filename, bytes.NewReader(in.Raw))
	if err != nil {
		return nil, err
	}

	text, err := s.extractor.Extract(ctx, in.Filename, in.Raw)
	if err != nil {
		return nil, err
	}

	doc := &models.LegalDocument{
		Tenanted:    models.Tenanted{ID: id},
		MatterID:    in.MatterID,
		Title:       in.Title,
		Content:     text,
		Type:        in.Type,
		Status:      models.DocProcessing,
		CreatedAt:   models.NowMillis(),
		StoragePath: path,
		Metadata:    models.DocumentMeta{Tags: in.Tags},
	}
	if doc.Title == "" {
		doc.Title = in.Filename
	}
	if doc.Type == "" {
		doc.Type = models.DocResearch
	}

	if err := s.documents.Save(ctx, doc); err != nil {
		return nil, err
	}

	job := &models.IndexingJob{
		Tenanted:   models.Tenanted{ID: models.NewID("job"), FirmID: doc.FirmID},
		DocumentID: doc.ID,
		Status:     models.JobPending,
		CreatedAt:  models.NowMillis(),
	}
	if err := s.jobs.Save(ctx, job); err != nil {
		return nil, err
	}

	s.logger.Info("document ingested",
		zap.String("documentId", doc.ID),
		zap.String("firmId", doc.FirmID))
	return doc, nil
}

// ReconcilePending completes every pending indexing job, flipping its
// document from Processing to Indexed. A job whose document has
// vanished is marked failed. The pass is safe to run repeatedly and
// picks up jobs left behind by an earlier shutdown.
func (s *DocumentService) ReconcilePending(ctx context.Context) (int, error) {
	pending, err := s.jobs.Pending(ctx)
	if err != nil {
		return 0, err
	}

	done := 0
	for _, job := range pending {
		doc, err := s.documents.GetForFirm(ctx, job.FirmID, job.DocumentID)
		if err != nil {
			return done, err
		}

		if doc == nil {
			job.Status = models.JobFailed
			job.ErrorMessage = "document not found"
			job.CompletedAt = models.NowMillis()
			if err := s.jobs.Save(ctx, job); err != nil {
				return done, err
			}
			continue
		}

		if doc.Status == models.DocProcessing {
			doc.Status = models.DocIndexed
			if err := s.documents.SaveForFirm(ctx, job.FirmID, doc); err != nil {
				return done, err
			}
		}

		job.Status = models.JobCompleted
		job.CompletedAt = models.NowMillis()
		if err := s.jobs.Save(ctx, job); err != nil {
			return done, err
		}
		done++
	}

	if done > 0 {
		s.logger.Info("reconciled indexing jobs", zap.Int("completed", done))
	}
	return done, nil
}

// Delete removes one of the caller's own documents and its raw file.
// Global shared documents survive tenant delete calls untouched.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	doc, err := s.documents.Get(ctx, id)
	if err != nil {
		return err
	}
	if doc == nil {
		return nil
	}

	if err := s.documents.Delete(ctx, id); err != nil {
		return err
	}
	if doc.StoragePath != "" {
		if err := s.blobs.Delete(ctx, doc.StoragePath); err != nil {
			// The table row is already gone; losing the orphaned blob
			// is preferable to resurrecting the document.
			s.logger.Warn("failed to delete raw upload",
				zap.String("documentId", id), zap.Error(err))
		}
	}
	return nil
}
