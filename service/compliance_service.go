package service

import (
	"context"
	"time"

	"github.com/SauravRai18/vidhi/models"
	"github.com/SauravRai18/vidhi/repository"
)

// ComplianceService tracks per-firm compliance obligations.
type ComplianceService struct {
	items *repository.ComplianceRepository
}

// NewComplianceService creates a new compliance service
func NewComplianceService(items *repository.ComplianceRepository) *ComplianceService {
	return &ComplianceService{items: items}
}

// List returns the caller's compliance items.
func (s *ComplianceService) List(ctx context.Context) ([]*models.ComplianceItem, error) {
	return s.items.All(ctx)
}

// UpdateStatus transitions one item's status.
func (s *ComplianceService) UpdateStatus(ctx context.Context, id string, status models.ComplianceStatus) (*models.ComplianceItem, error) {
	items, err := s.items.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.ID == id {
			item.Status = status
			if err := s.items.Save(ctx, item); err != nil {
				return nil, err
			}
			return item, nil
		}
	}
	return nil, nil
}

// SeedDefaults populates a fresh firm with its standing compliance
// calendar. Idempotent: firms that already have items are left alone.
func (s *ComplianceService) SeedDefaults(ctx context.Context) error {
	existing, err := s.items.All(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	day := int64(24 * time.Hour / time.Millisecond)
	now := models.NowMillis()
	defaults := []*models.ComplianceItem{
		{
			Tenanted:    models.Tenanted{ID: models.NewID("cp")},
			Title:       "Limitation expiry - appeal window",
			Type:        models.ComplianceLimitation,
			DueDate:     now + 15*day,
			Status:      models.ComplianceCritical,
			Description: "Appeal limitation period closing for recently disposed matters.",
		},
		{
			Tenanted:    models.Tenanted{ID: models.NewID("cp")},
			Title:       "GST monthly return",
			Type:        models.ComplianceStatutory,
			DueDate:     now + 20*day,
			Status:      models.CompliancePending,
			Description: "GSTR-3B filing for the current tax period.",
		},
		{
			Tenanted:    models.Tenanted{ID: models.NewID("cp")},
			Title:       "Registry defect cure",
			Type:        models.ComplianceRegistry,
			DueDate:     now + 7*day,
			Status:      models.CompliancePending,
			Description: "Cure registry-noted defects before re-listing.",
		},
		{
			Tenanted:    models.Tenanted{ID: models.NewID("cp")},
			Title:       "Bar council CPD hours",
			Type:        models.ComplianceProfessional,
			DueDate:     now + 90*day,
			Status:      models.CompliancePending,
			Description: "Outstanding continuing professional development hours.",
		},
	}

	for _, item := range defaults {
		if err := s.items.Save(ctx, item); err != nil {
			return err
		}
	}
	return nil
}
