// Package service implements the domain operations on top of the
// repositories: factories, linking, ingestion, drafting and the AI
// surfaces. Entities only reach the store through these factories, so
// partially-initialized records never hit a table.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/SauravRai18/vidhi/models"
	"github.com/SauravRai18/vidhi/repository"
)

const defaultCourt = "High Court of Delhi"

// MatterService constructs and maintains matters, clients and
// hearings.
type MatterService struct {
	matters  *repository.MatterRepository
	clients  *repository.ClientRepository
	hearings *repository.HearingRepository
	identity repository.Identity
	logger   *zap.Logger
}

// NewMatterService creates a new matter service
func NewMatterService(matters *repository.MatterRepository, clients *repository.ClientRepository, hearings *repository.HearingRepository, identity repository.Identity, logger *zap.Logger) *MatterService {
	return &MatterService{
		matters:  matters,
		clients:  clients,
		hearings: hearings,
		identity: identity,
		logger:   logger,
	}
}

// CreateClientInput carries the caller-supplied client fields
type CreateClientInput struct {
	Name         string
	ContactEmail string
	ContactPhone string
	GSTIN        string
	Type         string
}

// CreateClient builds a well-formed client and persists it.
func (s *MatterService) CreateClient(ctx context.Context, in CreateClientInput) (*models.Client, error) {
	now := models.NowMillis()
	client := &models.Client{
		Tenanted:     models.Tenanted{ID: models.NewID("cl")},
		Name:         in.Name,
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
		GSTIN:        in.GSTIN,
		Type:         in.Type,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if client.Name == "" {
		client.Name = "Unnamed Client"
	}
	if client.Type == "" {
		client.Type = "Individual"
	}

	if err := s.clients.Save(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// CreateMatterInput carries the caller-supplied matter fields
type CreateMatterInput struct {
	ClientID   string
	Title      string
	Court      string
	CaseNumber string
	Tags       []string
}

// CreateMatter builds a well-formed matter and persists it. New
// matters start Pending.
func (s *MatterService) CreateMatter(ctx context.Context, in CreateMatterInput) (*models.Matter, error) {
	now := models.NowMillis()
	matter := &models.Matter{
		Tenanted:       models.Tenanted{ID: models.NewID("mt")},
		ClientID:       in.ClientID,
		Title:          in.Title,
		Court:          in.Court,
		CaseNumber:     in.CaseNumber,
		Status:         models.MatterPending,
		CreatedAt:      now,
		UpdatedAt:      now,
		LastAccessedAt: now,
		Tags:           in.Tags,
	}
	if matter.Title == "" {
		matter.Title = "Untitled Matter"
	}
	if matter.Court == "" {
		matter.Court = defaultCourt
	}
	if len(matter.Tags) == 0 {
		matter.Tags = []string{"Active"}
	}

	if err := s.matters.Save(ctx, matter); err != nil {
		return nil, err
	}
	return matter, nil
}

// AddHearingInput carries the caller-supplied hearing fields
type AddHearingInput struct {
	MatterID   string
	Date       int64
	Purpose    string
	Bench      string
	ItemNumber string
	CourtRoom  string
}

// AddHearing persists a hearing and maintains the parent matter's
// nextHearingDate index: the earliest hearing always wins, a later
// hearing never raises it.
func (s *MatterService) AddHearing(ctx context.Context, in AddHearingInput) (*models.Hearing, error) {
	hearing := &models.Hearing{
		Tenanted:   models.Tenanted{ID: models.NewID("hr")},
		MatterID:   in.MatterID,
		Date:       in.Date,
		Purpose:    in.Purpose,
		Bench:      in.Bench,
		ItemNumber: in.ItemNumber,
		CourtRoom:  in.CourtRoom,
	}
	if hearing.Date == 0 {
		hearing.Date = models.NowMillis()
	}
	if hearing.Purpose == "" {
		hearing.Purpose = "Mentioning"
	}

	if err := s.hearings.Save(ctx, hearing); err != nil {
		return nil, err
	}

	matter, err := s.matters.Get(ctx, hearing.MatterID)
	if err != nil {
		return nil, err
	}
	if matter != nil && (matter.NextHearingDate == 0 || hearing.Date < matter.NextHearingDate) {
		matter.NextHearingDate = hearing.Date
		matter.UpdatedAt = models.NowMillis()
		if err := s.matters.Save(ctx, matter); err != nil {
			return nil, err
		}
	}

	return hearing, nil
}

// UpdateLastAccessed bumps the matter's lastAccessedAt timestamp.
func (s *MatterService) UpdateLastAccessed(ctx context.Context, id string) error {
	matter, err := s.matters.Get(ctx, id)
	if err != nil {
		return err
	}
	if matter == nil {
		return nil
	}
	matter.LastAccessedAt = models.NowMillis()
	return s.matters.Save(ctx, matter)
}

// SeedFirmData populates a fresh firm with demo clients, matters and
// hearings. It is idempotent: firms that already have clients are left
// alone.
func (s *MatterService) SeedFirmData(ctx context.Context) error {
	clients, err := s.clients.All(ctx)
	if err != nil {
		return err
	}
	if len(clients) > 0 {
		return nil
	}

	c1, err := s.CreateClient(ctx, CreateClientInput{Name: "Rahul Malhotra", ContactEmail: "rahul@malhotra.in", Type: "Individual"})
	if err != nil {
		return err
	}
	c2, err := s.CreateClient(ctx, CreateClientInput{Name: "Sterling Tech Pvt Ltd", ContactEmail: "legal@sterling.com", Type: "Corporate"})
	if err != nil {
		return err
	}

	m1, err := s.CreateMatter(ctx, CreateMatterInput{ClientID: c1.ID, Title: "Malhotra vs. Union of India", Court: "High Court of Delhi", CaseNumber: "W.P. (C) 1024/2024"})
	if err != nil {
		return err
	}
	m2, err := s.CreateMatter(ctx, CreateMatterInput{ClientID: c2.ID, Title: "Sterling vs. Vendor X - Recovery", Court: "High Court of Bombay", CaseNumber: "COM.L. 505/2023"})
	if err != nil {
		return err
	}

	day := int64(24 * time.Hour / time.Millisecond)
	if _, err := s.AddHearing(ctx, AddHearingInput{MatterID: m1.ID, Date: models.NowMillis() + 3*day, Purpose: "Admission Arguments", Bench: "Division Bench - III"}); err != nil {
		return err
	}
	if _, err := s.AddHearing(ctx, AddHearingInput{MatterID: m2.ID, Date: models.NowMillis() + 7*day, Purpose: "Final Disposal", Bench: "Single Bench - I"}); err != nil {
		return err
	}

	s.logger.Info("seeded demo data for firm",
		zap.String("firmId", s.identity.CurrentFirmID(ctx)))
	return nil
}
