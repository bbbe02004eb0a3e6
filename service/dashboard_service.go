package service

import (
	"context"

	"github.com/SauravRai18/vidhi/models"
	"github.com/SauravRai18/vidhi/repository"
)

// DashboardStats aggregates the firm-level overview
type DashboardStats struct {
	ActiveMattersCount int                      `json:"activeMattersCount"`
	DraftsCount        int                      `json:"draftsCount"`
	RemainingCredits   int                      `json:"remainingCredits"`
	MaxCredits         int                      `json:"maxCredits"`
	AllMatters         []*models.Matter         `json:"allMatters"`
	UpcomingHearings   []*models.Hearing        `json:"upcomingHearings"`
	CriticalCompliance []*models.ComplianceItem `json:"criticalCompliance"`
	RecentActivity     []*models.AuditLog       `json:"recentActivity"`
}

// PlatformStats aggregates the founder-level overview
type PlatformStats struct {
	TotalFirms int                `json:"totalFirms"`
	TotalUsers int                `json:"totalUsers"`
	RecentLogs []*models.AuditLog `json:"recentLogs"`
}

// DashboardService assembles the role dashboards from the
// repositories.
type DashboardService struct {
	matters    *repository.MatterRepository
	drafts     *repository.DraftRepository
	hearings   *repository.HearingRepository
	compliance *repository.ComplianceRepository
	firms      *repository.FirmRepository
	users      *repository.UserRepository
	audit      *repository.AuditRepository
	sessions   SessionReader
	identity   repository.Identity
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(matters *repository.MatterRepository, drafts *repository.DraftRepository, hearings *repository.HearingRepository, compliance *repository.ComplianceRepository, firms *repository.FirmRepository, users *repository.UserRepository, audit *repository.AuditRepository, sessions SessionReader, identity repository.Identity) *DashboardService {
	return &DashboardService{
		matters:    matters,
		drafts:     drafts,
		hearings:   hearings,
		compliance: compliance,
		firms:      firms,
		users:      users,
		audit:      audit,
		sessions:   sessions,
		identity:   identity,
	}
}

// FirmStats returns the dashboard aggregate for the caller's firm.
func (s *DashboardService) FirmStats(ctx context.Context) (*DashboardStats, error) {
	firmID := s.identity.CurrentFirmID(ctx)

	matters, err := s.matters.All(ctx)
	if err != nil {
		return nil, err
	}
	drafts, err := s.drafts.All(ctx, "")
	if err != nil {
		return nil, err
	}
	upcoming, err := s.hearings.Upcoming(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.compliance.All(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := s.audit.List(ctx, firmID)
	if err != nil {
		return nil, err
	}
	firm, err := s.firms.Get(ctx, firmID)
	if err != nil {
		return nil, err
	}

	var critical []*models.ComplianceItem
	for _, item := range items {
		if item.Status == models.ComplianceCritical {
			critical = append(critical, item)
		}
	}

	stats := &DashboardStats{
		ActiveMattersCount: len(matters),
		DraftsCount:        len(drafts),
		AllMatters:         matters,
		UpcomingHearings:   upcoming,
		CriticalCompliance: critical,
		RecentActivity:     firstN(logs, 10),
	}
	if firm != nil {
		stats.RemainingCredits = firm.Credits
	}
	if u := s.sessions.Current(ctx); u != nil {
		stats.MaxCredits = u.Usage.MaxResearchCredits
	}
	return stats, nil
}

// Platform returns the founder-level overview across all tenants.
func (s *DashboardService) Platform(ctx context.Context) (*PlatformStats, error) {
	firms, err := s.firms.All(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.All(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := s.audit.List(ctx, "")
	if err != nil {
		return nil, err
	}

	return &PlatformStats{
		TotalFirms: len(firms),
		TotalUsers: len(users),
		RecentLogs: firstN(logs, 50),
	}, nil
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
