package session

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/SauravRai18/vidhi/models"
	"github.com/SauravRai18/vidhi/repository"
)

var (
	ErrNoSession          = errors.New("no active session")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnknownRole        = errors.New("unknown role")
)

// AuthService creates firms and users at signup and maintains the
// session record. Authorization stays out of scope; the service only
// establishes who the caller is.
type AuthService struct {
	users    *repository.UserRepository
	firms    *repository.FirmRepository
	audit    *repository.AuditRepository
	resolver *Resolver
	logger   *zap.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(users *repository.UserRepository, firms *repository.FirmRepository, audit *repository.AuditRepository, resolver *Resolver, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:    users,
		firms:    firms,
		audit:    audit,
		resolver: resolver,
		logger:   logger,
	}
}

// Signup registers a new firm and its owner, starts a session and
// returns the user. Plan and credit grant follow the role profile.
func (s *AuthService) Signup(ctx context.Context, email, password, name, firmName string, role models.UserRole) (*models.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("signup as %q: %w", role, ErrUnknownRole)
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	profile := role.Profile()
	firmID := models.NewID("firm")
	userID := models.NewID("usr")

	firm := &models.Firm{
		ID:        firmID,
		Name:      firmName,
		Plan:      profile.SignupPlan,
		OwnerID:   userID,
		CreatedAt: models.NowMillis(),
		Credits:   profile.SignupCredits,
	}

	user := &models.User{
		ID:           userID,
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Tier:         firm.Plan,
		FirmID:       firmID,
		FirmName:     firmName,
		LastLogin:    models.NowMillis(),
		Usage: models.Usage{
			ResearchCredits:    profile.SignupCredits,
			MaxResearchCredits: profile.SignupCredits,
		},
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	if err := s.firms.Save(ctx, firm); err != nil {
		return nil, err
	}
	if err := s.audit.Log(ctx, firmID, userID, "USER_SIGNUP", map[string]any{
		"email": email,
		"role":  string(role),
	}); err != nil {
		return nil, err
	}

	if err := s.resolver.Set(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user signed up",
		zap.String("userId", userID),
		zap.String("firmId", firmID),
		zap.String("role", string(role)))
	return user, nil
}

// Login authenticates by email and password, bumps lastLogin and
// starts a session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user.LastLogin = models.NowMillis()
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	if err := s.audit.Log(ctx, user.FirmID, user.ID, "USER_LOGIN", nil); err != nil {
		return nil, err
	}

	if err := s.resolver.Set(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ProfileUpdate carries optional field changes; nil fields are left
// untouched.
type ProfileUpdate struct {
	Name            *string
	FirmName        *string
	City            *string
	PracticeArea    *string
	CourtLevel      *string
	CollegeName     *string
	Phone           *string
	IsSetupComplete *bool
}

// UpdateProfile applies the update to the session user's table row and
// re-saves the session copy, so the two cannot stay diverged.
func (s *AuthService) UpdateProfile(ctx context.Context, update ProfileUpdate) (*models.User, error) {
	current := s.resolver.Current(ctx)
	if current == nil {
		return nil, ErrNoSession
	}

	user, err := s.users.Get(ctx, current.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNoSession
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.FirmName != nil {
		user.FirmName = *update.FirmName
	}
	if update.City != nil {
		user.City = *update.City
	}
	if update.PracticeArea != nil {
		user.PracticeArea = *update.PracticeArea
	}
	if update.CourtLevel != nil {
		user.CourtLevel = *update.CourtLevel
	}
	if update.CollegeName != nil {
		user.CollegeName = *update.CollegeName
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.IsSetupComplete != nil {
		user.IsSetupComplete = *update.IsSetupComplete
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	if err := s.audit.Log(ctx, user.FirmID, user.ID, "UPDATE_PROFILE", nil); err != nil {
		return nil, err
	}
	if err := s.resolver.Set(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout clears the session.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.resolver.Clear(ctx)
}
