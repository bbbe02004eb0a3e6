// Seed provisions a development environment: a demo advocate with a
// firm, the shared global reference documents and the firm's standing
// compliance calendar.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/SauravRai18/vidhi/models"
	"github.com/SauravRai18/vidhi/repository"
	"github.com/SauravRai18/vidhi/service"
	"github.com/SauravRai18/vidhi/session"
	"github.com/SauravRai18/vidhi/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: No .env file found, using environment variables: %v", err)
	}

	ctx := context.Background()

	kv, err := store.NewFromEnv(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}

	audit := repository.NewAuditRepository(kv)
	firms := repository.NewFirmRepository(kv)
	users := repository.NewUserRepository(kv)

	email := "advocate@example.com"
	password := "testpassword123"
	name := "Demo Advocate"

	existing, err := users.GetByEmail(ctx, email)
	if err != nil {
		log.Fatalf("Failed to query users: %v", err)
	}
	if existing != nil {
		log.Printf("User with email %s already exists (ID: %s)", email, existing.ID)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	role := models.RoleSeniorAdvocate
	profile := role.Profile()

	firm := &models.Firm{
		ID:        models.NewID("firm"),
		Name:      "Demo Chambers",
		Plan:      profile.SignupPlan,
		CreatedAt: models.NowMillis(),
		Credits:   profile.SignupCredits,
	}
	user := &models.User{
		ID:              models.NewID("usr"),
		Name:            name,
		Email:           email,
		PasswordHash:    string(hashed),
		Role:            role,
		Tier:            profile.SignupPlan,
		FirmID:          firm.ID,
		FirmName:        firm.Name,
		IsSetupComplete: true,
		Usage: models.Usage{
			ResearchCredits:    profile.SignupCredits,
			MaxResearchCredits: profile.SignupCredits,
		},
	}
	firm.OwnerID = user.ID

	if err := firms.Save(ctx, firm); err != nil {
		log.Fatalf("Failed to create firm: %v", err)
	}
	if err := users.Save(ctx, user); err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}
	if err := audit.Log(ctx, firm.ID, user.ID, "USER_SIGNUP", map[string]any{
		"email": email,
		"role":  string(role),
	}); err != nil {
		log.Fatalf("Failed to write audit entry: %v", err)
	}

	if err := seedGlobalDocuments(ctx, kv); err != nil {
		log.Fatalf("Failed to seed global documents: %v", err)
	}

	// Seeding scoped data requires an active session for the new user.
	resolver := session.NewResolver(kv)
	if err := resolver.Set(ctx, user); err != nil {
		log.Fatalf("Failed to establish seed session: %v", err)
	}
	defer resolver.Clear(ctx)

	logger := zap.NewNop()
	matters := service.NewMatterService(
		repository.NewMatterRepository(kv, audit, resolver),
		repository.NewClientRepository(kv, audit, resolver),
		repository.NewHearingRepository(kv, audit, resolver),
		resolver, logger)
	if err := matters.SeedFirmData(ctx); err != nil {
		log.Fatalf("Failed to seed firm data: %v", err)
	}

	compliance := service.NewComplianceService(
		repository.NewComplianceRepository(kv, audit, resolver))
	if err := compliance.SeedDefaults(ctx); err != nil {
		log.Fatalf("Failed to seed compliance items: %v", err)
	}

	fmt.Printf("Seed complete.\n")
	fmt.Printf("   Email: %s\n", email)
	fmt.Printf("   Password: %s\n", password)
	fmt.Printf("   Firm: %s (%s)\n", firm.Name, firm.ID)
}

// seedGlobalDocuments installs the shared reference library every firm
// can read. Idempotent: existing globals are left alone.
func seedGlobalDocuments(ctx context.Context, kv store.KV) error {
	scoped := repository.NewScoped[*models.LegalDocument](kv, store.TableDocuments)

	existing, err := scoped.All(ctx, models.GlobalFirmID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	globals := []*models.LegalDocument{
		{
			Tenanted:  models.Tenanted{ID: models.NewID("doc")},
			Title:     "Limitation Act, 1963 - key periods",
			Content:   "Article 116: appeals to High Court, 90 days. Article 137: residuary applications, 3 years.",
			Type:      models.DocStatute,
			Status:    models.DocIndexed,
			CreatedAt: models.NowMillis(),
		},
		{
			Tenanted:  models.Tenanted{ID: models.NewID("doc")},
			Title:     "CPC Order XXXIX - temporary injunctions",
			Content:   "Rules 1 and 2 govern grant of temporary injunction; the triple test of prima facie case, balance of convenience and irreparable injury applies.",
			Type:      models.DocStatute,
			Status:    models.DocIndexed,
			CreatedAt: models.NowMillis(),
		},
	}

	for _, doc := range globals {
		if err := scoped.Save(ctx, models.GlobalFirmID, doc); err != nil {
			return err
		}
	}
	return nil
}
