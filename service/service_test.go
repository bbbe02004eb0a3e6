package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SauravRai18/vidhi/models"
	"github.com/SauravRai18/vidhi/repository"
	"github.com/SauravRai18/vidhi/session"
	"github.com/SauravRai18/vidhi/store"
)

// stubGenerator returns canned model output and records the last call.
type stubGenerator struct {
	response     string
	jsonResponse string
	err          error

	lastModel  string
	lastSystem string
	lastPrompt string
	calls      int
}

func (g *stubGenerator) Generate(ctx context.Context, model, system, prompt string) (string, error) {
	g.calls++
	g.lastModel = model
	g.lastSystem = system
	g.lastPrompt = prompt
	return g.response, g.err
}

func (g *stubGenerator) GenerateJSON(ctx context.Context, model, prompt string, schema *genai.Schema, out any) error {
	g.calls++
	g.lastModel = model
	g.lastPrompt = prompt
	if g.err != nil {
		return g.err
	}
	return json.Unmarshal([]byte(g.jsonResponse), out)
}

// testEnv wires the full data layer over an in-memory store with an
// active session for one firm.
type testEnv struct {
	kv       store.KV
	resolver *session.Resolver
	audit    *repository.AuditRepository
	matters  *repository.MatterRepository
	clients  *repository.ClientRepository
	hearings *repository.HearingRepository
	docs     *repository.DocumentRepository
	drafts   *repository.DraftRepository
	chats    *repository.ChatRepository
	firms    *repository.FirmRepository
	users    *repository.UserRepository
	jobs     *repository.JobRepository
	user     *models.User
	firm     *models.Firm
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	kv := store.NewMemory()
	resolver := session.NewResolver(kv)
	audit := repository.NewAuditRepository(kv)

	env := &testEnv{
		kv:       kv,
		resolver: resolver,
		audit:    audit,
		matters:  repository.NewMatterRepository(kv, audit, resolver),
		clients:  repository.NewClientRepository(kv, audit, resolver),
		hearings: repository.NewHearingRepository(kv, audit, resolver),
		docs:     repository.NewDocumentRepository(kv, audit, resolver),
		drafts:   repository.NewDraftRepository(kv, audit, resolver),
		chats:    repository.NewChatRepository(kv, audit, resolver),
		firms:    repository.NewFirmRepository(kv),
		users:    repository.NewUserRepository(kv),
		jobs:     repository.NewJobRepository(kv),
	}

	env.firm = &models.Firm{
		ID:      "firm_test",
		Name:    "Test Chambers",
		Plan:    models.TierPro,
		Credits: 5,
	}
	env.user = &models.User{
		ID:     "usr_test",
		Name:   "Test Advocate",
		Email:  "test@example.com",
		Role:   models.RoleSeniorAdvocate,
		FirmID: env.firm.ID,
		Usage:  models.Usage{MaxResearchCredits: 5},
	}
	env.firm.OwnerID = env.user.ID

	require.NoError(t, env.firms.Save(ctx, env.firm))
	require.NoError(t, env.users.Save(ctx, env.user))
	require.NoError(t, resolver.Set(ctx, env.user))

	return env
}

func (e *testEnv) matterService() *MatterService {
	return NewMatterService(e.matters, e.clients, e.hearings, e.resolver, zap.NewNop())
}

func (e *testEnv) researchService(gen Generator) *ResearchService {
	return NewResearchService(gen, e.chats, e.firms, e.resolver, e.resolver, zap.NewNop())
}

func (e *testEnv) draftService(gen Generator) *DraftService {
	return NewDraftService(e.drafts, e.users, gen, e.resolver, zap.NewNop())
}
