package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SauravRai18/vidhi/models"
)

func TestParseResearchFooter(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		content   string
		score     int
		basis     string
	}{
		{
			name:    "full footer",
			raw:     "The limitation period is 90 days.\n[CONFIDENCE_SCORE]: 85%\n[LEGAL_BASIS]: Article 116, Limitation Act",
			content: "The limitation period is 90 days.",
			score:   85,
			basis:   "Article 116, Limitation Act",
		},
		{
			name:    "score without percent sign",
			raw:     "Answer.\n[CONFIDENCE_SCORE]: 70\n[LEGAL_BASIS]: CPC Order XXXIX",
			content: "Answer.",
			score:   70,
			basis:   "CPC Order XXXIX",
		},
		{
			name:    "no footer passes through",
			raw:     "Plain answer with no markers.",
			content: "Plain answer with no markers.",
		},
		{
			name:    "score only",
			raw:     "Answer.\n[CONFIDENCE_SCORE]: 60%",
			content: "Answer.",
			score:   60,
		},
		{
			name:    "unparseable score",
			raw:     "Answer.\n[CONFIDENCE_SCORE]: high\n[LEGAL_BASIS]: IPC",
			content: "Answer.",
			basis:   "IPC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, score, basis := parseResearchFooter(tt.raw)
			assert.Equal(t, tt.content, content)
			assert.Equal(t, tt.score, score)
			assert.Equal(t, tt.basis, basis)
		})
	}
}

func TestAskPersistsConversationAndBurnsCredit(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	gen := &stubGenerator{response: "Yes, file within 90 days.\n[CONFIDENCE_SCORE]: 90%\n[LEGAL_BASIS]: Limitation Act"}
	svc := env.researchService(gen)

	msg, err := svc.Ask(ctx, "mt_1", "What is the appeal window?", nil)
	require.NoError(t, err)

	assert.Equal(t, models.ChatModel, msg.Role)
	assert.Equal(t, "Yes, file within 90 days.", msg.Content)
	assert.Equal(t, 90, msg.ConfidenceScore)
	assert.Equal(t, "Limitation Act", msg.LegalBasisSummary)
	assert.Equal(t, researchModel, gen.lastModel)

	history, err := svc.History(ctx, "mt_1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, models.ChatUser, history[0].Role)
	assert.Equal(t, "What is the appeal window?", history[0].Content)

	firm, err := env.firms.Get(ctx, env.firm.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, firm.Credits)
}

func TestAskFoldsHistoryAndContexts(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	gen := &stubGenerator{response: "Second answer."}
	svc := env.researchService(gen)

	_, err := svc.Ask(ctx, "mt_1", "first question", nil)
	require.NoError(t, err)

	_, err = svc.Ask(ctx, "mt_1", "second question", []string{"DOC TEXT BODY"})
	require.NoError(t, err)

	assert.Contains(t, gen.lastPrompt, "first question")
	assert.Contains(t, gen.lastPrompt, "DOC TEXT BODY")
	assert.Contains(t, gen.lastPrompt, "second question")

	history, err := svc.History(ctx, "mt_1")
	require.NoError(t, err)
	assert.Len(t, history, 4)
}

func TestAskExhaustedCredits(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := env.researchService(&stubGenerator{response: "x"})

	env.firm.Credits = 0
	require.NoError(t, env.firms.Save(ctx, env.firm))

	_, err := svc.Ask(ctx, "mt_1", "query", nil)
	assert.ErrorIs(t, err, ErrNoResearchCredits)

	// A rejected query stores nothing
	history, err := svc.History(ctx, "mt_1")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestAnalyzeJudgment(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	gen := &stubGenerator{jsonResponse: `{
		"caseTitle": "Malhotra vs. Union of India",
		"facts": "The petitioner challenged...",
		"issues": ["Maintainability"],
		"ratioDecidendi": "The court held...",
		"judgment": "Petition allowed.",
		"argumentsPetitioner": "...",
		"argumentsRespondent": "...",
		"sectionsCited": ["Article 226"]
	}`}
	svc := env.researchService(gen)

	summary, err := svc.AnalyzeJudgment(ctx, "judgment text")
	require.NoError(t, err)
	assert.Equal(t, "Malhotra vs. Union of India", summary.CaseTitle)
	assert.Equal(t, []string{"Article 226"}, summary.SectionsCited)
	assert.Equal(t, generationModel, gen.lastModel)
}

func TestReviewContract(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	gen := &stubGenerator{jsonResponse: `{
		"riskScore": 7.5,
		"isGSTCompliant": false,
		"risks": ["No arbitration clause"],
		"suggestions": ["Add a dispute resolution clause"]
	}`}
	svc := env.researchService(gen)

	audit, err := svc.ReviewContract(ctx, "contract text")
	require.NoError(t, err)
	assert.InDelta(t, 7.5, audit.RiskScore, 0.001)
	assert.False(t, audit.IsGSTCompliant)
	require.Len(t, audit.Risks, 1)
}

func TestPersonaFollowsSessionRole(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	gen := &stubGenerator{response: "explained"}
	svc := env.researchService(gen)

	env.user.Role = models.RoleStudent
	require.NoError(t, env.resolver.Set(ctx, env.user))

	_, err := svc.ExplainConcept(ctx, "res judicata")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent.Profile().SystemInstruction, gen.lastSystem)
	assert.Contains(t, gen.lastPrompt, "res judicata")
}
