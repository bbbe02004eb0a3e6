package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"

	"github.com/SauravRai18/vidhi/models"
	"github.com/SauravRai18/vidhi/repository"
)

// ErrNoResearchCredits is returned when the firm's credit balance is
// exhausted.
var ErrNoResearchCredits = errors.New("research credits exhausted")

// footer markers the model is instructed to close responses with
const (
	confidenceMarker = "[CONFIDENCE_SCORE]:"
	legalBasisMarker = "[LEGAL_BASIS]:"
)

// SessionReader provides the full session user for persona dispatch.
type SessionReader interface {
	Current(ctx context.Context) *models.User
}

// JudgmentSummary is the structured output of judgment analysis
type JudgmentSummary struct {
	CaseTitle           string   `json:"caseTitle"`
	Facts               string   `json:"facts"`
	Issues              []string `json:"issues"`
	RatioDecidendi      string   `json:"ratioDecidendi"`
	Judgment            string   `json:"judgment"`
	ArgumentsPetitioner string   `json:"argumentsPetitioner"`
	ArgumentsRespondent string   `json:"argumentsRespondent"`
	SectionsCited       []string `json:"sectionsCited"`
}

// ContractAudit is the structured output of contract review
type ContractAudit struct {
	RiskScore      float64  `json:"riskScore"`
	IsGSTCompliant bool     `json:"isGSTCompliant"`
	Risks          []string `json:"risks"`
	Suggestions    []string `json:"suggestions"`
}

// ResearchService runs the persona-dispatched AI surfaces: research
// chat, document analysis, judgment summarization and contract review.
// Conversations are persisted per matter; each research query costs
// one firm credit.
type ResearchService struct {
	gen      Generator
	chats    *repository.ChatRepository
	firms    *repository.FirmRepository
	sessions SessionReader
	identity repository.Identity
	logger   *zap.Logger
}

// NewResearchService creates a new research service
func NewResearchService(gen Generator, chats *repository.ChatRepository, firms *repository.FirmRepository, sessions SessionReader, identity repository.Identity, logger *zap.Logger) *ResearchService {
	return &ResearchService{
		gen:      gen,
		chats:    chats,
		firms:    firms,
		sessions: sessions,
		identity: identity,
		logger:   logger,
	}
}

// persona returns the system instruction for the session user's role.
func (s *ResearchService) persona(ctx context.Context) string {
	role := models.RoleSeniorAdvocate
	if u := s.sessions.Current(ctx); u != nil {
		role = u.Role
	}
	return role.Profile().SystemInstruction
}

// deductCredit burns one research credit from the caller's firm.
func (s *ResearchService) deductCredit(ctx context.Context) error {
	firm, err := s.firms.Get(ctx, s.identity.CurrentFirmID(ctx))
	if err != nil {
		return err
	}
	if firm == nil {
		return nil
	}
	if firm.Credits <= 0 {
		return ErrNoResearchCredits
	}
	firm.Credits--
	return s.firms.Save(ctx, firm)
}

// Ask answers a research query in the context of a matter, persisting
// both turns of the conversation. Prior turns and any grounding
// document text are folded into the prompt.
func (s *ResearchService) Ask(ctx context.Context, matterID, query string, contexts []string) (*models.ChatMessage, error) {
	if err := s.deductCredit(ctx); err != nil {
		return nil, err
	}

	history, err := s.chats.History(ctx, matterID)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	if len(contexts) > 0 {
		b.WriteString("CONTEXT DOCUMENTS:\n")
		b.WriteString(strings.Join(contexts, "\n\n"))
		b.WriteString("\n\n")
	}
	for _, m := range history {
		fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Content)
	}
	fmt.Fprintf(&b, "QUERY: %s\n\nConclude response with %s X%% and %s summary.",
		query, confidenceMarker, legalBasisMarker)

	raw, err := s.gen.Generate(ctx, researchModel, s.persona(ctx), b.String())
	if err != nil {
		return nil, err
	}

	content, score, basis := parseResearchFooter(raw)
	now := models.NowMillis()
	userMsg := &models.ChatMessage{
		ID:        models.NewID("msg"),
		Role:      models.ChatUser,
		Content:   query,
		Timestamp: now,
	}
	modelMsg := &models.ChatMessage{
		ID:                models.NewID("msg"),
		Role:              models.ChatModel,
		Content:           content,
		Timestamp:         now,
		ConfidenceScore:   score,
		LegalBasisSummary: basis,
	}

	updated := append(history, userMsg, modelMsg)
	if err := s.chats.SaveHistory(ctx, matterID, updated); err != nil {
		return nil, err
	}
	return modelMsg, nil
}

// History returns the persisted conversation for a matter.
func (s *ResearchService) History(ctx context.Context, matterID string) ([]*models.ChatMessage, error) {
	return s.chats.History(ctx, matterID)
}

// AnalyzeDocument summarizes a document as structured markdown for the
// caller's persona.
func (s *ResearchService) AnalyzeDocument(ctx context.Context, text string, docType models.DocumentType) (string, error) {
	role := models.RoleSeniorAdvocate
	if u := s.sessions.Current(ctx); u != nil {
		role = u.Role
	}
	prompt := fmt.Sprintf("Analyze this %s for a %s. "+
		"Identify: 1. Core Risks 2. Statutory Deadlines 3. Action Items 4. Plain English Summary. "+
		"Format as structured Markdown.\n\nDOCUMENT TEXT:\n%s", docType, role, text)
	return s.gen.Generate(ctx, generationModel, role.Profile().SystemInstruction, prompt)
}

// ExplainConcept explains a legal concept for a law student.
func (s *ResearchService) ExplainConcept(ctx context.Context, concept string) (string, error) {
	prompt := fmt.Sprintf("Explain the legal concept '%s' in the context of Indian Law for a law student. "+
		"Include landmark cases and relevant bare act sections.", concept)
	return s.gen.Generate(ctx, generationModel, s.persona(ctx), prompt)
}

// SuggestStrategy proposes a litigation strategy from case facts.
func (s *ResearchService) SuggestStrategy(ctx context.Context, facts string, contexts []string) (string, int, string, error) {
	var b strings.Builder
	if len(contexts) > 0 {
		b.WriteString("CONTEXT DOCUMENTS:\n")
		b.WriteString(strings.Join(contexts, "\n\n"))
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "Suggest a detailed litigation strategy based on these facts: %s\n\n"+
		"Conclude response with %s X%% and %s summary.", facts, confidenceMarker, legalBasisMarker)

	raw, err := s.gen.Generate(ctx, generationModel, s.persona(ctx), b.String())
	if err != nil {
		return "", 0, "", err
	}
	content, score, basis := parseResearchFooter(raw)
	return content, score, basis, nil
}

// HearingBrief generates a brief for an upcoming hearing.
func (s *ResearchService) HearingBrief(ctx context.Context, title, facts, purpose string, contexts []string) (string, error) {
	var b strings.Builder
	if len(contexts) > 0 {
		b.WriteString("CONTEXT DOCUMENTS:\n")
		b.WriteString(strings.Join(contexts, "\n\n"))
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "Generate a hearing brief for '%s'. Purpose: %s. Factual Summary: %s",
		title, purpose, facts)
	return s.gen.Generate(ctx, generationModel, s.persona(ctx), b.String())
}

// AnalyzeJudgment extracts a structured summary from judgment text.
func (s *ResearchService) AnalyzeJudgment(ctx context.Context, text string) (*JudgmentSummary, error) {
	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"caseTitle":           {Type: genai.TypeString},
			"facts":               {Type: genai.TypeString},
			"issues":              {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"ratioDecidendi":      {Type: genai.TypeString},
			"judgment":            {Type: genai.TypeString},
			"argumentsPetitioner": {Type: genai.TypeString},
			"argumentsRespondent": {Type: genai.TypeString},
			"sectionsCited":       {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		},
		Required: []string{"caseTitle", "facts", "issues", "ratioDecidendi", "judgment",
			"argumentsPetitioner", "argumentsRespondent", "sectionsCited"},
	}

	prompt := "Analyze the following Indian court judgment and extract structured details. \nJudgment text: " + text
	var summary JudgmentSummary
	if err := s.gen.GenerateJSON(ctx, generationModel, prompt, schema, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// ReviewContract audits contract text for risks and GST compliance.
func (s *ResearchService) ReviewContract(ctx context.Context, text string) (*ContractAudit, error) {
	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"riskScore":      {Type: genai.TypeNumber},
			"isGSTCompliant": {Type: genai.TypeBoolean},
			"risks":          {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"suggestions":    {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		},
		Required: []string{"riskScore", "isGSTCompliant", "risks", "suggestions"},
	}

	prompt := "Review the following contract for potential risks and GST compliance in India: " + text
	var audit ContractAudit
	if err := s.gen.GenerateJSON(ctx, generationModel, prompt, schema, &audit); err != nil {
		return nil, err
	}
	return &audit, nil
}

// parseResearchFooter splits the confidence-score/legal-basis footer
// off a model response. Responses without the footer pass through
// unchanged with a zero score.
func parseResearchFooter(raw string) (content string, score int, basis string) {
	content = raw

	if idx := strings.Index(content, confidenceMarker); idx >= 0 {
		tail := content[idx+len(confidenceMarker):]
		content = strings.TrimSpace(content[:idx])

		if bidx := strings.Index(tail, legalBasisMarker); bidx >= 0 {
			basis = strings.TrimSpace(tail[bidx+len(legalBasisMarker):])
			tail = tail[:bidx]
		}

		scoreText := strings.TrimSpace(tail)
		scoreText = strings.TrimSpace(strings.TrimSuffix(scoreText, "%"))
		if n, err := strconv.Atoi(scoreText); err == nil {
			score = n
		}
	}
	return content, score, basis
}
