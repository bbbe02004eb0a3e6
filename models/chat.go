package models

// ChatRole is the author of a chat turn
type ChatRole string

const (
	ChatUser  ChatRole = "user"
	ChatModel ChatRole = "model"
)

// ChatMessage is one turn of an AI research conversation. Messages are
// persisted as a flat list and grouped by (matterId, firmId) on read.
type ChatMessage struct {
	ID                string   `json:"id"`
	Role              ChatRole `json:"role"`
	FirmID            string   `json:"firmId"`
	MatterID          string   `json:"matterId"`
	Content           string   `json:"content"`
	Timestamp         int64    `json:"timestamp"`
	ConfidenceScore   int      `json:"confidenceScore,omitempty"`
	LegalBasisSummary string   `json:"legalBasisSummary,omitempty"`
}
