package models

// MatterStatus represents the lifecycle state of a matter
type MatterStatus string

const (
	MatterPending  MatterStatus = "Pending"
	MatterActive   MatterStatus = "Active"
	MatterDisposed MatterStatus = "Disposed"
)

// Matter represents a legal case or engagement. Documents, drafts and
// hearings optionally attach to a matter; matters are never deleted.
type Matter struct {
	Tenanted
	ClientID        string       `json:"clientId,omitempty"`
	Title           string       `json:"title"`
	CaseNumber      string       `json:"caseNumber,omitempty"`
	Court           string       `json:"court"`
	Status          MatterStatus `json:"status"`
	CreatedAt       int64        `json:"createdAt"`
	UpdatedAt       int64        `json:"updatedAt"`
	LastAccessedAt  int64        `json:"lastAccessedAt"`
	Tags            []string     `json:"tags"`
	NextHearingDate int64        `json:"nextHearingDate,omitempty"`
}

// Client represents a party the firm represents
type Client struct {
	Tenanted
	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`
	GSTIN        string `json:"gstin,omitempty"`
	Type         string `json:"type"`
	CreatedAt    int64  `json:"createdAt"`
	UpdatedAt    int64  `json:"updatedAt"`
}

// Hearing represents a scheduled court listing for a matter
type Hearing struct {
	Tenanted
	MatterID   string `json:"matterId"`
	Date       int64  `json:"date"`
	Purpose    string `json:"purpose"`
	Bench      string `json:"bench,omitempty"`
	ItemNumber string `json:"itemNumber,omitempty"`
	CourtRoom  string `json:"courtRoom,omitempty"`
}
