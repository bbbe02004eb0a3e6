package models

// SubscriptionTier represents a firm's billing plan
type SubscriptionTier string

const (
	TierFree       SubscriptionTier = "FREE"
	TierBasic      SubscriptionTier = "BASIC"
	TierPro        SubscriptionTier = "PRO"
	TierEnterprise SubscriptionTier = "ENTERPRISE"
	TierFounder    SubscriptionTier = "FOUNDER"
)

// Usage tracks a user's consumption counters
type Usage struct {
	ResearchCredits    int `json:"researchCredits"`
	DraftsCreated      int `json:"draftsCreated"`
	MaxResearchCredits int `json:"maxResearchCredits"`
}

// User represents a user entity
type User struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	PasswordHash    string           `json:"passwordHash,omitempty"`
	Role            UserRole         `json:"role"`
	Tier            SubscriptionTier `json:"tier"`
	FirmID          string           `json:"firmId"`
	FirmName        string           `json:"firmName,omitempty"`
	City            string           `json:"city,omitempty"`
	PracticeArea    string           `json:"practiceArea,omitempty"`
	CourtLevel      string           `json:"courtLevel,omitempty"`
	IsSetupComplete bool             `json:"isSetupComplete"`
	Usage           Usage            `json:"usage"`
	LastLogin       int64            `json:"lastLogin,omitempty"`
	CollegeName     string           `json:"collegeName,omitempty"`
	Phone           string           `json:"phone,omitempty"`
}

// Public returns a copy safe to hand to API clients, with the password
// hash stripped.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}
