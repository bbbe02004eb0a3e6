package models

// Firm represents a tenant: the unit of data isolation. Every other
// entity belongs to exactly one firm via its firmId.
type Firm struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Plan      SubscriptionTier `json:"plan"`
	OwnerID   string           `json:"ownerId"`
	CreatedAt int64            `json:"createdAt"`
	Credits   int              `json:"credits"`
}
