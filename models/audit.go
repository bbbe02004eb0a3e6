package models

// AuditLog is one append-only record of a mutating action. The stored
// log is capped at the most recent entries, newest first.
type AuditLog struct {
	ID        string         `json:"id"`
	FirmID    string         `json:"firmId"`
	UserID    string         `json:"userId"`
	Action    string         `json:"action"`
	Timestamp int64          `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	IPAddress string         `json:"ipAddress"`
}
