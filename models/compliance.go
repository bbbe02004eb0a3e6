package models

// ComplianceType classifies a compliance obligation
type ComplianceType string

const (
	ComplianceLimitation   ComplianceType = "Limitation"
	ComplianceStatutory    ComplianceType = "Statutory"
	ComplianceRegistry     ComplianceType = "Registry"
	ComplianceProfessional ComplianceType = "Professional"
)

// ComplianceStatus represents the urgency state of a compliance item
type ComplianceStatus string

const (
	ComplianceCritical  ComplianceStatus = "Critical"
	CompliancePending   ComplianceStatus = "Pending"
	ComplianceCompleted ComplianceStatus = "Completed"
)

// ComplianceItem represents a standalone deadline or obligation
// tracked per firm
type ComplianceItem struct {
	Tenanted
	Title       string           `json:"title"`
	Type        ComplianceType   `json:"type"`
	DueDate     int64            `json:"dueDate"`
	Status      ComplianceStatus `json:"status"`
	Description string           `json:"description"`
}
