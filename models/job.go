package models

// IndexingJobStatus represents the state of a document indexing job
type IndexingJobStatus string

const (
	JobPending   IndexingJobStatus = "pending"
	JobCompleted IndexingJobStatus = "completed"
	JobFailed    IndexingJobStatus = "failed"
)

// IndexingJob tracks the ingest-to-indexed transition of a document as
// a persisted record rather than a fire-and-forget timer, so a restart
// cannot strand a document in Processing.
type IndexingJob struct {
	Tenanted
	DocumentID   string            `json:"documentId"`
	Status       IndexingJobStatus `json:"status"`
	ErrorMessage string            `json:"errorMessage,omitempty"`
	CreatedAt    int64             `json:"createdAt"`
	CompletedAt  int64             `json:"completedAt,omitempty"`
}
