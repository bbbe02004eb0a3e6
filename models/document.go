package models

// DocumentType classifies an ingested legal document
type DocumentType string

const (
	DocPleading DocumentType = "Pleading"
	DocJudgment DocumentType = "Judgment"
	DocResearch DocumentType = "Research"
	DocStatute  DocumentType = "Statute"
	DocEvidence DocumentType = "Evidence"
)

// DocumentStatus represents the indexing state of a document
type DocumentStatus string

const (
	DocProcessing DocumentStatus = "Processing"
	DocIndexed    DocumentStatus = "Indexed"
	DocError      DocumentStatus = "Error"
)

// DocumentMeta is the typed metadata attached to a document
type DocumentMeta struct {
	Tags          []string `json:"tags,omitempty"`
	Author        string   `json:"author,omitempty"`
	SectionsCited []string `json:"sectionsCited,omitempty"`
}

// LegalDocument represents an ingested document. A document whose
// FirmID equals GlobalFirmID is shared reference material: visible to
// every tenant, excluded from tenant delete and linking paths. An
// empty MatterID means the document is unlinked.
type LegalDocument struct {
	Tenanted
	MatterID    string         `json:"matterId,omitempty"`
	Title       string         `json:"title"`
	Content     string         `json:"content"`
	Type        DocumentType   `json:"type"`
	Status      DocumentStatus `json:"status"`
	CreatedAt   int64          `json:"createdAt"`
	StoragePath string         `json:"storagePath,omitempty"`
	Metadata    DocumentMeta   `json:"metadata"`
}

// Unlinked reports whether the document is not attached to any matter.
func (d *LegalDocument) Unlinked() bool {
	return d.MatterID == ""
}
