package models

// UnlinkedMatterID is the legacy sentinel some drafts carry instead of
// an empty matterId; both mean "not attached to a matter".
const UnlinkedMatterID = "default"

// DraftRevision is one historical version of a draft's content
type DraftRevision struct {
	Version   int    `json:"version"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
}

// Draft represents a work-in-progress legal draft. Version starts at 1
// and increments on every content save; drafts are never deleted.
type Draft struct {
	Tenanted
	MatterID  string          `json:"matterId,omitempty"`
	Title     string          `json:"title"`
	Type      string          `json:"type,omitempty"`
	Content   string          `json:"content"`
	Version   int             `json:"version"`
	Revisions []DraftRevision `json:"versions,omitempty"`
	CreatedAt int64           `json:"createdAt"`
	UpdatedAt int64           `json:"updatedAt"`
}

// Unlinked reports whether the draft is not attached to any matter.
func (d *Draft) Unlinked() bool {
	return d.MatterID == "" || d.MatterID == UnlinkedMatterID
}
