package domain

import (
	"strings"
	"time"
)

// Project represents a single portfolio entry.
// It is intentionally storage-agnostic and used across repository and HTTP layers.
// The document id is carried separately from the stored fields.
type Project struct {
	ID           string    `firestore:"-" json:"id"`
	Title        string    `firestore:"title" json:"title"`
	Description  string    `firestore:"description" json:"description"`
	Technologies []string  `firestore:"technologies" json:"technologies"`
	ImageURL     string    `firestore:"imageUrl" json:"imageUrl"`
	ProjectURL   string    `firestore:"projectUrl" json:"projectUrl"`
	RepoURL      string    `firestore:"repoUrl" json:"repoUrl"`
	// Both timestamps are stamped server-side by the store; a zero value
	// means the store has not filled the field yet (fresh create response,
	// never-updated document) and is omitted from the JSON encoding.
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt,omitzero"`
}

// SplitTechnologies turns a comma-separated form input into the stored list:
// elements are trimmed and empty segments dropped. Always returns a non-nil
// slice so the JSON encoding is [] rather than null.
func SplitTechnologies(s string) []string {
	out := make([]string, 0, 4)
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// TechnologiesCSV renders the stored list back into the comma-separated form
// shown in the admin edit view.
func (p *Project) TechnologiesCSV() string {
	return strings.Join(p.Technologies, ", ")
}
