package knowledge

import "time"

// Entry is a summarized document in the knowledge base.
// Entries are keyed by ID; re-ingesting the same ID replaces the
// stored summary rather than accumulating versions.
type Entry struct {
	// ID is the stable key for this entry (object name, or the
	// configured well-known id in single-document deployments)
	ID string
	// Summary is the LLM-extracted text used as answer context
	Summary string
	// SourceFile is the URI of the document the summary came from
	SourceFile string
	// UpdatedAt is when the entry was last written
	UpdatedAt time.Time
}
