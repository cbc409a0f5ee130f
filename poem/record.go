package poem

import "time"

// SchemaVersion is the version tag written into every persisted record.
const SchemaVersion = 1

// Record is the persisted form of a poem. Field order matches the on-disk
// JSON layout.
type Record struct {
	SchemaVersion int    `json:"schema_version"`
	CreatedAt     string `json:"created_at"`
	Model         string `json:"model"`
	Generator     string `json:"generator"`
	Lines         []Line `json:"lines"`
}

// Record builds the persisted form of the poem. The returned record shares
// no state with the poem.
func (p *Poem) Record() Record {
	return Record{
		SchemaVersion: SchemaVersion,
		CreatedAt:     p.createdAt.Format(time.RFC3339),
		Model:         p.model,
		Generator:     p.generator,
		Lines:         p.Lines(),
	}
}
