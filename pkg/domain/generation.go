package domain

import "time"

type GenerationStatus string

const (
	GenerationStatusGenerated GenerationStatus = "generated"
	GenerationStatusSkipped   GenerationStatus = "skipped"
	GenerationStatusFailed    GenerationStatus = "failed"
)

type Generation struct {
	ID        int64            `bun:",pk,autoincrement"`
	Category  string           `bun:"category"`
	Slug      string           `bun:"slug"`
	Path      string           `bun:"path"`
	Model     string           `bun:"model"`
	MIMEType  string           `bun:"mime_type"`
	Size      int              `bun:"size"`
	Attempts  int              `bun:"attempts"`
	Status    GenerationStatus `bun:"status"`
	Error     string           `bun:"error"`
	CreatedAt time.Time        `bun:"created_at"`
}

type Report struct {
	Category string
	Success  int
	Total    int
}
