package domain

import (
	"time"

	"github.com/google/uuid"
)

// Export kinds.
const (
	ExportKindPDF        = "pdf"
	ExportKindSubmission = "submission"
)

// ExportRecord is one generated artifact or submission attempt for a session.
type ExportRecord struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"session_id"`
	Title     string    `json:"title"`
	Kind      string    `json:"kind"`
	Status    string    `json:"status"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
