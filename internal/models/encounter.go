// internal/models/encounter.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Encounter représente un log de combat téléversé, stocké sous forme brute.
// L'analyse est recalculée à la demande depuis RawText : les résultats
// dérivés ne sont jamais persistés.
type Encounter struct {
	ID         uuid.UUID `json:"id" db:"id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	Name       string    `json:"name" db:"name"`
	RawText    string    `json:"-" db:"raw_text"`
	LineCount  int       `json:"line_count" db:"line_count"`
	Duration   float64   `json:"duration" db:"duration"`
	UploadedAt time.Time `json:"uploaded_at" db:"uploaded_at"`
}
