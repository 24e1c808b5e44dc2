package notes

import (
	"time"

	"github.com/google/uuid"
)

// TypeDischargeSummary is the note type written at the end of the
// discharge workflow.
const TypeDischargeSummary = "Discharge Summary"

// ClinicalNote is a free-text note attached to a patient record and
// attributed to the clinician who wrote it.
type ClinicalNote struct {
	ID        uuid.UUID `json:"id"`
	PatientID int64     `json:"patient_id"`
	AuthorID  int64     `json:"author_id"`
	NoteType  string    `json:"note_type"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
