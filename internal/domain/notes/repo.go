package notes

import "context"

// Repository persists clinical notes. Insert echoes the stored record,
// including database-assigned timestamps.
type Repository interface {
	Insert(ctx context.Context, note *ClinicalNote) (*ClinicalNote, error)
	ListByPatient(ctx context.Context, patientID int64) ([]*ClinicalNote, error)
}
