package notes

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const noteCols = `id, patient_id, author_id, note_type, content, created_at`

func (r *repoPG) Insert(ctx context.Context, note *ClinicalNote) (*ClinicalNote, error) {
	note.ID = uuid.New()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO clinical_note (id, patient_id, author_id, note_type, content)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING `+noteCols,
		note.ID, note.PatientID, note.AuthorID, note.NoteType, note.Content,
	)
	return scanNote(row)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID int64) ([]*ClinicalNote, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+noteCols+` FROM clinical_note
		WHERE patient_id = $1 ORDER BY created_at DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*ClinicalNote
	for rows.Next() {
		var n ClinicalNote
		if err := rows.Scan(&n.ID, &n.PatientID, &n.AuthorID, &n.NoteType, &n.Content, &n.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &n)
	}
	return result, rows.Err()
}

func scanNote(row pgx.Row) (*ClinicalNote, error) {
	var n ClinicalNote
	err := row.Scan(&n.ID, &n.PatientID, &n.AuthorID, &n.NoteType, &n.Content, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
