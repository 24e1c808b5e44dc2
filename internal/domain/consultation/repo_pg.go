package consultation

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const consultationCols = `id, patient_id, mrn, patient_name, department,
	requesting_doctor, reason, status, created_at, updated_at`

func (r *repoPG) List(ctx context.Context) ([]*Consultation, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+consultationCols+` FROM consultations ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectConsultations(rows)
}

func (r *repoPG) Insert(ctx context.Context, c *Consultation) (*Consultation, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO consultations (
			patient_id, mrn, patient_name, department,
			requesting_doctor, reason, status
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING `+consultationCols,
		c.PatientRef, c.MRN, c.PatientName, c.Department,
		c.RequestingDoctor, c.Reason, c.Status,
	)
	return scanConsultation(row)
}

func (r *repoPG) Update(ctx context.Context, id int64, u Update) (*Consultation, error) {
	sets := []string{"updated_at=NOW()"}
	args := []interface{}{id}

	add := func(col string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s=$%d", col, len(args)))
	}
	if u.Department != nil {
		add("department", *u.Department)
	}
	if u.RequestingDoctor != nil {
		add("requesting_doctor", *u.RequestingDoctor)
	}
	if u.Reason != nil {
		add("reason", *u.Reason)
	}
	if u.Status != nil {
		add("status", *u.Status)
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE consultations SET `+strings.Join(sets, ", ")+`
		WHERE id = $1
		RETURNING `+consultationCols,
		args...,
	)
	return scanConsultation(row)
}

func scanConsultation(row pgx.Row) (*Consultation, error) {
	var c Consultation
	err := row.Scan(
		&c.ID, &c.PatientRef, &c.MRN, &c.PatientName, &c.Department,
		&c.RequestingDoctor, &c.Reason, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func collectConsultations(rows pgx.Rows) ([]*Consultation, error) {
	var result []*Consultation
	for rows.Next() {
		var c Consultation
		err := rows.Scan(
			&c.ID, &c.PatientRef, &c.MRN, &c.PatientName, &c.Department,
			&c.RequestingDoctor, &c.Reason, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, &c)
	}
	return result, rows.Err()
}
