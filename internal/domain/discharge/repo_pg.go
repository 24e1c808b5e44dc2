package discharge

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) AdmissionRepository {
	return &repoPG{pool: pool}
}

const activeCols = `id, patient_id, mrn, name, admission_date, department,
	doctor_name, diagnosis, status, admitting_doctor_id`

func (r *repoPG) ListActive(ctx context.Context) ([]*ActivePatient, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+activeCols+` FROM active_admissions WHERE status = $1`, StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*ActivePatient
	for rows.Next() {
		var p ActivePatient
		err := rows.Scan(
			&p.ID, &p.PatientID, &p.MRN, &p.Name, &p.AdmissionDate, &p.Department,
			&p.DoctorName, &p.Diagnosis, &p.Status, &p.AdmittingDoctorID,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, &p)
	}
	return result, rows.Err()
}

func (r *repoPG) Discharge(ctx context.Context, admissionID int64, req DischargeRequest) error {
	// FollowUpDate passes through as-is so an absent date lands as SQL NULL.
	_, err := r.pool.Exec(ctx, `
		UPDATE admissions SET
			status=$2, discharge_date=$3, discharge_type=$4,
			follow_up_required=$5, follow_up_date=$6, updated_at=NOW()
		WHERE id = $1`,
		admissionID, StatusDischarged, req.DischargeDate, req.DischargeType,
		req.FollowUpRequired, req.FollowUpDate,
	)
	return err
}
