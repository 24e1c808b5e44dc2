package discharge

import "context"

// AdmissionRepository is the remote record-store boundary for
// admissions. ListActive reads the active_admissions projection;
// Discharge is a single-row update carrying the discharge fields.
type AdmissionRepository interface {
	ListActive(ctx context.Context) ([]*ActivePatient, error)
	Discharge(ctx context.Context, admissionID int64, req DischargeRequest) error
}
