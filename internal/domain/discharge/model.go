package discharge

import "time"

// Admission statuses.
const (
	StatusActive      = "active"
	StatusDischarged  = "discharged"
	StatusTransferred = "transferred"
)

// Discharge types accepted by the workflow.
const (
	TypeRegular              = "regular"
	TypeAgainstMedicalAdvice = "against-medical-advice"
	TypeTransfer             = "transfer"
)

// ActivePatient is a row of the active_admissions projection: one
// currently-admitted patient joined with the admitting practitioner.
// The ID is the admission id; PatientID references the patient record.
type ActivePatient struct {
	ID                int64     `json:"id"`
	PatientID         int64     `json:"patient_id"`
	MRN               string    `json:"mrn"`
	Name              string    `json:"name"`
	AdmissionDate     time.Time `json:"admission_date"`
	Department        string    `json:"department"`
	DoctorName        string    `json:"doctor_name"`
	Diagnosis         string    `json:"diagnosis"`
	Status            string    `json:"status"`
	AdmittingDoctorID int64     `json:"admitting_doctor_id"`
}

// DischargeRequest carries the caller-supplied discharge details. It is
// consumed by a single ProcessDischarge call and never stored.
type DischargeRequest struct {
	DischargeDate    time.Time  `json:"discharge_date"`
	DischargeType    string     `json:"discharge_type"`
	FollowUpRequired bool       `json:"follow_up_required"`
	FollowUpDate     *time.Time `json:"follow_up_date"`
	DischargeNote    string     `json:"discharge_note"`
}
