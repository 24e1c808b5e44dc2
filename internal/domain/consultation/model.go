package consultation

import "time"

// StatusActive is forced onto every newly created consultation request.
const StatusActive = "active"

// Consultation is a specialist consultation request for an admitted
// patient. The ID and timestamps are assigned by the database.
type Consultation struct {
	ID               int64     `json:"id"`
	PatientRef       string    `json:"patient_id"`
	MRN              string    `json:"mrn"`
	PatientName      string    `json:"patient_name"`
	Department       string    `json:"department"`
	RequestingDoctor string    `json:"requesting_doctor"`
	Reason           string    `json:"reason"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Draft carries the caller-supplied fields for a new consultation. The
// patient reference is derived from the MRN and the status is forced to
// active on insert.
type Draft struct {
	MRN              string `json:"mrn"`
	PatientName      string `json:"patient_name"`
	Department       string `json:"department"`
	RequestingDoctor string `json:"requesting_doctor"`
	Reason           string `json:"reason"`
}

// Update is a partial update. Nil fields are left untouched.
type Update struct {
	Department       *string `json:"department"`
	RequestingDoctor *string `json:"requesting_doctor"`
	Reason           *string `json:"reason"`
	Status           *string `json:"status"`
}
