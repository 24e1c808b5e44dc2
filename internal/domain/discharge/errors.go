package discharge

import (
	"errors"
	"fmt"
)

// Precondition failures, detected before any remote call is made.
var (
	ErrNoPatientSelected = errors.New("no patient selected")
	ErrNoCurrentUser     = errors.New("no user logged in")
)

// PartialFailureError reports that the admission update committed but
// the discharge-summary note insert failed. The remote record store is
// left in a half-discharged state: the admission reads discharged and no
// summary note exists. There is no compensating rollback.
type PartialFailureError struct {
	AdmissionID int64
	PatientID   int64
	Err         error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("admission %d discharged but summary note for patient %d failed: %v",
		e.AdmissionID, e.PatientID, e.Err)
}

func (e *PartialFailureError) Unwrap() error {
	return e.Err
}
