package discharge

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/wardsync/wardsync/internal/domain/notes"
	"github.com/wardsync/wardsync/internal/platform/identity"
)

// Phase is the current position of the discharge workflow. The store is
// in PhaseIdle except while a ProcessDischarge call is in flight.
type Phase string

const (
	PhaseIdle             Phase = "idle"
	PhaseValidating       Phase = "validating"
	PhaseWritingAdmission Phase = "writing_admission"
	PhaseWritingNote      Phase = "writing_note"
	PhaseResyncing        Phase = "resyncing"
)

// Store is the in-process state container for actively-admitted
// patients and the discharge workflow. FetchActive records failures in
// the error field; ProcessDischarge records them and also returns them,
// because its callers must distinguish the partial-failure outcome.
type Store struct {
	admissions AdmissionRepository
	notes      notes.Repository
	who        identity.Provider
	log        zerolog.Logger

	mu       sync.Mutex
	items    []*ActivePatient
	selected *ActivePatient
	loading  bool
	err      error
	phase    Phase
}

// Snapshot is a point-in-time copy of the store state.
type Snapshot struct {
	Items    []*ActivePatient
	Selected *ActivePatient
	Loading  bool
	Err      error
	Phase    Phase
}

func NewStore(admissions AdmissionRepository, noteRepo notes.Repository, who identity.Provider, log zerolog.Logger) *Store {
	return &Store{
		admissions: admissions,
		notes:      noteRepo,
		who:        who,
		log:        log,
		phase:      PhaseIdle,
	}
}

// FetchActive reloads the list of currently-admitted patients. On
// failure the previous items are kept and the error is recorded.
func (s *Store) FetchActive(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()

	items, err := s.admissions.ListActive(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err
		s.log.Error().Err(err).Msg("fetch active admissions failed")
		return
	}
	s.items = items
}

// SelectPatient sets (or clears, with nil) the patient the next
// discharge will act on. Purely local; always succeeds.
func (s *Store) SelectPatient(p *ActivePatient) {
	s.mu.Lock()
	s.selected = p
	s.mu.Unlock()
}

func (s *Store) setPhase(p Phase) {
	s.mu.Lock()
	s.setPhaseLocked(p)
	s.mu.Unlock()
}

func (s *Store) setPhaseLocked(p Phase) {
	s.phase = p
	s.log.Debug().Str("phase", string(p)).Msg("discharge phase")
}

// ProcessDischarge runs the two-write discharge workflow against the
// selection and clinician snapshotted at entry:
//
//	Idle -> Validating -> WritingAdmission -> WritingNote -> Resyncing -> Idle
//
// Write 1 marks the admission discharged; write 2 inserts the
// discharge-summary note. The writes are independent remote calls with
// no surrounding transaction, so a write-2 failure leaves the admission
// discharged with no note and surfaces as *PartialFailureError. On
// success the active list is resynchronized and the selection cleared;
// a resync failure is recorded but does not fail the discharge.
func (s *Store) ProcessDischarge(ctx context.Context, req DischargeRequest) error {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.setPhaseLocked(PhaseValidating)
	selected := s.selected
	clinician := s.who.Current()
	s.mu.Unlock()

	if selected == nil {
		return s.fail(ErrNoPatientSelected)
	}
	if clinician == nil {
		return s.fail(ErrNoCurrentUser)
	}

	s.setPhase(PhaseWritingAdmission)
	if err := s.admissions.Discharge(ctx, selected.ID, req); err != nil {
		return s.fail(fmt.Errorf("update admission %d: %w", selected.ID, err))
	}

	s.setPhase(PhaseWritingNote)
	note := &notes.ClinicalNote{
		PatientID: selected.PatientID,
		AuthorID:  clinician.ID,
		NoteType:  notes.TypeDischargeSummary,
		Content:   req.DischargeNote,
	}
	if _, err := s.notes.Insert(ctx, note); err != nil {
		pf := &PartialFailureError{
			AdmissionID: selected.ID,
			PatientID:   selected.PatientID,
			Err:         err,
		}
		s.log.Error().
			Int64("admission_id", pf.AdmissionID).
			Int64("patient_id", pf.PatientID).
			Err(err).
			Msg("admission discharged but summary note insert failed")
		return s.fail(pf)
	}

	s.setPhase(PhaseResyncing)
	s.FetchActive(ctx)

	s.mu.Lock()
	s.selected = nil
	s.loading = false
	s.setPhaseLocked(PhaseIdle)
	s.mu.Unlock()
	return nil
}

// fail records the error, returns the store to idle, and hands the
// error back to the caller. The selection is left untouched so the
// caller can retry.
func (s *Store) fail(err error) error {
	s.mu.Lock()
	s.err = err
	s.loading = false
	s.setPhaseLocked(PhaseIdle)
	s.mu.Unlock()
	return err
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]*ActivePatient, len(s.items))
	copy(items, s.items)
	return Snapshot{
		Items:    items,
		Selected: s.selected,
		Loading:  s.loading,
		Err:      s.err,
		Phase:    s.phase,
	}
}
