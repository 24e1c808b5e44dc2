package consultation

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Store is the in-process state container for consultation records. It
// mirrors the remote collection and is the single source of truth for
// readers; every remote call flows through it so readers always observe
// a consistent (items, loading, error) triple.
//
// FetchAll and Update record failures in the error field instead of
// returning them. Create additionally reports failure through its nil
// return value.
type Store struct {
	repo Repository
	log  zerolog.Logger

	mu      sync.Mutex
	items   []*Consultation
	loading bool
	err     error
}

// Snapshot is a point-in-time copy of the store state.
type Snapshot struct {
	Items   []*Consultation
	Loading bool
	Err     error
}

func NewStore(repo Repository, log zerolog.Logger) *Store {
	return &Store{repo: repo, log: log}
}

func (s *Store) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()
}

// FetchAll reloads the full consultation list, newest first. On failure
// the previous items are kept and the error is recorded.
func (s *Store) FetchAll(ctx context.Context) {
	s.begin()

	items, err := s.repo.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err
		s.log.Error().Err(err).Msg("fetch consultations failed")
		return
	}
	s.items = items
}

// Create inserts a new consultation derived from the draft. The stored
// patient reference is the draft MRN and the status is forced to active.
// The echoed record is prepended to items and returned; on failure the
// error is recorded and nil is returned.
func (s *Store) Create(ctx context.Context, draft Draft) *Consultation {
	s.begin()

	rec := &Consultation{
		PatientRef:       draft.MRN,
		MRN:              draft.MRN,
		PatientName:      draft.PatientName,
		Department:       draft.Department,
		RequestingDoctor: draft.RequestingDoctor,
		Reason:           draft.Reason,
		Status:           StatusActive,
	}

	created, err := s.repo.Insert(ctx, rec)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err
		s.log.Error().Err(err).Str("mrn", draft.MRN).Msg("create consultation failed")
		return nil
	}
	s.items = append([]*Consultation{created}, s.items...)
	return created
}

// Update applies a partial update to the consultation with the given id
// and replaces the matching item in place. List order and length are
// preserved; a failure leaves items untouched.
func (s *Store) Update(ctx context.Context, id int64, fields Update) {
	s.begin()

	updated, err := s.repo.Update(ctx, id, fields)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err
		s.log.Error().Err(err).Int64("id", id).Msg("update consultation failed")
		return
	}
	for i, c := range s.items {
		if c.ID == id {
			s.items[i] = updated
		}
	}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]*Consultation, len(s.items))
	copy(items, s.items)
	return Snapshot{Items: items, Loading: s.loading, Err: s.err}
}
