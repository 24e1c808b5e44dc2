package consultation

import "context"

// Repository is the remote record-store boundary for consultations.
// Insert and Update echo the stored record so callers see the
// database-assigned fields.
type Repository interface {
	List(ctx context.Context) ([]*Consultation, error)
	Insert(ctx context.Context, c *Consultation) (*Consultation, error)
	Update(ctx context.Context, id int64, u Update) (*Consultation, error)
}
