// Package memory implements the record stores as process-local collections
// guarded by a mutex. Nothing survives a restart.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dtroode/contacts-server/internal/model"
)

var _ model.ContactStore = (*ContactRepository)(nil)

// ContactRepository owns an in-memory contact collection.
type ContactRepository struct {
	mu       sync.Mutex
	contacts []model.Contact
	now      func() time.Time
}

// NewContactRepository creates a repository seeded with copies of seed.
func NewContactRepository(seed ...model.Contact) *ContactRepository {
	contacts := make([]model.Contact, 0, len(seed))
	for _, c := range seed {
		contacts = append(contacts, c.Clone())
	}
	return &ContactRepository{contacts: contacts, now: time.Now}
}

func (r *ContactRepository) GetAll(_ context.Context) ([]model.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Contact, 0, len(r.contacts))
	for _, c := range r.contacts {
		out = append(out, c.Clone())
	}
	return out, nil
}

func (r *ContactRepository) GetByID(_ context.Context, id int64) (model.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Contact{}, model.NewNotFoundError("contact", id)
	}
	return r.contacts[i].Clone(), nil
}

// Create assigns the next id (max existing + 1) and both timestamps.
func (r *ContactRepository) Create(_ context.Context, contact model.Contact) (model.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var maxID int64
	for _, c := range r.contacts {
		maxID = max(maxID, c.ID)
	}

	now := r.now().UTC()
	saved := contact.Clone()
	saved.ID = maxID + 1
	saved.CreatedAt = now
	saved.UpdatedAt = now

	r.contacts = append(r.contacts, saved)
	return saved.Clone(), nil
}

// Update replaces every mutable field, keeping id and CreatedAt.
func (r *ContactRepository) Update(_ context.Context, id int64, contact model.Contact) (model.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Contact{}, model.NewNotFoundError("contact", id)
	}

	saved := contact.Clone()
	saved.ID = id
	saved.CreatedAt = r.contacts[i].CreatedAt
	saved.UpdatedAt = r.now().UTC()

	r.contacts[i] = saved
	return saved.Clone(), nil
}

func (r *ContactRepository) Delete(_ context.Context, id int64) (model.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Contact{}, model.NewNotFoundError("contact", id)
	}

	deleted := r.contacts[i]
	r.contacts = slices.Delete(r.contacts, i, i+1)
	return deleted, nil
}

func (r *ContactRepository) indexOf(id int64) int {
	return slices.IndexFunc(r.contacts, func(c model.Contact) bool { return c.ID == id })
}
