package hosted

import (
	"context"
	"errors"

	"github.com/dtroode/contacts-server/internal/model"
)

var _ model.ContactStore = (*ContactRepository)(nil)

// ContactRepository stores contacts in the hosted contact_c table.
type ContactRepository struct {
	client RecordClient
}

func NewContactRepository(client RecordClient) *ContactRepository {
	return &ContactRepository{
		client: client,
	}
}

func (r *ContactRepository) GetAll(ctx context.Context) ([]model.Contact, error) {
	env, err := r.client.FetchRecords(ctx, contactTable, Query{
		Fields:  contactFields,
		OrderBy: []Order{{Field: "Id", Direction: "ASC"}},
	})
	if err != nil {
		return nil, err
	}

	records, err := decodeList[contactRecord](env)
	if err != nil {
		return nil, model.NewStoreError("contacts.getAll", "failed to decode contacts", err)
	}

	contacts := make([]model.Contact, 0, len(records))
	for _, rec := range records {
		contacts = append(contacts, rec.toModel())
	}
	return contacts, nil
}

func (r *ContactRepository) GetByID(ctx context.Context, id int64) (model.Contact, error) {
	env, err := r.client.GetRecordByID(ctx, contactTable, id, Query{Fields: contactFields})
	if err != nil {
		return model.Contact{}, err
	}

	rec, ok, err := decodeOne[contactRecord](env)
	if err != nil {
		return model.Contact{}, model.NewStoreError("contacts.getById", "failed to decode contact", err)
	}
	if !ok {
		return model.Contact{}, model.NewNotFoundError("contact", id)
	}
	return rec.toModel(), nil
}

func (r *ContactRepository) Create(ctx context.Context, contact model.Contact) (model.Contact, error) {
	contact.ID = 0
	return r.write(ctx, "contacts.create", contact, r.client.CreateRecord)
}

func (r *ContactRepository) Update(ctx context.Context, id int64, contact model.Contact) (model.Contact, error) {
	contact.ID = id
	saved, err := r.write(ctx, "contacts.update", contact, r.client.UpdateRecord)
	if errors.Is(err, errNoRecord) {
		return model.Contact{}, model.NewNotFoundError("contact", id)
	}
	if err != nil {
		return model.Contact{}, err
	}
	return saved, nil
}

// Delete reads the record first so the removed contact can be returned.
func (r *ContactRepository) Delete(ctx context.Context, id int64) (model.Contact, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return model.Contact{}, err
	}

	if _, err := r.client.DeleteRecord(ctx, contactTable, DeletePayload{RecordIDs: []int64{id}}); err != nil {
		return model.Contact{}, err
	}
	return existing, nil
}

type writeFunc func(ctx context.Context, table string, payload RecordsPayload) (Envelope, error)

func (r *ContactRepository) write(ctx context.Context, op string, contact model.Contact, send writeFunc) (model.Contact, error) {
	rec, err := toContactRecord(contact)
	if err != nil {
		return model.Contact{}, model.NewStoreError(op, "failed to encode contact", err)
	}
	payload, err := recordsPayload(rec)
	if err != nil {
		return model.Contact{}, model.NewStoreError(op, "failed to encode contact", err)
	}

	env, err := send(ctx, contactTable, payload)
	if err != nil {
		return model.Contact{}, err
	}

	saved, err := decodeList[contactRecord](env)
	if err != nil {
		return model.Contact{}, model.NewStoreError(op, "failed to decode contact", err)
	}
	if len(saved) == 0 {
		return model.Contact{}, model.NewStoreError(op, "record service returned no record", errNoRecord)
	}
	return saved[0].toModel(), nil
}
