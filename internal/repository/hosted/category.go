package hosted

import (
	"context"
	"errors"

	"github.com/dtroode/contacts-server/internal/model"
)

var _ model.CategoryStore = (*CategoryRepository)(nil)

// CategoryRepository stores categories in the hosted category_c table.
type CategoryRepository struct {
	client RecordClient
}

func NewCategoryRepository(client RecordClient) *CategoryRepository {
	return &CategoryRepository{
		client: client,
	}
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]model.Category, error) {
	env, err := r.client.FetchRecords(ctx, categoryTable, Query{
		Fields:  categoryFields,
		OrderBy: []Order{{Field: "Id", Direction: "ASC"}},
	})
	if err != nil {
		return nil, err
	}

	records, err := decodeList[categoryRecord](env)
	if err != nil {
		return nil, model.NewStoreError("categories.getAll", "failed to decode categories", err)
	}

	categories := make([]model.Category, 0, len(records))
	for _, rec := range records {
		categories = append(categories, rec.toModel())
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (model.Category, error) {
	env, err := r.client.GetRecordByID(ctx, categoryTable, id, Query{Fields: categoryFields})
	if err != nil {
		return model.Category{}, err
	}

	rec, ok, err := decodeOne[categoryRecord](env)
	if err != nil {
		return model.Category{}, model.NewStoreError("categories.getById", "failed to decode category", err)
	}
	if !ok {
		return model.Category{}, model.NewNotFoundError("category", id)
	}
	return rec.toModel(), nil
}

func (r *CategoryRepository) Create(ctx context.Context, category model.Category) (model.Category, error) {
	category.ID = 0
	return r.write(ctx, "categories.create", category, r.client.CreateRecord)
}

func (r *CategoryRepository) Update(ctx context.Context, id int64, category model.Category) (model.Category, error) {
	category.ID = id
	saved, err := r.write(ctx, "categories.update", category, r.client.UpdateRecord)
	if errors.Is(err, errNoRecord) {
		return model.Category{}, model.NewNotFoundError("category", id)
	}
	if err != nil {
		return model.Category{}, err
	}
	return saved, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) (model.Category, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return model.Category{}, err
	}

	if _, err := r.client.DeleteRecord(ctx, categoryTable, DeletePayload{RecordIDs: []int64{id}}); err != nil {
		return model.Category{}, err
	}
	return existing, nil
}

func (r *CategoryRepository) write(ctx context.Context, op string, category model.Category, send writeFunc) (model.Category, error) {
	payload, err := recordsPayload(toCategoryRecord(category))
	if err != nil {
		return model.Category{}, model.NewStoreError(op, "failed to encode category", err)
	}

	env, err := send(ctx, categoryTable, payload)
	if err != nil {
		return model.Category{}, err
	}

	saved, err := decodeList[categoryRecord](env)
	if err != nil {
		return model.Category{}, model.NewStoreError(op, "failed to decode category", err)
	}
	if len(saved) == 0 {
		return model.Category{}, model.NewStoreError(op, "record service returned no record", errNoRecord)
	}
	return saved[0].toModel(), nil
}
