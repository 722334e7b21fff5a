package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/contacts-server/internal/model"
)

func seedData() ([]model.Contact, []model.Category) {
	ts := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	contacts := []model.Contact{
		{ID: 1, FirstName: "Ann", LastName: "Lee", Email: "a@x.com", Categories: []string{"Work"}, CreatedAt: ts, UpdatedAt: ts},
		{ID: 2, FirstName: "Bob", LastName: "Zed", CreatedAt: ts, UpdatedAt: ts},
	}
	categories := []model.Category{
		{ID: 1, Name: "Work", Color: "#6366F1", Icon: "Briefcase"},
	}
	return contacts, categories
}

func TestSeed(t *testing.T) {
	contacts, categories := seedData()

	tests := []struct {
		name     string
		setup    func(sqlmock.Sqlmock)
		wantSeed bool
		wantErr  string
	}{
		{
			name: "empty database is seeded",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT \(SELECT COUNT\(\*\) FROM contacts\)`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectExec(`INSERT INTO categories`).
					WithArgs(int64(1), "Work", "#6366F1", "Briefcase").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectExec(`INSERT INTO contacts`).
					WithArgs(int64(1), "Ann", "Lee", "", "a@x.com", "", "", "", `["Work"]`, false, "", `[]`, sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectExec(`INSERT INTO contacts`).
					WithArgs(int64(2), "Bob", "Zed", "", "", "", "", "", `[]`, false, "", `[]`, sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(2, 1))
				mock.ExpectExec(`SELECT setval`).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
			wantSeed: true,
		},
		{
			name: "populated database is left alone",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT \(SELECT COUNT\(\*\) FROM contacts\)`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
				mock.ExpectRollback()
			},
		},
		{
			name: "insert failure rolls back",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT \(SELECT COUNT\(\*\) FROM contacts\)`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectExec(`INSERT INTO categories`).WillReturnError(errors.New("unique violation"))
				mock.ExpectRollback()
			},
			wantErr: `failed to insert category "Work"`,
		},
		{
			name: "begin failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("connection refused"))
			},
			wantErr: "failed to begin seed transaction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setup(mock)

			seeded, err := Seed(context.Background(), db, contacts, categories)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantSeed, seeded)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrations.ReadDir("migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	body, err := migrations.ReadFile("migrations/" + entries[0].Name())
	require.NoError(t, err)
	assert.Contains(t, string(body), "-- +goose Up")
	assert.Contains(t, string(body), "-- +goose Down")
}
