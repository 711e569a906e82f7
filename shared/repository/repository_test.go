package repository_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"roomops/infras/otel/mocks"
	"roomops/infras/postgres"
	"roomops/shared"
	"roomops/shared/dto"
	"roomops/shared/repository"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledgerRow struct {
	ID     string `db:"id"`
	State  string `db:"state"`
	Amount string `db:"amount"`
}

func newRepository(t *testing.T) (repository.Repository[ledgerRow], *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	conn := sqlx.NewDb(db, "postgres")
	repo := repository.NewRepository[ledgerRow]("ledger", "ledgers", "id", &postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel())

	return repo, conn, mock
}

func TestRepository_UpdateAffectedTx(t *testing.T) {
	tests := []struct {
		name             string
		setupMock        func(mock sqlmock.Sqlmock)
		expectedAffected int64
		wantErr          bool
	}{
		{
			name: "expected state holds",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE ledgers SET state = \$1\s+WHERE \(ledgers\.id = \$2 AND ledgers\.state = \$3\)`).
					WithArgs("closed", "l-1", "open").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			expectedAffected: 1,
		},
		{
			name: "state moved on",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("UPDATE ledgers SET state = $1")).
					WithArgs("closed", "l-1", "open").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
			expectedAffected: 0,
		},
		{
			name: "driver error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("UPDATE ledgers SET state = $1")).
					WillReturnError(errors.New("connection reset"))
				mock.ExpectCommit()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, conn, mock := newRepository(t)
			tt.setupMock(mock)

			tx, err := conn.Beginx()
			require.NoError(t, err)

			affected, err := repo.UpdateAffectedTx(context.Background(), tx,
				map[string]any{"state": "closed"},
				shared.FilterByState("l-1", "id", "state", "open", "ledgers"))

			require.NoError(t, tx.Commit())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAffected, affected)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateRequiresFilter(t *testing.T) {
	repo, _, mock := newRepository(t)

	err := repo.UpdateTx(context.Background(), nil, map[string]any{"state": "closed"}, dto.FilterGroup{})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetAll(t *testing.T) {
	tests := []struct {
		name      string
		params    dto.QueryParams
		wantQuery string
		wantArgs  []driver.Value
		wantErr   bool
	}{
		{
			name:      "ordered with limit",
			params:    dto.QueryParams{Limit: 5, SortBy: "state, id", SortDir: "desc"},
			wantQuery: "ORDER BY ledgers.state, ledgers.id DESC LIMIT $2",
			wantArgs:  []driver.Value{"open", 5},
		},
		{
			name:      "second page",
			params:    dto.QueryParams{Page: 2, Limit: 5, SortBy: "id", SortDir: "asc"},
			wantQuery: "ORDER BY ledgers.id ASC LIMIT $2 OFFSET $3",
			wantArgs:  []driver.Value{"open", 5, 5},
		},
		{
			name:    "unknown sort column",
			params:  dto.QueryParams{SortBy: "amount; DROP TABLE ledgers"},
			wantErr: true,
		},
		{
			name:    "unknown direction",
			params:  dto.QueryParams{SortBy: "state", SortDir: "sideways"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, mock := newRepository(t)

			filter := shared.FilterByID("open", "state", "ledgers")

			if !tt.wantErr {
				mock.ExpectPrepare(regexp.QuoteMeta(tt.wantQuery)).
					ExpectQuery().
					WithArgs(tt.wantArgs...).
					WillReturnRows(sqlmock.NewRows([]string{"id", "state", "amount"}).AddRow("l-1", "open", "12.50"))
			}

			rows, err := repo.GetAll(context.Background(), tt.params, filter)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Len(t, rows, 1)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Get(t *testing.T) {
	t.Run("row found", func(t *testing.T) {
		repo, _, mock := newRepository(t)

		mock.ExpectPrepare(regexp.QuoteMeta("SELECT ledgers.id, ledgers.state, ledgers.amount FROM ledgers")).
			ExpectQuery().
			WithArgs("l-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "state", "amount"}).AddRow("l-1", "open", "12.50"))

		row, err := repo.Get(context.Background(), shared.FilterByID("l-1", "id", "ledgers"))

		assert.NoError(t, err)
		assert.Equal(t, ledgerRow{ID: "l-1", State: "open", Amount: "12.50"}, row)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows yields zero value", func(t *testing.T) {
		repo, _, mock := newRepository(t)

		mock.ExpectPrepare(regexp.QuoteMeta("SELECT ledgers.id, ledgers.state, ledgers.amount FROM ledgers")).
			ExpectQuery().
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"id", "state", "amount"}))

		row, err := repo.Get(context.Background(), shared.FilterByID("missing", "id", "ledgers"))

		assert.NoError(t, err)
		assert.Equal(t, ledgerRow{}, row)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetForUpdateTx(t *testing.T) {
	repo, conn, mock := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectPrepare(`SELECT ledgers\.id, ledgers\.state, ledgers\.amount FROM ledgers WHERE \(ledgers\.id = \$1\) FOR UPDATE OF ledgers$`).
		ExpectQuery().
		WithArgs("l-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "state", "amount"}).AddRow("l-1", "closed", "12.50"))
	mock.ExpectRollback()

	tx, err := conn.Beginx()
	require.NoError(t, err)

	row, err := repo.GetForUpdateTx(context.Background(), tx, shared.FilterByID("l-1", "id", "ledgers"))
	require.NoError(t, tx.Rollback())

	assert.NoError(t, err)
	assert.Equal(t, "closed", row.State)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_InsertTx(t *testing.T) {
	repo, conn, mock := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ledgers (id, state, amount) VALUES ($1, $2, $3)")).
		WithArgs("l-1", "open", "10.00").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "ledgers_pkey"})
	mock.ExpectRollback()

	tx, err := conn.Beginx()
	require.NoError(t, err)

	err = repo.InsertTx(context.Background(), tx, ledgerRow{ID: "l-1", State: "open", Amount: "10.00"})
	require.NoError(t, tx.Rollback())

	assert.Error(t, err)
	assert.True(t, repository.IsUniqueViolation(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "unique violation", err: &pq.Error{Code: "23505"}, expected: true},
		{name: "wrapped unique violation", err: fmt.Errorf("insert invoice: %w", &pq.Error{Code: "23505"}), expected: true},
		{name: "foreign key violation", err: &pq.Error{Code: "23503"}, expected: false},
		{name: "plain error", err: errors.New("boom"), expected: false},
		{name: "nil", err: nil, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, repository.IsUniqueViolation(tt.err))
		})
	}
}
