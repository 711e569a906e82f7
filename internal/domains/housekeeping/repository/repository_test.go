package repository_test

import (
	"context"
	"roomops/infras/otel/mocks"
	"roomops/infras/postgres"
	"roomops/internal/domains/housekeeping/model"
	"roomops/internal/domains/housekeeping/repository"
	"roomops/shared/failure"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepository(t *testing.T) (repository.Task, *sqlx.Tx, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	conn := sqlx.NewDb(db, "postgres")

	mock.ExpectBegin()

	tx, err := conn.Beginx()
	require.NoError(t, err)

	return repository.New(&postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel()), tx, mock
}

func TestTask_Transition(t *testing.T) {
	updateQuery := `UPDATE housekeeping_tasks SET modified_at = \$1, started_at = \$2, status = \$3\s+` +
		`WHERE \(housekeeping_tasks\.id = \$4 AND housekeeping_tasks\.status IN \(\$5\)\s*\)`

	tests := []struct {
		name      string
		from      []string
		to        string
		setupMock func(mock sqlmock.Sqlmock)
		wantKind  string
	}{
		{
			name: "pending task starts",
			from: []string{model.StatusPending},
			to:   model.StatusInProgress,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(updateQuery).
					WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), model.StatusInProgress, "t-1", model.StatusPending).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "task moved by someone else",
			from: []string{model.StatusPending},
			to:   model.StatusInProgress,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(updateQuery).WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantKind: failure.KindConflict,
		},
		{
			name:      "completed task cannot restart",
			from:      []string{model.StatusCompleted},
			to:        model.StatusInProgress,
			setupMock: func(_ sqlmock.Sqlmock) {},
			wantKind:  failure.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, tx, mock := newRepository(t)
			tt.setupMock(mock)

			err := repo.Transition(context.Background(), tx, "t-1", tt.from, tt.to, map[string]any{
				model.FieldStartedAt: time.Now(),
			})

			if tt.wantKind != "" {
				assert.True(t, failure.Is(err, tt.wantKind), "expected kind %s, got %v", tt.wantKind, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTask_AssignTx(t *testing.T) {
	assignQuery := `UPDATE housekeeping_tasks SET assigned_to = \$1, modified_at = \$2, modified_by = \$3\s+` +
		`WHERE \(housekeeping_tasks\.id = \$4 AND housekeeping_tasks\.assigned_to IS NULL\)`

	t.Run("unassigned task", func(t *testing.T) {
		repo, tx, mock := newRepository(t)

		mock.ExpectExec(assignQuery).
			WithArgs("s-1", sqlmock.AnyArg(), "frontdesk-1", "t-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.AssignTx(context.Background(), tx, "t-1", "s-1", "frontdesk-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already assigned", func(t *testing.T) {
		repo, tx, mock := newRepository(t)

		mock.ExpectExec(assignQuery).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.AssignTx(context.Background(), tx, "t-1", "s-1", "frontdesk-1")
		assert.True(t, failure.Is(err, failure.KindConflict))
	})
}
