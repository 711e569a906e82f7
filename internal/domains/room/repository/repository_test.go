package repository_test

import (
	"context"
	"errors"
	"roomops/infras/otel/mocks"
	"roomops/infras/postgres"
	"roomops/internal/domains/room/model"
	"roomops/internal/domains/room/repository"
	"roomops/shared/failure"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoom_SetStatusTx(t *testing.T) {
	updateQuery := `UPDATE rooms SET modified_at = \$1, status = \$2\s+WHERE \(rooms\.id = \$3\)`

	tests := []struct {
		name      string
		status    string
		setupMock func(mock sqlmock.Sqlmock)
		wantKind  string
		wantErr   bool
	}{
		{
			name:   "room locked for maintenance",
			status: model.StatusMaintenance,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(updateQuery).
					WithArgs(sqlmock.AnyArg(), model.StatusMaintenance, "r-101").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:   "missing room",
			status: model.StatusAvailable,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(updateQuery).
					WithArgs(sqlmock.AnyArg(), model.StatusAvailable, "r-101").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
		{
			name:      "unknown status never reaches the store",
			status:    "flooded",
			setupMock: func(_ sqlmock.Sqlmock) {},
			wantErr:   true,
			wantKind:  failure.KindValidation,
		},
		{
			name:   "store failure",
			status: model.StatusCleaning,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(updateQuery).WillReturnError(errors.New("connection reset by peer"))
			},
			wantErr:  true,
			wantKind: failure.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			conn := sqlx.NewDb(db, "postgres")
			repo := repository.New(&postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel())

			mock.ExpectBegin()
			tt.setupMock(mock)
			mock.ExpectRollback()

			tx, err := conn.Beginx()
			require.NoError(t, err)

			err = repo.SetStatusTx(context.Background(), tx, "r-101", tt.status)

			require.NoError(t, tx.Rollback())

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
