package repository_test

import (
	"context"
	"errors"
	"roomops/infras/otel/mocks"
	"roomops/infras/postgres"
	"roomops/internal/domains/booking/model"
	"roomops/internal/domains/booking/repository"
	"roomops/shared/failure"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooking_Transition(t *testing.T) {
	updateQuery := `UPDATE bookings SET checkout_state = \$1, modified_at = \$2, status = \$3\s+WHERE \(bookings\.id = \$4 AND bookings\.checkout_state = \$5\)`

	tests := []struct {
		name      string
		from      string
		to        string
		setupMock func(mock sqlmock.Sqlmock)
		wantKind  string
		wantErr   bool
	}{
		{
			name: "compare and swap succeeds",
			from: model.StateIdle,
			to:   model.StateMaintenanceLocked,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(updateQuery).
					WithArgs(model.StateMaintenanceLocked, sqlmock.AnyArg(), model.StatusCheckoutInitiated, "b-1", model.StateIdle).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "concurrent caller already moved the booking",
			from: model.StateIdle,
			to:   model.StateMaintenanceLocked,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(updateQuery).
					WithArgs(model.StateMaintenanceLocked, sqlmock.AnyArg(), model.StatusCheckoutInitiated, "b-1", model.StateIdle).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
		{
			name:      "illegal transition never reaches the store",
			from:      model.StateIdle,
			to:        model.StateClosed,
			setupMock: func(_ sqlmock.Sqlmock) {},
			wantErr:   true,
			wantKind:  failure.KindConflict,
		},
		{
			name: "driver error",
			from: model.StateIdle,
			to:   model.StateMaintenanceLocked,
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

			err = repo.Transition(context.Background(), tx, "b-1", tt.from, tt.to, map[string]any{
				model.FieldStatus: model.StatusCheckoutInitiated,
			})

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

func TestBooking_LockTx(t *testing.T) {
	lockQuery := `SELECT .+ FROM bookings\s+WHERE \(bookings\.id = \$1\)\s+FOR UPDATE OF bookings`

	tests := []struct {
		name      string
		rows      *sqlmock.Rows
		wantState string
		wantKind  string
	}{
		{
			name:      "locked booking reflects the committed state",
			rows:      sqlmock.NewRows([]string{"id", "checkout_state"}).AddRow("b-1", model.StateClosed),
			wantState: model.StateClosed,
		},
		{
			name:     "missing booking",
			rows:     sqlmock.NewRows([]string{"id", "checkout_state"}),
			wantKind: failure.KindNotFound,
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
			mock.ExpectPrepare(lockQuery).ExpectQuery().WithArgs("b-1").WillReturnRows(tt.rows)
			mock.ExpectRollback()

			tx, err := conn.Beginx()
			require.NoError(t, err)

			booking, err := repo.LockTx(context.Background(), tx, "b-1")

			require.NoError(t, tx.Rollback())

			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantState, booking.CheckoutState)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
