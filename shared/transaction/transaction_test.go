package transaction_test

import (
	"context"
	"errors"
	"roomops/infras/otel/mocks"
	"roomops/infras/postgres"
	"roomops/shared/failure"
	"roomops/shared/transaction"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTransactor(t *testing.T) (transaction.Transactor, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	conn := sqlx.NewDb(db, "postgres")

	return transaction.New(&postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel()), mock
}

func TestWithinTx(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		fn        func(ctx context.Context, tx *sqlx.Tx) error
		wantErr   error
		wantAny   bool
	}{
		{
			name: "commit on success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE rooms").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			fn: func(ctx context.Context, tx *sqlx.Tx) error {
				_, err := tx.ExecContext(ctx, "UPDATE rooms SET status = 'maintenance'")

				return err
			},
		},
		{
			name: "rollback on domain failure",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn: func(_ context.Context, _ *sqlx.Tx) error {
				return failure.Conflict("checkout already in progress")
			},
			wantErr: failure.Conflict("checkout already in progress"),
		},
		{
			name: "begin failure",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("connection refused"))
			},
			fn: func(_ context.Context, _ *sqlx.Tx) error {
				t.Fatal("callback must not run without a transaction")

				return nil
			},
			wantAny: true,
		},
		{
			name: "commit failure",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(errors.New("connection reset"))
			},
			fn: func(_ context.Context, _ *sqlx.Tx) error {
				return nil
			},
			wantAny: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transactor, mock := newTransactor(t)
			tt.setupMock(mock)

			err := transactor.WithinTx(context.Background(), tt.fn)

			switch {
			case tt.wantErr != nil:
				assert.Equal(t, tt.wantErr, err)
			case tt.wantAny:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
