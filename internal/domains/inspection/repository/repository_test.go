package repository_test

import (
	"context"
	"roomops/infras/otel/mocks"
	"roomops/infras/postgres"
	"roomops/internal/domains/inspection/model"
	"roomops/internal/domains/inspection/repository"
	"roomops/shared/failure"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInspection() model.Inspection {
	assessment := model.Assessment{
		TotalCharges: decimal.RequireFromString("300"),
		Lines: []model.Line{
			{InventoryID: "towel", Status: model.LineStatusMissing, Charge: decimal.RequireFromString("100"), Billable: true},
			{InventoryID: "kettle", Status: model.LineStatusDamaged, Charge: decimal.RequireFromString("200"), Billable: true},
		},
	}

	return model.NewInspection("insp-1", "room-101", "booking-1", "task-1", "s-1", assessment, time.Now())
}

func TestInspection_CreateTx(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantKind  string
	}{
		{
			name: "record and lines stored",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO inspections \(id, room_id, booking_id, task_id, inspector_id, total_charges, created_at\)`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`INSERT INTO inspection_lines .+ VALUES \(.+\),\s*\(.+\)`).
					WillReturnResult(sqlmock.NewResult(0, 2))
			},
		},
		{
			name: "task already inspected",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO inspections`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "inspections_task_id_key"})
			},
			wantKind: failure.KindConflict,
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

			tx, err := conn.Beginx()
			require.NoError(t, err)

			err = repo.CreateTx(context.Background(), tx, newInspection())

			if tt.wantKind != "" {
				assert.True(t, failure.Is(err, tt.wantKind), "expected kind %s, got %v", tt.wantKind, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
