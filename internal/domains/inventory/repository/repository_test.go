package repository_test

import (
	"context"
	"roomops/infras/otel/mocks"
	"roomops/infras/postgres"
	"roomops/internal/domains/inventory/repository"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventory_ForCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	conn := sqlx.NewDb(db, "postgres")
	repo := repository.New(&postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel())

	rows := sqlmock.NewRows([]string{"id", "category_id", "inventory_id", "item_name", "expected_qty", "unit_cost"}).
		AddRow("i-1", "deluxe", "kettle", "Electric kettle", 1, "850.00").
		AddRow("i-2", "deluxe", "towel", "Bath towel", 2, "500.00")

	mock.ExpectPrepare(`SELECT .+ FROM inventory_checklist_items\s+WHERE \(inventory_checklist_items\.category_id = \$1\)\s+ORDER BY inventory_checklist_items\.inventory_id ASC`).
		ExpectQuery().
		WithArgs("deluxe").
		WillReturnRows(rows)

	items, err := repo.ForCategory(context.Background(), "deluxe")

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "towel", items[1].InventoryID)
	assert.True(t, decimal.RequireFromString("500").Equal(items[1].UnitCost))
	assert.NoError(t, mock.ExpectationsWereMet())
}
