package model

import "github.com/shopspring/decimal"

const (
	TableName  = "inventory_checklist_items"
	EntityName = "inventory_checklist_item"

	FieldID          = "id"
	FieldCategoryID  = "category_id"
	FieldInventoryID = "inventory_id"
)

// ChecklistItem is the expected stock of one inventory item for a room category.
// The reference list is maintained elsewhere and only read here.
type ChecklistItem struct {
	ID          string          `db:"id"`
	CategoryID  string          `db:"category_id"`
	InventoryID string          `db:"inventory_id"`
	ItemName    string          `db:"item_name"`
	ExpectedQty int             `db:"expected_qty"`
	UnitCost    decimal.Decimal `db:"unit_cost"`
}
