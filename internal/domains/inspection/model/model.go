package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TableName  = "inspections"
	EntityName = "inspection"

	LineTableName  = "inspection_lines"
	LineEntityName = "inspection_line"

	FieldID           = "id"
	FieldBookingID    = "booking_id"
	FieldTaskID       = "task_id"
	FieldInspectionID = "inspection_id"
	FieldInventoryID  = "inventory_id"
)

const (
	LineStatusOK      = "ok"
	LineStatusMissing = "missing"
	LineStatusDamaged = "damaged"
	LineStatusUsed    = "used"
)

// Inspection is the immutable record of a post-stay room inventory check.
type Inspection struct {
	ID           string          `db:"id"`
	RoomID       string          `db:"room_id"`
	BookingID    string          `db:"booking_id"`
	TaskID       string          `db:"task_id"`
	InspectorID  string          `db:"inspector_id"`
	TotalCharges decimal.Decimal `db:"total_charges"`
	CreatedAt    time.Time       `db:"created_at"`
	Lines        []Line          `db:"-"`
}

type Line struct {
	ID           string          `db:"id"`
	InspectionID string          `db:"inspection_id"`
	InventoryID  string          `db:"inventory_id"`
	ItemName     string          `db:"item_name"`
	ExpectedQty  int             `db:"expected_qty"`
	ActualQty    int             `db:"actual_qty"`
	Status       string          `db:"status"`
	UnitCost     decimal.Decimal `db:"unit_cost"`
	Charge       decimal.Decimal `db:"charge"`
	Billable     bool            `db:"billable"`
	Remarks      string          `db:"remarks"`
}

// Assessment is the outcome of evaluating a checklist, before it is persisted.
type Assessment struct {
	Lines        []Line
	TotalCharges decimal.Decimal
}

// NewInspection turns an assessment into a record ready to be stored.
func NewInspection(id, roomID, bookingID, taskID, inspectorID string, assessment Assessment, now time.Time) Inspection {
	inspection := Inspection{
		ID:           id,
		RoomID:       roomID,
		BookingID:    bookingID,
		TaskID:       taskID,
		InspectorID:  inspectorID,
		TotalCharges: assessment.TotalCharges,
		CreatedAt:    now,
		Lines:        make([]Line, 0, len(assessment.Lines)),
	}

	for _, line := range assessment.Lines {
		line.ID = uuid.NewString()
		line.InspectionID = id
		inspection.Lines = append(inspection.Lines, line)
	}

	return inspection
}
