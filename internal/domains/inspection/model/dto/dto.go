package dto

import (
	"roomops/internal/domains/inspection/model"
	"roomops/shared/constant"
	"roomops/shared/timezone"

	"github.com/shopspring/decimal"
)

type ChecklistLine struct {
	InventoryID string `json:"inventory_id" validate:"required,notblank"`
	ActualQty   int    `json:"actual_qty"   validate:"gte=0"`
	Status      string `json:"status"       validate:"required,oneof=ok missing damaged used"`
	Remarks     string `json:"remarks"      validate:"omitempty,max=500"`
}

type SubmitInspectionRequest struct {
	Checklist []ChecklistLine `json:"checklist" validate:"unique=InventoryID,dive"`
}

type LineResponse struct {
	InventoryID string          `json:"inventory_id"`
	ItemName    string          `json:"item_name"`
	ExpectedQty int             `json:"expected_qty"`
	ActualQty   int             `json:"actual_qty"`
	Status      string          `json:"status"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Charge      decimal.Decimal `json:"charge"`
	Billable    bool            `json:"billable"`
	Remarks     string          `json:"remarks,omitempty"`
}

func (l *LineResponse) FromModel(m model.Line) {
	l.InventoryID = m.InventoryID
	l.ItemName = m.ItemName
	l.ExpectedQty = m.ExpectedQty
	l.ActualQty = m.ActualQty
	l.Status = m.Status
	l.UnitCost = m.UnitCost
	l.Charge = m.Charge
	l.Billable = m.Billable
	l.Remarks = m.Remarks
}

type InspectionResponse struct {
	ID           string          `json:"id"`
	TaskID       string          `json:"task_id"`
	BookingID    string          `json:"booking_id"`
	InspectorID  string          `json:"inspector_id"`
	TotalCharges decimal.Decimal `json:"total_charges"`
	Breakdown    []LineResponse  `json:"breakdown"`
	CreatedAt    string          `json:"created_at"`
}

func (i *InspectionResponse) FromModel(m model.Inspection) {
	i.ID = m.ID
	i.TaskID = m.TaskID
	i.BookingID = m.BookingID
	i.InspectorID = m.InspectorID
	i.TotalCharges = m.TotalCharges
	i.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)
	i.Breakdown = make([]LineResponse, 0, len(m.Lines))

	for _, line := range m.Lines {
		var l LineResponse

		l.FromModel(line)
		i.Breakdown = append(i.Breakdown, l)
	}
}
