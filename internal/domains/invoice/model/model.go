package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "invoices"
	EntityName = "invoice"

	LineTableName  = "invoice_lines"
	LineEntityName = "invoice_line"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldInvoiceID = "invoice_id"
	FieldPosition  = "position"
)

const (
	LineKindRoom       = "room"
	LineKindInspection = "inspection"
	LineKindDiscount   = "discount"
	LineKindTax        = "tax"
	LineKindRoundOff   = "round_off"
)

// Invoice is immutable once stored. At most one exists per booking.
type Invoice struct {
	ID                string          `db:"id"`
	BookingID         string          `db:"booking_id"`
	RoomCharge        decimal.Decimal `db:"room_charge"`
	InspectionCharges decimal.Decimal `db:"inspection_charges"`
	Discount          decimal.Decimal `db:"discount"`
	TaxTotal          decimal.Decimal `db:"tax_total"`
	RoundOff          decimal.Decimal `db:"round_off"`
	TotalAmount       decimal.Decimal `db:"total_amount"`
	Currency          string          `db:"currency"`
	CreatedAt         time.Time       `db:"created_at"`
	Lines             []Line          `db:"-"`
}

type Line struct {
	ID          string          `db:"id"`
	InvoiceID   string          `db:"invoice_id"`
	Position    int             `db:"position"`
	Kind        string          `db:"kind"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
}

// AddLine appends a line in presentation order.
func (i *Invoice) AddLine(kind, description string, amount decimal.Decimal) {
	i.Lines = append(i.Lines, Line{
		Position:    len(i.Lines) + 1,
		Kind:        kind,
		Description: description,
		Amount:      amount,
	})
}
