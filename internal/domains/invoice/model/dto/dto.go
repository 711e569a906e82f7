package dto

import (
	"roomops/internal/domains/invoice/model"
	"roomops/shared/constant"
	"roomops/shared/timezone"

	"github.com/shopspring/decimal"
)

type GenerateInvoiceResponse struct {
	InvoiceID   string          `json:"invoice_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Currency    string          `json:"currency"`
}

func (g *GenerateInvoiceResponse) FromModel(m model.Invoice) {
	g.InvoiceID = m.ID
	g.TotalAmount = m.TotalAmount
	g.Currency = m.Currency
}

type LineResponse struct {
	Kind        string          `json:"kind"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type InvoiceResponse struct {
	ID                string          `json:"id"`
	BookingID         string          `json:"booking_id"`
	RoomCharge        decimal.Decimal `json:"room_charge"`
	InspectionCharges decimal.Decimal `json:"inspection_charges"`
	Discount          decimal.Decimal `json:"discount"`
	TaxTotal          decimal.Decimal `json:"tax_total"`
	RoundOff          decimal.Decimal `json:"round_off"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	Currency          string          `json:"currency"`
	Lines             []LineResponse  `json:"lines"`
	CreatedAt         string          `json:"created_at"`
}

func (i *InvoiceResponse) FromModel(m model.Invoice) {
	i.ID = m.ID
	i.BookingID = m.BookingID
	i.RoomCharge = m.RoomCharge
	i.InspectionCharges = m.InspectionCharges
	i.Discount = m.Discount
	i.TaxTotal = m.TaxTotal
	i.RoundOff = m.RoundOff
	i.TotalAmount = m.TotalAmount
	i.Currency = m.Currency
	i.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)
	i.Lines = make([]LineResponse, 0, len(m.Lines))

	for _, line := range m.Lines {
		i.Lines = append(i.Lines, LineResponse{Kind: line.Kind, Description: line.Description, Amount: line.Amount})
	}
}

type Document struct {
	FileName string
	Content  []byte
}
