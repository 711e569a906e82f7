package service

import (
	"fmt"
	"maps"
	bookingModel "roomops/internal/domains/booking/model"
	"roomops/internal/domains/invoice/model"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

var hundred = decimal.NewFromInt(100)

// Tax is one entry of the tax schedule. Rate is a percentage of the taxable subtotal.
type Tax struct {
	Name string
	Rate decimal.Decimal
}

// ParseTaxes reads the NAME:PERCENT schedule from configuration. The result is ordered by name.
func ParseTaxes(schedule map[string]string) ([]Tax, error) {
	taxes := make([]Tax, 0, len(schedule))

	for _, name := range slices.Sorted(maps.Keys(schedule)) {
		rate, err := decimal.NewFromString(strings.TrimSpace(schedule[name]))
		if err != nil {
			return nil, fmt.Errorf("invalid rate for tax %s: %w", name, err)
		}

		if rate.IsNegative() {
			return nil, fmt.Errorf("tax %s has a negative rate", name)
		}

		taxes = append(taxes, Tax{Name: strings.TrimSpace(name), Rate: rate})
	}

	return taxes, nil
}

type CompileInput struct {
	InvoiceID         string
	Booking           bookingModel.Booking
	InspectionCharges decimal.Decimal
	Taxes             []Tax
	RoundOff          decimal.Decimal
	Currency          string
	IssuedAt          time.Time
}

// Compile assembles the bill of a booking. Amounts are rounded half-up to two places; the
// round-off adjustment is added last and skipped when it would make the total negative.
func Compile(in CompileInput) model.Invoice {
	booking := in.Booking

	roomCharge := booking.Rate
	if booking.Nights > 0 {
		roomCharge = booking.Rate.Mul(decimal.NewFromInt(int64(booking.Nights)))
	}

	roomCharge = roomCharge.Round(moneyPlaces)
	inspectionCharges := in.InspectionCharges.Round(moneyPlaces)

	gross := roomCharge.Add(inspectionCharges)
	discount := decimal.Min(booking.Discount.Round(moneyPlaces), gross)

	if discount.IsNegative() {
		discount = decimal.Zero
	}

	taxable := gross.Sub(discount)

	invoice := model.Invoice{
		ID:                in.InvoiceID,
		BookingID:         booking.ID,
		RoomCharge:        roomCharge,
		InspectionCharges: inspectionCharges,
		Discount:          discount,
		TaxTotal:          decimal.Zero,
		RoundOff:          decimal.Zero,
		Currency:          in.Currency,
		CreatedAt:         in.IssuedAt,
	}

	invoice.AddLine(model.LineKindRoom, roomDescription(booking), roomCharge)

	if !inspectionCharges.IsZero() {
		invoice.AddLine(model.LineKindInspection, "Inspection charges", inspectionCharges)
	}

	if !discount.IsZero() {
		invoice.AddLine(model.LineKindDiscount, "Discount", discount.Neg())
	}

	for _, tax := range in.Taxes {
		amount := taxable.Mul(tax.Rate).Div(hundred).Round(moneyPlaces)
		invoice.TaxTotal = invoice.TaxTotal.Add(amount)
		invoice.AddLine(model.LineKindTax, fmt.Sprintf("%s @ %s%%", tax.Name, tax.Rate.String()), amount)
	}

	total := taxable.Add(invoice.TaxTotal).Round(moneyPlaces)

	if !in.RoundOff.IsZero() && !total.Add(in.RoundOff).IsNegative() {
		invoice.RoundOff = in.RoundOff
		total = total.Add(in.RoundOff)
		invoice.AddLine(model.LineKindRoundOff, "Round off", in.RoundOff)
	}

	invoice.TotalAmount = total

	return invoice
}

func roomDescription(booking bookingModel.Booking) string {
	if booking.Nights > 0 {
		return fmt.Sprintf("Room %s, %d night(s) @ %s", booking.RoomNumber, booking.Nights, booking.Rate.StringFixed(moneyPlaces))
	}

	return "Room " + booking.RoomNumber
}
