package model

import (
	"database/sql"
	"roomops/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldRoomID        = "room_id"
	FieldRoomNumber    = "room_number"
	FieldStatus        = "status"
	FieldCheckoutState = "checkout_state"
	FieldIsActive      = "is_active"
	FieldInvoiceID     = "invoice_id"
)

const (
	StatusBooked            = "Booked"
	StatusCheckoutInitiated = "CheckoutInitiated"
	StatusCheckedOut        = "CheckedOut"
)

type Booking struct {
	ID            string          `db:"id"`
	RoomID        string          `db:"room_id"`
	RoomNumber    string          `db:"room_number"`
	CategoryID    string          `db:"category_id"`
	GuestName     string          `db:"guest_name"`
	GuestEmail    string          `db:"guest_email"`
	GuestPhone    string          `db:"guest_phone"`
	CheckIn       time.Time       `db:"check_in"`
	CheckOut      time.Time       `db:"check_out"`
	Nights        int             `db:"nights"`
	Rate          decimal.Decimal `db:"rate"`
	Discount      decimal.Decimal `db:"discount"`
	Status        string          `db:"status"`
	CheckoutState string          `db:"checkout_state"`
	IsActive      bool            `db:"is_active"`
	InvoiceID     sql.NullString  `db:"invoice_id"`
	model.Metadata
}

// Checkoutable reports whether a checkout may start for the booking.
func (b Booking) Checkoutable() bool {
	return b.IsActive && b.Status == StatusBooked && b.CheckoutState == StateIdle
}
