package dto

import (
	bookingModel "roomops/internal/domains/booking/model"
	hkModel "roomops/internal/domains/housekeeping/model"
	inspectionDto "roomops/internal/domains/inspection/model/dto"
	invoiceDto "roomops/internal/domains/invoice/model/dto"

	"github.com/shopspring/decimal"
)

type InitiateCheckoutRequest struct {
	BookingID string `json:"booking_id"         validate:"required,uuid"`
	StaffID   string `json:"staff_id,omitempty" validate:"omitempty,uuid"`
}

type InitiateCheckoutResponse struct {
	TaskID     string `json:"task_id"`
	RoomID     string `json:"room_id"`
	AssignedTo string `json:"assigned_to,omitempty"`
	// Warning is set when the checkout started but the task could not be assigned yet.
	Warning string `json:"warning,omitempty"`
}

type SubmitInspectionResponse struct {
	InspectionID string                              `json:"inspection_id"`
	TaskID       string                              `json:"task_id"`
	TaskStatus   string                              `json:"task_status"`
	TotalCharges decimal.Decimal                     `json:"total_charges"`
	Breakdown    []inspectionDto.LineResponse        `json:"breakdown"`
	Invoice      *invoiceDto.GenerateInvoiceResponse `json:"invoice,omitempty"`
	Warning      string                              `json:"warning,omitempty"`
}

type TaskSummary struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	AssignedTo string `json:"assigned_to,omitempty"`
}

func (t *TaskSummary) FromModel(m hkModel.Task) {
	t.ID = m.ID
	t.Status = m.Status
	t.AssignedTo = m.AssignedTo.String
}

type CheckoutResponse struct {
	BookingID     string           `json:"booking_id"`
	RoomID        string           `json:"room_id"`
	RoomNumber    string           `json:"room_number"`
	Status        string           `json:"status"`
	CheckoutState string           `json:"checkout_state"`
	IsActive      bool             `json:"is_active"`
	Task          *TaskSummary     `json:"task,omitempty"`
	TotalCharges  *decimal.Decimal `json:"total_charges,omitempty"`
	InvoiceID     string           `json:"invoice_id,omitempty"`
}

func (c *CheckoutResponse) FromModel(m bookingModel.Booking) {
	c.BookingID = m.ID
	c.RoomID = m.RoomID
	c.RoomNumber = m.RoomNumber
	c.Status = m.Status
	c.CheckoutState = m.CheckoutState
	c.IsActive = m.IsActive
	c.InvoiceID = m.InvoiceID.String
}
