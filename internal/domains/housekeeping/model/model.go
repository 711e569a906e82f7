package model

import (
	"database/sql"
	"roomops/shared/model"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	TableName  = "housekeeping_tasks"
	EntityName = "housekeeping_task"

	FieldID           = "id"
	FieldRoomID       = "room_id"
	FieldBookingID    = "booking_id"
	FieldCleaningType = "cleaning_type"
	FieldAssignedTo   = "assigned_to"
	FieldStatus       = "status"
	FieldStartedAt    = "started_at"
	FieldCompletedAt  = "completed_at"
	FieldVerifiedAt   = "verified_at"
	FieldVerifiedBy   = "verified_by"
	FieldNotes        = "notes"
	FieldIssues       = "issues"
)

const (
	CleaningTypeDaily          = "daily"
	CleaningTypeDeepClean      = "deep-clean"
	CleaningTypeCheckout       = "checkout"
	CleaningTypeSpecialRequest = "special-request"
)

const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCleaning   = "cleaning"
	StatusCompleted  = "completed"
	StatusVerified   = "verified"
)

var transitions = map[string][]string{
	StatusPending:    {StatusInProgress},
	StatusInProgress: {StatusCleaning, StatusCompleted},
	StatusCleaning:   {StatusCompleted},
	StatusCompleted:  {StatusVerified},
}

type Task struct {
	ID           string         `db:"id"`
	RoomID       string         `db:"room_id"`
	BookingID    sql.NullString `db:"booking_id"`
	CleaningType string         `db:"cleaning_type"`
	Priority     string         `db:"priority"`
	AssignedTo   sql.NullString `db:"assigned_to"`
	Status       string         `db:"status"`
	StartedAt    sql.NullTime   `db:"started_at"`
	CompletedAt  sql.NullTime   `db:"completed_at"`
	VerifiedAt   sql.NullTime   `db:"verified_at"`
	VerifiedBy   sql.NullString `db:"verified_by"`
	Notes        string         `db:"notes"`
	Issues       pq.StringArray `db:"issues"`
	model.Metadata
}

// NewCheckoutTask builds the high priority, unassigned task that follows a guest checkout.
func NewCheckoutTask(roomID, bookingID, actor string, now time.Time) Task {
	return Task{
		ID:           uuid.NewString(),
		RoomID:       roomID,
		BookingID:    sql.NullString{String: bookingID, Valid: true},
		CleaningType: CleaningTypeCheckout,
		Priority:     PriorityHigh,
		Status:       StatusPending,
		Notes:        "Checkout cleaning",
		Issues:       pq.StringArray{},
		Metadata:     model.NewMetadata(actor, now),
	}
}

func CanTransition(from, to string) bool {
	return slices.Contains(transitions[from], to)
}

func (t Task) IsCheckout() bool {
	return t.CleaningType == CleaningTypeCheckout
}

func (t Task) IsAssigned() bool {
	return t.AssignedTo.Valid && t.AssignedTo.String != ""
}

// Inspectable reports whether the room can be inspected, i.e. cleaning has started and not finished.
func (t Task) Inspectable() bool {
	return t.Status == StatusInProgress || t.Status == StatusCleaning
}
