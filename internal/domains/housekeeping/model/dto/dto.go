package dto

import (
	"roomops/internal/domains/housekeeping/model"
	"roomops/shared/constant"
	gDto "roomops/shared/dto"
	"roomops/shared/timezone"
)

type TaskResponse struct {
	ID           string   `json:"id"`
	RoomID       string   `json:"room_id"`
	BookingID    string   `json:"booking_id,omitempty"`
	CleaningType string   `json:"cleaning_type"`
	Priority     string   `json:"priority"`
	AssignedTo   string   `json:"assigned_to,omitempty"`
	Status       string   `json:"status"`
	StartedAt    string   `json:"started_at,omitempty"`
	CompletedAt  string   `json:"completed_at,omitempty"`
	VerifiedAt   string   `json:"verified_at,omitempty"`
	VerifiedBy   string   `json:"verified_by,omitempty"`
	Notes        string   `json:"notes"`
	Issues       []string `json:"issues"`
	gDto.Metadata
}

func (t *TaskResponse) FromModel(m model.Task) {
	t.ID = m.ID
	t.RoomID = m.RoomID
	t.BookingID = m.BookingID.String
	t.CleaningType = m.CleaningType
	t.Priority = m.Priority
	t.AssignedTo = m.AssignedTo.String
	t.Status = m.Status
	t.VerifiedBy = m.VerifiedBy.String
	t.Notes = m.Notes
	t.Issues = append([]string{}, m.Issues...)

	if m.StartedAt.Valid {
		t.StartedAt = timezone.Format(m.StartedAt.Time, constant.DateFormat)
	}

	if m.CompletedAt.Valid {
		t.CompletedAt = timezone.Format(m.CompletedAt.Time, constant.DateFormat)
	}

	if m.VerifiedAt.Valid {
		t.VerifiedAt = timezone.Format(m.VerifiedAt.Time, constant.DateFormat)
	}

	t.Metadata.FromModel(m.Metadata)
}

type TaskStatusResponse struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

type AssignTaskRequest struct {
	StaffID string `json:"staff_id" validate:"omitempty,uuid"`
}

type AssignTaskResponse struct {
	TaskID     string `json:"task_id"`
	AssignedTo string `json:"assigned_to"`
}

type UpdateTaskStatusRequest struct {
	Status string   `json:"status" validate:"required,oneof=in-progress cleaning completed"`
	Notes  string   `json:"notes"  validate:"omitempty,max=1000"`
	Issues []string `json:"issues" validate:"omitempty,dive,notblank"`
}
