package validator_test

import (
	"net/http"
	"roomops/shared/failure"
	"roomops/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checklistLine struct {
	InventoryID string `json:"inventory_id" validate:"required,notblank"`
	ActualQty   int    `json:"actual_qty"   validate:"gte=0"`
	Status      string `json:"status"       validate:"required,oneof=ok missing damaged used"`
}

type checklistRequest struct {
	Checklist []checklistLine `json:"checklist" validate:"unique=InventoryID,dive"`
	Issues    []string        `json:"issues"    validate:"omitempty,dive,notblank"`
}

type startRequest struct {
	BookingID string `json:"booking_id"         validate:"required,uuid"`
	StaffID   string `json:"staff_id,omitempty" validate:"omitempty,uuid"`
}

const bookingID = "6f1c2a8e-1d1b-4c55-9a0e-0b6b8a1f3c21"

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    checklistRequest
		wantErr string
	}{
		{
			name: "valid checklist",
			data: checklistRequest{
				Checklist: []checklistLine{
					{InventoryID: "towel", ActualQty: 2, Status: "ok"},
					{InventoryID: "kettle", ActualQty: 0, Status: "missing"},
				},
				Issues: []string{"stained carpet"},
			},
		},
		{
			name: "empty checklist is allowed",
			data: checklistRequest{},
		},
		{
			name: "duplicate inventory lines",
			data: checklistRequest{
				Checklist: []checklistLine{
					{InventoryID: "towel", ActualQty: 2, Status: "ok"},
					{InventoryID: "towel", ActualQty: 1, Status: "used"},
				},
			},
			wantErr: "checklist must not contain duplicate InventoryID entries",
		},
		{
			name: "blank issue",
			data: checklistRequest{
				Issues: []string{"   "},
			},
			wantErr: "issues[0] must not be blank",
		},
		{
			name: "negative quantity",
			data: checklistRequest{
				Checklist: []checklistLine{{InventoryID: "towel", ActualQty: -1, Status: "ok"}},
			},
			wantErr: "actual_qty must be greater than or equal to 0",
		},
		{
			name: "unknown line status",
			data: checklistRequest{
				Checklist: []checklistLine{{InventoryID: "towel", ActualQty: 1, Status: "stolen"}},
			},
			wantErr: "status must be one of ok missing damaged used",
		},
		{
			name: "blank inventory id",
			data: checklistRequest{
				Checklist: []checklistLine{{InventoryID: " ", ActualQty: 1, Status: "ok"}},
			},
			wantErr: "inventory_id must not be blank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Equal(t, tt.wantErr, failure.GetMessage(err))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "valid body",
			body: `{"booking_id":"` + bookingID + `"}`,
		},
		{
			name:    "missing booking id",
			body:    `{}`,
			wantErr: "booking_id is required",
		},
		{
			name:    "booking id is not a uuid",
			body:    `{"booking_id":"B-17"}`,
			wantErr: "booking_id must be a valid UUID",
		},
		{
			name:    "staff id is not a uuid",
			body:    `{"booking_id":"` + bookingID + `","staff_id":"maria"}`,
			wantErr: "staff_id must be a valid UUID",
		},
		{
			name:    "empty body",
			body:    ``,
			wantErr: "request body is required",
		},
		{
			name:    "malformed body",
			body:    `{"booking_id":}`,
			wantErr: "failed to decode request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data startRequest

			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, bookingID, data.BookingID)

				return
			}

			require.Error(t, err)
			assert.True(t, failure.Is(err, failure.KindValidation))
			assert.Contains(t, failure.GetMessage(err), tt.wantErr)
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name    string
		field   any
		tag     string
		wantErr string
	}{
		{name: "uuid", field: bookingID, tag: "required,uuid"},
		{name: "missing", field: "", tag: "required", wantErr: "value is required"},
		{name: "not a uuid", field: "abc", tag: "uuid", wantErr: "value must be a valid UUID"},
		{name: "task status", field: "cleaning", tag: "oneof=in-progress cleaning completed"},
		{name: "unknown task status", field: "done", tag: "oneof=in-progress cleaning completed", wantErr: "value must be one of in-progress cleaning completed"},
		{name: "too long", field: strings.Repeat("x", 11), tag: "max=10", wantErr: "value must be at most 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			assert.Equal(t, tt.wantErr, failure.GetMessage(err))
		})
	}
}
