package model_test

import (
	"roomops/internal/domains/booking/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		expected bool
	}{
		{name: "start checkout", from: model.StateIdle, to: model.StateMaintenanceLocked, expected: true},
		{name: "assign staff", from: model.StateMaintenanceLocked, to: model.StateHousekeepingAssigned, expected: true},
		{name: "manual pickup starts work", from: model.StateMaintenanceLocked, to: model.StateAwaitingInspection, expected: true},
		{name: "inspection submitted", from: model.StateAwaitingInspection, to: model.StateInspectionComplete, expected: true},
		{name: "invoice generated", from: model.StateInspectionComplete, to: model.StateInvoiceGenerated, expected: true},
		{name: "close", from: model.StateInvoiceGenerated, to: model.StateClosed, expected: true},
		{name: "skip inspection", from: model.StateHousekeepingAssigned, to: model.StateInvoiceGenerated, expected: false},
		{name: "restart closed checkout", from: model.StateClosed, to: model.StateMaintenanceLocked, expected: false},
		{name: "backwards", from: model.StateInspectionComplete, to: model.StateAwaitingInspection, expected: false},
		{name: "unknown state", from: "Paused", to: model.StateClosed, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, model.CanTransition(tt.from, tt.to))
		})
	}
}

func TestReached(t *testing.T) {
	assert.True(t, model.Reached(model.StateInvoiceGenerated, model.StateInspectionComplete))
	assert.True(t, model.Reached(model.StateInspectionComplete, model.StateInspectionComplete))
	assert.False(t, model.Reached(model.StateAwaitingInspection, model.StateInspectionComplete))
	assert.False(t, model.Reached("unknown", model.StateIdle))
}

func TestCheckoutActive(t *testing.T) {
	assert.False(t, model.CheckoutActive(model.StateIdle))
	assert.True(t, model.CheckoutActive(model.StateMaintenanceLocked))
	assert.True(t, model.CheckoutActive(model.StateInvoiceGenerated))
	assert.False(t, model.CheckoutActive(model.StateClosed))
}

func TestBooking_Checkoutable(t *testing.T) {
	booking := model.Booking{IsActive: true, Status: model.StatusBooked, CheckoutState: model.StateIdle}
	assert.True(t, booking.Checkoutable())

	booking.CheckoutState = model.StateMaintenanceLocked
	assert.False(t, booking.Checkoutable())

	booking = model.Booking{IsActive: false, Status: model.StatusBooked, CheckoutState: model.StateIdle}
	assert.False(t, booking.Checkoutable())
}
