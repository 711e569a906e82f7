package model

import "slices"

// Checkout states, in the order a booking moves through them.
const (
	StateIdle                 = "Idle"
	StateMaintenanceLocked    = "MaintenanceLocked"
	StateHousekeepingAssigned = "HousekeepingAssigned"
	StateAwaitingInspection   = "AwaitingInspection"
	StateInspectionComplete   = "InspectionComplete"
	StateInvoiceGenerated     = "InvoiceGenerated"
	StateClosed               = "Closed"
)

var stateOrder = map[string]int{
	StateIdle:                 0,
	StateMaintenanceLocked:    1,
	StateHousekeepingAssigned: 2,
	StateAwaitingInspection:   3,
	StateInspectionComplete:   4,
	StateInvoiceGenerated:     5,
	StateClosed:               6,
}

// transitions lists the allowed next states. Staff may start work on a task that was picked up
// manually, so MaintenanceLocked can move straight to AwaitingInspection.
var transitions = map[string][]string{
	StateIdle:                 {StateMaintenanceLocked},
	StateMaintenanceLocked:    {StateHousekeepingAssigned, StateAwaitingInspection},
	StateHousekeepingAssigned: {StateAwaitingInspection},
	StateAwaitingInspection:   {StateInspectionComplete},
	StateInspectionComplete:   {StateInvoiceGenerated},
	StateInvoiceGenerated:     {StateClosed},
}

func IsValidState(state string) bool {
	_, ok := stateOrder[state]

	return ok
}

func CanTransition(from, to string) bool {
	return slices.Contains(transitions[from], to)
}

// Reached reports whether state is target or any state after it.
func Reached(state, target string) bool {
	current, ok := stateOrder[state]
	if !ok {
		return false
	}

	return current >= stateOrder[target]
}

// CheckoutActive reports whether a checkout has started and not yet closed.
func CheckoutActive(state string) bool {
	return Reached(state, StateMaintenanceLocked) && state != StateClosed
}
