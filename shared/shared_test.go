package shared_test

import (
	"reflect"
	"roomops/shared"
	"roomops/shared/dto"
	"testing"
)

func TestFilterByID(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		fieldID  string
		table    string
		expected dto.FilterGroup
	}{
		{
			name:    "basic filter by id",
			id:      "123",
			fieldID: "booking_id",
			table:   "invoices",
			expected: dto.FilterGroup{
				Filters: []any{
					dto.Filter{
						Field:    "booking_id",
						Value:    "123",
						Operator: dto.FilterOperatorEq,
						Table:    "invoices",
					},
				},
			},
		},
		{
			name:    "filter with empty table",
			id:      "456",
			fieldID: "id",
			table:   "",
			expected: dto.FilterGroup{
				Filters: []any{
					dto.Filter{
						Field:    "id",
						Value:    "456",
						Operator: dto.FilterOperatorEq,
						Table:    "",
					},
				},
			},
		},
		{
			name:    "filter with uuid",
			id:      "550e8400-e29b-41d4-a716-446655440000",
			fieldID: "id",
			table:   "housekeeping_tasks",
			expected: dto.FilterGroup{
				Filters: []any{
					dto.Filter{
						Field:    "id",
						Value:    "550e8400-e29b-41d4-a716-446655440000",
						Operator: dto.FilterOperatorEq,
						Table:    "housekeeping_tasks",
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.FilterByID(tt.id, tt.fieldID, tt.table)

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %+v, got %+v", tt.expected, result)
			}

			if len(result.Filters) != 1 {
				t.Errorf("expected 1 filter, got %d", len(result.Filters))
			}

			filter, ok := result.Filters[0].(dto.Filter)
			if !ok {
				t.Error("expected filter to be of type dto.Filter")
			}

			if filter.Field != tt.fieldID {
				t.Errorf("expected field to be %s, got %s", tt.fieldID, filter.Field)
			}

			if filter.Value != tt.id {
				t.Errorf("expected value to be %s, got %v", tt.id, filter.Value)
			}

			if filter.Operator != dto.FilterOperatorEq {
				t.Errorf("expected operator to be %s, got %s", dto.FilterOperatorEq, filter.Operator)
			}

			if filter.Table != tt.table {
				t.Errorf("expected table to be %s, got %s", tt.table, filter.Table)
			}
		})
	}
}

func TestFilterByState(t *testing.T) {
	filter := shared.FilterByState("b-1", "id", "checkout_state", "Idle", "bookings")

	where, args := filter.GetWhereClause()

	expectedWhere := "(bookings.id = :id AND bookings.checkout_state = :expected_checkout_state)"
	if where != expectedWhere {
		t.Errorf("expected where clause %q, got %q", expectedWhere, where)
	}

	if args["id"] != "b-1" {
		t.Errorf("expected id arg to be b-1, got %v", args["id"])
	}

	if args["expected_checkout_state"] != "Idle" {
		t.Errorf("expected state arg to be Idle, got %v", args["expected_checkout_state"])
	}

	if _, clash := args["checkout_state"]; clash {
		t.Error("state filter must not occupy the column name used by SET")
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{name: "prefix only", prefix: "task:status", expected: "task:status"},
		{name: "single part", prefix: "task:status", parts: []string{"t-1"}, expected: "task:status:t-1"},
		{name: "multiple parts", prefix: "checkout", parts: []string{"b-1", "view"}, expected: "checkout:b-1:view"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.BuildCacheKey(tt.prefix, tt.parts...); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}
