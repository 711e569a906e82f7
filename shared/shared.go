package shared

import (
	"fmt"
	"roomops/shared/dto"
	"strings"
)

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterByState matches a row by id and its current value of a state column.
// The state argument is renamed so it can share a statement with a SET on the same column.
func FilterByState(id, fieldID, stateField, state, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
			dto.Filter{
				ArgName:  "expected_" + stateField,
				Field:    stateField,
				Value:    state,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins a cache prefix with its key parts, e.g. "task:status:<id>".
func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return fmt.Sprintf("%s:%s", prefix, strings.Join(parts, ":"))
}
