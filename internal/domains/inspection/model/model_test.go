package model_test

import (
	"roomops/internal/domains/inspection/model"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewInspection(t *testing.T) {
	assessment := model.Assessment{
		TotalCharges: decimal.RequireFromString("100"),
		Lines:        []model.Line{{InventoryID: "towel"}, {InventoryID: "kettle"}},
	}

	inspection := model.NewInspection("insp-1", "room-101", "booking-1", "task-1", "s-1", assessment, time.Now())

	assert.Equal(t, "task-1", inspection.TaskID)
	assert.True(t, inspection.TotalCharges.Equal(decimal.RequireFromString("100")))
	assert.Len(t, inspection.Lines, 2)

	for _, line := range inspection.Lines {
		assert.Equal(t, "insp-1", line.InspectionID)
		assert.NotEmpty(t, line.ID)
	}

	assert.NotEqual(t, inspection.Lines[0].ID, inspection.Lines[1].ID)
	assert.Empty(t, assessment.Lines[0].ID)
}
