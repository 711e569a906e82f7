package service_test

import (
	"roomops/internal/domains/inspection/model"
	"roomops/internal/domains/inspection/model/dto"
	"roomops/internal/domains/inspection/service"
	inventoryModel "roomops/internal/domains/inventory/model"
	"roomops/shared/failure"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceList() []inventoryModel.ChecklistItem {
	return []inventoryModel.ChecklistItem{
		{InventoryID: "towel", ItemName: "Bath towel", ExpectedQty: 2, UnitCost: decimal.RequireFromString("50")},
		{InventoryID: "kettle", ItemName: "Electric kettle", ExpectedQty: 1, UnitCost: decimal.RequireFromString("200")},
		{InventoryID: "water", ItemName: "Mineral water", ExpectedQty: 4, UnitCost: decimal.RequireFromString("20.50")},
	}
}

func TestAssess(t *testing.T) {
	tests := []struct {
		name      string
		checklist []dto.ChecklistLine
		total     string
		charges   []string
	}{
		{
			name: "missing towels and a damaged kettle",
			checklist: []dto.ChecklistLine{
				{InventoryID: "towel", ActualQty: 0, Status: model.LineStatusMissing},
				{InventoryID: "kettle", ActualQty: 1, Status: model.LineStatusDamaged},
			},
			total:   "300",
			charges: []string{"100", "200"},
		},
		{
			name: "nothing wrong",
			checklist: []dto.ChecklistLine{
				{InventoryID: "towel", ActualQty: 2, Status: model.LineStatusOK},
				{InventoryID: "kettle", ActualQty: 1, Status: model.LineStatusOK},
			},
			total:   "0",
			charges: []string{"0", "0"},
		},
		{
			name: "used consumables are charged like missing ones",
			checklist: []dto.ChecklistLine{
				{InventoryID: "water", ActualQty: 1, Status: model.LineStatusUsed},
			},
			total:   "61.5",
			charges: []string{"61.5"},
		},
		{
			name: "surplus never produces a negative charge",
			checklist: []dto.ChecklistLine{
				{InventoryID: "towel", ActualQty: 5, Status: model.LineStatusMissing},
			},
			total:   "0",
			charges: []string{"0"},
		},
		{
			name: "ok status ignores quantities",
			checklist: []dto.ChecklistLine{
				{InventoryID: "towel", ActualQty: 0, Status: model.LineStatusOK},
			},
			total:   "0",
			charges: []string{"0"},
		},
		{
			name:      "empty checklist",
			checklist: nil,
			total:     "0",
			charges:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assessment, err := service.Assess(referenceList(), tt.checklist)
			require.NoError(t, err)

			assert.True(t, decimal.RequireFromString(tt.total).Equal(assessment.TotalCharges),
				"expected total %s, got %s", tt.total, assessment.TotalCharges)
			require.Len(t, assessment.Lines, len(tt.charges))

			for idx, expected := range tt.charges {
				assert.True(t, decimal.RequireFromString(expected).Equal(assessment.Lines[idx].Charge),
					"line %d: expected %s, got %s", idx, expected, assessment.Lines[idx].Charge)
			}
		})
	}
}

func TestAssess_UnknownItem(t *testing.T) {
	assessment, err := service.Assess(referenceList(), []dto.ChecklistLine{
		{InventoryID: "umbrella", ActualQty: 0, Status: model.LineStatusMissing, Remarks: "guest says it was never there"},
		{InventoryID: "towel", ActualQty: 1, Status: model.LineStatusMissing},
	})
	require.NoError(t, err)

	unknown := assessment.Lines[0]
	assert.False(t, unknown.Billable)
	assert.True(t, unknown.Charge.IsZero())
	assert.Contains(t, unknown.Remarks, "guest says it was never there")
	assert.Contains(t, unknown.Remarks, "not billed")

	assert.True(t, assessment.Lines[1].Billable)
	assert.True(t, decimal.RequireFromString("50").Equal(assessment.TotalCharges))
}

func TestAssess_Validation(t *testing.T) {
	tests := []struct {
		name      string
		checklist []dto.ChecklistLine
	}{
		{
			name:      "negative quantity",
			checklist: []dto.ChecklistLine{{InventoryID: "towel", ActualQty: -1, Status: model.LineStatusMissing}},
		},
		{
			name: "duplicate line",
			checklist: []dto.ChecklistLine{
				{InventoryID: "towel", ActualQty: 1, Status: model.LineStatusMissing},
				{InventoryID: "towel", ActualQty: 0, Status: model.LineStatusDamaged},
			},
		},
		{
			name:      "unknown status",
			checklist: []dto.ChecklistLine{{InventoryID: "towel", ActualQty: 1, Status: "stolen"}},
		},
		{
			name:      "blank inventory id",
			checklist: []dto.ChecklistLine{{InventoryID: "  ", ActualQty: 1, Status: model.LineStatusOK}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Assess(referenceList(), tt.checklist)

			assert.True(t, failure.Is(err, failure.KindValidation), "expected validation error, got %v", err)
		})
	}
}

func TestAssess_Deterministic(t *testing.T) {
	checklist := []dto.ChecklistLine{
		{InventoryID: "water", ActualQty: 2, Status: model.LineStatusUsed},
		{InventoryID: "kettle", ActualQty: 1, Status: model.LineStatusDamaged},
		{InventoryID: "towel", ActualQty: 1, Status: model.LineStatusMissing},
	}

	first, err := service.Assess(referenceList(), checklist)
	require.NoError(t, err)

	for range 20 {
		again, err := service.Assess(referenceList(), checklist)
		require.NoError(t, err)

		assert.True(t, first.TotalCharges.Equal(again.TotalCharges))
		assert.Equal(t, first.Lines, again.Lines)
	}
}
