package service

import (
	"fmt"
	"roomops/internal/domains/inspection/model"
	"roomops/internal/domains/inspection/model/dto"
	inventoryModel "roomops/internal/domains/inventory/model"
	"roomops/shared/failure"
	"strings"

	"github.com/shopspring/decimal"
)

const remarkUnknownItem = "not in the room inventory list, not billed"

// Assess prices a submitted checklist against the expected inventory of the room.
// It has no side effects: the same input always yields the same assessment.
func Assess(expected []inventoryModel.ChecklistItem, checklist []dto.ChecklistLine) (model.Assessment, error) {
	if err := validateChecklist(checklist); err != nil {
		return model.Assessment{}, err
	}

	reference := make(map[string]inventoryModel.ChecklistItem, len(expected))
	for _, item := range expected {
		reference[item.InventoryID] = item
	}

	assessment := model.Assessment{
		Lines:        make([]model.Line, 0, len(checklist)),
		TotalCharges: decimal.Zero,
	}

	for _, submitted := range checklist {
		line := model.Line{
			InventoryID: submitted.InventoryID,
			ActualQty:   submitted.ActualQty,
			Status:      submitted.Status,
			Remarks:     strings.TrimSpace(submitted.Remarks),
			UnitCost:    decimal.Zero,
			Charge:      decimal.Zero,
		}

		item, known := reference[submitted.InventoryID]
		if !known {
			line.ItemName = submitted.InventoryID
			line.Remarks = joinRemarks(line.Remarks, remarkUnknownItem)
			assessment.Lines = append(assessment.Lines, line)

			continue
		}

		line.ItemName = item.ItemName
		line.ExpectedQty = item.ExpectedQty
		line.UnitCost = item.UnitCost
		line.Billable = true
		line.Charge = charge(item, submitted)

		assessment.TotalCharges = assessment.TotalCharges.Add(line.Charge)
		assessment.Lines = append(assessment.Lines, line)
	}

	return assessment, nil
}

func charge(item inventoryModel.ChecklistItem, submitted dto.ChecklistLine) decimal.Decimal {
	switch submitted.Status {
	case model.LineStatusMissing, model.LineStatusUsed:
		shortfall := max(0, item.ExpectedQty-submitted.ActualQty)

		return item.UnitCost.Mul(decimal.NewFromInt(int64(shortfall)))
	case model.LineStatusDamaged:
		return item.UnitCost.Mul(decimal.NewFromInt(int64(submitted.ActualQty)))
	default:
		return decimal.Zero
	}
}

func validateChecklist(checklist []dto.ChecklistLine) error {
	seen := make(map[string]struct{}, len(checklist))

	for _, line := range checklist {
		if strings.TrimSpace(line.InventoryID) == "" {
			return failure.BadRequestFromString("inventory_id is required on every checklist line") // nolint:wrapcheck
		}

		if line.ActualQty < 0 {
			return failure.BadRequestFromString(fmt.Sprintf("actual_qty of %s cannot be negative", line.InventoryID)) // nolint:wrapcheck
		}

		switch line.Status {
		case model.LineStatusOK, model.LineStatusMissing, model.LineStatusDamaged, model.LineStatusUsed:
		default:
			return failure.BadRequestFromString(fmt.Sprintf("unknown checklist status %q for %s", line.Status, line.InventoryID)) // nolint:wrapcheck
		}

		if _, ok := seen[line.InventoryID]; ok {
			return failure.BadRequestFromString(fmt.Sprintf("%s appears more than once in the checklist", line.InventoryID)) // nolint:wrapcheck
		}

		seen[line.InventoryID] = struct{}{}
	}

	return nil
}

func joinRemarks(remarks ...string) string {
	parts := make([]string, 0, len(remarks))

	for _, remark := range remarks {
		if remark != "" {
			parts = append(parts, remark)
		}
	}

	return strings.Join(parts, "; ")
}
