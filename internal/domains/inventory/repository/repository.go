package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"roomops/infras/otel"
	"roomops/infras/postgres"
	"roomops/internal/domains/inventory/model"
	"roomops/shared/constant"
	gDto "roomops/shared/dto"
	gRepo "roomops/shared/repository"
)

type Inventory interface {
	// ForCategory returns the reference checklist of a room category ordered by inventory id.
	ForCategory(ctx context.Context, categoryID string) ([]model.ChecklistItem, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.ChecklistItem]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Inventory {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ChecklistItem](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) ForCategory(ctx context.Context, categoryID string) ([]model.ChecklistItem, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory.ForCategory")
	defer scope.End()

	params := gDto.Ascending(model.FieldInventoryID)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldCategoryID, Value: categoryID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	items, err := r.GetAll(ctx, params, filter)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get checklist of category %s: %w", categoryID, err)
	}

	return items, nil
}
