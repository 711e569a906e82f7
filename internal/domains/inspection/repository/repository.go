package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"roomops/infras/otel"
	"roomops/infras/postgres"
	"roomops/internal/domains/inspection/model"
	"roomops/shared/constant"
	gDto "roomops/shared/dto"
	"roomops/shared/failure"
	gRepo "roomops/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Inspection interface {
	// CreateTx stores the inspection with its lines. A second inspection for the same task is a conflict.
	CreateTx(ctx context.Context, sqltx *sqlx.Tx, inspection model.Inspection) error
	// Get loads an inspection together with its lines.
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Inspection, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Inspection, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Inspection]
	lines gRepo.Repository[model.Line]
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Inspection {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Inspection](model.EntityName, model.TableName, model.FieldID, db, otel),
		lines:      gRepo.NewRepository[model.Line](model.LineEntityName, model.LineTableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) CreateTx(ctx context.Context, sqltx *sqlx.Tx, inspection model.Inspection) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inspection.CreateTx")
	defer scope.End()

	if err := r.InsertTx(ctx, sqltx, inspection); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return failure.Conflict("an inspection was already submitted for this task") //nolint:wrapcheck
		}

		return fmt.Errorf("failed to create inspection: %w", err)
	}

	if err := r.lines.InsertBulkTx(ctx, sqltx, inspection.Lines); err != nil {
		return fmt.Errorf("failed to create inspection lines: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Get(ctx context.Context, filter gDto.FilterGroup) (model.Inspection, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inspection.Get")
	defer scope.End()

	inspection, err := r.Repository.Get(ctx, filter)
	if err != nil || inspection.ID == constant.Empty {
		return inspection, err //nolint:wrapcheck
	}

	params := gDto.Ascending(model.FieldInventoryID)

	lineFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldInspectionID, Value: inspection.ID, Operator: gDto.FilterOperatorEq, Table: model.LineTableName},
		},
	}

	inspection.Lines, err = r.lines.GetAll(ctx, params, lineFilter)
	if err != nil {
		return inspection, fmt.Errorf("failed to get inspection lines: %w", err)
	}

	return inspection, nil
}
