package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"maps"
	"roomops/infras/otel"
	"roomops/infras/postgres"
	"roomops/internal/domains/housekeeping/model"
	"roomops/shared/constant"
	gDto "roomops/shared/dto"
	"roomops/shared/failure"
	gRepo "roomops/shared/repository"
	"roomops/shared/timezone"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"
)

type Task interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Task) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Task, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Task, error)
	// Transition moves the task to `to` when its status is still one of `from`, applying the extra column changes.
	Transition(ctx context.Context, sqltx *sqlx.Tx, id string, from []string, to string, changes map[string]any) error
	// AssignTx sets the assignee of a task that has none.
	AssignTx(ctx context.Context, sqltx *sqlx.Tx, id, staffID, actor string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Task]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Task {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Task](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) Transition(ctx context.Context, sqltx *sqlx.Tx, id string, from []string, to string, changes map[string]any) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".housekeeping.Transition")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"task.id":     id,
		"status.from": strings.Join(from, ","),
		"status.to":   to,
	})

	if !slices.ContainsFunc(from, func(status string) bool { return model.CanTransition(status, to) }) {
		return failure.Conflict(fmt.Sprintf("task cannot move to %s", to)) //nolint:wrapcheck
	}

	mod := map[string]any{
		model.FieldStatus:        to,
		constant.FieldModifiedAt: timezone.Now(),
	}
	maps.Copy(mod, changes)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{ArgName: "expected_status", Field: model.FieldStatus, Value: from, Operator: gDto.FilterOperatorIn, Table: model.TableName},
		},
	}

	affected, err := r.UpdateAffectedTx(ctx, sqltx, mod, filter)
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to move task to %s: %w", to, err)
	}

	if affected == 0 {
		return failure.Conflict(fmt.Sprintf("task status changed concurrently, expected one of %s", strings.Join(from, ", "))) //nolint:wrapcheck
	}

	return nil
}

func (r *repositoryImpl) AssignTx(ctx context.Context, sqltx *sqlx.Tx, id, staffID, actor string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".housekeeping.AssignTx")
	defer scope.End()

	mod := map[string]any{
		model.FieldAssignedTo:    staffID,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldAssignedTo, Operator: gDto.FilterIsNull, Table: model.TableName},
		},
	}

	affected, err := r.UpdateAffectedTx(ctx, sqltx, mod, filter)
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to assign task: %w", err)
	}

	if affected == 0 {
		return failure.Conflict("task is already assigned") //nolint:wrapcheck
	}

	return nil
}
