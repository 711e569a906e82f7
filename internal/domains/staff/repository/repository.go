package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"roomops/infras/otel"
	"roomops/infras/postgres"
	"roomops/internal/domains/staff/model"
	"roomops/shared/constant"
	gDto "roomops/shared/dto"
	"roomops/shared/logger"
	gRepo "roomops/shared/repository"
	"roomops/shared/timezone"

	"github.com/jmoiron/sqlx"
)

const (
	reserveQuery = `UPDATE staff SET active_tasks = active_tasks + 1, modified_at = $2
		WHERE id = $1 AND active = true AND active_tasks < capacity`
	releaseQuery = `UPDATE staff SET active_tasks = GREATEST(active_tasks - 1, 0), modified_at = $2
		WHERE id = $1`
)

type Staff interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Staff, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Staff, error)
	// Reserve takes one workload slot. It reports false when the member is inactive or already at capacity,
	// which makes the capacity check and the increment a single atomic write.
	Reserve(ctx context.Context, sqltx *sqlx.Tx, id string) (bool, error)
	Release(ctx context.Context, sqltx *sqlx.Tx, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Staff]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Staff {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Staff](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) Reserve(ctx context.Context, sqltx *sqlx.Tx, id string) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".staff.Reserve")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, reserveQuery)

	result, err := sqltx.ExecContext(ctx, reserveQuery, id, timezone.Now())
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to reserve staff slot: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read affected rows (staff): %w", err)
	}

	return affected == 1, nil
}

func (r *repositoryImpl) Release(ctx context.Context, sqltx *sqlx.Tx, id string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".staff.Release")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, releaseQuery)

	if _, err := sqltx.ExecContext(ctx, releaseQuery, id, timezone.Now()); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to release staff slot: %w", err)
	}

	return nil
}
