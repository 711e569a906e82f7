package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"roomops/infras/otel"
	"roomops/infras/postgres"
	"roomops/internal/domains/room/model"
	"roomops/shared"
	"roomops/shared/constant"
	gDto "roomops/shared/dto"
	"roomops/shared/failure"
	gRepo "roomops/shared/repository"
	"roomops/shared/timezone"
	"slices"

	"github.com/jmoiron/sqlx"
)

type Room interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	SetStatusTx(ctx context.Context, sqltx *sqlx.Tx, roomID, status string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// SetStatusTx moves a room to status inside the caller's transaction.
func (r *repositoryImpl) SetStatusTx(ctx context.Context, sqltx *sqlx.Tx, roomID, status string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.SetStatusTx")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"room.id":     roomID,
		"room.status": status,
	})

	if !slices.Contains(model.Statuses, status) {
		return failure.BadRequestFromString("unknown room status " + status) //nolint:wrapcheck
	}

	mod := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
	}

	affected, err := r.UpdateAffectedTx(ctx, sqltx, mod, shared.FilterByID(roomID, model.FieldID, model.TableName))
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to set room %s: %w", status, err)
	}

	if affected == 0 {
		return failure.NotFound("room not found") //nolint:wrapcheck
	}

	return nil
}
