package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"maps"
	"roomops/infras/otel"
	"roomops/infras/postgres"
	"roomops/internal/domains/booking/model"
	"roomops/shared"
	"roomops/shared/constant"
	gDto "roomops/shared/dto"
	"roomops/shared/failure"
	gRepo "roomops/shared/repository"
	"roomops/shared/timezone"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	// LockTx reads the booking and holds its row lock until the transaction ends. Steps that decide on
	// the booking together with another entity (closing, task sign-off) take it first so they run one after the other.
	LockTx(ctx context.Context, sqltx *sqlx.Tx, id string) (model.Booking, error)
	// Transition moves the booking's checkout state from one state to the next together with
	// any extra column changes. It fails with a conflict when the booking is no longer in `from`.
	Transition(ctx context.Context, sqltx *sqlx.Tx, id, from, to string, changes map[string]any) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) LockTx(ctx context.Context, sqltx *sqlx.Tx, id string) (model.Booking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.LockTx")
	defer scope.End()

	scope.SetAttribute("booking.id", id)

	booking, err := r.GetForUpdateTx(ctx, sqltx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		scope.TraceError(err)

		return booking, fmt.Errorf("failed to lock booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	return booking, nil
}

func (r *repositoryImpl) Transition(ctx context.Context, sqltx *sqlx.Tx, id, from, to string, changes map[string]any) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Transition")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"booking.id":   id,
		"state.from":   from,
		"state.to":     to,
		"state.fields": len(changes),
	})

	if !model.CanTransition(from, to) {
		return failure.Conflict(fmt.Sprintf("booking cannot move from %s to %s", from, to)) //nolint:wrapcheck
	}

	mod := map[string]any{
		model.FieldCheckoutState: to,
		constant.FieldModifiedAt: timezone.Now(),
	}
	maps.Copy(mod, changes)

	affected, err := r.UpdateAffectedTx(ctx, sqltx, mod, shared.FilterByState(id, model.FieldID, model.FieldCheckoutState, from, model.TableName))
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to move booking to %s: %w", to, err)
	}

	if affected == 0 {
		return failure.Conflict(fmt.Sprintf("booking is no longer %s, another checkout step won the race", from)) //nolint:wrapcheck
	}

	return nil
}
