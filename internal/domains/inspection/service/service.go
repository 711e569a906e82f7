package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"roomops/infras/otel"
	"roomops/internal/domains/inspection/model"
	"roomops/internal/domains/inspection/model/dto"
	"roomops/internal/domains/inspection/repository"
	inventoryRepository "roomops/internal/domains/inventory/repository"
	roomModel "roomops/internal/domains/room/model"
	roomRepository "roomops/internal/domains/room/repository"
	"roomops/shared"
	"roomops/shared/constant"
	"roomops/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Engine interface {
	Evaluate(ctx context.Context, roomID string, checklist []dto.ChecklistLine) (model.Assessment, error)
	SaveTx(ctx context.Context, sqltx *sqlx.Tx, inspection model.Inspection) error
	GetByTask(ctx context.Context, taskID string) (dto.InspectionResponse, error)
	GetByBookingTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string) (model.Inspection, error)
}

type engineImpl struct {
	repo          repository.Inspection
	inventoryRepo inventoryRepository.Inventory
	roomRepo      roomRepository.Room
	otel          otel.Otel
}

func New(repo repository.Inspection, inventoryRepo inventoryRepository.Inventory, roomRepo roomRepository.Room, otel otel.Otel) Engine {
	return &engineImpl{
		repo:          repo,
		inventoryRepo: inventoryRepo,
		roomRepo:      roomRepo,
		otel:          otel,
	}
}

func (s *engineImpl) Evaluate(ctx context.Context, roomID string, checklist []dto.ChecklistLine) (res model.Assessment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inspection.Evaluate")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	expected, err := s.inventoryRepo.ForCategory(ctx, room.CategoryID)
	if err != nil {
		log.Error().Err(err).Str("categoryID", room.CategoryID).Msg("failed to get inventory checklist")

		return res, fmt.Errorf("failed to get inventory checklist: %w", err)
	}

	res, err = Assess(expected, checklist)
	if err != nil {
		return res, err
	}

	scope.SetAttributes(map[string]any{
		"inspection.lines":   len(res.Lines),
		"inspection.charges": res.TotalCharges.String(),
	})

	return res, nil
}

func (s *engineImpl) SaveTx(ctx context.Context, sqltx *sqlx.Tx, inspection model.Inspection) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inspection.SaveTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.CreateTx(ctx, sqltx, inspection); err != nil {
		log.Error().Err(err).Str("taskID", inspection.TaskID).Msg("failed to save inspection")

		return fmt.Errorf("failed to save inspection: %w", err)
	}

	return nil
}

func (s *engineImpl) GetByTask(ctx context.Context, taskID string) (res dto.InspectionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inspection.GetByTask")
	defer scope.End()
	defer scope.TraceIfError(err)

	inspection, err := s.repo.Get(ctx, shared.FilterByID(taskID, model.FieldTaskID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get inspection")

		return res, fmt.Errorf("failed to get inspection: %w", err)
	}

	if inspection.ID == constant.Empty {
		return res, failure.NotFound("inspection not found") // nolint:wrapcheck
	}

	res.FromModel(inspection)

	return res, nil
}

// GetByBookingTx returns the zero Inspection when the booking has none.
func (s *engineImpl) GetByBookingTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string) (res model.Inspection, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inspection.GetByBookingTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.GetTx(ctx, sqltx, shared.FilterByID(bookingID, model.FieldBookingID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get inspection of booking")

		return res, fmt.Errorf("failed to get inspection of booking: %w", err)
	}

	return res, nil
}
