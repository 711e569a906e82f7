package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"cmp"
	"context"
	"fmt"
	"roomops/config"
	"roomops/infras/otel"
	"roomops/internal/domains/staff/model"
	"roomops/internal/domains/staff/model/dto"
	"roomops/internal/domains/staff/repository"
	"roomops/shared"
	"roomops/shared/constant"
	gDto "roomops/shared/dto"
	"roomops/shared/failure"
	"slices"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Allocator interface {
	// AssignStaff reserves a workload slot for the task inside the caller's transaction and returns the
	// chosen staff id. An explicit staffID is honored or rejected, never substituted.
	AssignStaff(ctx context.Context, sqltx *sqlx.Tx, taskID, roomID, staffID string) (string, error)
	Release(ctx context.Context, sqltx *sqlx.Tx, staffID string) error
	Workload(ctx context.Context) (dto.GetWorkloadResponse, error)
}

type allocatorImpl struct {
	repo repository.Staff
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Staff, cfg *config.Config, otel otel.Otel) Allocator {
	return &allocatorImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *allocatorImpl) AssignStaff(ctx context.Context, sqltx *sqlx.Tx, taskID, roomID, staffID string) (assigned string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".staff.AssignStaff")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		"task.id": taskID,
		"room.id": roomID,
	})

	if staffID != constant.Empty {
		return s.assignExplicit(ctx, sqltx, taskID, staffID)
	}

	candidates, err := s.candidates(ctx)
	if err != nil {
		return constant.Empty, err
	}

	for _, candidate := range candidates {
		reserved, err := s.repo.Reserve(ctx, sqltx, candidate.ID)
		if err != nil {
			log.Error().Err(err).Str("staffID", candidate.ID).Msg("failed to reserve staff slot")

			return constant.Empty, fmt.Errorf("failed to reserve staff slot: %w", err)
		}

		if reserved {
			log.Info().Str("taskID", taskID).Str("roomID", roomID).Str("staffID", candidate.ID).Msg("housekeeping staff assigned")

			return candidate.ID, nil
		}

		log.Debug().Str("staffID", candidate.ID).Msg("staff slot taken concurrently, trying next candidate")
	}

	return constant.Empty, failure.NoStaffAvailable("no housekeeping staff available") // nolint:wrapcheck
}

func (s *allocatorImpl) assignExplicit(ctx context.Context, sqltx *sqlx.Tx, taskID, staffID string) (string, error) {
	staff, err := s.repo.Get(ctx, shared.FilterByID(staffID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return constant.Empty, fmt.Errorf("failed to get staff: %w", err)
	}

	if staff.ID == constant.Empty {
		return constant.Empty, failure.NotFound("staff not found") // nolint:wrapcheck
	}

	if !staff.Active || !staff.Capability().IsHousekeeping(s.cfg.Staff.Department) {
		return constant.Empty, failure.BadRequestFromString("staff member cannot take housekeeping tasks") // nolint:wrapcheck
	}

	if !staff.HasCapacity() {
		return constant.Empty, failure.NoStaffAvailable("staff member is at full capacity") // nolint:wrapcheck
	}

	reserved, err := s.repo.Reserve(ctx, sqltx, staff.ID)
	if err != nil {
		log.Error().Err(err).Str("staffID", staff.ID).Msg("failed to reserve staff slot")

		return constant.Empty, fmt.Errorf("failed to reserve staff slot: %w", err)
	}

	if !reserved {
		return constant.Empty, failure.NoStaffAvailable("staff member is at full capacity") // nolint:wrapcheck
	}

	log.Info().Str("taskID", taskID).Str("staffID", staff.ID).Msg("requested housekeeping staff assigned")

	return staff.ID, nil
}

// candidates returns active housekeeping staff with spare capacity, least loaded first.
func (s *allocatorImpl) candidates(ctx context.Context) ([]model.Staff, error) {
	staff, err := s.repo.GetAll(ctx, gDto.QueryParams{}, availableFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return nil, fmt.Errorf("failed to get staff: %w", err)
	}

	staff = slices.DeleteFunc(staff, func(m model.Staff) bool {
		return !m.HasCapacity() || !m.Capability().IsHousekeeping(s.cfg.Staff.Department)
	})

	slices.SortFunc(staff, func(a, b model.Staff) int {
		return cmp.Or(
			cmp.Compare(a.ActiveTasks, b.ActiveTasks),
			a.CreatedAt.Compare(b.CreatedAt),
			cmp.Compare(a.ID, b.ID),
		)
	})

	return staff, nil
}

func (s *allocatorImpl) Release(ctx context.Context, sqltx *sqlx.Tx, staffID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".staff.Release")
	defer scope.End()
	defer scope.TraceIfError(err)

	if staffID == constant.Empty {
		return nil
	}

	if err = s.repo.Release(ctx, sqltx, staffID); err != nil {
		log.Error().Err(err).Str("staffID", staffID).Msg("failed to release staff slot")

		return fmt.Errorf("failed to release staff slot: %w", err)
	}

	return nil
}

func (s *allocatorImpl) Workload(ctx context.Context) (res dto.GetWorkloadResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".staff.Workload")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.Ascending(model.FieldActiveTasks)

	staff, err := s.repo.GetAll(ctx, params, activeFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff workload")

		return res, fmt.Errorf("failed to get staff workload: %w", err)
	}

	staff = slices.DeleteFunc(staff, func(m model.Staff) bool {
		return !m.Capability().IsHousekeeping(s.cfg.Staff.Department)
	})

	res.FromModels(staff)

	return res, nil
}

func activeFilter() gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldActive, Value: true, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}

func availableFilter() gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldActive, Value: true, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldActiveTasks, Value: model.FieldCapacity, Operator: gDto.FilterOperatorLessThanColumn, Table: model.TableName},
		},
	}
}
