package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"roomops/config"
	"roomops/infras/otel"
	bookingModel "roomops/internal/domains/booking/model"
	bookingRepository "roomops/internal/domains/booking/repository"
	"roomops/internal/domains/checkout/event"
	"roomops/internal/domains/housekeeping/model"
	"roomops/internal/domains/housekeeping/model/dto"
	"roomops/internal/domains/housekeeping/repository"
	roomModel "roomops/internal/domains/room/model"
	roomRepository "roomops/internal/domains/room/repository"
	staffService "roomops/internal/domains/staff/service"
	"roomops/shared"
	"roomops/shared/cache"
	"roomops/shared/capability"
	"roomops/shared/constant"
	"roomops/shared/failure"
	"roomops/shared/retry"
	"roomops/shared/timezone"
	"roomops/shared/transaction"
	"slices"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheTaskStatus = "task:status"
)

type Housekeeping interface {
	Get(ctx context.Context, id string) (dto.TaskResponse, error)
	Status(ctx context.Context, id string) (dto.TaskStatusResponse, error)
	Assign(ctx context.Context, id, staffID string) (dto.AssignTaskResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateTaskStatusRequest) error
	Verify(ctx context.Context, id string) error
	// CompleteTx closes an inspected task inside the caller's transaction. An admin submitter signs the task off
	// directly, so it ends verified instead of completed. The assignee's workload slot is released.
	CompleteTx(ctx context.Context, sqltx *sqlx.Tx, task model.Task, actor capability.Capability) (string, error)
	ForgetStatus(ctx context.Context, id string)
}

type serviceImpl struct {
	repo        repository.Task
	bookingRepo bookingRepository.Booking
	roomRepo    roomRepository.Room
	allocator   staffService.Allocator
	tx          transaction.Transactor
	retrier     retry.Retrier
	publisher   event.Publisher
	cache       cache.RedisCache
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	repo repository.Task,
	bookingRepo bookingRepository.Booking,
	roomRepo roomRepository.Room,
	allocator staffService.Allocator,
	tx transaction.Transactor,
	retrier retry.Retrier,
	publisher event.Publisher,
	cache cache.RedisCache,
	cfg *config.Config,
	otel otel.Otel,
) Housekeeping {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		allocator:   allocator,
		tx:          tx,
		retrier:     retrier,
		publisher:   publisher,
		cache:       cache,
		cfg:         cfg,
		otel:        otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	task, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get housekeeping task")

		return res, fmt.Errorf("failed to get housekeeping task: %w", err)
	}

	if task.ID == constant.Empty {
		return res, failure.NotFound("housekeeping task not found") // nolint:wrapcheck
	}

	res.FromModel(task)

	return res, nil
}

// Status is the polling read. It never blocks on the task and is served from a short lived cache.
func (s *serviceImpl) Status(ctx context.Context, id string) (res dto.TaskStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.Status")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheTaskStatus, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for task status")

		return res, nil
	}

	task, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName), model.FieldID, model.FieldStatus)
	if err != nil {
		log.Error().Err(err).Msg("failed to get housekeeping task status")

		return res, fmt.Errorf("failed to get housekeeping task status: %w", err)
	}

	if task.ID == constant.Empty {
		return res, failure.NotFound("housekeeping task not found") // nolint:wrapcheck
	}

	res = dto.TaskStatusResponse{TaskID: task.ID, Status: task.Status}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Checkout.StatusCacheSeconds); err != nil {
			log.Error().Err(err).Msg("failed to save task status to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Assign(ctx context.Context, id, staffID string) (res dto.AssignTaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.Assign")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := capability.FromContext(ctx)

	var task model.Task

	err = s.retrier.Do(ctx, "housekeeping.Assign", func(ctx context.Context) error {
		return s.tx.WithinTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
			var txErr error

			task, txErr = s.getTx(ctx, sqltx, id)
			if txErr != nil {
				return txErr
			}

			if task.IsAssigned() {
				return failure.Conflict("task is already assigned") // nolint:wrapcheck
			}

			if task.Status != model.StatusPending {
				return failure.Conflict(fmt.Sprintf("task is %s and can no longer be assigned", task.Status)) // nolint:wrapcheck
			}

			assigned, txErr := s.allocator.AssignStaff(ctx, sqltx, task.ID, task.RoomID, staffID)
			if txErr != nil {
				return txErr //nolint:wrapcheck
			}

			if txErr = s.repo.AssignTx(ctx, sqltx, task.ID, assigned, actor.UserID); txErr != nil {
				return txErr //nolint:wrapcheck
			}

			task.AssignedTo.String, task.AssignedTo.Valid = assigned, true

			if !task.IsCheckout() {
				return nil
			}

			return s.advanceBooking(ctx, sqltx, task.BookingID.String, bookingModel.StateHousekeepingAssigned, bookingModel.StateMaintenanceLocked)
		})
	})
	if err != nil {
		log.Error().Err(err).Str("taskID", id).Msg("failed to assign housekeeping task")

		return res, fmt.Errorf("failed to assign housekeeping task: %w", err)
	}

	s.ForgetStatus(ctx, id)

	if task.IsCheckout() {
		s.publisher.Publish(ctx, event.TypeStaffAssigned, task.BookingID.String, map[string]string{
			"task_id":     task.ID,
			"assigned_to": task.AssignedTo.String,
		})
	}

	return dto.AssignTaskResponse{TaskID: task.ID, AssignedTo: task.AssignedTo.String}, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateTaskStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := capability.FromContext(ctx)

	err = s.retrier.Do(ctx, "housekeeping.UpdateStatus", func(ctx context.Context) error {
		return s.tx.WithinTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
			task, txErr := s.getTx(ctx, sqltx, id)
			if txErr != nil {
				return txErr
			}

			if txErr = s.checkProgress(task, req.Status, actor); txErr != nil {
				return txErr
			}

			now := timezone.Now()
			changes := map[string]any{constant.FieldModifiedBy: actor.UserID}

			switch req.Status {
			case model.StatusInProgress:
				changes[model.FieldStartedAt] = now
			case model.StatusCompleted:
				changes[model.FieldCompletedAt] = now
			}

			if req.Notes != constant.Empty {
				changes[model.FieldNotes] = req.Notes
			}

			if len(req.Issues) > 0 {
				changes[model.FieldIssues] = pq.StringArray(append(slices.Clone(task.Issues), req.Issues...))
			}

			if txErr = s.repo.Transition(ctx, sqltx, task.ID, []string{task.Status}, req.Status, changes); txErr != nil {
				return txErr //nolint:wrapcheck
			}

			return s.applySideEffects(ctx, sqltx, task, req.Status)
		})
	})
	if err != nil {
		log.Error().Err(err).Str("taskID", id).Str("status", req.Status).Msg("failed to update housekeeping task status")

		return fmt.Errorf("failed to update housekeeping task status: %w", err)
	}

	s.ForgetStatus(ctx, id)

	return nil
}

func (s *serviceImpl) checkProgress(task model.Task, status string, actor capability.Capability) error {
	if !actor.IsAdmin() && task.AssignedTo.String != actor.UserID {
		return failure.Forbidden("only the assigned staff member can update this task") // nolint:wrapcheck
	}

	if status == model.StatusCompleted && task.IsCheckout() {
		return failure.BadRequestFromString("checkout tasks are completed by submitting the room inspection") // nolint:wrapcheck
	}

	if !model.CanTransition(task.Status, status) {
		return failure.Conflict(fmt.Sprintf("task cannot move from %s to %s", task.Status, status)) // nolint:wrapcheck
	}

	if status == model.StatusInProgress && !task.IsAssigned() {
		return failure.BadRequestFromString("task must be assigned before work starts") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) applySideEffects(ctx context.Context, sqltx *sqlx.Tx, task model.Task, status string) error {
	switch status {
	case model.StatusInProgress:
		if task.IsCheckout() {
			return s.advanceBooking(ctx, sqltx, task.BookingID.String, bookingModel.StateAwaitingInspection,
				bookingModel.StateHousekeepingAssigned, bookingModel.StateMaintenanceLocked)
		}
	case model.StatusCleaning:
		return s.roomRepo.SetStatusTx(ctx, sqltx, task.RoomID, roomModel.StatusCleaning) //nolint:wrapcheck
	case model.StatusCompleted:
		return s.allocator.Release(ctx, sqltx, task.AssignedTo.String) //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Verify(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.Verify")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := capability.FromContext(ctx)
	if !actor.IsAdmin() {
		return failure.Forbidden("only an admin can verify a housekeeping task") // nolint:wrapcheck
	}

	err = s.retrier.Do(ctx, "housekeeping.Verify", func(ctx context.Context) error {
		return s.tx.WithinTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
			task, txErr := s.getTx(ctx, sqltx, id)
			if txErr != nil {
				return txErr
			}

			if task.Status != model.StatusCompleted {
				return failure.Conflict(fmt.Sprintf("task is %s, only completed tasks can be verified", task.Status)) // nolint:wrapcheck
			}

			if !task.IsCheckout() {
				return s.verifyTx(ctx, sqltx, task, actor)
			}

			// taken before the sign-off so a concurrent checkout close either sees the task verified
			// or has already committed the booking as closed
			booking, txErr := s.bookingRepo.LockTx(ctx, sqltx, task.BookingID.String)
			if txErr != nil {
				return fmt.Errorf("failed to lock booking: %w", txErr)
			}

			if txErr = s.verifyTx(ctx, sqltx, task, actor); txErr != nil {
				return txErr
			}

			// a closed checkout kept the room locked waiting for this sign-off
			if booking.CheckoutState != bookingModel.StateClosed {
				return nil
			}

			return s.roomRepo.SetStatusTx(ctx, sqltx, task.RoomID, roomModel.StatusAvailable) //nolint:wrapcheck
		})
	})
	if err != nil {
		log.Error().Err(err).Str("taskID", id).Msg("failed to verify housekeeping task")

		return fmt.Errorf("failed to verify housekeeping task: %w", err)
	}

	s.ForgetStatus(ctx, id)

	return nil
}

func (s *serviceImpl) verifyTx(ctx context.Context, sqltx *sqlx.Tx, task model.Task, actor capability.Capability) error {
	now := timezone.Now()

	return s.repo.Transition(ctx, sqltx, task.ID, []string{model.StatusCompleted}, model.StatusVerified, map[string]any{ //nolint:wrapcheck
		model.FieldVerifiedAt:    now,
		model.FieldVerifiedBy:    actor.UserID,
		constant.FieldModifiedBy: actor.UserID,
	})
}

func (s *serviceImpl) CompleteTx(ctx context.Context, sqltx *sqlx.Tx, task model.Task, actor capability.Capability) (status string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.CompleteTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.repo.Transition(ctx, sqltx, task.ID, []string{model.StatusInProgress, model.StatusCleaning}, model.StatusCompleted, map[string]any{
		model.FieldCompletedAt:   timezone.Now(),
		constant.FieldModifiedBy: actor.UserID,
	})
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to complete housekeeping task: %w", err)
	}

	if err = s.allocator.Release(ctx, sqltx, task.AssignedTo.String); err != nil {
		return constant.Empty, fmt.Errorf("failed to release housekeeping staff: %w", err)
	}

	if !actor.IsAdmin() {
		return model.StatusCompleted, nil
	}

	if err = s.verifyTx(ctx, sqltx, task, actor); err != nil {
		return constant.Empty, fmt.Errorf("failed to verify housekeeping task: %w", err)
	}

	return model.StatusVerified, nil
}

func (s *serviceImpl) ForgetStatus(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheTaskStatus, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete task status cache")
		}
	}()
}

func (s *serviceImpl) getTx(ctx context.Context, sqltx *sqlx.Tx, id string) (model.Task, error) {
	task, err := s.repo.GetTx(ctx, sqltx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return task, fmt.Errorf("failed to get housekeeping task: %w", err)
	}

	if task.ID == constant.Empty {
		return task, failure.NotFound("housekeeping task not found") // nolint:wrapcheck
	}

	return task, nil
}

// advanceBooking moves the task's booking to `to` when it is still in one of `from`.
// A booking already past those states is left alone.
func (s *serviceImpl) advanceBooking(ctx context.Context, sqltx *sqlx.Tx, bookingID, to string, from ...string) error {
	booking, err := s.bookingRepo.GetTx(ctx, sqltx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if !slices.Contains(from, booking.CheckoutState) {
		log.Debug().Str("bookingID", bookingID).Str("state", booking.CheckoutState).Str("target", to).Msg("booking already past target state")

		return nil
	}

	return s.bookingRepo.Transition(ctx, sqltx, booking.ID, booking.CheckoutState, to, nil) //nolint:wrapcheck
}

