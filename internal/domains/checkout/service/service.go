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
	"roomops/internal/domains/checkout/model/dto"
	hkModel "roomops/internal/domains/housekeeping/model"
	hkDto "roomops/internal/domains/housekeeping/model/dto"
	hkRepository "roomops/internal/domains/housekeeping/repository"
	hkService "roomops/internal/domains/housekeeping/service"
	inspectionModel "roomops/internal/domains/inspection/model"
	inspectionDto "roomops/internal/domains/inspection/model/dto"
	inspectionService "roomops/internal/domains/inspection/service"
	invoiceModel "roomops/internal/domains/invoice/model"
	invoiceDto "roomops/internal/domains/invoice/model/dto"
	invoiceService "roomops/internal/domains/invoice/service"
	roomModel "roomops/internal/domains/room/model"
	roomRepository "roomops/internal/domains/room/repository"
	staffService "roomops/internal/domains/staff/service"
	"roomops/shared"
	"roomops/shared/capability"
	"roomops/shared/constant"
	gDto "roomops/shared/dto"
	"roomops/shared/failure"
	"roomops/shared/retry"
	"roomops/shared/timezone"
	"roomops/shared/transaction"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Checkout interface {
	// InitiateCheckout locks the room, opens the checkout cleaning task and tries to staff it.
	// Failing to staff the task does not fail the checkout, the response then carries a warning.
	InitiateCheckout(ctx context.Context, req dto.InitiateCheckoutRequest) (dto.InitiateCheckoutResponse, error)
	PollTaskStatus(ctx context.Context, taskID string) (hkDto.TaskStatusResponse, error)
	SubmitInspection(ctx context.Context, taskID string, req inspectionDto.SubmitInspectionRequest) (dto.SubmitInspectionResponse, error)
	// GenerateInvoice is idempotent: every call for a booking returns the same invoice and finishes closing the booking.
	GenerateInvoice(ctx context.Context, bookingID string) (invoiceDto.GenerateInvoiceResponse, error)
	Get(ctx context.Context, bookingID string) (dto.CheckoutResponse, error)
}

type serviceImpl struct {
	bookingRepo  bookingRepository.Booking
	roomRepo     roomRepository.Room
	taskRepo     hkRepository.Task
	housekeeping hkService.Housekeeping
	allocator    staffService.Allocator
	inspection   inspectionService.Engine
	invoices     invoiceService.Compiler
	tx           transaction.Transactor
	retrier      retry.Retrier
	publisher    event.Publisher
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	bookingRepo bookingRepository.Booking,
	roomRepo roomRepository.Room,
	taskRepo hkRepository.Task,
	housekeeping hkService.Housekeeping,
	allocator staffService.Allocator,
	inspection inspectionService.Engine,
	invoices invoiceService.Compiler,
	tx transaction.Transactor,
	retrier retry.Retrier,
	publisher event.Publisher,
	cfg *config.Config,
	otel otel.Otel,
) Checkout {
	return &serviceImpl{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		taskRepo:     taskRepo,
		housekeeping: housekeeping,
		allocator:    allocator,
		inspection:   inspection,
		invoices:     invoices,
		tx:           tx,
		retrier:      retrier,
		publisher:    publisher,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) InitiateCheckout(ctx context.Context, req dto.InitiateCheckoutRequest) (res dto.InitiateCheckoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkout.InitiateCheckout")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("booking.id", req.BookingID)

	actor, _ := capability.FromContext(ctx)

	var task hkModel.Task

	err = s.retrier.Do(ctx, "checkout.InitiateCheckout", func(ctx context.Context) error {
		return s.tx.WithinTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
			booking, txErr := s.getBookingTx(ctx, sqltx, req.BookingID)
			if txErr != nil {
				return txErr
			}

			if txErr = checkInitiable(booking); txErr != nil {
				return txErr
			}

			room, txErr := s.roomRepo.GetTx(ctx, sqltx, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
			if txErr != nil {
				return fmt.Errorf("failed to get room: %w", txErr)
			}

			if room.ID == constant.Empty {
				return failure.NotFound("room not found") // nolint:wrapcheck
			}

			txErr = s.bookingRepo.Transition(ctx, sqltx, booking.ID, bookingModel.StateIdle, bookingModel.StateMaintenanceLocked, map[string]any{
				bookingModel.FieldStatus: bookingModel.StatusCheckoutInitiated,
				constant.FieldModifiedBy: actor.UserID,
			})
			if txErr != nil {
				return txErr //nolint:wrapcheck
			}

			if txErr = s.roomRepo.SetStatusTx(ctx, sqltx, room.ID, roomModel.StatusMaintenance); txErr != nil {
				return txErr
			}

			task = hkModel.NewCheckoutTask(room.ID, booking.ID, actor.UserID, timezone.Now())

			if txErr = s.taskRepo.InsertTx(ctx, sqltx, task); txErr != nil {
				return fmt.Errorf("failed to create checkout task: %w", txErr)
			}

			return nil
		})
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", req.BookingID).Msg("failed to initiate checkout")

		return res, fmt.Errorf("failed to initiate checkout: %w", err)
	}

	s.publisher.Publish(ctx, event.TypeCheckoutInitiated, req.BookingID, map[string]string{
		"task_id": task.ID,
		"room_id": task.RoomID,
	})

	res = dto.InitiateCheckoutResponse{TaskID: task.ID, RoomID: task.RoomID}
	res.AssignedTo, res.Warning = s.dispatch(ctx, task, req.StaffID)

	return res, nil
}

func checkInitiable(booking bookingModel.Booking) error {
	if booking.Checkoutable() {
		return nil
	}

	if bookingModel.Reached(booking.CheckoutState, bookingModel.StateMaintenanceLocked) {
		return failure.Conflict(fmt.Sprintf("checkout of booking already started, it is %s", booking.CheckoutState)) // nolint:wrapcheck
	}

	return failure.BadRequestFromString(fmt.Sprintf("booking is %s and cannot be checked out", booking.Status)) // nolint:wrapcheck
}

// dispatch staffs a freshly opened checkout task in its own transaction. Any failure leaves the task
// unassigned for a manual pickup and is reported back as a warning.
func (s *serviceImpl) dispatch(ctx context.Context, task hkModel.Task, staffID string) (assigned, warning string) {
	actor, _ := capability.FromContext(ctx)

	err := s.retrier.Do(ctx, "checkout.dispatch", func(ctx context.Context) error {
		return s.tx.WithinTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
			var txErr error

			assigned, txErr = s.allocator.AssignStaff(ctx, sqltx, task.ID, task.RoomID, staffID)
			if txErr != nil {
				return txErr //nolint:wrapcheck
			}

			if txErr = s.taskRepo.AssignTx(ctx, sqltx, task.ID, assigned, actor.UserID); txErr != nil {
				return txErr //nolint:wrapcheck
			}

			return s.bookingRepo.Transition(ctx, sqltx, task.BookingID.String, //nolint:wrapcheck
				bookingModel.StateMaintenanceLocked, bookingModel.StateHousekeepingAssigned, nil)
		})
	})
	if err != nil {
		log.Warn().Err(err).Str("taskID", task.ID).Msg("checkout task left unassigned")

		return constant.Empty, "task left unassigned: " + failure.GetMessage(err)
	}

	s.housekeeping.ForgetStatus(ctx, task.ID)
	s.publisher.Publish(ctx, event.TypeStaffAssigned, task.BookingID.String, map[string]string{
		"task_id":     task.ID,
		"assigned_to": assigned,
	})

	return assigned, constant.Empty
}

func (s *serviceImpl) PollTaskStatus(ctx context.Context, taskID string) (res hkDto.TaskStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkout.PollTaskStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.housekeeping.Status(ctx, taskID) //nolint:wrapcheck
}

func (s *serviceImpl) SubmitInspection(
	ctx context.Context,
	taskID string,
	req inspectionDto.SubmitInspectionRequest,
) (res dto.SubmitInspectionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkout.SubmitInspection")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("task.id", taskID)

	actor, _ := capability.FromContext(ctx)

	task, err := s.taskRepo.Get(ctx, shared.FilterByID(taskID, hkModel.FieldID, hkModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get housekeeping task")

		return res, fmt.Errorf("failed to get housekeeping task: %w", err)
	}

	if task.ID == constant.Empty {
		return res, failure.NotFound("housekeeping task not found") // nolint:wrapcheck
	}

	if err = checkInspectable(task); err != nil {
		return res, err
	}

	assessment, err := s.inspection.Evaluate(ctx, task.RoomID, req.Checklist)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	record := inspectionModel.NewInspection(uuid.NewString(), task.RoomID, task.BookingID.String, task.ID, actor.UserID, assessment, timezone.Now())

	err = s.retrier.Do(ctx, "checkout.SubmitInspection", func(ctx context.Context) error {
		return s.tx.WithinTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
			current, txErr := s.taskRepo.GetTx(ctx, sqltx, shared.FilterByID(task.ID, hkModel.FieldID, hkModel.TableName))
			if txErr != nil {
				return fmt.Errorf("failed to get housekeeping task: %w", txErr)
			}

			if txErr = checkInspectable(current); txErr != nil {
				return txErr
			}

			if txErr = s.inspection.SaveTx(ctx, sqltx, record); txErr != nil {
				return txErr //nolint:wrapcheck
			}

			res.TaskStatus, txErr = s.housekeeping.CompleteTx(ctx, sqltx, current, actor)
			if txErr != nil {
				return txErr //nolint:wrapcheck
			}

			return s.bookingRepo.Transition(ctx, sqltx, current.BookingID.String, //nolint:wrapcheck
				bookingModel.StateAwaitingInspection, bookingModel.StateInspectionComplete, map[string]any{
					constant.FieldModifiedBy: actor.UserID,
				})
		})
	})
	if err != nil {
		log.Error().Err(err).Str("taskID", taskID).Msg("failed to submit inspection")

		return res, fmt.Errorf("failed to submit inspection: %w", err)
	}

	s.housekeeping.ForgetStatus(ctx, task.ID)
	s.publisher.Publish(ctx, event.TypeInspectionSubmitted, record.BookingID, map[string]string{
		"task_id":       task.ID,
		"inspection_id": record.ID,
		"total_charges": record.TotalCharges.String(),
	})

	var view inspectionDto.InspectionResponse

	view.FromModel(record)

	res.InspectionID = record.ID
	res.TaskID = task.ID
	res.TotalCharges = record.TotalCharges
	res.Breakdown = view.Breakdown

	invoice, invErr := s.GenerateInvoice(ctx, record.BookingID)
	if invErr != nil {
		log.Warn().Err(invErr).Str("bookingID", record.BookingID).Msg("inspection saved but invoice generation failed")

		res.Warning = "inspection saved, invoice not generated yet: " + failure.GetMessage(invErr)

		return res, nil
	}

	res.Invoice = &invoice

	return res, nil
}

func checkInspectable(task hkModel.Task) error {
	if !task.IsCheckout() || !task.BookingID.Valid {
		return failure.BadRequestFromString("only checkout tasks take a room inspection") // nolint:wrapcheck
	}

	if !task.Inspectable() {
		return failure.Conflict(fmt.Sprintf("task is %s, the room can be inspected only while it is in-progress or cleaning", task.Status)) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) GenerateInvoice(ctx context.Context, bookingID string) (res invoiceDto.GenerateInvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkout.GenerateInvoice")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("booking.id", bookingID)

	actor, _ := capability.FromContext(ctx)

	var (
		invoice   invoiceModel.Invoice
		booking   bookingModel.Booking
		generated bool
	)

	err = s.retrier.Do(ctx, "checkout.GenerateInvoice", func(ctx context.Context) error {
		generated = false

		return s.tx.WithinTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
			var txErr error

			booking, txErr = s.getBookingTx(ctx, sqltx, bookingID)
			if txErr != nil {
				return txErr
			}

			invoice, txErr = s.invoices.GetByBookingTx(ctx, sqltx, booking.ID)
			if txErr != nil {
				return txErr //nolint:wrapcheck
			}

			if invoice.ID != constant.Empty {
				return nil
			}

			if booking.CheckoutState != bookingModel.StateInspectionComplete {
				return failure.Conflict(fmt.Sprintf("booking is %s, an invoice needs a completed inspection", booking.CheckoutState)) // nolint:wrapcheck
			}

			inspection, txErr := s.inspection.GetByBookingTx(ctx, sqltx, booking.ID)
			if txErr != nil {
				return txErr //nolint:wrapcheck
			}

			if inspection.ID == constant.Empty {
				return failure.Conflict("booking has no recorded inspection") // nolint:wrapcheck
			}

			draft, txErr := s.invoices.Build(ctx, booking, inspection.TotalCharges)
			if txErr != nil {
				return txErr //nolint:wrapcheck
			}

			invoice, generated, txErr = s.invoices.CreateTx(ctx, sqltx, draft)
			if txErr != nil || !generated {
				return txErr //nolint:wrapcheck
			}

			return s.bookingRepo.Transition(ctx, sqltx, booking.ID, //nolint:wrapcheck
				bookingModel.StateInspectionComplete, bookingModel.StateInvoiceGenerated, map[string]any{
					bookingModel.FieldInvoiceID: invoice.ID,
					constant.FieldModifiedBy:    actor.UserID,
				})
		})
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to generate invoice")

		return res, fmt.Errorf("failed to generate invoice: %w", err)
	}

	if generated {
		s.publisher.Publish(ctx, event.TypeInvoiceGenerated, booking.ID, map[string]string{
			"invoice_id":   invoice.ID,
			"total_amount": invoice.TotalAmount.String(),
		})
		s.invoices.Archive(ctx, invoice, booking)
	}

	if err = s.close(ctx, booking.ID, invoice.ID); err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to close checkout")

		return res, fmt.Errorf("failed to close checkout: %w", err)
	}

	res.FromModel(invoice)

	return res, nil
}

// close finishes an invoiced checkout. The room is released only when its cleaning task is signed off,
// otherwise it stays in maintenance until the task is verified.
func (s *serviceImpl) close(ctx context.Context, bookingID, invoiceID string) error {
	actor, _ := capability.FromContext(ctx)

	var roomReleased, closed bool

	err := s.retrier.Do(ctx, "checkout.close", func(ctx context.Context) error {
		roomReleased, closed = false, false

		return s.tx.WithinTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
			// serializes with a concurrent close and with the task sign-off
			booking, txErr := s.bookingRepo.LockTx(ctx, sqltx, bookingID)
			if txErr != nil {
				return txErr //nolint:wrapcheck
			}

			if booking.CheckoutState == bookingModel.StateClosed {
				return nil
			}

			txErr = s.bookingRepo.Transition(ctx, sqltx, booking.ID, bookingModel.StateInvoiceGenerated, bookingModel.StateClosed, map[string]any{
				bookingModel.FieldStatus:    bookingModel.StatusCheckedOut,
				bookingModel.FieldIsActive:  false,
				bookingModel.FieldInvoiceID: invoiceID,
				constant.FieldModifiedBy:    actor.UserID,
			})
			if failure.Is(txErr, failure.KindConflict) && s.closedMeanwhile(ctx, sqltx, booking.ID) {
				return nil
			}

			if txErr != nil {
				return txErr //nolint:wrapcheck
			}

			closed = true

			task, txErr := s.taskRepo.GetTx(ctx, sqltx, checkoutTaskFilter(booking.ID))
			if txErr != nil {
				return fmt.Errorf("failed to get checkout task: %w", txErr)
			}

			if !s.signedOff(task) {
				return nil
			}

			roomReleased = true

			return s.roomRepo.SetStatusTx(ctx, sqltx, booking.RoomID, roomModel.StatusAvailable) //nolint:wrapcheck
		})
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	if closed {
		s.publisher.Publish(ctx, event.TypeCheckoutClosed, bookingID, map[string]any{
			"invoice_id":    invoiceID,
			"room_released": roomReleased,
		})
	}

	return nil
}

// closedMeanwhile reports whether another caller finished closing the booking, which makes a lost close CAS a success.
func (s *serviceImpl) closedMeanwhile(ctx context.Context, sqltx *sqlx.Tx, bookingID string) bool {
	current, err := s.bookingRepo.LockTx(ctx, sqltx, bookingID)

	return err == nil && current.CheckoutState == bookingModel.StateClosed
}

func (s *serviceImpl) signedOff(task hkModel.Task) bool {
	switch task.Status {
	case hkModel.StatusVerified:
		return true
	case hkModel.StatusCompleted:
		return !s.cfg.Checkout.RequireVerification
	default:
		return false
	}
}

func (s *serviceImpl) Get(ctx context.Context, bookingID string) (res dto.CheckoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkout.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	task, err := s.taskRepo.Get(ctx, checkoutTaskFilter(booking.ID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get checkout task")

		return res, fmt.Errorf("failed to get checkout task: %w", err)
	}

	if task.ID == constant.Empty {
		return res, nil
	}

	res.Task = &dto.TaskSummary{}
	res.Task.FromModel(task)

	inspection, err := s.inspection.GetByTask(ctx, task.ID)

	switch {
	case err == nil:
		res.TotalCharges = &inspection.TotalCharges
	case failure.Is(err, failure.KindNotFound):
	default:
		return res, fmt.Errorf("failed to get inspection: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) getBookingTx(ctx context.Context, sqltx *sqlx.Tx, id string) (bookingModel.Booking, error) {
	booking, err := s.bookingRepo.GetTx(ctx, sqltx, shared.FilterByID(id, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func checkoutTaskFilter(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: hkModel.FieldBookingID, Value: bookingID, Operator: gDto.FilterOperatorEq, Table: hkModel.TableName},
			gDto.Filter{Field: hkModel.FieldCleaningType, Value: hkModel.CleaningTypeCheckout, Operator: gDto.FilterOperatorEq, Table: hkModel.TableName},
		},
	}
}
