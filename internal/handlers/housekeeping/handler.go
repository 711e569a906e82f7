package housekeeping

import (
	"net/http"
	"roomops/infras/otel"
	checkoutService "roomops/internal/domains/checkout/service"
	"roomops/internal/domains/housekeeping/model/dto"
	"roomops/internal/domains/housekeeping/service"
	inspectionDto "roomops/internal/domains/inspection/model/dto"
	"roomops/shared/constant"
	"roomops/shared/validator"
	"roomops/transport/http/middleware"
	"roomops/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Housekeeping
	checkout   checkoutService.Checkout
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Housekeeping, checkout checkoutService.Checkout, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		checkout:   checkout,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/housekeeping-tasks", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.APIKey, handler.middleware.Auth, handler.middleware.RBAC)

		routerGroup.Get("/{id}", handler.GetTask)
		routerGroup.Get("/{id}/status", handler.GetTaskStatus)
		routerGroup.Post("/{id}/inspection", handler.SubmitInspection)
		routerGroup.Patch("/{id}/assign", handler.AssignTask)
		routerGroup.Patch("/{id}/status", handler.UpdateTaskStatus)
		routerGroup.Post("/{id}/verify", handler.VerifyTask)
	})
}

// GetTask returns a housekeeping task.
// @Summary Get housekeeping task
// @Tags Housekeeping
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.Data[dto.TaskResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/housekeeping-tasks/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTask")
	defer scope.End()

	id, err := taskParam(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	task, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get housekeeping task")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, task)
}

// GetTaskStatus is the polling endpoint used while waiting for housekeeping.
// @Summary Poll housekeeping task status
// @Tags Housekeeping
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.Data[dto.TaskStatusResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/housekeeping-tasks/{id}/status [get]
// @Security BearerAuth
func (handler *Handler) GetTaskStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTaskStatus")
	defer scope.End()

	id, err := taskParam(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	status, err := handler.checkout.PollTaskStatus(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to poll task status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, status)
}

// SubmitInspection records the post-stay room inspection and completes the checkout task.
// @Summary Submit inspection
// @Description Charges are computed from the room category's reference inventory. An invoice is generated right after.
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body inspectionDto.SubmitInspectionRequest true "Submit Inspection Request"
// @Success 201 {object} response.Data[checkoutDto.SubmitInspectionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/housekeeping-tasks/{id}/inspection [post]
// @Security BearerAuth
func (handler *Handler) SubmitInspection(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitInspection")
	defer scope.End()

	id, err := taskParam(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := inspectionDto.SubmitInspectionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.checkout.SubmitInspection(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit inspection")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Inspection submitted by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// AssignTask assigns an unassigned task, either to the given staff member or to the least loaded one.
// @Summary Assign housekeeping task
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.AssignTaskRequest false "Assign Task Request"
// @Success 200 {object} response.Data[dto.AssignTaskResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/housekeeping-tasks/{id}/assign [patch]
// @Security BearerAuth
func (handler *Handler) AssignTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignTask")
	defer scope.End()

	id, err := taskParam(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.AssignTaskRequest{}

	// the body is optional; an empty one means automatic selection
	if r.ContentLength != 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(w, err)

			return
		}
	}

	res, err := handler.service.Assign(ctx, id, req.StaffID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to assign housekeeping task")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateTaskStatus moves a task forward in its lifecycle.
// @Summary Update housekeeping task status
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.UpdateTaskStatusRequest true "Update Task Status Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/housekeeping-tasks/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTaskStatus")
	defer scope.End()

	id, err := taskParam(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.UpdateTaskStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update housekeeping task status")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Task status updated successfully")
}

// VerifyTask signs off a completed task.
// @Summary Verify housekeeping task @Admin
// @Tags Housekeeping
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/housekeeping-tasks/{id}/verify [post]
// @Security BearerAuth
func (handler *Handler) VerifyTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyTask")
	defer scope.End()

	id, err := taskParam(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Verify(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to verify housekeeping task")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Task verified by user " + user)

	response.WithMessage(w, http.StatusOK, "Task verified successfully")
}

func taskParam(r *http.Request) (string, error) {
	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateVar(id, "required,uuid"); err != nil {
		return "", err //nolint:wrapcheck
	}

	return id, nil
}
