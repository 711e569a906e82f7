package staff

import (
	"net/http"
	"roomops/infras/otel"
	"roomops/internal/domains/staff/service"
	"roomops/shared/constant"
	"roomops/transport/http/middleware"
	"roomops/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Allocator
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Allocator, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/staff", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.APIKey, handler.middleware.Auth, handler.middleware.RBAC)

		routerGroup.Get("/workload", handler.GetWorkload)
	})
}

// GetWorkload lists active housekeeping staff with their open task counts.
// @Summary Get staff workload
// @Tags Staff
// @Produce json
// @Success 200 {object} response.Data[dto.GetWorkloadResponse]
// @Failure 500 {object} response.Error
// @Router /v1/staff/workload [get]
// @Security BearerAuth
func (handler *Handler) GetWorkload(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWorkload")
	defer scope.End()

	res, err := handler.service.Workload(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get staff workload")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
