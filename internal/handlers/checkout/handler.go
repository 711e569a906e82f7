package checkout

import (
	"net/http"
	"roomops/infras/otel"
	"roomops/internal/domains/checkout/model/dto"
	"roomops/internal/domains/checkout/service"
	invoiceService "roomops/internal/domains/invoice/service"
	"roomops/shared/constant"
	"roomops/shared/validator"
	"roomops/transport/http/middleware"
	"roomops/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Checkout
	invoices   invoiceService.Compiler
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Checkout, invoices invoiceService.Compiler, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		invoices:   invoices,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/checkouts", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.APIKey, handler.middleware.Auth, handler.middleware.RBAC)

		routerGroup.Post("/", handler.InitiateCheckout)
		routerGroup.Get("/{bookingId}", handler.GetCheckout)
		routerGroup.Post("/{bookingId}/invoice", handler.GenerateInvoice)
		routerGroup.Get("/{bookingId}/invoice", handler.GetInvoice)
		routerGroup.Get("/{bookingId}/invoice/pdf", handler.DownloadInvoice)
	})
}

// InitiateCheckout starts the checkout of an active booking.
// @Summary Initiate checkout
// @Description Locks the room for maintenance, opens a checkout cleaning task and tries to assign housekeeping staff.
// @Description When no staff member can take the task the checkout still starts and a warning is returned.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body dto.InitiateCheckoutRequest true "Initiate Checkout Request"
// @Success 201 {object} response.Data[dto.InitiateCheckoutResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/checkouts [post]
// @Security BearerAuth
func (handler *Handler) InitiateCheckout(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".InitiateCheckout")
	defer scope.End()

	req := dto.InitiateCheckoutRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.InitiateCheckout(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to initiate checkout")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Checkout initiated by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetCheckout returns the checkout progress of a booking.
// @Summary Get checkout
// @Tags Checkout
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} response.Data[dto.CheckoutResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/checkouts/{bookingId} [get]
// @Security BearerAuth
func (handler *Handler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCheckout")
	defer scope.End()

	bookingID, err := bookingParam(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Get(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get checkout")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GenerateInvoice compiles the final invoice once the inspection is complete.
// @Summary Generate invoice
// @Description Idempotent: repeated calls return the invoice created by the first one.
// @Tags Checkout
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 201 {object} response.Data[invoiceDto.GenerateInvoiceResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/checkouts/{bookingId}/invoice [post]
// @Security BearerAuth
func (handler *Handler) GenerateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateInvoice")
	defer scope.End()

	bookingID, err := bookingParam(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.GenerateInvoice(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate invoice")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invoice " + res.InvoiceID + " issued")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetInvoice returns a stored invoice with its lines.
// @Summary Get invoice
// @Tags Checkout
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} response.Data[invoiceDto.InvoiceResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/checkouts/{bookingId}/invoice [get]
// @Security BearerAuth
func (handler *Handler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInvoice")
	defer scope.End()

	bookingID, err := bookingParam(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.invoices.GetByBooking(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get invoice")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DownloadInvoice renders the invoice as a PDF attachment.
// @Summary Download invoice PDF
// @Tags Checkout
// @Produce application/pdf
// @Param bookingId path string true "Booking ID"
// @Success 200 {file} file
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/checkouts/{bookingId}/invoice/pdf [get]
// @Security BearerAuth
func (handler *Handler) DownloadInvoice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DownloadInvoice")
	defer scope.End()

	bookingID, err := bookingParam(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	document, err := handler.invoices.Document(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to render invoice")

		response.WithError(w, err)

		return
	}

	response.WithFile(w, constant.ContentTypePDF, document.FileName, document.Content)
}

func bookingParam(r *http.Request) (string, error) {
	bookingID := chi.URLParam(r, constant.RequestParamBookingID)

	if err := validator.ValidateVar(bookingID, "required,uuid"); err != nil {
		return "", err //nolint:wrapcheck
	}

	return bookingID, nil
}
