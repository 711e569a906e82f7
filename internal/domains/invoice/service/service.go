package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"roomops/config"
	"roomops/infras/otel"
	"roomops/infras/s3"
	bookingModel "roomops/internal/domains/booking/model"
	bookingRepository "roomops/internal/domains/booking/repository"
	"roomops/internal/domains/invoice/model"
	"roomops/internal/domains/invoice/model/dto"
	"roomops/internal/domains/invoice/repository"
	"roomops/shared"
	"roomops/shared/constant"
	"roomops/shared/failure"
	"roomops/shared/timezone"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const archiveDirectory = "invoices"

type Compiler interface {
	// Build compiles the invoice of a booking with the configured tax schedule and round-off. Nothing is stored.
	Build(ctx context.Context, booking bookingModel.Booking, inspectionCharges decimal.Decimal) (model.Invoice, error)
	// CreateTx stores the invoice. When the booking already has one, that invoice is returned instead and created is false.
	CreateTx(ctx context.Context, sqltx *sqlx.Tx, invoice model.Invoice) (stored model.Invoice, created bool, err error)
	// GetByBookingTx returns the zero Invoice when the booking has none.
	GetByBookingTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string) (model.Invoice, error)
	GetByBooking(ctx context.Context, bookingID string) (dto.InvoiceResponse, error)
	Document(ctx context.Context, bookingID string) (dto.Document, error)
	Archive(ctx context.Context, invoice model.Invoice, booking bookingModel.Booking)
}

type compilerImpl struct {
	repo        repository.Invoice
	bookingRepo bookingRepository.Booking
	s3          s3.S3
	cfg         *config.Config
	otel        otel.Otel
}

func New(repo repository.Invoice, bookingRepo bookingRepository.Booking, s3 s3.S3, cfg *config.Config, otel otel.Otel) Compiler {
	return &compilerImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		s3:          s3,
		cfg:         cfg,
		otel:        otel,
	}
}

func (s *compilerImpl) Build(ctx context.Context, booking bookingModel.Booking, inspectionCharges decimal.Decimal) (res model.Invoice, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".invoice.Build")
	defer scope.End()
	defer scope.TraceIfError(err)

	taxes, err := ParseTaxes(s.cfg.Checkout.Taxes)
	if err != nil {
		log.Error().Err(err).Msg("invalid tax schedule")

		return res, fmt.Errorf("invalid tax schedule: %w", err)
	}

	roundOff := decimal.Zero

	if s.cfg.Checkout.RoundOffAdjustment != constant.Empty {
		roundOff, err = decimal.NewFromString(s.cfg.Checkout.RoundOffAdjustment)
		if err != nil {
			log.Error().Err(err).Str("roundOff", s.cfg.Checkout.RoundOffAdjustment).Msg("invalid round off adjustment")

			return res, fmt.Errorf("invalid round off adjustment: %w", err)
		}
	}

	res = Compile(CompileInput{
		InvoiceID:         uuid.NewString(),
		Booking:           booking,
		InspectionCharges: inspectionCharges,
		Taxes:             taxes,
		RoundOff:          roundOff,
		Currency:          s.cfg.Checkout.Currency,
		IssuedAt:          timezone.Now(),
	})

	scope.SetAttributes(map[string]any{
		"invoice.booking_id": booking.ID,
		"invoice.total":      res.TotalAmount.String(),
	})

	return res, nil
}

func (s *compilerImpl) CreateTx(ctx context.Context, sqltx *sqlx.Tx, invoice model.Invoice) (stored model.Invoice, created bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".invoice.CreateTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	created, err = s.repo.CreateTx(ctx, sqltx, invoice)
	if err != nil {
		log.Error().Err(err).Str("bookingID", invoice.BookingID).Msg("failed to create invoice")

		return stored, false, fmt.Errorf("failed to create invoice: %w", err)
	}

	if created {
		return invoice, true, nil
	}

	log.Info().Str("bookingID", invoice.BookingID).Msg("invoice already exists for booking, returning it")

	stored, err = s.GetByBookingTx(ctx, sqltx, invoice.BookingID)
	if err != nil {
		return stored, false, err
	}

	if stored.ID == constant.Empty {
		return stored, false, failure.Conflict("invoice of booking was not visible after a duplicate insert") // nolint:wrapcheck
	}

	return stored, false, nil
}

func (s *compilerImpl) GetByBookingTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string) (res model.Invoice, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".invoice.GetByBookingTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.GetTx(ctx, sqltx, shared.FilterByID(bookingID, model.FieldBookingID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice of booking")

		return res, fmt.Errorf("failed to get invoice of booking: %w", err)
	}

	return res, nil
}

func (s *compilerImpl) GetByBooking(ctx context.Context, bookingID string) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".invoice.GetByBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	invoice, err := s.get(ctx, bookingID)
	if err != nil {
		return res, err
	}

	res.FromModel(invoice)

	return res, nil
}

func (s *compilerImpl) Document(ctx context.Context, bookingID string) (res dto.Document, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".invoice.Document")
	defer scope.End()
	defer scope.TraceIfError(err)

	invoice, err := s.get(ctx, bookingID)
	if err != nil {
		return res, err
	}

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	content, err := Render(invoice, booking)
	if err != nil {
		log.Error().Err(err).Str("invoiceID", invoice.ID).Msg("failed to render invoice")

		return res, fmt.Errorf("failed to render invoice: %w", err)
	}

	return dto.Document{FileName: FileName(invoice), Content: content}, nil
}

// Archive uploads the rendered invoice to object storage in the background. An invoice is archived once.
func (s *compilerImpl) Archive(ctx context.Context, invoice model.Invoice, booking bookingModel.Booking) {
	if !s.cfg.External.S3.Enable {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)
		fileName := FileName(invoice)

		exists, err := s.s3.Exists(c, constant.Empty, archiveDirectory, fileName)
		if err != nil {
			log.Error().Err(err).Str("invoiceID", invoice.ID).Msg("failed to check invoice archive")

			return
		}

		if exists {
			return
		}

		content, err := Render(invoice, booking)
		if err != nil {
			log.Error().Err(err).Str("invoiceID", invoice.ID).Msg("failed to render invoice for archive")

			return
		}

		if kind := mimetype.Detect(content); !kind.Is(constant.ContentTypePDF) {
			log.Error().Str("invoiceID", invoice.ID).Str("detected", kind.String()).Msg("rendered invoice is not a pdf")

			return
		}

		url, err := s.s3.UploadFileBytes(c, constant.Empty, archiveDirectory, fileName, constant.ContentTypePDF, content)
		if err != nil {
			log.Error().Err(err).Str("invoiceID", invoice.ID).Msg("failed to archive invoice")

			return
		}

		log.Info().Str("invoiceID", invoice.ID).Str("url", url).Msg("invoice archived")
	}()
}

func (s *compilerImpl) get(ctx context.Context, bookingID string) (model.Invoice, error) {
	invoice, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldBookingID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice")

		return invoice, fmt.Errorf("failed to get invoice: %w", err)
	}

	if invoice.ID == constant.Empty {
		return invoice, failure.NotFound("invoice not found") // nolint:wrapcheck
	}

	return invoice, nil
}
