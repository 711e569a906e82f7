// Package event publishes checkout lifecycle events to kafka, keyed by booking so a booking's events stay ordered.
package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"context"
	"roomops/config"
	"roomops/infras/kafka"
	"roomops/infras/otel"
	"roomops/shared/constant"
	"roomops/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	TypeCheckoutInitiated   = "checkout.initiated"
	TypeStaffAssigned       = "checkout.staff_assigned"
	TypeInspectionSubmitted = "inspection.submitted"
	TypeInvoiceGenerated    = "invoice.generated"
	TypeCheckoutClosed      = "checkout.closed"
)

type Envelope struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

type Publisher interface {
	// Publish sends the event in the background. Delivery failures are logged and never fail the caller,
	// the database remains the source of truth.
	Publish(ctx context.Context, eventType, bookingID string, data any)
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, eventType, bookingID string, data any) {
	if !p.cfg.Kafka.Enable {
		return
	}

	envelope := Envelope{
		Type:       eventType,
		BookingID:  bookingID,
		OccurredAt: timezone.Now(),
		Data:       data,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		p.send(c, envelope)
	}()
}

func (p *publisherImpl) send(ctx context.Context, envelope Envelope) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"event.type": envelope.Type,
		"booking.id": envelope.BookingID,
	})

	message := kafka.Message{
		Key:   envelope.BookingID,
		Type:  envelope.Type,
		Value: envelope,
	}

	if err := p.client.SendMessages(ctx, p.cfg.Kafka.Topics.Checkout, message); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("event", envelope.Type).Str("bookingID", envelope.BookingID).Msg("failed to publish checkout event")

		return
	}

	log.Debug().Str("event", envelope.Type).Str("bookingID", envelope.BookingID).Msg("checkout event published")
}
