//go:build wireinject
// +build wireinject

package di

import (
	"roomops/config"
	"roomops/infras/jwt"
	"roomops/infras/kafka"
	"roomops/infras/otel"
	"roomops/infras/postgres"
	"roomops/infras/redis"
	"roomops/infras/s3"
	"roomops/permissions"
	"roomops/shared/cache"
	"roomops/shared/retry"
	"roomops/shared/transaction"
	"roomops/transport/http"
	"roomops/transport/http/middleware"
	"roomops/transport/http/router"

	bookingRepository "roomops/internal/domains/booking/repository"
	checkoutEvent "roomops/internal/domains/checkout/event"
	checkoutService "roomops/internal/domains/checkout/service"
	hkRepository "roomops/internal/domains/housekeeping/repository"
	hkService "roomops/internal/domains/housekeeping/service"
	inspectionRepository "roomops/internal/domains/inspection/repository"
	inspectionService "roomops/internal/domains/inspection/service"
	inventoryRepository "roomops/internal/domains/inventory/repository"
	invoiceRepository "roomops/internal/domains/invoice/repository"
	invoiceService "roomops/internal/domains/invoice/service"
	roomRepository "roomops/internal/domains/room/repository"
	staffRepository "roomops/internal/domains/staff/repository"
	staffService "roomops/internal/domains/staff/service"

	checkoutHandler "roomops/internal/handlers/checkout"
	hkHandler "roomops/internal/handlers/housekeeping"
	staffHandler "roomops/internal/handlers/staff"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	retry.New,
	transaction.New,
)

var repositories = wire.NewSet(
	bookingRepository.New,
	roomRepository.New,
	staffRepository.New,
	hkRepository.New,
	inventoryRepository.New,
	inspectionRepository.New,
	invoiceRepository.New,
)

var domains = wire.NewSet(
	checkoutEvent.New,
	staffService.New,
	hkService.New,
	inspectionService.New,
	invoiceService.New,
	checkoutService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	checkoutHandler.New,
	hkHandler.New,
	staffHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
