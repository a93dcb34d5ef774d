//go:build wireinject
// +build wireinject

package main

import (
	"github.com/programmerrush/api-bills/internal/app"
	"github.com/programmerrush/api-bills/internal/conf"
	"github.com/programmerrush/api-bills/internal/dao/mongodb"
	"github.com/programmerrush/api-bills/internal/dao/repository"
	"github.com/programmerrush/api-bills/internal/limiter"
	"github.com/programmerrush/api-bills/internal/logger"
	"github.com/programmerrush/api-bills/internal/logic"
	"github.com/programmerrush/api-bills/internal/middleware/http"
	"github.com/programmerrush/api-bills/internal/mq"
	"github.com/programmerrush/api-bills/internal/mq/rabbitmq"
	"github.com/programmerrush/api-bills/internal/provider"
	"github.com/programmerrush/api-bills/internal/service"
	"github.com/programmerrush/api-bills/internal/worker"
	"github.com/programmerrush/api-bills/pkg/snowflake"

	"github.com/google/wire"
)

// baseProviders holds the shared infrastructure components.
var baseProviders = wire.NewSet(
	wire.FieldsOf(new(*conf.AppConfig), "LogConfig", "MongodbConfig", "WorkerConfig", "JwtConfig", "RedisConfig", "RateLimiterConfig", "RabbitMQConfig", "Port"),
	provider.ProvideAppMode,
	logger.NewLogger,
	mongodb.NewMongoDB,
	provider.ProvideDatabase,
	provider.ProvideMachineID,
	provider.ProvideBillEventTopic,
	provider.ProvideTransactionManager,
	provider.ProvideJwtManager,
	provider.ProvideRedisNamespace,
	provider.ProvideRedisClient,
	limiter.NewManager,
	snowflake.NewGenerator,
	mongodb.NewBillDAO,
	wire.Bind(new(repository.BillRepository), new(*mongodb.BillDAO)),
	mongodb.NewCompanyDAO,
	wire.Bind(new(repository.CompanyRepository), new(*mongodb.CompanyDAO)),
	mongodb.NewAuditLogDAO,
	wire.Bind(new(repository.AuditLogRepository), new(*mongodb.AuditLogDAO)),
	mongodb.NewOutboxDAO,
	wire.Bind(new(repository.OutboxRepository), new(*mongodb.OutboxDAO)),
	logic.NewBillEventPublisher,
	logic.NewBillLogic,
	logic.NewCompanyLogic,
)

// rabbitMQProviders holds the publisher and the workers that drain the outbox.
var rabbitMQProviders = wire.NewSet(
	rabbitmq.NewPublisher,
	wire.Bind(new(mq.Publisher), new(*rabbitmq.Publisher)),
	worker.NewOutboxProcessor,
	worker.NewOverdueMarker,
)

// provideWorkers collects the background workers for the app.
func provideWorkers(outbox *worker.OutboxProcessor, overdue *worker.OverdueMarker) []worker.Worker {
	return []worker.Worker{outbox, overdue}
}

func InitializeApp(appConfig *conf.AppConfig) (*app.App, func(), error) {
	wire.Build(
		baseProviders,
		rabbitMQProviders,
		service.NewBillHandler,
		service.NewBillCaseHandler,
		service.NewCompanyHandler,
		http.NewAuthMiddleware,
		http.NewCompanyAccessMiddleware,
		app.NewHttpHandlerRegister,
		provideWorkers,
		conf.NewUnaryInterceptors,
		app.NewApp,
	)
	return nil, nil, nil
}
