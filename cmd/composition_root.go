package cmd

import (
	"log/slog"
	"time"

	inkafka "beerorders/internal/adapters/in/kafka"
	"beerorders/internal/adapters/out/beercatalog"
	outkafka "beerorders/internal/adapters/out/kafka"
	"beerorders/internal/adapters/out/postgres"
	"beerorders/internal/core/application/usecases/commands"
	"beerorders/internal/core/application/usecases/queries"
	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/core/ports"
	"beerorders/internal/jobs"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"gorm.io/gorm"
)

const beerCacheTTL = time.Hour

// tastingRoomCustomerID identifies the in-house tasting room customer.
// Generated per process; tasting room orders are correlated by customerRef.
var tastingRoomCustomerID = kernel.NewUUID()

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  *outkafka.CommandPublisher
	catalog    ports.BeerCatalog
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	publisher := outkafka.NewCommandPublisher(
		[]string{config.KafkaHost},
		outkafka.Topics{
			ValidateOrder:    config.KafkaValidateOrderTopic,
			AllocateOrder:    config.KafkaAllocateOrderTopic,
			DeallocateOrder:  config.KafkaDeallocateOrderTopic,
			ValidationFailed: config.KafkaValidationFailedTopic,
			AllocationFailed: config.KafkaAllocationFailedTopic,
		},
	)

	redisClient := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
	catalog := beercatalog.NewCachingCatalog(
		beercatalog.NewClient(config.BeerServiceHost),
		redisClient,
		beerCacheTTL,
	)

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		catalog:    catalog,
	}
}

// Close releases outbound connections held by the root.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateProcessValidationResultCommandHandler() commands.ProcessValidationResultCommandHandler {
	return commands.NewProcessValidationResultCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateProcessAllocationResultCommandHandler() commands.ProcessAllocationResultCommandHandler {
	return commands.NewProcessAllocationResultCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreatePickUpOrderCommandHandler() commands.PickUpOrderCommandHandler {
	return commands.NewPickUpOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.catalog)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateValidationResultConsumer() *inkafka.Consumer {
	return inkafka.NewValidationResultConsumer(
		c.newReader(c.config.KafkaValidationResultTopic),
		c.CreateProcessValidationResultCommandHandler(),
	)
}

func (c *CompositionRoot) CreateAllocationResultConsumer() *inkafka.Consumer {
	return inkafka.NewAllocationResultConsumer(
		c.newReader(c.config.KafkaAllocationResultTopic),
		c.CreateProcessAllocationResultCommandHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateSubmitOrderCommandHandler(),
		tastingRoomCustomerID,
		logger,
	)
}

func (c *CompositionRoot) newReader(topic string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{c.config.KafkaHost},
		GroupID: c.config.KafkaConsumerGroup,
		Topic:   topic,
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
