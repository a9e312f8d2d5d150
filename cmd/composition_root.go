package cmd

import (
	inkafka "ordering/internal/adapters/in/kafka"
	outkafka "ordering/internal/adapters/out/kafka"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/outboxrepo"
	"ordering/internal/adapters/out/postgres/restaurantrepo"
	outredis "ordering/internal/adapters/out/redis"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config      Config
	gormDB      *gorm.DB
	redisClient *redis.Client
	uowFactory  postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *redis.Client) CompositionRoot {
	return CompositionRoot{
		config:      config,
		gormDB:      gormDB,
		redisClient: redisClient,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.createOrderUoWFactory(),
		restaurantrepo.NewGormRestaurantRepository(c.gormDB),
		kernel.NewRandomIDGenerator(),
	)
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() commands.PayOrderCommandHandler {
	return commands.NewPayOrderCommandHandler(c.createOrderUoWFactory(), c.createTrackingCache())
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() commands.ApproveOrderCommandHandler {
	return commands.NewApproveOrderCommandHandler(c.createOrderUoWFactory(), c.createTrackingCache())
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.createOrderUoWFactory(), c.createTrackingCache())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.createOrderUoWFactory(), c.createTrackingCache())
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB, c.createTrackingCache())
}

// CreateOutboxRepository returns the outbox repository outside any unit of
// work, for the relay job's standalone reads and sent-marker updates.
func (c *CompositionRoot) CreateOutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(c.gormDB)
}

func (c *CompositionRoot) CreateKafkaProducer() *outkafka.Producer {
	return outkafka.NewProducer(c.kafkaBrokers())
}

func (c *CompositionRoot) CreateKafkaDispatcher() *inkafka.Dispatcher {
	return inkafka.NewDispatcher(
		c.CreatePayOrderCommandHandler(),
		c.CreateApproveOrderCommandHandler(),
		c.CreateRejectOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
	)
}

func (c *CompositionRoot) kafkaBrokers() []string {
	return []string{c.config.KafkaHost}
}

func (c *CompositionRoot) createTrackingCache() *outredis.TrackingCache {
	return outredis.NewTrackingCache(c.redisClient)
}

func (c *CompositionRoot) createOrderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
