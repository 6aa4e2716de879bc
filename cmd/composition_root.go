package cmd

import (
	"time"

	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/addresses"
	"fulfillment/internal/adapters/out/authz"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/auditrepo"
	"fulfillment/internal/adapters/out/postgres/itemrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/userrepo"
	"fulfillment/internal/adapters/out/regions"
	"fulfillment/internal/core/application/access"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/jobs"
	"fulfillment/internal/metrics"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	policy     services.AccessPolicy
	access     access.Checker
	metrics    *metrics.Metrics
	logger     *logrus.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, m *metrics.Metrics, logger *logrus.Logger) CompositionRoot {
	policy := services.NewAccessPolicy()
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     policy,
		access:     access.NewChecker(policy, authz.NewRoleAuthorizer(nil)),
		metrics:    m,
		logger:     logger,
	}
}

func (c *CompositionRoot) dependencies() commands.Dependencies {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.Dependencies{
		UoWFactory: f,
		Access:     c.access,
		Clock:      time.Now,
		Metrics:    c.metrics,
		Logger:     c.logger,
	}
}

// Read-side repositories run outside any unit of work.
func (c *CompositionRoot) orders() *orderrepo.GormOrderRepository {
	return orderrepo.NewGormOrderRepository(c.gormDB, nil)
}

func (c *CompositionRoot) audits() *auditrepo.GormAuditRepository {
	return auditrepo.NewGormAuditRepository(c.gormDB)
}

func (c *CompositionRoot) users() *userrepo.GormUserDirectory {
	return userrepo.NewGormUserDirectory(c.gormDB)
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() commands.ApproveOrderCommandHandler {
	return commands.NewApproveOrderCommandHandler(c.dependencies(), itemrepo.NewGormItemCatalog(c.gormDB))
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.dependencies())
}

func (c *CompositionRoot) CreatePlaceOnHoldCommandHandler() commands.PlaceOnHoldCommandHandler {
	return commands.NewPlaceOnHoldCommandHandler(c.dependencies())
}

func (c *CompositionRoot) CreateReleaseFromHoldCommandHandler() commands.ReleaseFromHoldCommandHandler {
	return commands.NewReleaseFromHoldCommandHandler(c.dependencies())
}

func (c *CompositionRoot) CreateMarkFulfilledCommandHandler() commands.MarkFulfilledCommandHandler {
	return commands.NewMarkFulfilledCommandHandler(c.dependencies())
}

func (c *CompositionRoot) CreateUpdateNotesCommandHandler() commands.UpdateNotesCommandHandler {
	return commands.NewUpdateNotesCommandHandler(c.dependencies())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(
		c.access, c.policy, c.orders(), regions.NewStaticResolver(nil), addresses.NewRoleCodec(), c.metrics)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(
		c.access, c.orders(), c.audits(), c.users(), addresses.NewRoleCodec(), c.metrics)
}

func (c *CompositionRoot) CreateRevealAddressQueryHandler() queries.RevealAddressQueryHandler {
	return queries.NewRevealAddressQueryHandler(c.access, c.orders(), addresses.NewRoleCodec())
}

func (c *CompositionRoot) CreateLeaderboardCounter() queries.LeaderboardCounter {
	return queries.NewLeaderboardCounter(c.orders(), c.audits())
}

func (c *CompositionRoot) CreateGetLeaderboardsQueryHandler() queries.GetLeaderboardsQueryHandler {
	return queries.NewGetLeaderboardsQueryHandler(c.access, c.CreateLeaderboardCounter(), c.users(), c.metrics)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		Approve:         c.CreateApproveOrderCommandHandler(),
		Reject:          c.CreateRejectOrderCommandHandler(),
		PlaceOnHold:     c.CreatePlaceOnHoldCommandHandler(),
		ReleaseFromHold: c.CreateReleaseFromHoldCommandHandler(),
		MarkFulfilled:   c.CreateMarkFulfilledCommandHandler(),
		UpdateNotes:     c.CreateUpdateNotesCommandHandler(),
		ListOrders:      c.CreateListOrdersQueryHandler(),
		GetOrder:        c.CreateGetOrderQueryHandler(),
		RevealAddress:   c.CreateRevealAddressQueryHandler(),
		Leaderboards:    c.CreateGetLeaderboardsQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	snapshot := jobs.NewLeaderboardSnapshotJob(c.CreateLeaderboardCounter(), c.metrics, c.config.LeaderboardCron, c.logger)
	return jobs.NewJobManager(snapshot, c.logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
