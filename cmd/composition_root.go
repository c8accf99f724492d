package cmd

import (
	"context"
	"log/slog"

	httpin "schemamodel/internal/adapters/in/http"
	"schemamodel/internal/adapters/out/postgres"
	"schemamodel/internal/core/application/augment"
	"schemamodel/internal/core/application/usecases/commands"
	"schemamodel/internal/core/application/usecases/queries"
	"schemamodel/internal/core/domain/model/kernel"
	"schemamodel/internal/core/domain/model/record"
	"schemamodel/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	catalog    *record.Catalog
	augmenter  *augment.Augmenter
	logger     *slog.Logger
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	catalog *record.Catalog,
	augmenter *augment.Augmenter,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logCommittedRecords(logger)),
		catalog:    catalog,
		augmenter:  augmenter,
		logger:     logger,
	}
}

func (c *CompositionRoot) Catalog() *record.Catalog {
	return c.catalog
}

func (c *CompositionRoot) CreateCreateRecordCommandHandler() commands.CreateRecordCommandHandler {
	var f commands.RecordUoWFactory = FuncRecordUoWFactory(func() commands.RecordUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRecordCommandHandler(f, c.catalog, c.augmenter)
}

func (c *CompositionRoot) CreateUpdateRecordCommandHandler() commands.UpdateRecordCommandHandler {
	var f commands.RecordUoWFactory = FuncRecordUoWFactory(func() commands.RecordUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateRecordCommandHandler(f, c.catalog, c.augmenter)
}

func (c *CompositionRoot) CreateGetRecordsQueryHandler() queries.GetRecordsQueryHandler {
	return queries.NewGetRecordsQueryHandler(c.gormDB)
}

// CreateRouter wires the HTTP server to the use case handlers.
func (c *CompositionRoot) CreateRouter() *echo.Echo {
	createHandler := c.CreateCreateRecordCommandHandler()
	updateHandler := c.CreateUpdateRecordCommandHandler()

	server := httpin.NewServer(
		c.catalog,
		&createHandler,
		&updateHandler,
		c.CreateGetRecordsQueryHandler(),
	)
	return httpin.NewRouter(server, c.catalog)
}

// CreateJobManager builds the background jobs. The reload job runs only
// when a models file is configured and the audit job only with a schedule.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var all []jobs.Job

	if c.configs.ModelsFile != "" {
		all = append(all, jobs.NewCatalogReloadJob(
			DeclarationSource(c.configs.ModelsFile, c.logger),
			c.catalog,
			c.configs.ReloadSchedule(),
			c.logger,
		))
	}

	if c.configs.AuditSchedule != "" {
		all = append(all, jobs.NewSchemaAuditJob(
			c.uowFactory.Create().RecordRepository(),
			c.catalog,
			c.configs.AuditSchedule,
			c.logger,
		))
	}

	return jobs.NewJobManager(c.logger, all...)
}

// logCommittedRecords reports every committed batch of record writes.
func logCommittedRecords(logger *slog.Logger) postgres.CommitHook {
	logger = logger.With("component", "unit_of_work")
	return func(ctx context.Context, ids []kernel.UUID) {
		logger.DebugContext(ctx, "Records committed", "count", len(ids), "ids", ids)
	}
}

type FuncRecordUoWFactory func() commands.RecordUoW

func (f FuncRecordUoWFactory) Create() commands.RecordUoW {
	return f()
}
