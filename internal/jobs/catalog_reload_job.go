package jobs

import (
	"context"
	"log/slog"

	"schemamodel/internal/core/domain/model/record"

	"github.com/robfig/cron/v3"
)

// DeclarationSource produces the full set of model declarations.
type DeclarationSource func(ctx context.Context) ([]record.Declaration, error)

// CatalogReloadJob periodically replaces the catalog content with a fresh
// read of its declaration source. Augmented model types pick the change up
// on their next call.
type CatalogReloadJob struct {
	source   DeclarationSource
	catalog  *record.Catalog
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCatalogReloadJob creates a reload job running on schedule.
func NewCatalogReloadJob(
	source DeclarationSource,
	catalog *record.Catalog,
	schedule string,
	logger *slog.Logger,
) *CatalogReloadJob {
	return &CatalogReloadJob{
		source:   source,
		catalog:  catalog,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "catalog_reload_job"),
	}
}

// Name identifies the job in manager errors.
func (j *CatalogReloadJob) Name() string {
	return "catalog reload job"
}

// Run reloads once. On error the catalog is left untouched.
func (j *CatalogReloadJob) Run(ctx context.Context) error {
	decls, err := j.source(ctx)
	if err != nil {
		return err
	}

	j.catalog.Replace(decls)
	j.logger.DebugContext(ctx, "Catalog reloaded", "models", len(decls))
	return nil
}

// Start schedules Run.
func (j *CatalogReloadJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Catalog reload failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Catalog reload job started", "schedule", j.schedule)
	return nil
}

// Stop stops the schedule. A running reload is allowed to finish.
func (j *CatalogReloadJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Catalog reload job stopped")
}
