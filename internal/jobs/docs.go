// Package jobs provides scheduled background tasks for the model service.
//
// Jobs use github.com/robfig/cron/v3 with the standard parser, so schedules
// accept five-field expressions as well as descriptors like "@every 30s".
//
// # Available Jobs
//
// 1. CatalogReloadJob - re-reads model declarations and swaps the catalog content
// 2. SchemaAuditJob - re-validates stored records against the current schemas and logs violations
//
// # Usage
//
//	jobManager := jobs.NewJobManager(logger,
//		jobs.NewCatalogReloadJob(source, catalog, "@every 30s", logger),
//		jobs.NewSchemaAuditJob(uowFactory.Create().RecordRepository(), catalog, "@hourly", logger),
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A failed reload keeps the previous catalog and logs the error
// - Failed job starts stop any already running jobs
package jobs
