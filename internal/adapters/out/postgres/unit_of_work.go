// Package postgres provides a GORM-based implementation of the Unit of Work
// pattern for record persistence. A unit of work keeps the records written
// during one business transaction and coordinates committing or discarding
// them as a whole.
//
// Key Features:
//   - Transaction management for the record repository
//   - Tracking of written records, reported to commit hooks after a successful commit
//   - Isolation between concurrent commands, each with its own unit of work
//   - Repositories bound to the open transaction, or to the connection without one
//   - Schema migration of the records table
//
// Usage Patterns:
//
// Basic Transaction Management:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.RecordRepository().Add(ctx, rec); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Reacting to Committed Records:
//
//	factory := NewGormUnitOfWorkFactory(db, func(ctx context.Context, ids []kernel.UUID) {
//	    logger.DebugContext(ctx, "Records committed", "count", len(ids))
//	})
//
// Reads Outside a Transaction:
//
//	records, err := factory.Create().RecordRepository().List(ctx, "User")
//
// Error Handling Best Practices:
//   - Always handle Begin() errors
//   - Defer Rollback() right after Begin(); after a Commit() it returns
//     gorm.ErrInvalidTransaction and changes nothing
//   - Check Commit() errors, a failed commit never reaches the commit hooks
//
// Concurrency Considerations:
//   - A UnitOfWork is not safe for concurrent use
//   - Multiple goroutines should use separate UnitOfWork instances
//   - The factory and its hooks are shared and must be safe for concurrent use
package postgres

import (
	"context"

	"schemamodel/internal/adapters/out/postgres/recordrepo"
	"schemamodel/internal/core/domain/model/kernel"
	"schemamodel/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is a record written during the unit of work.
// Commit hooks receive the ids once the transaction is committed.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// CommitHook is called after a successful commit with the ids of the records
// written in the committed transaction, in write order. A record written
// twice appears twice.
type CommitHook func(ctx context.Context, ids []kernel.UUID)

// GormUnitOfWorkFactory creates UnitOfWork instances using one GORM
// connection pool. Each business operation gets a fresh unit of work,
// isolated from other concurrent operations.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
type GormUnitOfWorkFactory struct {
	db    *gorm.DB
	hooks []CommitHook
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// Every created unit of work runs hooks after each successful commit.
func NewGormUnitOfWorkFactory(db *gorm.DB, hooks ...CommitHook) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, hooks: hooks}
}

// Create produces a new UnitOfWork with its own transaction state and
// record tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		hooks:             f.hooks,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the records
// written through its repositories. Tracking is cleared by Commit and
// Rollback; only a successful Commit hands the tracked ids to the hooks.
//
// Example usage:
//
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return fmt.Errorf("failed to begin transaction: %w", err)
//	}
//
//	if err := uow.RecordRepository().Update(ctx, rec.Patched(patch)); err != nil {
//	    _ = uow.Rollback(ctx)
//	    return fmt.Errorf("failed to update record: %w", err)
//	}
//
//	if err := uow.Commit(ctx); err != nil {
//	    return fmt.Errorf("failed to commit transaction: %w", err)
//	}
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	hooks             []CommitHook
	trackedAggregates []trackedAggregate
}

// Begin opens a transaction. Calling it again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the open transaction and then runs the commit hooks with
// the tracked record ids. Hooks do not run when the commit fails.
// Returns gorm.ErrInvalidTransaction when none is open.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil

	ids := uow.TrackedIDs()
	uow.trackedAggregates = uow.trackedAggregates[:0]
	if err != nil {
		return err
	}

	if len(ids) > 0 {
		for _, hook := range uow.hooks {
			hook(ctx, ids)
		}
	}
	return nil
}

// Rollback discards the open transaction.
// Returns gorm.ErrInvalidTransaction when none is open, which makes a
// deferred Rollback after a successful Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// RecordRepository returns a repository bound to the current transaction,
// or to the connection when no transaction is open.
func (uow *GormUnitOfWork) RecordRepository() ports.RecordRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return recordrepo.NewGormRecordRepository(db, uow)
}

// TrackAggregate registers a record written within this unit of work.
// Called by repositories after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedIDs returns the ids of records written so far, in write order.
func (uow *GormUnitOfWork) TrackedIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(uow.trackedAggregates))
	for _, tracked := range uow.trackedAggregates {
		ids = append(ids, tracked.ID)
	}
	return ids
}

// Migrate creates or updates the tables used by the record repository.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&recordrepo.RecordDTO{})
}
