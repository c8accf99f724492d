// Package commands contains business operations that modify system state.
// Every write goes through a model type augmented with the declaration's
// schema and defaults, inside a unit of work.
package commands

import (
	"context"

	"schemamodel/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RecordRepoFactory provides access to the record repository within a transaction.
	RecordRepoFactory interface {
		RecordRepository() ports.RecordRepository
	}

	// RecordUoW manages transactions for record operations.
	RecordUoW interface {
		TxManager
		RecordRepoFactory
	}

	// RecordUoWFactory creates new record unit of work instances.
	RecordUoWFactory interface {
		Create() RecordUoW
	}
)
