// Package record provides the generic record entity stored by the service and
// the catalog of model declarations that describe each kind of record.
//
// The package includes:
//   - Record: an entity with an identifier, a model name and a value set
//   - Declaration: the schema, defaults and augmentation options of one model
//   - Catalog: a concurrency-safe registry of declarations that can be
//     replaced at runtime, for example by a reload job
//
// Declarations are looked up by name on every use so that a replaced
// declaration takes effect on the next create or update.
package record
