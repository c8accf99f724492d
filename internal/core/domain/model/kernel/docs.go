// Package kernel provides the shared value objects of the record domain.
//
// UUID wraps github.com/google/uuid so that record identifiers are always
// constructed explicitly and a zero identifier is rejected by Validate.
package kernel
