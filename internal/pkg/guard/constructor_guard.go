// Package guard provides helpers that enforce construction invariants on
// commands, queries and other values that must only be built through their
// constructors.
//
// Key Features:
//   - Tells a constructed value apart from its zero value
//   - A single unexported flag, safe to copy by value
//   - Caller-supplied errors so every type reports its own sentinel
//
// Usage Patterns:
//
// Commands and Queries:
//
//	var ErrGetRecordsQueryIsNotConstructed = errors.New("GetRecordsQuery must be created via NewGetRecordsQuery")
//
//	type GetRecordsQuery struct {
//	    model string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewGetRecordsQuery(model string) (GetRecordsQuery, error) {
//	    if model == "" {
//	        return GetRecordsQuery{}, errs.NewValueIsRequiredError("model")
//	    }
//	    return GetRecordsQuery{model: model, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (q GetRecordsQuery) Validate() error {
//	    return q.guard.Validate(ErrGetRecordsQueryIsNotConstructed)
//	}
//
// Handlers:
//
//	func (h GetRecordsQueryHandler) Handle(ctx context.Context, q GetRecordsQuery) ([]GetRecordsQueryResponse, error) {
//	    if err := q.Validate(); err != nil {
//	        return nil, err
//	    }
//	    ...
//	}
//
// Error Handling Best Practices:
//   - Declare one sentinel per guarded type so errors.Is identifies the type
//   - Call Validate at the start of every handler that accepts the value
//   - Do not export the guard field; only the constructor may set it
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. Embed it in
// commands and queries so a zero value can be told apart from a constructed one.
//
// The guard holds an internal flag that only NewConstructorGuard sets. A
// struct literal or a zero value therefore fails Validate, which keeps
// handlers from acting on a command whose invariants were never checked.
//
// Example usage:
//
//	type CreateRecordCommand struct {
//	    model string
//	    guard guard.ConstructorGuard
//	}
//
//	func (c CreateRecordCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateRecordCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
