package domain

import "errors"

// Sentinel errors for the work item domain. Use errors.Is() to check these.
var (
	// ErrValidation indicates a client-fixable input problem (empty ids, blank
	// title, pagination out of range, actor too long, empty bulk id set).
	ErrValidation = errors.New("invalid input")

	// ErrWorkItemNotFound indicates no work item exists for the tenant/id pair.
	ErrWorkItemNotFound = errors.New("work item not found")

	// ErrInvalidTransition indicates an attempt to move a work item out of a
	// terminal status (Done or Cancelled).
	ErrInvalidTransition = errors.New("completed work items cannot transition to a new state")

	// ErrInvalidTenant indicates the tenant entity violates domain constraints.
	ErrInvalidTenant = errors.New("invalid tenant")
)
