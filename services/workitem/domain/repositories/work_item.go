package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/worktrack/services/workitem/domain/models"
)

// ListFilter contains the tenant-scoped filter and pagination parameters for
// list and count queries. A nil Status means all statuses.
type ListFilter struct {
	Status *models.WorkItemStatus
	Offset int // Number of records to skip
	Limit  int // Maximum number of records to return
}

// WorkItemRepository is the persistence interface for the WorkItem aggregate.
// The domain layer owns this interface; infrastructure implements it.
// Every operation takes the tenant id explicitly — tenant scoping is part of
// the lookup key, never a post-filter.
type WorkItemRepository interface {
	// Create persists a new work item and returns the stored row.
	Create(ctx context.Context, item *models.WorkItem, createdBy string) (*models.WorkItem, error)

	// GetByID retrieves a work item scoped to the tenant.
	// Returns ErrWorkItemNotFound when no row matches the (tenant, id) pair.
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.WorkItem, error)

	// List retrieves a page of work items for the tenant, ordered by creation
	// time descending.
	List(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]*models.WorkItem, error)

	// Count returns the total number of work items matching the same
	// tenant/status filter as List, ignoring pagination.
	Count(ctx context.Context, tenantID uuid.UUID, status *models.WorkItemStatus) (int, error)

	// UpdateStatus conditionally applies targetStatus: only when the row
	// matches the tenant and id, its status is non-terminal, and its status
	// differs from targetStatus. Returns ErrWorkItemNotFound when the
	// condition did not hold (which includes a concurrent transition).
	UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, targetStatus models.WorkItemStatus, updatedBy string, updatedAt time.Time) (*models.WorkItem, error)

	// BulkTransition applies targetStatus to every eligible item in ids as one
	// atomic set-check-and-update against a single consistent snapshot.
	// Ineligible items (missing, wrong tenant, terminal, already at target)
	// count toward RejectedCount.
	BulkTransition(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID, targetStatus models.WorkItemStatus, changedBy, correlationID string) (models.BulkTransitionResult, error)
}
