package services

import (
	"github.com/google/uuid"

	"github.com/ghuser/worktrack/services/workitem/domain/models"
)

// CreateWorkItemCommand carries the inputs for creating a work item.
// RequestedBy may be blank; the service substitutes the default actor.
type CreateWorkItemCommand struct {
	Title       string
	Description string
	Priority    models.WorkItemPriority
	RequestedBy string
}

// UpdateWorkItemStatusCommand carries the inputs for a single-item transition.
type UpdateWorkItemStatusCommand struct {
	TargetStatus models.WorkItemStatus
	UpdatedBy    string
}

// ListWorkItemsQuery selects a page of work items. A nil Status means all
// statuses. Page is 1-based.
type ListWorkItemsQuery struct {
	Status   *models.WorkItemStatus
	Page     int
	PageSize int
}

// WorkItemListResult is one page of work items plus the total matching count.
type WorkItemListResult struct {
	Items      []*models.WorkItem
	Page       int
	PageSize   int
	TotalCount int
}

// BulkTransitionCommand carries the inputs for a bulk transition. Duplicate
// ids are tolerated and deduplicated; ChangedBy and CorrelationID may be blank.
type BulkTransitionCommand struct {
	WorkItemIDs   []uuid.UUID
	TargetStatus  models.WorkItemStatus
	ChangedBy     string
	CorrelationID string
}
