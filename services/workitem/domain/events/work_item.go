package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the work item service.
const (
	// TopicWorkItemCreated is published when a work item is created.
	TopicWorkItemCreated = "workitem.created"

	// TopicWorkItemsBulkTransitioned is published after a bulk transition.
	TopicWorkItemsBulkTransitioned = "workitem.bulk_transitioned"
)

// WorkItemCreatedEvent is published after a new work item is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicWorkItemCreated).
type WorkItemCreatedEvent struct {
	EventID     uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version     int       `json:"version"`  // Schema version; increment on breaking changes
	WorkItemID  uuid.UUID `json:"work_item_id"`
	TenantID    uuid.UUID `json:"tenant_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	CreatedBy   string    `json:"created_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// WorkItemsBulkTransitionedEvent is published after a bulk transition commits.
// It carries the requested id set, not the per-item outcomes; consumers that
// need current state must re-read (cache invalidation does exactly that).
type WorkItemsBulkTransitionedEvent struct {
	EventID       uuid.UUID   `json:"event_id"`
	Version       int         `json:"version"`
	TenantID      uuid.UUID   `json:"tenant_id"`
	WorkItemIDs   []uuid.UUID `json:"work_item_ids"`
	TargetStatus  string      `json:"target_status"`
	UpdatedCount  int         `json:"updated_count"`
	RejectedCount int         `json:"rejected_count"`
	ChangedBy     string      `json:"changed_by"`
	CorrelationID string      `json:"correlation_id"`
	OccurredAt    time.Time   `json:"occurred_at"`
}
