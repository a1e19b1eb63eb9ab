package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	workitemdomain "github.com/ghuser/worktrack/services/workitem/domain"
)

// WorkItem is the core aggregate for this bounded context. A work item is
// owned by exactly one tenant and mutates only through status transitions.
type WorkItem struct {
	ID          uuid.UUID
	TenantID    uuid.UUID // tenant scope — always filter by this in queries
	Title       string
	Description string // empty when absent
	Status      WorkItemStatus
	Priority    WorkItemPriority
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatedBy   string
	UpdatedBy   string
}

// NewWorkItem constructs a valid WorkItem with status New and
// createdAt == updatedAt. The title is trimmed and must not be blank; a blank
// description is normalized to empty.
func NewWorkItem(
	id, tenantID uuid.UUID,
	title, description string,
	priority WorkItemPriority,
	createdAt time.Time,
) (*WorkItem, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: work item id is required", workitemdomain.ErrValidation)
	}
	if tenantID == uuid.Nil {
		return nil, fmt.Errorf("%w: tenant id is required", workitemdomain.ErrValidation)
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: work item title is required", workitemdomain.ErrValidation)
	}

	return &WorkItem{
		ID:          id,
		TenantID:    tenantID,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Status:      StatusNew,
		Priority:    priority,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}, nil
}

// UpdateStatus moves the work item to targetStatus and stamps updatedAt.
// Fails with ErrInvalidTransition when the current status is terminal.
// Same-status transitions are applied unconditionally here; the idempotent
// no-op short-circuit is an application-service policy, not an entity rule.
func (w *WorkItem) UpdateStatus(targetStatus WorkItemStatus, updatedAt time.Time) error {
	if w.Status.IsTerminal() {
		return workitemdomain.ErrInvalidTransition
	}

	w.Status = targetStatus
	w.UpdatedAt = updatedAt
	return nil
}
