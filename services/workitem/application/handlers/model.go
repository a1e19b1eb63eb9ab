// Package handlers contains one HTTP handler per work item endpoint.
// Handlers decode and validate transport payloads, resolve the tenant from the
// request context, and translate service results into JSON responses; all
// business rules live in the application service.
package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/worktrack/services/workitem/domain/models"
)

// WorkItemResponse is the JSON shape of a work item on every endpoint.
type WorkItemResponse struct {
	ID          uuid.UUID `json:"id"          example:"123e4567-e89b-12d3-a456-426614174000"`
	TenantID    uuid.UUID `json:"tenant_id"   example:"550e8400-e29b-41d4-a716-446655440000"`
	Title       string    `json:"title"       example:"Review telemetry spike"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"      example:"New"`
	Priority    string    `json:"priority"    example:"High"`
	CreatedAt   time.Time `json:"created_at_utc"`
	UpdatedAt   time.Time `json:"updated_at_utc"`
	CreatedBy   string    `json:"created_by"  example:"api"`
	UpdatedBy   string    `json:"updated_by"  example:"api"`
} // @name WorkItemResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"tenant id is required"`
} // @name ErrorResponse

func toWorkItemResponse(item *models.WorkItem) WorkItemResponse {
	return WorkItemResponse{
		ID:          item.ID,
		TenantID:    item.TenantID,
		Title:       item.Title,
		Description: item.Description,
		Status:      item.Status.String(),
		Priority:    item.Priority.String(),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
		CreatedBy:   item.CreatedBy,
		UpdatedBy:   item.UpdatedBy,
	}
}
