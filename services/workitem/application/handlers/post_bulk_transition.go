package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/worktrack/pkg/auth"
	"github.com/ghuser/worktrack/pkg/errhttp"
	"github.com/ghuser/worktrack/pkg/httpx"
	pkgvalidator "github.com/ghuser/worktrack/pkg/validator"
	appsvcs "github.com/ghuser/worktrack/services/workitem/application/services"
	"github.com/ghuser/worktrack/services/workitem/domain/models"
)

// BulkTransitionRequest is the request body for POST /work-items/bulk-transition.
type BulkTransitionRequest struct {
	WorkItemIDs   []uuid.UUID `json:"work_item_ids" validate:"required,min=1" example:"123e4567-e89b-12d3-a456-426614174000"`
	TargetStatus  string      `json:"target_status" validate:"required" example:"Done"`
	ChangedBy     string      `json:"changed_by" validate:"omitempty,max=100" example:"jordan"`
	CorrelationID string      `json:"correlation_id" validate:"omitempty,max=100" example:"8f7a2c1d4b9e4f0a8c6d5e3f2a1b0c9d"`
} // @name BulkTransitionRequest

// BulkTransitionResponse reports the outcome of a bulk transition.
type BulkTransitionResponse struct {
	UpdatedCount  int `json:"updated_count"  example:"8"`
	RejectedCount int `json:"rejected_count" example:"2"`
} // @name BulkTransitionResponse

// PostBulkTransitionHandler handles POST /work-items/bulk-transition requests.
type PostBulkTransitionHandler struct {
	svc *appsvcs.Services
}

// NewPostBulkTransitionHandler returns a PostBulkTransitionHandler backed by the given services.
func NewPostBulkTransitionHandler(svc *appsvcs.Services) *PostBulkTransitionHandler {
	return &PostBulkTransitionHandler{svc: svc}
}

// Execute transitions a batch of work items atomically.
//
//	@Summary		Bulk transition work items
//	@Description	Transitions a batch of work items to a target status in a single atomic operation; items that cannot transition are counted as rejected
//	@Tags			work-items
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-Id	header		string					true	"Tenant id"
//	@Param			request		body		BulkTransitionRequest	true	"Bulk transition request"
//	@Success		200			{object}	BulkTransitionResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Router			/work-items/bulk-transition [post]
func (h *PostBulkTransitionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "tenant required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[BulkTransitionRequest](w, r)
	if !ok {
		return
	}

	target, err := models.ParseWorkItemStatus(req.TargetStatus)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.svc.WorkItem.BulkTransition(r.Context(), tenantID, appsvcs.BulkTransitionCommand{
		WorkItemIDs:   req.WorkItemIDs,
		TargetStatus:  target,
		ChangedBy:     req.ChangedBy,
		CorrelationID: req.CorrelationID,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, BulkTransitionResponse{
		UpdatedCount:  result.UpdatedCount,
		RejectedCount: result.RejectedCount,
	})
}
