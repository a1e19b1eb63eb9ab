package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/worktrack/pkg/auth"
	"github.com/ghuser/worktrack/pkg/errhttp"
	"github.com/ghuser/worktrack/pkg/httpx"
	pkgvalidator "github.com/ghuser/worktrack/pkg/validator"
	appsvcs "github.com/ghuser/worktrack/services/workitem/application/services"
	"github.com/ghuser/worktrack/services/workitem/domain/models"
)

// UpdateWorkItemStatusRequest is the request body for PATCH /work-items/{id}/status.
type UpdateWorkItemStatusRequest struct {
	Status    string `json:"status" validate:"required" example:"InProgress"`
	UpdatedBy string `json:"updated_by" validate:"omitempty,max=100" example:"jordan"`
} // @name UpdateWorkItemStatusRequest

// PatchWorkItemStatusHandler handles PATCH /work-items/{id}/status requests.
type PatchWorkItemStatusHandler struct {
	svc *appsvcs.Services
}

// NewPatchWorkItemStatusHandler returns a PatchWorkItemStatusHandler backed by the given services.
func NewPatchWorkItemStatusHandler(svc *appsvcs.Services) *PatchWorkItemStatusHandler {
	return &PatchWorkItemStatusHandler{svc: svc}
}

// Execute transitions a work item to a new status.
//
//	@Summary		Update work item status
//	@Description	Transitions a work item to a new status; Done and Cancelled items reject further transitions
//	@Tags			work-items
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-Id	header		string						true	"Tenant id"
//	@Param			id			path		string						true	"Work item id"
//	@Param			request		body		UpdateWorkItemStatusRequest	true	"Status transition request"
//	@Success		200			{object}	WorkItemResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Router			/work-items/{id}/status [patch]
func (h *PatchWorkItemStatusHandler) Execute(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "tenant required"})
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "id must be a valid UUID")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateWorkItemStatusRequest](w, r)
	if !ok {
		return
	}

	target, err := models.ParseWorkItemStatus(req.Status)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.svc.WorkItem.UpdateStatus(r.Context(), tenantID, id, appsvcs.UpdateWorkItemStatusCommand{
		TargetStatus: target,
		UpdatedBy:    req.UpdatedBy,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toWorkItemResponse(item))
}
