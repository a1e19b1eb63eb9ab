package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/worktrack/pkg/auth"
	"github.com/ghuser/worktrack/pkg/errhttp"
	"github.com/ghuser/worktrack/pkg/httpx"
	appsvcs "github.com/ghuser/worktrack/services/workitem/application/services"
)

// GetWorkItemHandler handles GET /work-items/{id} requests.
type GetWorkItemHandler struct {
	svc *appsvcs.Services
}

// NewGetWorkItemHandler returns a GetWorkItemHandler backed by the given services.
func NewGetWorkItemHandler(svc *appsvcs.Services) *GetWorkItemHandler {
	return &GetWorkItemHandler{svc: svc}
}

// Execute fetches a single work item by id.
//
//	@Summary		Get work item
//	@Description	Fetches a single work item by id within the caller's tenant
//	@Tags			work-items
//	@Produce		json
//	@Param			X-Tenant-Id	header		string	true	"Tenant id"
//	@Param			id			path		string	true	"Work item id"
//	@Success		200			{object}	WorkItemResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/work-items/{id} [get]
func (h *GetWorkItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	item, err := h.svc.WorkItem.GetByID(r.Context(), tenantID, id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toWorkItemResponse(item))
}
