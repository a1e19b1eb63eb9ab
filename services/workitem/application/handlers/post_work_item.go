package handlers

import (
	"net/http"

	"github.com/ghuser/worktrack/pkg/auth"
	"github.com/ghuser/worktrack/pkg/errhttp"
	"github.com/ghuser/worktrack/pkg/httpx"
	pkgvalidator "github.com/ghuser/worktrack/pkg/validator"
	appsvcs "github.com/ghuser/worktrack/services/workitem/application/services"
	"github.com/ghuser/worktrack/services/workitem/domain/models"
)

// CreateWorkItemRequest is the request body for POST /work-items.
type CreateWorkItemRequest struct {
	Title       string `json:"title" validate:"required,max=500" example:"Review telemetry spike"`
	Description string `json:"description" validate:"omitempty,max=4000" example:"Investigate the spike reported on the ingest dashboard."`
	Priority    string `json:"priority" validate:"omitempty" example:"High"`
	RequestedBy string `json:"requested_by" validate:"omitempty,max=100" example:"jordan"`
} // @name CreateWorkItemRequest

// PostWorkItemHandler handles POST /work-items requests.
type PostWorkItemHandler struct {
	svc *appsvcs.Services
}

// NewPostWorkItemHandler returns a PostWorkItemHandler backed by the given services.
func NewPostWorkItemHandler(svc *appsvcs.Services) *PostWorkItemHandler {
	return &PostWorkItemHandler{svc: svc}
}

// Execute creates a new work item.
//
//	@Summary		Create work item
//	@Description	Creates a new work item with status New, scoped to the caller's tenant
//	@Tags			work-items
//	@Accept			json
//	@Produce		json
//	@Param			X-Tenant-Id	header		string					true	"Tenant id"
//	@Param			request		body		CreateWorkItemRequest	true	"Work item creation request"
//	@Success		201			{object}	WorkItemResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Router			/work-items [post]
func (h *PostWorkItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "tenant required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateWorkItemRequest](w, r)
	if !ok {
		return
	}

	priority := models.DefaultPriority
	if req.Priority != "" {
		priority, err = models.ParseWorkItemPriority(req.Priority)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	item, err := h.svc.WorkItem.Create(r.Context(), tenantID, appsvcs.CreateWorkItemCommand{
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		RequestedBy: req.RequestedBy,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toWorkItemResponse(item))
}
