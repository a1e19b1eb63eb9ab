package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/worktrack/pkg/auth"
	"github.com/ghuser/worktrack/pkg/errhttp"
	"github.com/ghuser/worktrack/pkg/httpx"
	appsvcs "github.com/ghuser/worktrack/services/workitem/application/services"
	"github.com/ghuser/worktrack/services/workitem/domain/models"
)

// WorkItemListResponse is the paginated envelope for GET /work-items.
type WorkItemListResponse struct {
	Items      []WorkItemResponse `json:"items"`
	Page       int                `json:"page"        example:"1"`
	PageSize   int                `json:"page_size"   example:"50"`
	TotalCount int                `json:"total_count" example:"137"`
} // @name WorkItemListResponse

// ListWorkItemsHandler handles GET /work-items requests.
type ListWorkItemsHandler struct {
	svc *appsvcs.Services
}

// NewListWorkItemsHandler returns a ListWorkItemsHandler backed by the given services.
func NewListWorkItemsHandler(svc *appsvcs.Services) *ListWorkItemsHandler {
	return &ListWorkItemsHandler{svc: svc}
}

// Execute lists work items for the caller's tenant, newest first.
//
//	@Summary		List work items
//	@Description	Lists work items for the caller's tenant with optional status filter and pagination
//	@Tags			work-items
//	@Produce		json
//	@Param			X-Tenant-Id	header		string	true	"Tenant id"
//	@Param			status		query		string	false	"Filter by status"	Enums(New, InProgress, Blocked, Done, Cancelled)
//	@Param			page		query		int		false	"Page number, 1-based"	default(1)
//	@Param			page_size	query		int		false	"Page size, max 200"	default(50)
//	@Success		200			{object}	WorkItemListResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Router			/work-items [get]
func (h *ListWorkItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	tenantID, err := auth.TenantIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "tenant required"})
		return
	}

	query := appsvcs.ListWorkItemsQuery{Page: 1, PageSize: 50}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := models.ParseWorkItemStatus(raw)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		query.Status = &status
	}
	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "page must be an integer")
			return
		}
		query.Page = page
	}
	if raw := r.URL.Query().Get("page_size"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "page_size must be an integer")
			return
		}
		query.PageSize = pageSize
	}

	result, err := h.svc.WorkItem.List(r.Context(), tenantID, query)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	items := make([]WorkItemResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, toWorkItemResponse(item))
	}

	httpx.JSON(w, http.StatusOK, WorkItemListResponse{
		Items:      items,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalCount: result.TotalCount,
	})
}
