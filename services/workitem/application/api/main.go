package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/worktrack/pkg/app"
	"github.com/ghuser/worktrack/pkg/auth"
	"github.com/ghuser/worktrack/services/workitem/application/handlers"
	appsvcs "github.com/ghuser/worktrack/services/workitem/application/services"
)

// WorkItemRoutes registers work item endpoints on the provided chi router.
// All routes require a tenant resolved from the X-Tenant-Id header.
func WorkItemRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireTenant(a.Logger))
		r.Route("/work-items", func(r chi.Router) {
			r.Post("/", handlers.NewPostWorkItemHandler(svcs).Execute)
			r.Get("/", handlers.NewListWorkItemsHandler(svcs).Execute)
			r.Post("/bulk-transition", handlers.NewPostBulkTransitionHandler(svcs).Execute)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handlers.NewGetWorkItemHandler(svcs).Execute)
				r.Patch("/status", handlers.NewPatchWorkItemStatusHandler(svcs).Execute)
			})
		})
	})
}
