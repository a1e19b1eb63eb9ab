package services

import (
	"github.com/ghuser/worktrack/pkg/app"
	"github.com/ghuser/worktrack/pkg/cache"
	"github.com/ghuser/worktrack/services/workitem/infrastructure/observability"
	"github.com/ghuser/worktrack/services/workitem/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	WorkItem *WorkItemService
}

// New wires all work item application services with infrastructure from the
// Application container. Metrics registration failure disables emission but
// never blocks the service.
func New(a *app.Application) *Services {
	repo := postgres.NewWorkItemRepository(a.Db, a.EventBus)
	workItemCache := cache.NewWorkItemCache(a.Redis)

	var recorder TransitionRecorder
	if metrics, err := observability.NewBulkTransitionMetrics(); err != nil {
		a.Logger.Warn("bulk transition metrics disabled", "error", err)
	} else {
		recorder = metrics
	}

	return &Services{
		WorkItem: NewWorkItemService(repo, workItemCache, recorder),
	}
}
