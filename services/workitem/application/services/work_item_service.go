package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/worktrack/pkg/cache"
	workitemdomain "github.com/ghuser/worktrack/services/workitem/domain"
	"github.com/ghuser/worktrack/services/workitem/domain/models"
	"github.com/ghuser/worktrack/services/workitem/domain/repositories"
	domainsvcs "github.com/ghuser/worktrack/services/workitem/domain/services"
)

// maxPageSize bounds List page sizes; requests outside [1, maxPageSize] fail
// validation before any repository call.
const maxPageSize = 200

// TransitionRecorder receives bulk transition outcomes for metrics emission.
// The service calls it after a successful bulk operation; a nil recorder
// disables emission without affecting results.
type TransitionRecorder interface {
	RecordBulkTransition(ctx context.Context, batchSize, updatedCount, rejectedCount int, targetStatus models.WorkItemStatus)
}

// WorkItemService orchestrates creation, retrieval and status transitions of
// work items. It validates all inbound commands, applies cross-cutting policy
// (actor normalization, pagination bounds, idempotent no-op transitions) and
// delegates persistence to the repository. The service holds no mutable state
// and is safe for concurrent use.
type WorkItemService struct {
	repo    repositories.WorkItemRepository
	cache   *pkgcache.WorkItemCache
	metrics TransitionRecorder
}

// NewWorkItemService returns a WorkItemService wired with the given
// repository, cache and metrics recorder. Cache and recorder may be nil.
func NewWorkItemService(repo repositories.WorkItemRepository, itemCache *pkgcache.WorkItemCache, metrics TransitionRecorder) *WorkItemService {
	return &WorkItemService{repo: repo, cache: itemCache, metrics: metrics}
}

// Create validates and persists a new work item with status New.
// The repository publishes the WorkItemCreatedEvent transactionally.
func (s *WorkItemService) Create(ctx context.Context, tenantID uuid.UUID, cmd CreateWorkItemCommand) (*models.WorkItem, error) {
	if err := validateTenantID(tenantID); err != nil {
		return nil, err
	}

	actor, err := domainsvcs.NormalizeActor(cmd.RequestedBy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", workitemdomain.ErrValidation, err)
	}

	priority := cmd.Priority
	if priority == "" {
		priority = models.DefaultPriority
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("%w: unknown priority %q", workitemdomain.ErrValidation, cmd.Priority)
	}

	item, err := models.NewWorkItem(
		uuid.New(),
		tenantID,
		cmd.Title,
		cmd.Description,
		priority,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	stored, err := s.repo.Create(ctx, item, actor)
	if err != nil {
		return nil, fmt.Errorf("create work item: %w", err)
	}
	return stored, nil
}

// GetByID retrieves a work item using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
//
// Returns ErrWorkItemNotFound when no row matches the (tenant, id) pair.
func (s *WorkItemService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.WorkItem, error) {
	if err := validateTenantID(tenantID); err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: work item id is required", workitemdomain.ErrValidation)
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, tenantID, id); err == nil {
			if item, convErr := cachedToModel(cached); convErr == nil {
				return item, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			// Cache error — fall through to Postgres.
			_ = err
		}
	}

	item, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, workitemdomain.ErrWorkItemNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get work item: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), modelToCached(item))
		}()
	}

	return item, nil
}

// List returns a page of work items plus the total matching count. The page
// slice and the count are two independent queries; they are not guaranteed to
// be transactionally consistent with each other.
func (s *WorkItemService) List(ctx context.Context, tenantID uuid.UUID, query ListWorkItemsQuery) (*WorkItemListResult, error) {
	if err := validateTenantID(tenantID); err != nil {
		return nil, err
	}
	if query.Page <= 0 {
		return nil, fmt.Errorf("%w: page must be greater than zero", workitemdomain.ErrValidation)
	}
	if query.PageSize <= 0 || query.PageSize > maxPageSize {
		return nil, fmt.Errorf("%w: page size must be between 1 and %d", workitemdomain.ErrValidation, maxPageSize)
	}

	offset := (query.Page - 1) * query.PageSize

	items, err := s.repo.List(ctx, tenantID, repositories.ListFilter{
		Status: query.Status,
		Offset: offset,
		Limit:  query.PageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("list work items: %w", err)
	}

	total, err := s.repo.Count(ctx, tenantID, query.Status)
	if err != nil {
		return nil, fmt.Errorf("count work items: %w", err)
	}

	return &WorkItemListResult{
		Items:      items,
		Page:       query.Page,
		PageSize:   query.PageSize,
		TotalCount: total,
	}, nil
}

// UpdateStatus transitions a single work item.
//
// A terminal current status fails with ErrInvalidTransition. A same-status
// request returns the existing item unchanged without touching the mutating
// repository path, which makes single-item updates naturally retry-safe.
// When the conditional update matches no row (a concurrent transition won the
// race), the current state is re-fetched and returned rather than failing.
func (s *WorkItemService) UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, cmd UpdateWorkItemStatusCommand) (*models.WorkItem, error) {
	if err := validateTenantID(tenantID); err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: work item id is required", workitemdomain.ErrValidation)
	}
	if !cmd.TargetStatus.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", workitemdomain.ErrValidation, cmd.TargetStatus)
	}

	existing, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, workitemdomain.ErrWorkItemNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get work item: %w", err)
	}

	if existing.Status.IsTerminal() {
		return nil, workitemdomain.ErrInvalidTransition
	}

	if existing.Status == cmd.TargetStatus {
		return existing, nil
	}

	actor, err := domainsvcs.NormalizeActor(cmd.UpdatedBy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", workitemdomain.ErrValidation, err)
	}

	updated, err := s.repo.UpdateStatus(ctx, tenantID, id, cmd.TargetStatus, actor, time.Now().UTC())
	if err != nil {
		if errors.Is(err, workitemdomain.ErrWorkItemNotFound) {
			// Benign race: the row moved between our read and the conditional
			// update. Return whatever state won.
			return s.repo.GetByID(ctx, tenantID, id)
		}
		return nil, fmt.Errorf("update work item status: %w", err)
	}

	s.invalidate(tenantID, id)
	return updated, nil
}

// BulkTransition applies one target status to a deduplicated set of items as
// a single atomic storage operation and returns the aggregate counts. Items
// that are missing, terminal, or already at the target status count as
// rejected — unlike the single-item path, same-status is not an idempotent
// success here.
func (s *WorkItemService) BulkTransition(ctx context.Context, tenantID uuid.UUID, cmd BulkTransitionCommand) (models.BulkTransitionResult, error) {
	var zero models.BulkTransitionResult

	if err := validateTenantID(tenantID); err != nil {
		return zero, err
	}
	if len(cmd.WorkItemIDs) == 0 {
		return zero, fmt.Errorf("%w: at least one work item id is required", workitemdomain.ErrValidation)
	}
	for _, id := range cmd.WorkItemIDs {
		if id == uuid.Nil {
			return zero, fmt.Errorf("%w: work item ids cannot include empty values", workitemdomain.ErrValidation)
		}
	}
	if !cmd.TargetStatus.IsValid() {
		return zero, fmt.Errorf("%w: unknown status %q", workitemdomain.ErrValidation, cmd.TargetStatus)
	}

	actor, err := domainsvcs.NormalizeActor(cmd.ChangedBy)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", workitemdomain.ErrValidation, err)
	}
	correlationID := domainsvcs.NormalizeCorrelationID(cmd.CorrelationID)

	ids := dedupe(cmd.WorkItemIDs)

	result, err := s.repo.BulkTransition(ctx, tenantID, ids, cmd.TargetStatus, actor, correlationID)
	if err != nil {
		return zero, fmt.Errorf("bulk transition work items: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordBulkTransition(ctx, len(ids), result.UpdatedCount, result.RejectedCount, cmd.TargetStatus)
	}

	for _, id := range ids {
		s.invalidate(tenantID, id)
	}

	return result, nil
}

// invalidate drops the cache entry best-effort; the next read repopulates it.
func (s *WorkItemService) invalidate(tenantID, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Delete(context.Background(), tenantID, id)
}

func validateTenantID(tenantID uuid.UUID) error {
	if tenantID == uuid.Nil {
		return fmt.Errorf("%w: tenant id is required", workitemdomain.ErrValidation)
	}
	return nil
}

// dedupe returns ids with duplicates removed, preserving first-seen order.
func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func cachedToModel(cached *pkgcache.CachedWorkItem) (*models.WorkItem, error) {
	status, err := models.ParseWorkItemStatus(cached.Status)
	if err != nil {
		return nil, err
	}
	priority, err := models.ParseWorkItemPriority(cached.Priority)
	if err != nil {
		return nil, err
	}
	return &models.WorkItem{
		ID:          cached.ID,
		TenantID:    cached.TenantID,
		Title:       cached.Title,
		Description: cached.Description,
		Status:      status,
		Priority:    priority,
		CreatedAt:   cached.CreatedAt,
		UpdatedAt:   cached.UpdatedAt,
		CreatedBy:   cached.CreatedBy,
		UpdatedBy:   cached.UpdatedBy,
	}, nil
}

func modelToCached(item *models.WorkItem) *pkgcache.CachedWorkItem {
	return &pkgcache.CachedWorkItem{
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
