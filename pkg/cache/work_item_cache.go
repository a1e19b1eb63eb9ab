package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// WorkItemCacheTTL is the time-to-live for cached work items.
	WorkItemCacheTTL = 24 * time.Hour

	workItemCacheKeyPrefix = "workitem"
)

// CachedWorkItem is the denormalized read model stored in Redis.
// Fields are stored as a Redis hash, mirroring the work_items row.
type CachedWorkItem struct {
	ID          uuid.UUID `json:"id"`
	TenantID    uuid.UUID `json:"tenant_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CreatedBy   string    `json:"created_by"`
	UpdatedBy   string    `json:"updated_by"`
}

// WorkItemCache provides structured read/write operations for work item cache
// entries. Keys are scoped by tenantID to prevent cross-tenant data leakage.
// Key format: "workitem:{tenantID}:{workItemID}"
type WorkItemCache struct {
	client *RedisClient
}

// NewWorkItemCache creates a WorkItemCache backed by the given RedisClient.
func NewWorkItemCache(r *RedisClient) *WorkItemCache {
	return &WorkItemCache{client: r}
}

// Get retrieves a cached work item by tenant + item ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *WorkItemCache) Get(ctx context.Context, tenantID, workItemID uuid.UUID) (*CachedWorkItem, error) {
	key := c.key(tenantID, workItemID)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	tid, err := uuid.Parse(vals["tenant_id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse tenant_id: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, vals["updated_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse updated_at: %w", err)
	}

	return &CachedWorkItem{
		ID:          id,
		TenantID:    tid,
		Title:       vals["title"],
		Description: vals["description"],
		Status:      vals["status"],
		Priority:    vals["priority"],
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		CreatedBy:   vals["created_by"],
		UpdatedBy:   vals["updated_by"],
	}, nil
}

// Set writes a cached work item as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *WorkItemCache) Set(ctx context.Context, item *CachedWorkItem) error {
	key := c.key(item.TenantID, item.ID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"id", item.ID.String(),
		"tenant_id", item.TenantID.String(),
		"title", item.Title,
		"description", item.Description,
		"status", item.Status,
		"priority", item.Priority,
		"created_at", item.CreatedAt.UTC().Format(time.RFC3339Nano),
		"updated_at", item.UpdatedAt.UTC().Format(time.RFC3339Nano),
		"created_by", item.CreatedBy,
		"updated_by", item.UpdatedBy,
	)
	pipe.Expire(ctx, key, WorkItemCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached work item. Status transitions invalidate instead of
// rewriting so the next read repopulates from the source of truth.
func (c *WorkItemCache) Delete(ctx context.Context, tenantID, workItemID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(tenantID, workItemID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "workitem:{tenantID}:{workItemID}"
func (c *WorkItemCache) key(tenantID, workItemID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", workItemCacheKeyPrefix, tenantID, workItemID)
}
