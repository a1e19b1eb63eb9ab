package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/worktrack/pkg/database"
	"github.com/ghuser/worktrack/pkg/events"
	workitemdomain "github.com/ghuser/worktrack/services/workitem/domain"
	domainevents "github.com/ghuser/worktrack/services/workitem/domain/events"
	"github.com/ghuser/worktrack/services/workitem/domain/models"
	"github.com/ghuser/worktrack/services/workitem/domain/repositories"
)

const selectColumns = `
	id, tenant_id, title, description, status, priority,
	created_at_utc, updated_at_utc, created_by, updated_by`

// WorkItemRepository implements repositories.WorkItemRepository against
// PostgreSQL. Status eligibility checks run inside the database so concurrent
// transitions race on the row, not in application memory.
type WorkItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewWorkItemRepository returns a WorkItemRepository backed by the given
// connection pool and event bus. The bus is used to publish domain events in
// the same transaction as the write (outbox pattern).
func NewWorkItemRepository(db *database.Database, bus *events.EventBus) *WorkItemRepository {
	return &WorkItemRepository{db: db, bus: bus}
}

// Create persists a new work item and publishes a WorkItemCreatedEvent within
// the same transaction. Returns the stored row.
func (r *WorkItemRepository) Create(ctx context.Context, item *models.WorkItem, createdBy string) (*models.WorkItem, error) {
	const query = `
		INSERT INTO work_items (
			id, tenant_id, title, description, status, priority,
			created_at_utc, updated_at_utc, created_by, updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING` + selectColumns

	var stored *models.WorkItem
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, query,
			item.ID,
			item.TenantID,
			item.Title,
			nullableText(item.Description),
			item.Status.String(),
			item.Priority.String(),
			item.CreatedAt,
			item.UpdatedAt,
			createdBy,
			createdBy,
		)

		var err error
		stored, err = scanWorkItem(row)
		if err != nil {
			return fmt.Errorf("insert work item: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, stored); err != nil {
				return fmt.Errorf("publish work item created: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// GetByID retrieves a work item scoped to the tenant.
// Returns ErrWorkItemNotFound when no row matches the (tenant, id) pair.
func (r *WorkItemRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.WorkItem, error) {
	const query = `
		SELECT` + selectColumns + `
		FROM work_items
		WHERE tenant_id = $1 AND id = $2`

	item, err := scanWorkItem(r.db.DB().QueryRowContext(ctx, query, tenantID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, workitemdomain.ErrWorkItemNotFound
		}
		return nil, fmt.Errorf("query work item: %w", err)
	}
	return item, nil
}

// List retrieves a page of work items for the tenant, newest first.
func (r *WorkItemRepository) List(ctx context.Context, tenantID uuid.UUID, filter repositories.ListFilter) ([]*models.WorkItem, error) {
	const query = `
		SELECT` + selectColumns + `
		FROM work_items
		WHERE tenant_id = $1
		  AND ($2::text IS NULL OR status = $2)
		ORDER BY created_at_utc DESC
		OFFSET $3
		LIMIT $4`

	rows, err := r.db.DB().QueryContext(ctx, query,
		tenantID, statusFilter(filter.Status), filter.Offset, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("query work items: %w", err)
	}
	defer rows.Close()

	var items []*models.WorkItem
	for rows.Next() {
		item, err := scanWorkItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan work item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate work items: %w", err)
	}
	return items, nil
}

// Count returns the number of work items matching the same filter as List.
func (r *WorkItemRepository) Count(ctx context.Context, tenantID uuid.UUID, status *models.WorkItemStatus) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM work_items
		WHERE tenant_id = $1
		  AND ($2::text IS NULL OR status = $2)`

	var total int
	if err := r.db.DB().QueryRowContext(ctx, query, tenantID, statusFilter(status)).Scan(&total); err != nil {
		return 0, fmt.Errorf("count work items: %w", err)
	}
	return total, nil
}

// UpdateStatus conditionally applies targetStatus. The WHERE clause enforces
// the full precondition (tenant, id, non-terminal, status differs) so a
// concurrent transition simply yields zero rows instead of a lost update.
func (r *WorkItemRepository) UpdateStatus(
	ctx context.Context,
	tenantID, id uuid.UUID,
	targetStatus models.WorkItemStatus,
	updatedBy string,
	updatedAt time.Time,
) (*models.WorkItem, error) {
	const query = `
		UPDATE work_items
		SET status = $3, updated_at_utc = $4, updated_by = $5
		WHERE tenant_id = $1
		  AND id = $2
		  AND status NOT IN ('Done', 'Cancelled')
		  AND status <> $3
		RETURNING` + selectColumns

	item, err := scanWorkItem(r.db.DB().QueryRowContext(ctx, query,
		tenantID, id, targetStatus.String(), updatedAt, updatedBy))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, workitemdomain.ErrWorkItemNotFound
		}
		return nil, fmt.Errorf("update work item status: %w", err)
	}
	return item, nil
}

// BulkTransition delegates the set-check-and-update to the
// sp_work_items_bulk_transition stored function, which computes eligibility
// and applies the update in one statement against a single snapshot. The
// result event is published in the same transaction.
func (r *WorkItemRepository) BulkTransition(
	ctx context.Context,
	tenantID uuid.UUID,
	ids []uuid.UUID,
	targetStatus models.WorkItemStatus,
	changedBy, correlationID string,
) (models.BulkTransitionResult, error) {
	const query = `
		SELECT updated_count, rejected_count
		FROM sp_work_items_bulk_transition($1, $2::uuid[], $3, $4, $5)`

	var result models.BulkTransitionResult
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, query,
			tenantID,
			uuidArray(ids),
			targetStatus.String(),
			changedBy,
			correlationID,
		)
		if err := row.Scan(&result.UpdatedCount, &result.RejectedCount); err != nil {
			return fmt.Errorf("bulk transition work items: %w", err)
		}

		if r.bus != nil {
			if err := r.publishBulkTransitioned(tx, tenantID, ids, targetStatus, changedBy, correlationID, result); err != nil {
				return fmt.Errorf("publish bulk transition: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return models.BulkTransitionResult{}, err
	}
	return result, nil
}

func (r *WorkItemRepository) publishCreated(tx *sql.Tx, item *models.WorkItem) error {
	event := domainevents.WorkItemCreatedEvent{
		EventID:     uuid.New(),
		Version:     1,
		WorkItemID:  item.ID,
		TenantID:    item.TenantID,
		Title:       item.Title,
		Description: item.Description,
		Status:      item.Status.String(),
		Priority:    item.Priority.String(),
		CreatedBy:   item.CreatedBy,
		OccurredAt:  item.CreatedAt,
	}
	return r.publish(tx, domainevents.TopicWorkItemCreated, event, event.EventID)
}

func (r *WorkItemRepository) publishBulkTransitioned(
	tx *sql.Tx,
	tenantID uuid.UUID,
	ids []uuid.UUID,
	targetStatus models.WorkItemStatus,
	changedBy, correlationID string,
	result models.BulkTransitionResult,
) error {
	event := domainevents.WorkItemsBulkTransitionedEvent{
		EventID:       uuid.New(),
		Version:       1,
		TenantID:      tenantID,
		WorkItemIDs:   ids,
		TargetStatus:  targetStatus.String(),
		UpdatedCount:  result.UpdatedCount,
		RejectedCount: result.RejectedCount,
		ChangedBy:     changedBy,
		CorrelationID: correlationID,
		OccurredAt:    time.Now().UTC(),
	}
	return r.publish(tx, domainevents.TopicWorkItemsBulkTransitioned, event, event.EventID)
}

func (r *WorkItemRepository) publish(tx *sql.Tx, topic string, event any, eventID uuid.UUID) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkItem(row rowScanner) (*models.WorkItem, error) {
	var (
		item        models.WorkItem
		description sql.NullString
		status      string
		priority    string
	)
	if err := row.Scan(
		&item.ID,
		&item.TenantID,
		&item.Title,
		&description,
		&status,
		&priority,
		&item.CreatedAt,
		&item.UpdatedAt,
		&item.CreatedBy,
		&item.UpdatedBy,
	); err != nil {
		return nil, err
	}

	item.Description = description.String

	parsedStatus, err := models.ParseWorkItemStatus(status)
	if err != nil {
		return nil, err
	}
	item.Status = parsedStatus

	parsedPriority, err := models.ParseWorkItemPriority(priority)
	if err != nil {
		return nil, err
	}
	item.Priority = parsedPriority

	return &item, nil
}

// nullableText maps an empty string to SQL NULL.
func nullableText(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// statusFilter maps a nil status to SQL NULL for the optional filter clause.
func statusFilter(status *models.WorkItemStatus) sql.NullString {
	if status == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: status.String(), Valid: true}
}

// uuidArray renders ids as a Postgres array literal; the query casts it to
// uuid[]. database/sql has no native array support over the pgx driver.
func uuidArray(ids []uuid.UUID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return "{" + strings.Join(parts, ",") + "}"
}
