package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	workitemdomain "github.com/ghuser/worktrack/services/workitem/domain"
)

// Tenant is the isolation boundary: every work item belongs to exactly one
// tenant and all queries are scoped by tenant id.
type Tenant struct {
	ID        uuid.UUID
	Name      string
	IsActive  bool
	CreatedAt time.Time
}

// NewTenant constructs an active Tenant. Rejects an empty id or blank name.
func NewTenant(id uuid.UUID, name string, createdAt time.Time) (*Tenant, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: tenant id is required", workitemdomain.ErrInvalidTenant)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: tenant name is required", workitemdomain.ErrInvalidTenant)
	}

	return &Tenant{
		ID:        id,
		Name:      strings.TrimSpace(name),
		IsActive:  true,
		CreatedAt: createdAt,
	}, nil
}

// Deactivate marks the tenant inactive. Identity and created-at are immutable.
func (t *Tenant) Deactivate() {
	t.IsActive = false
}
