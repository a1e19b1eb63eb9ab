package models

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	workitemdomain "github.com/ghuser/worktrack/services/workitem/domain"
)

func TestNewTenant(t *testing.T) {
	id := uuid.New()
	now := time.Now().UTC()

	tenant, err := NewTenant(id, "  Acme Corp  ", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tenant.ID != id {
		t.Errorf("expected id %v, got %v", id, tenant.ID)
	}
	if tenant.Name != "Acme Corp" {
		t.Errorf("expected trimmed name, got %q", tenant.Name)
	}
	if !tenant.IsActive {
		t.Error("new tenants must be active")
	}
}

func TestNewTenant_Validation(t *testing.T) {
	now := time.Now().UTC()

	if _, err := NewTenant(uuid.Nil, "Acme", now); !errors.Is(err, workitemdomain.ErrInvalidTenant) {
		t.Fatalf("expected ErrInvalidTenant for nil id, got %v", err)
	}
	if _, err := NewTenant(uuid.New(), "   ", now); !errors.Is(err, workitemdomain.ErrInvalidTenant) {
		t.Fatalf("expected ErrInvalidTenant for blank name, got %v", err)
	}
}

func TestTenant_Deactivate(t *testing.T) {
	tenant, err := NewTenant(uuid.New(), "Acme", time.Now().UTC())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tenant.Deactivate()
	if tenant.IsActive {
		t.Fatal("expected tenant to be inactive after Deactivate")
	}
}
