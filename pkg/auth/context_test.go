package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestWithTenantID_TenantIDFromCtx(t *testing.T) {
	tenantID := uuid.New()
	ctx := WithTenantID(context.Background(), tenantID)

	got, err := TenantIDFromCtx(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != tenantID {
		t.Fatalf("expected %v, got %v", tenantID, got)
	}
}

func TestTenantIDFromCtx_EmptyContext(t *testing.T) {
	_, err := TenantIDFromCtx(context.Background())
	if !errors.Is(err, ErrTenantIDNotFound) {
		t.Fatalf("expected ErrTenantIDNotFound, got %v", err)
	}
}

func TestTenantIDFromCtx_NilUUID(t *testing.T) {
	ctx := WithTenantID(context.Background(), uuid.Nil)
	_, err := TenantIDFromCtx(ctx)
	if !errors.Is(err, ErrTenantIDNotFound) {
		t.Fatalf("expected ErrTenantIDNotFound for uuid.Nil, got %v", err)
	}
}

func TestTenantIDFromCtx_Isolation(t *testing.T) {
	tenant1 := uuid.New()
	tenant2 := uuid.New()

	ctx1 := WithTenantID(context.Background(), tenant1)
	ctx2 := WithTenantID(context.Background(), tenant2)

	got1, _ := TenantIDFromCtx(ctx1)
	got2, _ := TenantIDFromCtx(ctx2)

	if got1 != tenant1 {
		t.Fatalf("ctx1: expected %v, got %v", tenant1, got1)
	}
	if got2 != tenant2 {
		t.Fatalf("ctx2: expected %v, got %v", tenant2, got2)
	}
	if got1 == got2 {
		t.Fatal("expected different tenant ids in isolated contexts")
	}
}
