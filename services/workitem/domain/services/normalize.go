// Package services contains stateless domain services for the work item
// bounded context. Domain services enforce business rules that operate purely
// on domain types and have zero external dependencies beyond stdlib and uuid.
package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	// DefaultActor is recorded when a request carries no actor.
	DefaultActor = "api"

	// MaxActorLength bounds created_by / updated_by / changed_by values.
	MaxActorLength = 100

	// MaxCorrelationIDLength bounds the correlation token; longer values are
	// truncated, not rejected.
	MaxCorrelationIDLength = 100
)

// NormalizeActor trims the actor and substitutes DefaultActor when blank.
// An actor longer than MaxActorLength is rejected.
func NormalizeActor(actor string) (string, error) {
	normalized := strings.TrimSpace(actor)
	if normalized == "" {
		return DefaultActor, nil
	}
	if len(normalized) > MaxActorLength {
		return "", fmt.Errorf("actor value cannot exceed %d characters", MaxActorLength)
	}
	return normalized, nil
}

// NormalizeCorrelationID trims the correlation token, generating a fresh
// opaque 32-char hex token when blank, and truncates to
// MaxCorrelationIDLength. The token is never interpreted beyond this.
func NormalizeCorrelationID(correlationID string) string {
	normalized := strings.TrimSpace(correlationID)
	if normalized == "" {
		normalized = strings.ReplaceAll(uuid.NewString(), "-", "")
	}
	if len(normalized) > MaxCorrelationIDLength {
		normalized = normalized[:MaxCorrelationIDLength]
	}
	return normalized
}
