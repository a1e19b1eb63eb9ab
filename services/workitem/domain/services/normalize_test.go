package services

import (
	"strings"
	"testing"
)

func TestNormalizeActor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"blank defaults", "", DefaultActor, false},
		{"whitespace defaults", "   ", DefaultActor, false},
		{"trimmed", "  jordan  ", "jordan", false},
		{"passes through", "deploy-bot", "deploy-bot", false},
		{"max length accepted", strings.Repeat("a", MaxActorLength), strings.Repeat("a", MaxActorLength), false},
		{"over max rejected", strings.Repeat("a", MaxActorLength+1), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeActor(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNormalizeActor_TrimBeforeLengthCheck(t *testing.T) {
	// Padding that trims down to an acceptable length must not be rejected.
	padded := "  " + strings.Repeat("a", MaxActorLength) + "  "
	got, err := NormalizeActor(padded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != MaxActorLength {
		t.Fatalf("expected %d chars, got %d", MaxActorLength, len(got))
	}
}

func TestNormalizeCorrelationID_PassThrough(t *testing.T) {
	got := NormalizeCorrelationID("  req-12345  ")
	if got != "req-12345" {
		t.Fatalf("expected trimmed pass-through, got %q", got)
	}
}

func TestNormalizeCorrelationID_GeneratesWhenBlank(t *testing.T) {
	got := NormalizeCorrelationID("   ")
	if len(got) != 32 {
		t.Fatalf("expected generated 32-char token, got %d chars: %q", len(got), got)
	}
	if strings.Contains(got, "-") {
		t.Fatalf("generated token must not contain hyphens: %q", got)
	}

	other := NormalizeCorrelationID("")
	if got == other {
		t.Fatal("expected distinct tokens across calls")
	}
}

func TestNormalizeCorrelationID_Truncates(t *testing.T) {
	long := strings.Repeat("x", MaxCorrelationIDLength+50)
	got := NormalizeCorrelationID(long)
	if len(got) != MaxCorrelationIDLength {
		t.Fatalf("expected truncation to %d chars, got %d", MaxCorrelationIDLength, len(got))
	}
	if got != long[:MaxCorrelationIDLength] {
		t.Fatal("truncation must keep the leading characters")
	}
}
