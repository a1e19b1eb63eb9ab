package models

import "testing"

func TestParseWorkItemPriority(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    WorkItemPriority
		wantErr bool
	}{
		{"exact match", "High", PriorityHigh, false},
		{"lowercase", "urgent", PriorityUrgent, false},
		{"uppercase", "LOW", PriorityLow, false},
		{"medium", "medium", PriorityMedium, false},
		{"unknown", "Critical", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWorkItemPriority(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDefaultPriority(t *testing.T) {
	if DefaultPriority != PriorityMedium {
		t.Fatalf("expected default priority Medium, got %v", DefaultPriority)
	}
}

func TestWorkItemPriority_IsValid(t *testing.T) {
	for _, priority := range priorities {
		if !priority.IsValid() {
			t.Errorf("expected %v to be valid", priority)
		}
	}
	if WorkItemPriority("Critical").IsValid() {
		t.Error("expected Critical to be invalid")
	}
}
