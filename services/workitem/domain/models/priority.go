package models

import (
	"fmt"
	"strings"
)

// WorkItemPriority is the ordered priority of a work item.
type WorkItemPriority string

const (
	PriorityLow    WorkItemPriority = "Low"
	PriorityMedium WorkItemPriority = "Medium"
	PriorityHigh   WorkItemPriority = "High"
	PriorityUrgent WorkItemPriority = "Urgent"
)

// DefaultPriority is assigned when a create request carries no priority.
const DefaultPriority = PriorityMedium

var priorities = []WorkItemPriority{
	PriorityLow,
	PriorityMedium,
	PriorityHigh,
	PriorityUrgent,
}

// ParseWorkItemPriority converts a string into a WorkItemPriority, matching
// case-insensitively. Returns an error for unknown values.
func ParseWorkItemPriority(s string) (WorkItemPriority, error) {
	for _, priority := range priorities {
		if strings.EqualFold(s, string(priority)) {
			return priority, nil
		}
	}
	return "", fmt.Errorf("unknown work item priority %q", s)
}

// IsValid reports whether the priority is one of the defined levels.
func (p WorkItemPriority) IsValid() bool {
	for _, priority := range priorities {
		if p == priority {
			return true
		}
	}
	return false
}

// String returns the stored text representation.
func (p WorkItemPriority) String() string {
	return string(p)
}
