package models

import (
	"fmt"
	"strings"
)

// WorkItemStatus is the lifecycle state of a work item. Statuses are stored
// as text in the database, so the constant values are the wire format.
type WorkItemStatus string

const (
	StatusNew        WorkItemStatus = "New"
	StatusInProgress WorkItemStatus = "InProgress"
	StatusBlocked    WorkItemStatus = "Blocked"
	StatusDone       WorkItemStatus = "Done"
	StatusCancelled  WorkItemStatus = "Cancelled"
)

var statuses = []WorkItemStatus{
	StatusNew,
	StatusInProgress,
	StatusBlocked,
	StatusDone,
	StatusCancelled,
}

// ParseWorkItemStatus converts a string into a WorkItemStatus, matching
// case-insensitively. Returns an error for unknown values.
func ParseWorkItemStatus(s string) (WorkItemStatus, error) {
	for _, status := range statuses {
		if strings.EqualFold(s, string(status)) {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown work item status %q", s)
}

// IsValid reports whether the status is one of the defined lifecycle states.
func (s WorkItemStatus) IsValid() bool {
	for _, status := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status permits no further transitions.
// Done and Cancelled are terminal; every other status may move to any status.
func (s WorkItemStatus) IsTerminal() bool {
	return s == StatusDone || s == StatusCancelled
}

// String returns the stored text representation.
func (s WorkItemStatus) String() string {
	return string(s)
}
