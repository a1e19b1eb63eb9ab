package models

// BulkTransitionResult is the aggregate outcome of a bulk status transition.
// UpdatedCount + RejectedCount always equals the size of the deduplicated
// input set; rejection reasons (not found, terminal, already at target) are
// deliberately not broken out per item.
type BulkTransitionResult struct {
	UpdatedCount  int
	RejectedCount int
}
