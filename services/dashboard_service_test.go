package services

import (
	"testing"

	"github.com/autoassign/api/model"
)

func TestPartitionByStatus(t *testing.T) {
	assignments := []StudentAssignment{
		{AssignmentID: 1, Status: model.AllocationStatusAssigned},
		{AssignmentID: 2, Status: model.AllocationStatusSubmitted},
		{AssignmentID: 3, Status: model.AllocationStatusAssigned},
		{AssignmentID: 4, Status: model.AllocationStatusSubmitted},
	}

	grouped := PartitionByStatus(assignments)

	if len(grouped.Pending) != 2 {
		t.Errorf("expected 2 pending, got %d", len(grouped.Pending))
	}
	if len(grouped.Submitted) != 2 {
		t.Errorf("expected 2 submitted, got %d", len(grouped.Submitted))
	}

	// Input order preserved within each bucket
	if grouped.Pending[0].AssignmentID != 1 || grouped.Pending[1].AssignmentID != 3 {
		t.Errorf("pending order not preserved: %+v", grouped.Pending)
	}
	if grouped.Submitted[0].AssignmentID != 2 || grouped.Submitted[1].AssignmentID != 4 {
		t.Errorf("submitted order not preserved: %+v", grouped.Submitted)
	}
}

func TestPartitionByStatusEmptyInput(t *testing.T) {
	grouped := PartitionByStatus(nil)

	// Both buckets serialize as empty arrays, not null
	if grouped.Pending == nil || grouped.Submitted == nil {
		t.Fatal("expected non-nil buckets for empty input")
	}
	if len(grouped.Pending) != 0 || len(grouped.Submitted) != 0 {
		t.Errorf("expected empty buckets, got %+v", grouped)
	}
}
