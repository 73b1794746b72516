package style

import (
	"strings"
	"testing"
)

func TestRenderSlotStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   SlotStatus
		contains []string
	}{
		{
			name: "bound scalar",
			status: SlotStatus{
				Role:     "t",
				Index:    0,
				Field:    "temperature",
				Location: "cells",
				Status:   StatusBound,
			},
			contains: []string{"t[0]", "temperature", "(cells)"},
		},
		{
			name: "bound species",
			status: SlotStatus{
				Role:     "chemistry",
				Index:    3,
				Field:    "species_o3",
				Location: "cells",
				Status:   StatusBound,
			},
			contains: []string{"chemistry[3]", "species_o3"},
		},
		{
			name: "absent slot",
			status: SlotStatus{
				Role:   "h",
				Index:  0,
				Status: StatusAbsent,
			},
			contains: []string{"h[0]", "<absent>"},
		},
		{
			name: "empty role",
			status: SlotStatus{
				Role:   "ntdrp",
				Index:  -1,
				Status: StatusEmpty,
			},
			contains: []string{"ntdrp", "not mapped"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RenderSlotStatus(tt.status)
			for _, want := range tt.contains {
				if !strings.Contains(result, want) {
					t.Errorf("Expected output to contain %q, got %q", want, result)
				}
			}
		})
	}
}

func TestRenderRoleStatus(t *testing.T) {
	slots := []SlotStatus{
		{Role: "chemistry", Index: 0, Field: "species_o3", Location: "cells", Status: StatusBound},
		{Role: "chemistry", Index: 1, Status: StatusAbsent},
	}

	result := RenderRoleStatus("chemistry", slots)
	lines := strings.Split(result, "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d: %q", len(lines), result)
	}
	if !strings.Contains(lines[0], "chemistry:") {
		t.Errorf("Expected header line, got %q", lines[0])
	}
	if !strings.Contains(lines[2], "<absent>") {
		t.Errorf("Expected absent slot on last line, got %q", lines[2])
	}
}

func TestAggregateStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		expected Status
	}{
		{name: "no slots", statuses: nil, expected: StatusEmpty},
		{name: "all bound", statuses: []Status{StatusBound, StatusBound}, expected: StatusBound},
		{name: "one absent", statuses: []Status{StatusBound, StatusAbsent}, expected: StatusAbsent},
		{name: "only empty", statuses: []Status{StatusEmpty}, expected: StatusEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var slots []SlotStatus
			for _, s := range tt.statuses {
				slots = append(slots, SlotStatus{Role: "x", Status: s})
			}
			if got := AggregateStatus(slots); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}
