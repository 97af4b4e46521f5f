package parser

import (
	"testing"

	"combatlog/internal/models"
)

func genericAt(ts float64) models.Event {
	return &models.Generic{EventHeader: models.EventHeader{Timestamp: ts}}
}

func TestGroupByTimestampConsecutiveRuns(t *testing.T) {
	events := []models.Event{
		genericAt(1.0),
		genericAt(1.0),
		genericAt(2.5),
		genericAt(1.0), // même timestamp mais run non contigu : nouveau groupe
		genericAt(1.0),
	}

	groups := GroupByTimestamp(events)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}

	sizes := []int{2, 1, 2}
	stamps := []float64{1.0, 2.5, 1.0}
	for i, g := range groups {
		if g.Timestamp != stamps[i] {
			t.Errorf("group %d: expected timestamp %f, got %f", i, stamps[i], g.Timestamp)
		}
		if len(g.Events) != sizes[i] {
			t.Errorf("group %d: expected %d events, got %d", i, sizes[i], len(g.Events))
		}
	}
}

func TestGroupByTimestampSingleGroup(t *testing.T) {
	events := []models.Event{genericAt(4.2), genericAt(4.2), genericAt(4.2)}

	groups := GroupByTimestamp(events)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if len(groups[0].Events) != 3 {
		t.Errorf("expected 3 events in the group, got %d", len(groups[0].Events))
	}
}

func TestGroupByTimestampEmpty(t *testing.T) {
	if groups := GroupByTimestamp(nil); len(groups) != 0 {
		t.Fatalf("expected no groups, got %d", len(groups))
	}
}
