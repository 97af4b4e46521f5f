package analysis

import (
	"testing"

	"combatlog/internal/models"
)

func threatDamage(ts, amount, threat float64) *models.DamageDealt {
	return &models.DamageDealt{
		EventHeader: models.EventHeader{Timestamp: ts, Threat: threat},
		Amount:      amount,
		DamageKind:  models.DamageKindDamage,
	}
}

func TestThreatGroupsThreadsRunningTotal(t *testing.T) {
	a := testAnalyzer()

	events := []models.Event{
		threatDamage(1.0, 100, 100),
		threatDamage(1.0, 50, 50),
		threatDamage(4.0, 200, 200),
	}

	groups := a.ThreatGroups(events)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	// Le total courant s'enfile de groupe en groupe
	if groups[0].ThreatBefore != 0 || groups[0].ThreatAfter != 150 {
		t.Errorf("first group: expected 0 --> 150, got %f --> %f", groups[0].ThreatBefore, groups[0].ThreatAfter)
	}
	if groups[1].ThreatBefore != 150 || groups[1].ThreatAfter != 350 {
		t.Errorf("second group: expected 150 --> 350, got %f --> %f", groups[1].ThreatBefore, groups[1].ThreatAfter)
	}
}

func TestThreatGroupsIgnoresZeroThreat(t *testing.T) {
	a := testAnalyzer()

	events := []models.Event{
		threatDamage(1.0, 100, 0),
		threatDamage(2.0, 100, 80),
	}

	groups := a.ThreatGroups(events)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if groups[0].ThreatAfter != 80 {
		t.Errorf("expected threat 80, got %f", groups[0].ThreatAfter)
	}
}

func TestThreatGroupsNegativeThreat(t *testing.T) {
	a := testAnalyzer()

	// Une réduction de menace (Fade, détaunt) porte une valeur négative
	events := []models.Event{
		threatDamage(1.0, 100, 200),
		threatDamage(3.0, 0, -150),
	}

	groups := a.ThreatGroups(events)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[1].ThreatBefore != 200 || groups[1].ThreatAfter != 50 {
		t.Errorf("expected 200 --> 50, got %f --> %f", groups[1].ThreatBefore, groups[1].ThreatAfter)
	}
}

func TestThreatGroupsEmpty(t *testing.T) {
	a := testAnalyzer()

	if groups := a.ThreatGroups(nil); len(groups) != 0 {
		t.Fatalf("expected no groups, got %d", len(groups))
	}
}
