package analysis

import (
	"math"
	"testing"

	"combatlog/internal/models"
)

func TestDpsLogsSingleGroup(t *testing.T) {
	a := testAnalyzer()

	events := []models.Event{damageAt(0.0, shadowBoltID(), 150, false)}

	logs := a.DpsLogs(events)
	if len(logs) != 1 {
		t.Fatalf("expected 1 dps point, got %d", len(logs))
	}

	// 150 de dégâts sur une fenêtre de 15 s
	if logs[0].DPS != 10.0 {
		t.Errorf("expected dps 10, got %f", logs[0].DPS)
	}
	if len(logs[0].DamageLogs) != 1 {
		t.Errorf("expected 1 damage log attached, got %d", len(logs[0].DamageLogs))
	}
}

func TestDpsLogsSimultaneousDamageGroups(t *testing.T) {
	a := testAnalyzer()

	events := []models.Event{
		damageAt(1.0, shadowBoltID(), 100, false),
		damageAt(1.0, shadowBoltID(), 50, false),
	}

	logs := a.DpsLogs(events)
	if len(logs) != 1 {
		t.Fatalf("simultaneous damage must yield one dps point, got %d", len(logs))
	}
	if logs[0].DPS != 10.0 {
		t.Errorf("expected dps 10, got %f", logs[0].DPS)
	}
	if len(logs[0].DamageLogs) != 2 {
		t.Errorf("expected 2 damage logs attached, got %d", len(logs[0].DamageLogs))
	}
}

func TestDpsLogsWindowEviction(t *testing.T) {
	a := testAnalyzer()

	events := []models.Event{
		damageAt(0.0, shadowBoltID(), 150, false),
		damageAt(10.0, shadowBoltID(), 150, false),
		damageAt(15.0, shadowBoltID(), 150, false),
	}

	logs := a.DpsLogs(events)
	if len(logs) != 3 {
		t.Fatalf("expected 3 dps points, got %d", len(logs))
	}

	// t=10 : les deux événements sont dans la fenêtre
	if logs[1].DPS != 20.0 {
		t.Errorf("expected dps 20 at t=10, got %f", logs[1].DPS)
	}

	// t=15 : le dégât de t=0 est sorti de la fenêtre (borne incluse)
	if logs[2].DPS != 20.0 {
		t.Errorf("expected dps 20 at t=15 after eviction, got %f", logs[2].DPS)
	}
}

func TestDpsLogsIgnoresNonDamageEvents(t *testing.T) {
	a := testAnalyzer()

	events := []models.Event{
		auraGained(1.0, targetEntity(), corruptionID()),
		damageAt(2.0, shadowBoltID(), 30, false),
		castCompleted(3.0, shadowBoltID()),
	}

	logs := a.DpsLogs(events)
	if len(logs) != 1 {
		t.Fatalf("expected 1 dps point, got %d", len(logs))
	}
	if logs[0].DPS != 2.0 {
		t.Errorf("expected dps 2, got %f", logs[0].DPS)
	}
}

func TestDpsLogsNeverNaN(t *testing.T) {
	a := testAnalyzer()

	if logs := a.DpsLogs(nil); len(logs) != 0 {
		t.Fatalf("expected no dps points without damage, got %d", len(logs))
	}

	logs := a.DpsLogs([]models.Event{damageAt(5.0, shadowBoltID(), 0, false)})
	for _, log := range logs {
		if math.IsNaN(log.DPS) {
			t.Fatal("dps must never be NaN")
		}
	}
}
