package analysis

import (
	"testing"

	"combatlog/internal/config"
	"combatlog/internal/models"
)

func testAnalyzer() *Analyzer {
	return NewAnalyzer(config.ParserConfig{
		DPSWindow:            15.0,
		TagInsensitiveSpells: []int32{30451, 42897},
	})
}

func targetEntity() *models.Entity {
	return &models.Entity{Name: "Target", Index: 0, IsTarget: true}
}

func corruptionID() *models.ActionID {
	return &models.ActionID{SpellID: 172, Name: "Corruption"}
}

func auraGained(ts float64, src *models.Entity, id *models.ActionID) *models.AuraEvent {
	return &models.AuraEvent{
		EventHeader: models.EventHeader{Timestamp: ts, Source: src, ActionID: id},
		IsGained:    true,
	}
}

func auraFaded(ts float64, src *models.Entity, id *models.ActionID) *models.AuraEvent {
	return &models.AuraEvent{
		EventHeader: models.EventHeader{Timestamp: ts, Source: src, ActionID: id},
		IsFaded:     true,
	}
}

func auraRefreshed(ts float64, src *models.Entity, id *models.ActionID) *models.AuraEvent {
	return &models.AuraEvent{
		EventHeader: models.EventHeader{Timestamp: ts, Source: src, ActionID: id},
		IsRefreshed: true,
	}
}

func stacksChange(ts float64, src *models.Entity, id *models.ActionID, old, new int) *models.AuraStacksChange {
	return &models.AuraStacksChange{
		EventHeader: models.EventHeader{Timestamp: ts, Source: src, ActionID: id},
		OldStacks:   old,
		NewStacks:   new,
	}
}

func TestAuraUptimesPairsGainAndFade(t *testing.T) {
	a := testAnalyzer()
	target := targetEntity()

	events := []models.Event{
		auraGained(1.0, target, corruptionID()),
		stacksChange(3.0, target, corruptionID(), 0, 2),
		auraFaded(5.0, target, corruptionID()),
	}

	logs := a.AuraUptimes(events, targetEntity(), 300.0)
	if len(logs) != 1 {
		t.Fatalf("expected 1 uptime interval, got %d", len(logs))
	}

	log := logs[0]
	if log.GainedAt != 1.0 || log.FadedAt != 5.0 {
		t.Errorf("expected interval [1, 5], got [%f, %f]", log.GainedAt, log.FadedAt)
	}
	if len(log.StacksChange) != 1 {
		t.Fatalf("expected 1 stacks change, got %d", len(log.StacksChange))
	}
	if log.StacksChange[0].NewStacks != 2 {
		t.Errorf("expected 2 stacks, got %d", log.StacksChange[0].NewStacks)
	}
}

func TestAuraUptimesOpenAtEndOfEncounter(t *testing.T) {
	a := testAnalyzer()
	target := targetEntity()

	events := []models.Event{auraGained(10.0, target, corruptionID())}

	logs := a.AuraUptimes(events, targetEntity(), 300.0)
	if len(logs) != 1 {
		t.Fatalf("expected 1 uptime interval, got %d", len(logs))
	}
	if logs[0].FadedAt != 300.0 {
		t.Errorf("open aura must close at encounter duration, got %f", logs[0].FadedAt)
	}
}

func TestAuraUptimesRefreshSplitsInterval(t *testing.T) {
	a := testAnalyzer()
	target := targetEntity()

	events := []models.Event{
		auraGained(1.0, target, corruptionID()),
		auraRefreshed(4.0, target, corruptionID()),
		auraFaded(9.0, target, corruptionID()),
	}

	logs := a.AuraUptimes(events, targetEntity(), 300.0)
	if len(logs) != 2 {
		t.Fatalf("expected 2 intervals around the refresh, got %d", len(logs))
	}
	if logs[0].GainedAt != 1.0 || logs[0].FadedAt != 4.0 {
		t.Errorf("first interval: expected [1, 4], got [%f, %f]", logs[0].GainedAt, logs[0].FadedAt)
	}
	if logs[1].GainedAt != 4.0 || logs[1].FadedAt != 9.0 {
		t.Errorf("second interval: expected [4, 9], got [%f, %f]", logs[1].GainedAt, logs[1].FadedAt)
	}
}

func TestAuraUptimesFIFOMatching(t *testing.T) {
	a := testAnalyzer()
	target := targetEntity()

	// Deux instances empilées de la même aura : la plus ancienne ferme en premier
	events := []models.Event{
		auraGained(1.0, target, corruptionID()),
		auraGained(2.0, target, corruptionID()),
		auraFaded(5.0, target, corruptionID()),
		auraFaded(8.0, target, corruptionID()),
	}

	logs := a.AuraUptimes(events, targetEntity(), 300.0)
	if len(logs) != 2 {
		t.Fatalf("expected 2 intervals, got %d", len(logs))
	}
	if logs[0].GainedAt != 1.0 || logs[0].FadedAt != 5.0 {
		t.Errorf("expected [1, 5], got [%f, %f]", logs[0].GainedAt, logs[0].FadedAt)
	}
	if logs[1].GainedAt != 2.0 || logs[1].FadedAt != 8.0 {
		t.Errorf("expected [2, 8], got [%f, %f]", logs[1].GainedAt, logs[1].FadedAt)
	}
}

func TestAuraUptimesTagVariantsMatch(t *testing.T) {
	a := testAnalyzer()
	target := targetEntity()

	// Le gain et la disparition portent des tags différents du même sort :
	// l'appariement hors tag les réunit quand même
	gainID := &models.ActionID{SpellID: 172, Tag: 1, Name: "Corruption"}
	fadeID := &models.ActionID{SpellID: 172, Tag: 2, Name: "Corruption"}

	events := []models.Event{
		auraGained(1.0, target, gainID),
		auraFaded(6.0, target, fadeID),
	}

	logs := a.AuraUptimes(events, targetEntity(), 300.0)
	if len(logs) != 1 {
		t.Fatalf("expected 1 interval, got %d", len(logs))
	}
	if logs[0].FadedAt != 6.0 {
		t.Errorf("expected faded at 6, got %f", logs[0].FadedAt)
	}
}

func TestAuraUptimesUnmatchedEventsDiscarded(t *testing.T) {
	a := testAnalyzer()
	target := targetEntity()

	// Disparition et changement de charges sans gain ouvert : écartés,
	// le reste de la reconstruction continue
	events := []models.Event{
		auraFaded(3.0, target, corruptionID()),
		stacksChange(4.0, target, corruptionID(), 0, 1),
		auraGained(5.0, target, corruptionID()),
		auraFaded(7.0, target, corruptionID()),
	}

	logs := a.AuraUptimes(events, targetEntity(), 300.0)
	if len(logs) != 1 {
		t.Fatalf("expected 1 interval, got %d", len(logs))
	}
	if logs[0].GainedAt != 5.0 || logs[0].FadedAt != 7.0 {
		t.Errorf("expected [5, 7], got [%f, %f]", logs[0].GainedAt, logs[0].FadedAt)
	}
	if len(logs[0].StacksChange) != 0 {
		t.Errorf("orphan stacks change must not attach, got %d", len(logs[0].StacksChange))
	}
}

func TestAuraUptimesFiltersByEntity(t *testing.T) {
	a := testAnalyzer()
	target := targetEntity()
	other := &models.Entity{Name: "Target", Index: 1, IsTarget: true}

	events := []models.Event{
		auraGained(1.0, target, corruptionID()),
		auraGained(2.0, other, corruptionID()),
		auraFaded(5.0, target, corruptionID()),
	}

	logs := a.AuraUptimes(events, targetEntity(), 300.0)
	if len(logs) != 1 {
		t.Fatalf("expected 1 interval for the queried entity, got %d", len(logs))
	}
	if logs[0].GainedAt != 1.0 {
		t.Errorf("expected the queried entity's interval, got gain at %f", logs[0].GainedAt)
	}
}
