package parser

import (
	"testing"

	"combatlog/internal/models"
)

func TestParseEntitiesTarget(t *testing.T) {
	entities := ParseEntities("[Target 3]")
	if len(entities) != 1 {
		t.Fatalf("expected 1 entity, got %d", len(entities))
	}

	e := entities[0]
	if !e.IsTarget {
		t.Error("expected IsTarget=true")
	}
	if e.Index != 2 {
		t.Errorf("expected 0-based index 2, got %d", e.Index)
	}
	if e.IsPet {
		t.Error("expected IsPet=false")
	}
}

func TestParseEntitiesPet(t *testing.T) {
	entities := ParseEntities("[Bob (#2) - Wolf]")
	if len(entities) != 1 {
		t.Fatalf("expected 1 entity, got %d", len(entities))
	}

	e := entities[0]
	if !e.IsPet {
		t.Error("expected IsPet=true")
	}
	if e.OwnerName != "Bob" {
		t.Errorf("expected owner Bob, got %q", e.OwnerName)
	}
	if e.Name != "Wolf" {
		t.Errorf("expected name Wolf, got %q", e.Name)
	}
	if e.Index != 1 {
		t.Errorf("expected 0-based index 1, got %d", e.Index)
	}
}

func TestParseEntitiesCharacter(t *testing.T) {
	entities := ParseEntities("[Raven (#1)]")
	if len(entities) != 1 {
		t.Fatalf("expected 1 entity, got %d", len(entities))
	}

	e := entities[0]
	if e.IsTarget || e.IsPet {
		t.Error("expected plain character entity")
	}
	if e.Name != "Raven" {
		t.Errorf("expected name Raven, got %q", e.Name)
	}
	if e.Index != 0 {
		t.Errorf("expected 0-based index 0, got %d", e.Index)
	}
}

func TestParseEntitiesOrder(t *testing.T) {
	// Source puis cible, de gauche à droite
	entities := ParseEntities("[Raven (#1)] Shadow Bolt: Hit [Target 1] for 150.0 damage.")
	if len(entities) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(entities))
	}
	if entities[0].Name != "Raven" {
		t.Errorf("expected source Raven, got %q", entities[0].Name)
	}
	if !entities[1].IsTarget {
		t.Error("expected second entity to be the target")
	}
}

func TestParseEntitiesNone(t *testing.T) {
	if entities := ParseEntities("Aura gained: Shadow Weaving."); entities != nil {
		t.Fatalf("expected no entities, got %v", entities)
	}
}

func TestParseEntitiesEquality(t *testing.T) {
	a := ParseEntities("[Bob (#2) - Wolf]")[0]
	b := ParseEntities("[Bob (#2) - Wolf]")[0]
	if !a.Equals(b) {
		t.Error("identical labels must resolve to structurally equal entities")
	}

	c := ParseEntities("[Bob (#3) - Wolf]")[0]
	if a.Equals(c) {
		t.Error("different indices must not compare equal")
	}

	var nilEntity *models.Entity
	if a.Equals(nilEntity) {
		t.Error("entity must not equal nil")
	}
}

func TestParseEntitiesMalformedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on malformed bracket content")
		}
	}()
	// Contrat d'entrée violé : doit échouer bruyamment
	ParseEntities("[this is not an entity]")
}
