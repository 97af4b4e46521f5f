package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"combatlog/internal/config"
	"combatlog/internal/models"
)

// fakeEncounterRepository repository en mémoire pour les tests du service
type fakeEncounterRepository struct {
	encounters map[uuid.UUID]*models.Encounter
}

func newFakeEncounterRepository() *fakeEncounterRepository {
	return &fakeEncounterRepository{encounters: make(map[uuid.UUID]*models.Encounter)}
}

func (f *fakeEncounterRepository) Create(ctx context.Context, encounter *models.Encounter) error {
	f.encounters[encounter.ID] = encounter
	return nil
}

func (f *fakeEncounterRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Encounter, error) {
	encounter, ok := f.encounters[id]
	if !ok {
		return nil, fmt.Errorf("encounter %s not found", id)
	}
	return encounter, nil
}

func (f *fakeEncounterRepository) List(ctx context.Context, userID uuid.UUID, page, limit int) ([]*models.Encounter, int, error) {
	var list []*models.Encounter
	for _, encounter := range f.encounters {
		if encounter.UserID == userID {
			list = append(list, encounter)
		}
	}
	return list, len(list), nil
}

func (f *fakeEncounterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.encounters[id]; !ok {
		return fmt.Errorf("encounter %s not found", id)
	}
	delete(f.encounters, id)
	return nil
}

func (f *fakeEncounterRepository) Count(ctx context.Context) (int, error) {
	return len(f.encounters), nil
}

// fakeResolver résolution locale sans service externe
type fakeResolver struct{}

func (fakeResolver) Resolve(ctx context.Context, label string, ownerIndex *int) (*models.ActionID, error) {
	return &models.ActionID{OtherID: label, Name: label}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Parser: config.ParserConfig{
			DPSWindow:                15.0,
			DefaultEncounterDuration: 300,
			ResolverConcurrency:      4,
			TagInsensitiveSpells:     []int32{30451, 42897},
		},
	}
}

const testLog = `[0.0] [Raven (#1)] Casting Shadow Bolt (Cost = 420.0, Cast Time = 2.5s, Effective Time = 2.5s).
[2.5] [Raven (#1)] Completed cast Shadow Bolt.
[3.0] [Raven (#1)] Shadow Bolt: Hit [Target 1] for 150.0 damage. (Threat: 150.0)
[3.0] [Target 1] Aura gained: Corruption.
[4.0] [Raven (#1)] Gained 200.0 mana from Life Tap. (3800.0 --> 4000.0 of 5000.0)
[9.0] [Target 1] Aura faded: Corruption.`

func newTestService(t *testing.T) (AnalysisServiceInterface, *fakeEncounterRepository) {
	t.Helper()
	repo := newFakeEncounterRepository()
	return NewAnalysisService(repo, fakeResolver{}, testConfig()), repo
}

func uploadTestLog(t *testing.T, svc AnalysisServiceInterface, duration float64) *models.Encounter {
	t.Helper()
	encounter, err := svc.UploadEncounter(context.Background(), uuid.New(), &models.UploadEncounterRequest{
		Name:     "Karazhan clear",
		RawText:  testLog,
		Duration: duration,
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	return encounter
}

func TestUploadEncounterDurationFromRequest(t *testing.T) {
	svc, _ := newTestService(t)

	encounter := uploadTestLog(t, svc, 120.0)
	if encounter.Duration != 120.0 {
		t.Errorf("expected requested duration 120, got %f", encounter.Duration)
	}
	if encounter.LineCount != 6 {
		t.Errorf("expected 6 lines, got %d", encounter.LineCount)
	}
}

func TestUploadEncounterDurationFromLastTimestamp(t *testing.T) {
	svc, _ := newTestService(t)

	encounter := uploadTestLog(t, svc, 0)
	if encounter.Duration != 9.0 {
		t.Errorf("expected duration from last timestamp 9, got %f", encounter.Duration)
	}
}

func TestUploadEncounterDurationFallsBackToConfig(t *testing.T) {
	svc, _ := newTestService(t)

	encounter, err := svc.UploadEncounter(context.Background(), uuid.New(), &models.UploadEncounterRequest{
		Name:    "Empty log",
		RawText: "no events here",
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if encounter.Duration != 300 {
		t.Errorf("expected configured default duration 300, got %f", encounter.Duration)
	}
}

func TestUploadEncounterRejectsInvalidRequest(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UploadEncounter(context.Background(), uuid.New(), &models.UploadEncounterRequest{Name: "No text"})
	if err == nil {
		t.Fatal("expected a validation error")
	}
}

func TestEventsPreserveLineOrder(t *testing.T) {
	svc, _ := newTestService(t)
	encounter := uploadTestLog(t, svc, 0)

	events, got, err := svc.Events(context.Background(), encounter.ID)
	if err != nil {
		t.Fatalf("events failed: %v", err)
	}
	if got.ID != encounter.ID {
		t.Error("expected the uploaded encounter's metadata")
	}
	if len(events) != 6 {
		t.Fatalf("expected 6 events, got %d", len(events))
	}
	for i, event := range events {
		if event.Header().LogIndex != i {
			t.Fatalf("event %d has log index %d", i, event.Header().LogIndex)
		}
	}
}

func TestDerivedSequencesFromUploadedLog(t *testing.T) {
	svc, _ := newTestService(t)
	encounter := uploadTestLog(t, svc, 0)
	ctx := context.Background()

	auras, err := svc.AuraUptimes(ctx, encounter.ID, &models.Entity{Name: "Target", Index: 0, IsTarget: true})
	if err != nil {
		t.Fatalf("aura uptimes failed: %v", err)
	}
	if len(auras) != 1 || auras[0].GainedAt != 3.0 || auras[0].FadedAt != 9.0 {
		t.Errorf("expected one aura interval [3, 9], got %v", auras)
	}

	casts, err := svc.CastLogs(ctx, encounter.ID)
	if err != nil {
		t.Fatalf("cast logs failed: %v", err)
	}
	if len(casts) != 1 || casts[0].CastCompleted == nil {
		t.Fatalf("expected one completed cast, got %v", casts)
	}
	if casts[0].TravelTime != 0.5 {
		t.Errorf("expected travel time 0.5, got %f", casts[0].TravelTime)
	}

	dps, err := svc.DpsLogs(ctx, encounter.ID)
	if err != nil {
		t.Fatalf("dps logs failed: %v", err)
	}
	if len(dps) != 1 || dps[0].DPS != 10.0 {
		t.Errorf("expected one dps point at 10, got %v", dps)
	}

	resources, err := svc.ResourceGroups(ctx, encounter.ID, models.ResourceMana)
	if err != nil {
		t.Fatalf("resource groups failed: %v", err)
	}
	if len(resources) != 1 || resources[0].ValueAfter != 4000.0 {
		t.Errorf("expected one mana group ending at 4000, got %v", resources)
	}

	threat, err := svc.ThreatGroups(ctx, encounter.ID)
	if err != nil {
		t.Fatalf("threat groups failed: %v", err)
	}
	if len(threat) != 1 || threat[0].ThreatAfter != 150.0 {
		t.Errorf("expected one threat group ending at 150, got %v", threat)
	}
}

func TestDeleteEncounter(t *testing.T) {
	svc, repo := newTestService(t)
	encounter := uploadTestLog(t, svc, 0)

	if err := svc.DeleteEncounter(context.Background(), encounter.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(repo.encounters) != 0 {
		t.Error("expected the encounter to be gone")
	}

	if _, _, err := svc.Events(context.Background(), encounter.ID); err == nil {
		t.Error("expected an error for a deleted encounter")
	}
}
