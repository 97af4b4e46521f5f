// internal/service/interfaces.go
package service

import (
	"context"

	"github.com/google/uuid"

	"combatlog/internal/models"
)

// AnalysisServiceInterface définit les opérations d'analyse de logs de combat.
// Les séquences dérivées sont recalculées à chaque appel depuis le texte brut
// stocké ; aucun résultat d'analyse n'est persisté.
type AnalysisServiceInterface interface {
	// Gestion des logs téléversés
	UploadEncounter(ctx context.Context, userID uuid.UUID, req *models.UploadEncounterRequest) (*models.Encounter, error)
	GetEncounter(ctx context.Context, id uuid.UUID) (*models.Encounter, error)
	ListEncounters(ctx context.Context, userID uuid.UUID, page, limit int) ([]*models.Encounter, int, error)
	DeleteEncounter(ctx context.Context, id uuid.UUID) error

	// Séquence de base et séquences dérivées
	Events(ctx context.Context, id uuid.UUID) ([]models.Event, *models.Encounter, error)
	AuraUptimes(ctx context.Context, id uuid.UUID, entity *models.Entity) ([]*models.AuraUptimeLog, error)
	CastLogs(ctx context.Context, id uuid.UUID) ([]*models.CastLog, error)
	DpsLogs(ctx context.Context, id uuid.UUID) ([]*models.DpsLog, error)
	ResourceGroups(ctx context.Context, id uuid.UUID, resourceType models.ResourceType) ([]*models.ResourceChangedLogGroup, error)
	ThreatGroups(ctx context.Context, id uuid.UUID) ([]*models.ThreatLogGroup, error)
}
