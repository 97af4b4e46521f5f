// internal/service/analysis_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"combatlog/internal/analysis"
	"combatlog/internal/config"
	"combatlog/internal/models"
	"combatlog/internal/monitoring"
	"combatlog/internal/parser"
	"combatlog/internal/repository"
)

// AnalysisService implémente AnalysisServiceInterface
type AnalysisService struct {
	encounterRepo repository.EncounterRepositoryInterface
	classifier    *parser.Classifier
	analyzer      *analysis.Analyzer
	config        *config.Config
}

// NewAnalysisService crée une nouvelle instance du service d'analyse
func NewAnalysisService(
	encounterRepo repository.EncounterRepositoryInterface,
	resolver parser.ActionResolver,
	cfg *config.Config,
) AnalysisServiceInterface {
	return &AnalysisService{
		encounterRepo: encounterRepo,
		classifier:    parser.NewClassifier(resolver, cfg.Parser.ResolverConcurrency),
		analyzer:      analysis.NewAnalyzer(cfg.Parser),
		config:        cfg,
	}
}

// UploadEncounter enregistre un log brut. La durée de la rencontre vient de
// la requête, sinon du dernier timestamp observé dans le log, sinon de la
// configuration.
func (s *AnalysisService) UploadEncounter(ctx context.Context, userID uuid.UUID, req *models.UploadEncounterRequest) (*models.Encounter, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid upload request: %w", err)
	}

	events := s.parse(ctx, req.RawText)

	duration := req.Duration
	if duration == 0 {
		duration = lastTimestamp(events)
	}
	if duration == 0 {
		duration = s.config.Parser.DefaultEncounterDuration
	}

	encounter := &models.Encounter{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       req.Name,
		RawText:    req.RawText,
		LineCount:  len(events),
		Duration:   duration,
		UploadedAt: time.Now(),
	}

	if err := s.encounterRepo.Create(ctx, encounter); err != nil {
		return nil, err
	}
	monitoring.EncountersUploadedTotal.Inc()

	logrus.WithFields(logrus.Fields{
		"encounter_id": encounter.ID,
		"user_id":      userID,
		"lines":        encounter.LineCount,
		"duration":     encounter.Duration,
	}).Info("Encounter uploaded")

	return encounter, nil
}

// GetEncounter récupère les métadonnées d'un log
func (s *AnalysisService) GetEncounter(ctx context.Context, id uuid.UUID) (*models.Encounter, error) {
	return s.encounterRepo.GetByID(ctx, id)
}

// ListEncounters liste les logs d'un utilisateur
func (s *AnalysisService) ListEncounters(ctx context.Context, userID uuid.UUID, page, limit int) ([]*models.Encounter, int, error) {
	return s.encounterRepo.List(ctx, userID, page, limit)
}

// DeleteEncounter supprime un log
func (s *AnalysisService) DeleteEncounter(ctx context.Context, id uuid.UUID) error {
	return s.encounterRepo.Delete(ctx, id)
}

// Events reparse le log et retourne la séquence typée complète, dans
// l'ordre exact des lignes d'entrée
func (s *AnalysisService) Events(ctx context.Context, id uuid.UUID) ([]models.Event, *models.Encounter, error) {
	encounter, err := s.encounterRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return s.parse(ctx, encounter.RawText), encounter, nil
}

// AuraUptimes reconstruit les intervalles de présence d'auras d'une entité
func (s *AnalysisService) AuraUptimes(ctx context.Context, id uuid.UUID, entity *models.Entity) ([]*models.AuraUptimeLog, error) {
	events, encounter, err := s.Events(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.analyzer.AuraUptimes(events, entity, encounter.Duration), nil
}

// CastLogs reconstruit les incantations appariées
func (s *AnalysisService) CastLogs(ctx context.Context, id uuid.UUID) ([]*models.CastLog, error) {
	events, _, err := s.Events(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.analyzer.CastLogs(events), nil
}

// DpsLogs calcule la série temporelle de DPS
func (s *AnalysisService) DpsLogs(ctx context.Context, id uuid.UUID) ([]*models.DpsLog, error) {
	events, _, err := s.Events(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.analyzer.DpsLogs(events), nil
}

// ResourceGroups agrège les changements d'une ressource
func (s *AnalysisService) ResourceGroups(ctx context.Context, id uuid.UUID, resourceType models.ResourceType) ([]*models.ResourceChangedLogGroup, error) {
	events, _, err := s.Events(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.analyzer.ResourceGroups(events, resourceType), nil
}

// ThreatGroups calcule la menace cumulée
func (s *AnalysisService) ThreatGroups(ctx context.Context, id uuid.UUID) ([]*models.ThreatLogGroup, error) {
	events, _, err := s.Events(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.analyzer.ThreatGroups(events), nil
}

// parse classifie toutes les lignes et instrumente le passage
func (s *AnalysisService) parse(ctx context.Context, rawText string) []models.Event {
	start := time.Now()
	events := s.classifier.ParseAll(ctx, rawText)
	monitoring.ParseDuration.Observe(time.Since(start).Seconds())

	for _, event := range events {
		monitoring.LinesParsedTotal.WithLabelValues(event.Kind()).Inc()
	}

	return events
}

// lastTimestamp retourne le plus grand timestamp observé dans la séquence
func lastTimestamp(events []models.Event) float64 {
	var last float64
	for _, event := range events {
		if ts := event.Header().Timestamp; ts > last {
			last = ts
		}
	}
	return last
}
