// internal/repository/encounter_repository.go
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"combatlog/internal/models"
)

// EncounterRepositoryInterface définit les méthodes du repository des logs téléversés
type EncounterRepositoryInterface interface {
	Create(ctx context.Context, encounter *models.Encounter) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Encounter, error)
	List(ctx context.Context, userID uuid.UUID, page, limit int) ([]*models.Encounter, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

// EncounterRepository implémente l'interface EncounterRepositoryInterface
type EncounterRepository struct {
	db *sqlx.DB
}

// NewEncounterRepository crée une nouvelle instance du repository
func NewEncounterRepository(db *sqlx.DB) EncounterRepositoryInterface {
	return &EncounterRepository{db: db}
}

// Create insère un log téléversé
func (r *EncounterRepository) Create(ctx context.Context, encounter *models.Encounter) error {
	query := `
		INSERT INTO encounters (id, user_id, name, raw_text, line_count, duration, uploaded_at)
		VALUES (:id, :user_id, :name, :raw_text, :line_count, :duration, :uploaded_at)`

	if _, err := r.db.NamedExecContext(ctx, query, encounter); err != nil {
		return fmt.Errorf("failed to create encounter: %w", err)
	}
	return nil
}

// GetByID récupère un log par identifiant
func (r *EncounterRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Encounter, error) {
	var encounter models.Encounter
	query := `SELECT * FROM encounters WHERE id = $1`

	if err := r.db.GetContext(ctx, &encounter, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("encounter %s not found", id)
		}
		return nil, fmt.Errorf("failed to get encounter: %w", err)
	}
	return &encounter, nil
}

// List retourne les logs d'un utilisateur, paginés, du plus récent au plus ancien
func (r *EncounterRepository) List(ctx context.Context, userID uuid.UUID, page, limit int) ([]*models.Encounter, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM encounters WHERE user_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, 0, fmt.Errorf("failed to count encounters: %w", err)
	}

	encounters := []*models.Encounter{}
	query := `
		SELECT id, user_id, name, '' AS raw_text, line_count, duration, uploaded_at
		FROM encounters
		WHERE user_id = $1
		ORDER BY uploaded_at DESC
		LIMIT $2 OFFSET $3`

	offset := (page - 1) * limit
	if err := r.db.SelectContext(ctx, &encounters, query, userID, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list encounters: %w", err)
	}

	return encounters, total, nil
}

// Delete supprime un log téléversé
func (r *EncounterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM encounters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete encounter: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("encounter %s not found", id)
	}
	return nil
}

// Count retourne le nombre total de logs stockés
func (r *EncounterRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM encounters`); err != nil {
		return 0, fmt.Errorf("failed to count encounters: %w", err)
	}
	return total, nil
}
