// internal/external/spell_client.go
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"combatlog/internal/config"
	"combatlog/internal/models"
	"combatlog/internal/monitoring"
)

// SpellClientInterface définit les méthodes pour communiquer avec le service Spell
type SpellClientInterface interface {
	Resolve(ctx context.Context, label string, ownerIndex *int) (*models.ActionID, error)
}

// SpellClient implémente l'interface SpellClientInterface
type SpellClient struct {
	baseURL    string
	httpClient *http.Client
	config     *config.Config
}

// NewSpellClient crée une nouvelle instance du client Spell
func NewSpellClient(cfg *config.Config) SpellClientInterface {
	return &SpellClient{
		baseURL: cfg.Services.SpellService.URL,
		httpClient: &http.Client{
			Timeout: cfg.Services.SpellService.Timeout,
		},
		config: cfg,
	}
}

// Resolve résout un label textuel d'action/aura en identifiant canonique.
// L'index du lanceur est transmis quand il est connu : certains labels sont
// ambigus entre plusieurs lanceurs.
func (c *SpellClient) Resolve(ctx context.Context, label string, ownerIndex *int) (*models.ActionID, error) {
	query := url.Values{}
	query.Set("label", label)
	if ownerIndex != nil {
		query.Set("owner_index", strconv.Itoa(*ownerIndex))
	}

	endpoint := fmt.Sprintf("%s/api/v1/services/spells/resolve?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		monitoring.ResolverFailuresTotal.Inc()
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		monitoring.ResolverFailuresTotal.Inc()
		return nil, fmt.Errorf("spell service returned status %d", resp.StatusCode)
	}

	var actionID models.ActionID
	if err := json.NewDecoder(resp.Body).Decode(&actionID); err != nil {
		return nil, fmt.Errorf("failed to decode spell service response: %w", err)
	}

	return &actionID, nil
}
