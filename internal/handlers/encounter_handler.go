// internal/handlers/encounter_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"combatlog/internal/config"
	"combatlog/internal/models"
	"combatlog/internal/service"
)

// EncounterHandler gère les requêtes HTTP de gestion et d'analyse des logs
type EncounterHandler struct {
	analysisService service.AnalysisServiceInterface
	config          *config.Config
}

// NewEncounterHandler crée une nouvelle instance du handler
func NewEncounterHandler(analysisService service.AnalysisServiceInterface, cfg *config.Config) *EncounterHandler {
	return &EncounterHandler{
		analysisService: analysisService,
		config:          cfg,
	}
}

// UploadEncounter téléverse un log brut
// POST /api/v1/encounters
func (h *EncounterHandler) UploadEncounter(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		respondWithError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req models.UploadEncounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	encounter, err := h.analysisService.UploadEncounter(c.Request.Context(), userID, &req)
	if err != nil {
		logrus.WithError(err).Error("Failed to upload encounter")
		respondWithError(c, http.StatusInternalServerError, "Failed to upload encounter")
		return
	}

	c.JSON(http.StatusCreated, models.EncounterResponse{
		Success:   true,
		Encounter: encounter,
		Message:   "Encounter uploaded successfully",
	})
}

// ListEncounters liste les logs de l'utilisateur
// GET /api/v1/encounters
func (h *EncounterHandler) ListEncounters(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		respondWithError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req models.ListEncountersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return
	}
	req.Normalize()

	encounters, total, err := h.analysisService.ListEncounters(c.Request.Context(), userID, req.Page, req.Limit)
	if err != nil {
		logrus.WithError(err).Error("Failed to list encounters")
		respondWithError(c, http.StatusInternalServerError, "Failed to list encounters")
		return
	}

	c.JSON(http.StatusOK, models.EncounterListResponse{
		Encounters: encounters,
		Total:      total,
		Page:       req.Page,
		Limit:      req.Limit,
	})
}

// GetEncounter retourne les métadonnées d'un log
// GET /api/v1/encounters/:id
func (h *EncounterHandler) GetEncounter(c *gin.Context) {
	id, ok := extractEncounterID(c)
	if !ok {
		return
	}

	encounter, err := h.analysisService.GetEncounter(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, http.StatusNotFound, "Encounter not found")
		return
	}

	c.JSON(http.StatusOK, models.EncounterResponse{
		Success:   true,
		Encounter: encounter,
	})
}

// DeleteEncounter supprime un log
// DELETE /api/v1/encounters/:id
func (h *EncounterHandler) DeleteEncounter(c *gin.Context) {
	id, ok := extractEncounterID(c)
	if !ok {
		return
	}

	if err := h.analysisService.DeleteEncounter(c.Request.Context(), id); err != nil {
		respondWithError(c, http.StatusNotFound, "Encounter not found")
		return
	}

	respondWithSuccess(c, nil, "Encounter deleted")
}

// GetEvents retourne la séquence typée complète
// GET /api/v1/encounters/:id/events
func (h *EncounterHandler) GetEvents(c *gin.Context) {
	id, ok := extractEncounterID(c)
	if !ok {
		return
	}

	events, encounter, err := h.analysisService.Events(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, http.StatusNotFound, "Encounter not found")
		return
	}

	c.JSON(http.StatusOK, models.EventsResponse{
		EncounterID: encounter.ID.String(),
		Duration:    encounter.Duration,
		Events:      events,
	})
}

// GetAuras retourne les intervalles de présence d'auras d'une entité
// GET /api/v1/encounters/:id/auras?entity=...&index=...
func (h *EncounterHandler) GetAuras(c *gin.Context) {
	id, ok := extractEncounterID(c)
	if !ok {
		return
	}

	var req models.AuraQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid entity query", err.Error())
		return
	}

	entity := req.Entity()
	auras, err := h.analysisService.AuraUptimes(c.Request.Context(), id, entity)
	if err != nil {
		respondWithError(c, http.StatusNotFound, "Encounter not found")
		return
	}

	c.JSON(http.StatusOK, models.AurasResponse{
		Entity: entity,
		Auras:  auras,
	})
}

// GetCasts retourne les incantations appariées
// GET /api/v1/encounters/:id/casts
func (h *EncounterHandler) GetCasts(c *gin.Context) {
	id, ok := extractEncounterID(c)
	if !ok {
		return
	}

	casts, err := h.analysisService.CastLogs(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, http.StatusNotFound, "Encounter not found")
		return
	}

	c.JSON(http.StatusOK, models.CastsResponse{Casts: casts})
}

// GetDps retourne la série temporelle de DPS
// GET /api/v1/encounters/:id/dps
func (h *EncounterHandler) GetDps(c *gin.Context) {
	id, ok := extractEncounterID(c)
	if !ok {
		return
	}

	logs, err := h.analysisService.DpsLogs(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, http.StatusNotFound, "Encounter not found")
		return
	}

	c.JSON(http.StatusOK, models.DpsResponse{
		Window: h.config.Parser.DPSWindow,
		Logs:   logs,
	})
}

// GetResources retourne les groupes de changement d'une ressource
// GET /api/v1/encounters/:id/resources/:type
func (h *EncounterHandler) GetResources(c *gin.Context) {
	id, ok := extractEncounterID(c)
	if !ok {
		return
	}

	resourceType := models.ResourceType(c.Param("type"))
	groups, err := h.analysisService.ResourceGroups(c.Request.Context(), id, resourceType)
	if err != nil {
		respondWithError(c, http.StatusNotFound, "Encounter not found")
		return
	}

	c.JSON(http.StatusOK, models.ResourcesResponse{
		ResourceType: resourceType,
		Groups:       groups,
	})
}

// GetThreat retourne la menace cumulée
// GET /api/v1/encounters/:id/threat
func (h *EncounterHandler) GetThreat(c *gin.Context) {
	id, ok := extractEncounterID(c)
	if !ok {
		return
	}

	groups, err := h.analysisService.ThreatGroups(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, http.StatusNotFound, "Encounter not found")
		return
	}

	c.JSON(http.StatusOK, models.ThreatResponse{Groups: groups})
}

// extractEncounterID récupère et valide l'identifiant de log de l'URL
func extractEncounterID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid encounter id")
		return uuid.Nil, false
	}
	return id, true
}

// extractUserID récupère l'ID utilisateur depuis le contexte Gin
func extractUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}

	raw, ok := value.(string)
	if !ok {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// respondWithError envoie une réponse d'erreur standardisée
func respondWithError(c *gin.Context, code int, message string, details ...interface{}) {
	response := gin.H{
		"error":      message,
		"request_id": c.GetHeader("X-Request-ID"),
	}

	if len(details) > 0 {
		response["details"] = details[0]
	}

	c.JSON(code, response)
}

// respondWithSuccess envoie une réponse de succès standardisée
func respondWithSuccess(c *gin.Context, data interface{}, message ...string) {
	response := gin.H{
		"success": true,
		"data":    data,
	}

	if len(message) > 0 {
		response["message"] = message[0]
	}

	c.JSON(http.StatusOK, response)
}
