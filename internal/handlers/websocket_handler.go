// internal/handlers/websocket_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"combatlog/internal/service"
)

// WebSocketHandler diffuse la séquence d'événements d'un log sur une
// connexion WebSocket, trame par trame, dans l'ordre des lignes
type WebSocketHandler struct {
	upgrader        websocket.Upgrader
	analysisService service.AnalysisServiceInterface
}

// NewWebSocketHandler crée une nouvelle instance du handler WebSocket
func NewWebSocketHandler(analysisService service.AnalysisServiceInterface) *WebSocketHandler {
	return &WebSocketHandler{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // En production, vérifier l'origine
			},
		},
		analysisService: analysisService,
	}
}

// StreamEncounter gère une connexion de streaming d'événements
// GET /ws/encounters/:id
func (h *WebSocketHandler) StreamEncounter(c *gin.Context) {
	id, ok := extractEncounterID(c)
	if !ok {
		return
	}

	events, encounter, err := h.analysisService.Events(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, http.StatusNotFound, "Encounter not found")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Error("Failed to upgrade WebSocket connection")
		return
	}
	defer conn.Close()

	// Message d'ouverture avec les métadonnées du log
	welcome := map[string]interface{}{
		"type":         "encounter",
		"encounter_id": encounter.ID.String(),
		"name":         encounter.Name,
		"duration":     encounter.Duration,
		"line_count":   encounter.LineCount,
	}
	if err := conn.WriteJSON(welcome); err != nil {
		logrus.WithError(err).Error("Failed to send encounter metadata")
		return
	}

	// Une trame par événement, dans l'ordre des lignes du log
	for _, event := range events {
		frame := map[string]interface{}{
			"type":  "event",
			"kind":  event.Kind(),
			"event": event,
		}
		if err := conn.WriteJSON(frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logrus.WithError(err).Warn("WebSocket closed during event stream")
			}
			return
		}
	}

	// Trame de fin de flux
	if err := conn.WriteJSON(map[string]interface{}{"type": "end"}); err != nil {
		logrus.WithError(err).Debug("Failed to send end frame")
	}
}
