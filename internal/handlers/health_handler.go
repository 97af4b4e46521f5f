// internal/handlers/health_handler.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"combatlog/internal/config"
	"combatlog/internal/models"
	"combatlog/internal/monitoring"
	"combatlog/internal/repository"
)

// HealthHandler gère les endpoints de santé et de monitoring
type HealthHandler struct {
	config        *config.Config
	db            *sqlx.DB
	encounterRepo repository.EncounterRepositoryInterface
	metrics       *monitoring.Metrics
	startTime     time.Time
	version       string
}

// NewHealthHandler crée une nouvelle instance du handler de santé
func NewHealthHandler(
	cfg *config.Config,
	db *sqlx.DB,
	encounterRepo repository.EncounterRepositoryInterface,
	metrics *monitoring.Metrics,
	version string,
) *HealthHandler {
	return &HealthHandler{
		config:        cfg,
		db:            db,
		encounterRepo: encounterRepo,
		metrics:       metrics,
		startTime:     time.Now(),
		version:       version,
	}
}

// HealthCheck contrôle de santé global
// GET /health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	response := &models.HealthResponse{
		Status:    models.HealthStatusHealthy,
		Service:   "combatlog",
		Version:   h.version,
		Timestamp: time.Now(),
		Uptime:    time.Since(h.startTime).String(),
	}

	dbHealth := monitoring.CheckDatabase(h.db)
	response.AddCheck("database", models.CreateHealthCheck(dbHealth.Status, "", dbHealth, nil))
	response.AddCheck("system", models.CreateHealthCheck(models.HealthStatusHealthy, "", monitoring.CheckSystem(), nil))

	code := http.StatusOK
	if !response.IsHealthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, response)
}

// ReadinessCheck sonde de préparation
// GET /ready
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	probe := &models.ReadinessProbe{
		Database:   monitoring.CheckDatabase(h.db).Status == models.HealthStatusHealthy,
		Services:   true,
		Migrations: true,
	}
	probe.Ready = probe.Database && probe.Services && probe.Migrations

	code := http.StatusOK
	if !probe.Ready {
		code = http.StatusServiceUnavailable
		probe.Message = "Service not ready"
	}
	c.JSON(code, probe)
}

// LivenessCheck sonde de vie
// GET /live
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	system := monitoring.CheckSystem()

	probe := &models.LivenessProbe{
		Healthy:      true,
		Uptime:       time.Since(h.startTime).String(),
		MemoryOK:     system.MemoryUsage < 0.9,
		GoroutinesOK: system.Goroutines < 10000,
	}
	if !probe.MemoryOK || !probe.GoroutinesOK {
		probe.Healthy = false
		probe.Message = "Resource limits approaching"
	}

	code := http.StatusOK
	if !probe.Healthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, probe)
}

// Metrics expose les métriques Prometheus
// GET /metrics
func (h *HealthHandler) Metrics(c *gin.Context) {
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Stats statistiques simples du service
// GET /stats
func (h *HealthHandler) Stats(c *gin.Context) {
	total, err := h.encounterRepo.Count(c.Request.Context())
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to collect stats")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"service":            "combatlog",
		"version":            h.version,
		"uptime":             time.Since(h.startTime).String(),
		"encounters_stored":  total,
		"dps_window":         h.config.Parser.DPSWindow,
		"resolver_bound":     h.config.Parser.ResolverConcurrency,
	})
}
