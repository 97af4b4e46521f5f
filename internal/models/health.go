// internal/models/health.go
package models

import (
	"time"
)

// Constantes pour les statuts de santé
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"
)

// HealthResponse représente la réponse de santé du service
type HealthResponse struct {
	Status    string                 `json:"status"`
	Service   string                 `json:"service"`
	Version   string                 `json:"version"`
	Timestamp time.Time              `json:"timestamp"`
	Uptime    string                 `json:"uptime"`
	Checks    map[string]interface{} `json:"checks"`
}

// HealthCheck représente un contrôle de santé individuel
type HealthCheck struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Details interface{} `json:"details,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// DatabaseHealth représente la santé de la base de données
type DatabaseHealth struct {
	Status         string        `json:"status"`
	ResponseTime   time.Duration `json:"response_time"`
	Connections    int           `json:"connections"`
	MaxConnections int           `json:"max_connections"`
	Error          string        `json:"error,omitempty"`
}

// SystemHealth représente la santé du système
type SystemHealth struct {
	MemoryUsage float64 `json:"memory_usage"`
	Goroutines  int     `json:"goroutines"`
	GCCycles    uint32  `json:"gc_cycles"`
}

// ParserHealth représente la santé spécifique au parsing de logs
type ParserHealth struct {
	EncountersStored   int       `json:"encounters_stored"`
	LinesParsedTotal   int64     `json:"lines_parsed_total"`
	ResolverFailures   int64     `json:"resolver_failures"`
	UnmatchedAuraLogs  int64     `json:"unmatched_aura_logs"`
	LastParseDuration  float64   `json:"last_parse_duration_seconds"`
	LastEncounterAt    time.Time `json:"last_encounter_at"`
}

// ServiceStatus représente le statut d'un service externe
type ServiceStatus struct {
	Name         string        `json:"name"`
	Status       string        `json:"status"`
	URL          string        `json:"url"`
	ResponseTime time.Duration `json:"response_time"`
	LastCheck    time.Time     `json:"last_check"`
	Error        string        `json:"error,omitempty"`
}

// ReadinessProbe représente une sonde de préparation
type ReadinessProbe struct {
	Database   bool   `json:"database"`
	Services   bool   `json:"external_services"`
	Migrations bool   `json:"migrations"`
	Ready      bool   `json:"ready"`
	Message    string `json:"message,omitempty"`
}

// LivenessProbe représente une sonde de vie
type LivenessProbe struct {
	Healthy      bool   `json:"healthy"`
	Uptime       string `json:"uptime"`
	MemoryOK     bool   `json:"memory_ok"`
	GoroutinesOK bool   `json:"goroutines_ok"`
	Message      string `json:"message,omitempty"`
}

// GetHealthStatus retourne le statut de santé global
func GetHealthStatus(checks map[string]*HealthCheck) string {
	for _, check := range checks {
		if check.Status != HealthStatusHealthy {
			return HealthStatusUnhealthy
		}
	}
	return HealthStatusHealthy
}

// CreateHealthCheck crée un contrôle de santé
func CreateHealthCheck(status, message string, details interface{}, err error) *HealthCheck {
	check := &HealthCheck{
		Status:  status,
		Message: message,
		Details: details,
	}

	if err != nil {
		check.Error = err.Error()
		if status == "" {
			check.Status = HealthStatusUnhealthy
		}
	} else if status == "" {
		check.Status = HealthStatusHealthy
	}

	return check
}

// IsHealthy vérifie si le service est en bonne santé
func (h *HealthResponse) IsHealthy() bool {
	return h.Status == HealthStatusHealthy
}

// AddCheck ajoute un contrôle de santé
func (h *HealthResponse) AddCheck(name string, check *HealthCheck) {
	if h.Checks == nil {
		h.Checks = make(map[string]interface{})
	}
	h.Checks[name] = check

	// Mettre à jour le statut global
	if check.Status != HealthStatusHealthy {
		h.Status = HealthStatusUnhealthy
	}
}
