// internal/models/responses.go
package models

// EncounterResponse représente la réponse de téléversement/lecture d'un log
type EncounterResponse struct {
	Success   bool       `json:"success"`
	Encounter *Encounter `json:"encounter,omitempty"`
	Message   string     `json:"message,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// EncounterListResponse réponse de listing paginé
type EncounterListResponse struct {
	Encounters []*Encounter `json:"encounters"`
	Total      int          `json:"total"`
	Page       int          `json:"page"`
	Limit      int          `json:"limit"`
}

// EventsResponse séquence typée complète d'un log
type EventsResponse struct {
	EncounterID string  `json:"encounter_id"`
	Duration    float64 `json:"duration"`
	Events      []Event `json:"events"`
}

// AurasResponse uptimes d'auras pour une entité
type AurasResponse struct {
	Entity *Entity          `json:"entity"`
	Auras  []*AuraUptimeLog `json:"auras"`
}

// CastsResponse incantation appariées d'un log
type CastsResponse struct {
	Casts []*CastLog `json:"casts"`
}

// DpsResponse série temporelle de DPS
type DpsResponse struct {
	Window float64   `json:"window"`
	Logs   []*DpsLog `json:"logs"`
}

// ResourcesResponse groupes de changement d'une ressource
type ResourcesResponse struct {
	ResourceType ResourceType               `json:"resource_type"`
	Groups       []*ResourceChangedLogGroup `json:"groups"`
}

// ThreatResponse menace cumulée groupe par groupe
type ThreatResponse struct {
	Groups []*ThreatLogGroup `json:"groups"`
}
