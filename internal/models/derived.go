// internal/models/derived.go
package models

// Les types dérivés référencent les événements de base sans les posséder :
// les reconstructions ne modifient jamais la séquence d'origine.

// AuraUptimeLog intervalle de présence d'une aura sur une cible,
// avec les changements de charges survenus pendant l'intervalle
type AuraUptimeLog struct {
	EventHeader
	GainedAt     float64             `json:"gained_at"`
	FadedAt      float64             `json:"faded_at"`
	StacksChange []*AuraStacksChange `json:"stacks_change,omitempty"`
}

// CastLog incantation appariée (début + fin) avec les dégâts attribués
type CastLog struct {
	CastBegan     *CastBegan     `json:"cast_began"`
	CastCompleted *CastCompleted `json:"cast_completed,omitempty"`
	DamageDealt   []*DamageDealt `json:"damage_dealt,omitempty"`
	CastTime      float64        `json:"cast_time"`
	EffectiveTime float64        `json:"effective_time"`
	TravelTime    float64        `json:"travel_time"`
}

// Timestamp retourne le timestamp de référence du cast (début d'incantation)
func (c *CastLog) Timestamp() float64 {
	return c.CastBegan.Timestamp
}

// DpsLog point de la série temporelle de DPS sur fenêtre glissante,
// un par groupe de dégâts simultanés
type DpsLog struct {
	Timestamp  float64        `json:"timestamp"`
	DPS        float64        `json:"dps"`
	DamageLogs []*DamageDealt `json:"damage_logs"`
}

// ResourceChangedLogGroup changements de ressource agrégés par type
// et par timestamp simultané
type ResourceChangedLogGroup struct {
	ResourceType ResourceType       `json:"resource_type"`
	ValueBefore  float64            `json:"value_before"`
	ValueAfter   float64            `json:"value_after"`
	MaxValue     float64            `json:"max_value"`
	Logs         []*ResourceChanged `json:"logs"`
}

// ThreatLogGroup menace cumulée avant/après un groupe d'événements simultanés
type ThreatLogGroup struct {
	ThreatBefore float64 `json:"threat_before"`
	ThreatAfter  float64 `json:"threat_after"`
	Logs         []Event `json:"logs"`
}
