// internal/models/requests.go
package models

import "fmt"

// UploadEncounterRequest représente une demande de téléversement de log
type UploadEncounterRequest struct {
	Name     string  `json:"name" binding:"required"`
	RawText  string  `json:"raw_text" binding:"required"`
	Duration float64 `json:"duration,omitempty"` // durée de la rencontre, déduite du log si absente
}

// Validate valide la demande de téléversement
func (r *UploadEncounterRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("encounter name is required")
	}
	if r.RawText == "" {
		return fmt.Errorf("raw log text is required")
	}
	if r.Duration < 0 {
		return fmt.Errorf("duration must not be negative")
	}
	return nil
}

// ListEncountersRequest représente une demande de listing paginé
type ListEncountersRequest struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// Normalize applique les valeurs par défaut de pagination
func (r *ListEncountersRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > 100 {
		r.Limit = 20
	}
}

// AuraQueryRequest paramètres de la requête d'uptime d'auras
type AuraQueryRequest struct {
	EntityName  string `form:"entity" binding:"required"`
	EntityIndex int    `form:"index"`
	IsTarget    bool   `form:"is_target"`
	IsPet       bool   `form:"is_pet"`
	OwnerName   string `form:"owner"`
}

// Entity construit l'entité cible de la requête
func (r *AuraQueryRequest) Entity() *Entity {
	return &Entity{
		Name:      r.EntityName,
		OwnerName: r.OwnerName,
		Index:     r.EntityIndex,
		IsTarget:  r.IsTarget,
		IsPet:     r.IsPet,
	}
}
