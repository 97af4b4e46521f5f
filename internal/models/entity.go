// internal/models/entity.go
package models

import "fmt"

// Entity représente un participant du combat résolu depuis un label entre crochets
// ([Target N], [Owner (#N) - Pet] ou [Name (#N)]). Immuable après construction.
type Entity struct {
	Name      string `json:"name"`
	OwnerName string `json:"owner_name,omitempty"`
	Index     int    `json:"index"`
	IsTarget  bool   `json:"is_target"`
	IsPet     bool   `json:"is_pet"`
}

// Equals compare deux entités par égalité structurelle sur les champs discriminants
func (e *Entity) Equals(other *Entity) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.Name == other.Name &&
		e.OwnerName == other.OwnerName &&
		e.Index == other.Index &&
		e.IsTarget == other.IsTarget &&
		e.IsPet == other.IsPet
}

// Label reconstruit le label textuel de l'entité (pour les logs et le debug)
func (e *Entity) Label() string {
	switch {
	case e.IsTarget:
		return fmt.Sprintf("[Target %d]", e.Index+1)
	case e.IsPet:
		return fmt.Sprintf("[%s (#%d) - %s]", e.OwnerName, e.Index+1, e.Name)
	default:
		return fmt.Sprintf("[%s (#%d)]", e.Name, e.Index+1)
	}
}
