// internal/models/action.go
package models

import "fmt"

// ActionID référence opaque vers un sort, un objet ou une autre action,
// résolue par le service Spell. Le tag distingue les variantes d'une même
// action (rang, proc) et peut être ignoré pour les comparaisons larges.
type ActionID struct {
	SpellID int32  `json:"spell_id,omitempty"`
	ItemID  int32  `json:"item_id,omitempty"`
	OtherID string `json:"other_id,omitempty"`
	Tag     int32  `json:"tag,omitempty"`
	Name    string `json:"name"`
}

// Equals compare deux ActionID en incluant le tag
func (a *ActionID) Equals(other *ActionID) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.SpellID == other.SpellID &&
		a.ItemID == other.ItemID &&
		a.OtherID == other.OtherID &&
		a.Tag == other.Tag
}

// EqualsIgnoringTag compare deux ActionID sans tenir compte du tag
// (utilisé pour regrouper les rangs/variantes d'une même action)
func (a *ActionID) EqualsIgnoringTag(other *ActionID) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.SpellID == other.SpellID &&
		a.ItemID == other.ItemID &&
		a.OtherID == other.OtherID
}

// String retourne la représentation canonique incluant le tag
func (a *ActionID) String() string {
	if a.Tag != 0 {
		return fmt.Sprintf("%s (Tag: %d)", a.StringIgnoringTag(), a.Tag)
	}
	return a.StringIgnoringTag()
}

// StringIgnoringTag retourne la représentation canonique sans le tag
func (a *ActionID) StringIgnoringTag() string {
	switch {
	case a.SpellID != 0:
		return fmt.Sprintf("Spell(%d)-%s", a.SpellID, a.Name)
	case a.ItemID != 0:
		return fmt.Sprintf("Item(%d)-%s", a.ItemID, a.Name)
	default:
		return fmt.Sprintf("Other(%s)-%s", a.OtherID, a.Name)
	}
}
