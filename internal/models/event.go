// internal/models/event.go
package models

// RawLine représente une ligne brute du log de combat.
// LineIndex est la clé d'ordre autoritaire : les timestamps numériques n'ont
// pas assez de précision pour départager des lignes et ne servent qu'à
// l'affichage et aux calculs de fenêtre.
type RawLine struct {
	Text      string `json:"text"`
	LineIndex int    `json:"line_index"`
}

// PartialResist niveaux de résistance partielle possibles
type PartialResist int

const (
	PartialResistNone PartialResist = 0
	PartialResist10   PartialResist = 10
	PartialResist20   PartialResist = 20
	PartialResist30   PartialResist = 30
)

// DamageKind nature d'un événement de dégâts
type DamageKind string

const (
	DamageKindDamage    DamageKind = "damage"
	DamageKindHealing   DamageKind = "healing"
	DamageKindShielding DamageKind = "shielding"
)

// ResourceType types de ressources suivis dans les logs
type ResourceType string

const (
	ResourceMana        ResourceType = "mana"
	ResourceEnergy      ResourceType = "energy"
	ResourceFocus       ResourceType = "focus"
	ResourceRage        ResourceType = "rage"
	ResourceRunicPower  ResourceType = "runic power"
	ResourceComboPoints ResourceType = "combo points"
	ResourceHealth      ResourceType = "health"
)

// EventHeader champs communs à tous les événements typés
type EventHeader struct {
	Raw         string    `json:"raw"`
	LogIndex    int       `json:"log_index"`
	Timestamp   float64   `json:"timestamp"`
	Source      *Entity   `json:"source,omitempty"`
	Target      *Entity   `json:"target,omitempty"`
	ActionID    *ActionID `json:"action_id,omitempty"`
	SpellSchool int       `json:"spell_school,omitempty"`
	Threat      float64   `json:"threat,omitempty"`
}

// Event union fermée sur les neuf variantes d'événement plus le fallback
// générique. Les consommateurs filtrent par type switch ; ajouter une
// variante impose d'implémenter isEvent.
type Event interface {
	Header() *EventHeader
	Kind() string
	isEvent()
}

// DamageDealt dégâts, soins ou absorption infligés par une action
type DamageDealt struct {
	EventHeader
	Amount        float64       `json:"amount"`
	DamageKind    DamageKind    `json:"kind"`
	Miss          bool          `json:"miss,omitempty"`
	Crit          bool          `json:"crit,omitempty"`
	Crush         bool          `json:"crush,omitempty"`
	Glance        bool          `json:"glance,omitempty"`
	Dodge         bool          `json:"dodge,omitempty"`
	Parry         bool          `json:"parry,omitempty"`
	Block         bool          `json:"block,omitempty"`
	Tick          bool          `json:"tick,omitempty"`
	PartialResist PartialResist `json:"partial_resist,omitempty"`
}

// Hit vrai pour un coup normal (ni raté, ni critique)
func (e *DamageDealt) Hit() bool { return !e.Miss && !e.Crit }

// ResourceChanged gain ou dépense de ressource
type ResourceChanged struct {
	EventHeader
	ResourceType          ResourceType `json:"resource_type"`
	SecondaryResourceType ResourceType `json:"secondary_resource_type,omitempty"`
	ValueBefore           float64      `json:"value_before"`
	ValueAfter            float64      `json:"value_after"`
	IsSpend               bool         `json:"is_spend"`
	Total                 float64      `json:"total,omitempty"`
}

// AuraEvent gain, disparition ou rafraîchissement d'une aura
// (exactement un des trois booléens est vrai)
type AuraEvent struct {
	EventHeader
	IsGained    bool `json:"is_gained,omitempty"`
	IsFaded     bool `json:"is_faded,omitempty"`
	IsRefreshed bool `json:"is_refreshed,omitempty"`
}

// AuraStacksChange changement du nombre de charges d'une aura
type AuraStacksChange struct {
	EventHeader
	OldStacks int `json:"old_stacks"`
	NewStacks int `json:"new_stacks"`
}

// MajorCooldownUsed utilisation d'un cooldown majeur
type MajorCooldownUsed struct {
	EventHeader
}

// CastBegan début d'incantation
type CastBegan struct {
	EventHeader
	ManaCost      float64 `json:"mana_cost"`
	CastTime      float64 `json:"cast_time"`
	EffectiveTime float64 `json:"effective_time"`
}

// CastCompleted fin d'incantation
type CastCompleted struct {
	EventHeader
}

// StatChange gain ou perte temporaire de statistiques
type StatChange struct {
	EventHeader
	IsGain bool   `json:"is_gain"`
	Stats  string `json:"stats"`
}

// Generic fallback pour les lignes non classifiables (ligne vide, texte libre)
type Generic struct {
	EventHeader
}

func (e *DamageDealt) Header() *EventHeader       { return &e.EventHeader }
func (e *ResourceChanged) Header() *EventHeader   { return &e.EventHeader }
func (e *AuraEvent) Header() *EventHeader         { return &e.EventHeader }
func (e *AuraStacksChange) Header() *EventHeader  { return &e.EventHeader }
func (e *MajorCooldownUsed) Header() *EventHeader { return &e.EventHeader }
func (e *CastBegan) Header() *EventHeader         { return &e.EventHeader }
func (e *CastCompleted) Header() *EventHeader     { return &e.EventHeader }
func (e *StatChange) Header() *EventHeader        { return &e.EventHeader }
func (e *Generic) Header() *EventHeader           { return &e.EventHeader }

func (e *DamageDealt) Kind() string       { return "damage_dealt" }
func (e *ResourceChanged) Kind() string   { return "resource_changed" }
func (e *AuraEvent) Kind() string         { return "aura_event" }
func (e *AuraStacksChange) Kind() string  { return "aura_stacks_change" }
func (e *MajorCooldownUsed) Kind() string { return "major_cooldown_used" }
func (e *CastBegan) Kind() string         { return "cast_began" }
func (e *CastCompleted) Kind() string     { return "cast_completed" }
func (e *StatChange) Kind() string        { return "stat_change" }
func (e *Generic) Kind() string           { return "generic" }

func (e *DamageDealt) isEvent()       {}
func (e *ResourceChanged) isEvent()   {}
func (e *AuraEvent) isEvent()         {}
func (e *AuraStacksChange) isEvent()  {}
func (e *MajorCooldownUsed) isEvent() {}
func (e *CastBegan) isEvent()         {}
func (e *CastCompleted) isEvent()     {}
func (e *StatChange) isEvent()        {}
func (e *Generic) isEvent()           {}
