// internal/parser/patterns.go
package parser

import (
	"regexp"
	"strconv"

	"combatlog/internal/models"
)

// Patterns des lignes, essayés dans un ordre de priorité fixe. Les patterns
// sont mutuellement exclusifs en pratique ; l'ordre rend tout recouvrement
// accidentel déterministe (le premier qui matche gagne).
var (
	timestampPattern   = regexp.MustCompile(`^\[\s*([\d.]+)\s*\]\s*`)
	threatPattern      = regexp.MustCompile(`\s*\(Threat: (-?[\d.]+)\)\s*$`)
	spellSchoolPattern = regexp.MustCompile(`\s*\(SpellSchool: (\d+)\)\s*$`)

	damagePattern = regexp.MustCompile(
		`^\[[^\]]+\] (.+?): (tick )?(Hit|Crit|Miss|Crush|Glance|Dodge|Parry|Block)` +
			`(?: \[[^\]]+\])?(?: for ([\d.]+) (damage|healing|shielding))?` +
			`(?: \((10|20|30)% partial resist\))?\.?$`)

	resourcePattern = regexp.MustCompile(
		`^\[[^\]]+\] (Gained|Spent) ([\d.]+) (mana|energy|focus|rage|runic power|combo points|health)` +
			`(?: and ([\d.]+) (mana|energy|focus|rage|runic power|combo points|health))?` +
			` from (.+?)\. \(([\d.]+) --> ([\d.]+)(?: of ([\d.]+))?\)$`)

	auraPattern = regexp.MustCompile(
		`^(?:\[[^\]]+\] )?Aura (gained|faded|refreshed): (.+?)\.$`)

	stacksPattern = regexp.MustCompile(
		`^(?:\[[^\]]+\] )?(.+?) stacks: (\d+) --> (\d+)\.?$`)

	majorCooldownPattern = regexp.MustCompile(
		`^(?:\[[^\]]+\] )?Major cooldown used: (.+?)\.$`)

	castBeganPattern = regexp.MustCompile(
		`^(?:\[[^\]]+\] )?Casting (.+?) \(Cost = ([\d.]+), Cast Time = ([\d.]+)s, Effective Time = ([\d.]+)s\)\.?$`)

	castCompletedPattern = regexp.MustCompile(
		`^(?:\[[^\]]+\] )?Completed cast (.+?)\.$`)

	statChangePattern = regexp.MustCompile(
		`^(?:\[[^\]]+\] )?(Gained|Lost) \{(.+?)\}(?: from (.+?))?\.$`)
)

// parseFunc tente de produire un événement typé depuis le corps de ligne
// (timestamp retiré, labels d'entité intacts). Retourne l'événement, le
// label d'action à résoudre (vide si aucun) et un booléen de succès.
type parseFunc func(header models.EventHeader, body string) (models.Event, string, bool)

// kindParsers ordre de priorité du classifieur
var kindParsers = []parseFunc{
	parseDamageDealt,
	parseResourceChanged,
	parseAuraEvent,
	parseAuraStacksChange,
	parseMajorCooldownUsed,
	parseCastBegan,
	parseCastCompleted,
	parseStatChange,
}

func parseDamageDealt(header models.EventHeader, body string) (models.Event, string, bool) {
	m := damagePattern.FindStringSubmatch(body)
	if m == nil {
		return nil, "", false
	}

	e := &models.DamageDealt{
		EventHeader: header,
		Tick:        m[2] != "",
		DamageKind:  models.DamageKindDamage,
	}

	switch m[3] {
	case "Miss":
		e.Miss = true
	case "Crit":
		e.Crit = true
	case "Crush":
		e.Crush = true
	case "Glance":
		e.Glance = true
	case "Dodge":
		e.Dodge = true
	case "Parry":
		e.Parry = true
	case "Block":
		e.Block = true
	}

	if m[4] != "" {
		e.Amount = mustFloat(m[4])
	}
	if m[5] != "" {
		e.DamageKind = models.DamageKind(m[5])
	}
	if m[6] != "" {
		e.PartialResist = models.PartialResist(mustAtoi(m[6]))
	}

	return e, m[1], true
}

func parseResourceChanged(header models.EventHeader, body string) (models.Event, string, bool) {
	m := resourcePattern.FindStringSubmatch(body)
	if m == nil {
		return nil, "", false
	}

	e := &models.ResourceChanged{
		EventHeader:  header,
		ResourceType: models.ResourceType(m[3]),
		IsSpend:      m[1] == "Spent",
		ValueBefore:  mustFloat(m[7]),
		ValueAfter:   mustFloat(m[8]),
	}
	if m[5] != "" {
		e.SecondaryResourceType = models.ResourceType(m[5])
	}
	if m[9] != "" {
		e.Total = mustFloat(m[9])
	}

	return e, m[6], true
}

func parseAuraEvent(header models.EventHeader, body string) (models.Event, string, bool) {
	m := auraPattern.FindStringSubmatch(body)
	if m == nil {
		return nil, "", false
	}

	e := &models.AuraEvent{EventHeader: header}
	switch m[1] {
	case "gained":
		e.IsGained = true
	case "faded":
		e.IsFaded = true
	case "refreshed":
		e.IsRefreshed = true
	}

	return e, m[2], true
}

func parseAuraStacksChange(header models.EventHeader, body string) (models.Event, string, bool) {
	m := stacksPattern.FindStringSubmatch(body)
	if m == nil {
		return nil, "", false
	}

	e := &models.AuraStacksChange{
		EventHeader: header,
		OldStacks:   mustAtoi(m[2]),
		NewStacks:   mustAtoi(m[3]),
	}

	return e, m[1], true
}

func parseMajorCooldownUsed(header models.EventHeader, body string) (models.Event, string, bool) {
	m := majorCooldownPattern.FindStringSubmatch(body)
	if m == nil {
		return nil, "", false
	}
	return &models.MajorCooldownUsed{EventHeader: header}, m[1], true
}

func parseCastBegan(header models.EventHeader, body string) (models.Event, string, bool) {
	m := castBeganPattern.FindStringSubmatch(body)
	if m == nil {
		return nil, "", false
	}

	e := &models.CastBegan{
		EventHeader:   header,
		ManaCost:      mustFloat(m[2]),
		CastTime:      mustFloat(m[3]),
		EffectiveTime: mustFloat(m[4]),
	}

	return e, m[1], true
}

func parseCastCompleted(header models.EventHeader, body string) (models.Event, string, bool) {
	m := castCompletedPattern.FindStringSubmatch(body)
	if m == nil {
		return nil, "", false
	}
	return &models.CastCompleted{EventHeader: header}, m[1], true
}

func parseStatChange(header models.EventHeader, body string) (models.Event, string, bool) {
	m := statChangePattern.FindStringSubmatch(body)
	if m == nil {
		return nil, "", false
	}

	e := &models.StatChange{
		EventHeader: header,
		IsGain:      m[1] == "Gained",
		Stats:       m[2],
	}

	// Le label source est optionnel sur les changements de stats
	return e, m[3], true
}

func mustFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic("numeric capture group did not parse: " + s)
	}
	return f
}
