// internal/analysis/threat.go
package analysis

import (
	"combatlog/internal/models"
	"combatlog/internal/parser"
)

// ThreatGroups calcule la menace cumulée : un groupe par run de timestamps
// simultanés parmi les événements à menace non nulle, le total courant étant
// enfilé de groupe en groupe (menace avant / menace après).
func (a *Analyzer) ThreatGroups(events []models.Event) []*models.ThreatLogGroup {
	var filtered []models.Event
	for _, event := range events {
		if event.Header().Threat != 0 {
			filtered = append(filtered, event)
		}
	}

	groups := parser.GroupByTimestamp(filtered)
	result := make([]*models.ThreatLogGroup, 0, len(groups))

	var running float64
	for _, group := range groups {
		var delta float64
		for _, event := range group.Events {
			delta += event.Header().Threat
		}

		result = append(result, &models.ThreatLogGroup{
			ThreatBefore: running,
			ThreatAfter:  running + delta,
			Logs:         group.Events,
		})
		running += delta
	}

	return result
}
