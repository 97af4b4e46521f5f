// internal/analysis/dps.go
package analysis

import (
	"combatlog/internal/models"
	"combatlog/internal/parser"
)

// DpsLogs calcule la série temporelle de dégâts par seconde sur fenêtre
// glissante : un point par groupe de dégâts simultanés, dans l'ordre
// d'entrée. La fenêtre est une constante de configuration strictement
// positive, le DPS d'une fenêtre vide vaut exactement 0 (jamais NaN).
func (a *Analyzer) DpsLogs(events []models.Event) []*models.DpsLog {
	var damageEvents []models.Event
	for _, event := range events {
		if _, ok := event.(*models.DamageDealt); ok {
			damageEvents = append(damageEvents, event)
		}
	}

	groups := parser.GroupByTimestamp(damageEvents)
	logs := make([]*models.DpsLog, 0, len(groups))

	// File des dégâts encore dans la fenêtre et somme courante
	var window []*models.DamageDealt
	var sum float64

	for _, group := range groups {
		groupLogs := make([]*models.DamageDealt, 0, len(group.Events))
		for _, event := range group.Events {
			dmg := event.(*models.DamageDealt)
			groupLogs = append(groupLogs, dmg)
			window = append(window, dmg)
			sum += dmg.Amount
		}

		// Éviction en tête de file de tout ce qui est sorti de la fenêtre
		cutoff := group.Timestamp - a.dpsWindow
		for len(window) > 0 && window[0].Timestamp <= cutoff {
			sum -= window[0].Amount
			window = window[1:]
		}

		logs = append(logs, &models.DpsLog{
			Timestamp:  group.Timestamp,
			DPS:        sum / a.dpsWindow,
			DamageLogs: groupLogs,
		})
	}

	return logs
}
