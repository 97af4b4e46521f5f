// internal/analysis/resource.go
package analysis

import (
	"combatlog/internal/models"
	"combatlog/internal/parser"
)

// ResourceGroups agrège les changements d'une ressource par groupe de
// timestamps simultanés : valueBefore vient du premier événement du groupe,
// valueAfter du dernier, maxValue est le plus grand total rapporté (0 si
// aucun événement du groupe n'en rapporte).
func (a *Analyzer) ResourceGroups(events []models.Event, resourceType models.ResourceType) []*models.ResourceChangedLogGroup {
	var filtered []models.Event
	for _, event := range events {
		if e, ok := event.(*models.ResourceChanged); ok && e.ResourceType == resourceType {
			filtered = append(filtered, event)
		}
	}

	groups := parser.GroupByTimestamp(filtered)
	result := make([]*models.ResourceChangedLogGroup, 0, len(groups))

	for _, group := range groups {
		logs := make([]*models.ResourceChanged, 0, len(group.Events))
		var maxValue float64
		for _, event := range group.Events {
			e := event.(*models.ResourceChanged)
			logs = append(logs, e)
			if e.Total > maxValue {
				maxValue = e.Total
			}
		}

		result = append(result, &models.ResourceChangedLogGroup{
			ResourceType: resourceType,
			ValueBefore:  logs[0].ValueBefore,
			ValueAfter:   logs[len(logs)-1].ValueAfter,
			MaxValue:     maxValue,
			Logs:         logs,
		})
	}

	return result
}

// ResourceTypes retourne les types de ressource présents dans la séquence,
// dans l'ordre de première apparition
func (a *Analyzer) ResourceTypes(events []models.Event) []models.ResourceType {
	seen := make(map[models.ResourceType]bool)
	var types []models.ResourceType
	for _, event := range events {
		if e, ok := event.(*models.ResourceChanged); ok && !seen[e.ResourceType] {
			seen[e.ResourceType] = true
			types = append(types, e.ResourceType)
		}
	}
	return types
}
