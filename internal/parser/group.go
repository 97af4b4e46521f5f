// internal/parser/group.go
package parser

import "combatlog/internal/models"

// TimestampGroup run maximal d'événements consécutifs partageant le même timestamp
type TimestampGroup struct {
	Timestamp float64
	Events    []models.Event
}

// GroupByTimestamp partitionne une séquence ordonnée d'événements en runs
// maximaux de timestamps identiques. Fonction pure, O(n).
func GroupByTimestamp(events []models.Event) []TimestampGroup {
	var groups []TimestampGroup

	for _, event := range events {
		ts := event.Header().Timestamp
		if len(groups) > 0 && groups[len(groups)-1].Timestamp == ts {
			last := &groups[len(groups)-1]
			last.Events = append(last.Events, event)
			continue
		}
		groups = append(groups, TimestampGroup{
			Timestamp: ts,
			Events:    []models.Event{event},
		})
	}

	return groups
}
