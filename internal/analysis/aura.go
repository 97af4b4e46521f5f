// internal/analysis/aura.go
package analysis

import (
	"sort"

	"github.com/sirupsen/logrus"

	"combatlog/internal/models"
)

// AuraUptimes apparie les gains/rafraîchissements d'auras avec leurs
// disparitions pour une entité donnée et produit les intervalles de présence,
// triés par instant de gain. L'appariement est premier-ouvert-premier-fermé
// (FIFO), pas au-plus-proche-dans-le-temps : une même aura peut empiler
// plusieurs instances indépendantes.
func (a *Analyzer) AuraUptimes(events []models.Event, entity *models.Entity, duration float64) []*models.AuraUptimeLog {
	var open []*models.AuraUptimeLog
	var closed []*models.AuraUptimeLog

	for _, event := range events {
		header := event.Header()
		if !header.Source.Equals(entity) {
			continue
		}

		switch e := event.(type) {
		case *models.AuraStacksChange:
			if e.NewStacks <= 0 {
				continue
			}
			entry := findOldestOpen(open, e.ActionID)
			if entry == nil {
				warnUnmatchedAura("stacks change", e.EventHeader)
				continue
			}
			entry.StacksChange = append(entry.StacksChange, e)

		case *models.AuraEvent:
			switch {
			case e.IsGained:
				open = append(open, newOpenEntry(e))

			case e.IsFaded, e.IsRefreshed:
				entry := findOldestOpen(open, e.ActionID)
				if entry == nil {
					warnUnmatchedAura("fade/refresh", e.EventHeader)
					continue
				}
				open = removeEntry(open, entry)
				entry.FadedAt = e.Timestamp
				closed = append(closed, entry)

				// Un rafraîchissement ferme l'intervalle courant et en
				// rouvre immédiatement un nouveau pour le même identifiant
				if e.IsRefreshed {
					open = append(open, newOpenEntry(e))
				}
			}
		}
	}

	// Toute aura encore ouverte en fin de rencontre se termine à la durée totale
	for _, entry := range open {
		entry.FadedAt = duration
		closed = append(closed, entry)
	}

	// Tri stable : les égalités de gainedAt conservent l'ordre d'entrée,
	// déjà stable par index de ligne
	sort.SliceStable(closed, func(i, j int) bool {
		return closed[i].GainedAt < closed[j].GainedAt
	})

	return closed
}

// newOpenEntry ouvre un intervalle depuis l'événement de gain (ou de
// rafraîchissement), champs d'en-tête copiés depuis cet événement
func newOpenEntry(e *models.AuraEvent) *models.AuraUptimeLog {
	return &models.AuraUptimeLog{
		EventHeader: e.EventHeader,
		GainedAt:    e.Timestamp,
	}
}

// findOldestOpen retourne la plus ancienne entrée ouverte dont l'identifiant
// correspond (exactement ou hors tag), nil sinon
func findOldestOpen(open []*models.AuraUptimeLog, id *models.ActionID) *models.AuraUptimeLog {
	for _, entry := range open {
		if actionIDMatches(entry.ActionID, id) {
			return entry
		}
	}
	return nil
}

func removeEntry(open []*models.AuraUptimeLog, target *models.AuraUptimeLog) []*models.AuraUptimeLog {
	for i, entry := range open {
		if entry == target {
			return append(open[:i], open[i+1:]...)
		}
	}
	return open
}

// warnUnmatchedAura signale un événement d'aura sans gain ouvert correspondant.
// L'événement est écarté de la reconstruction, le traitement continue.
func warnUnmatchedAura(kind string, header models.EventHeader) {
	logrus.WithFields(logrus.Fields{
		"kind":      kind,
		"log_index": header.LogIndex,
		"timestamp": header.Timestamp,
		"raw":       header.Raw,
		"service":   "combatlog",
	}).Warn("Unmatched aura event discarded")
}
