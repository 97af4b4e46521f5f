// internal/analysis/cast.go
package analysis

import (
	"sort"

	"combatlog/internal/models"
)

// castBucket événements d'un même sort, dans l'ordre du log
type castBucket struct {
	begans     []*models.CastBegan
	completeds []*models.CastCompleted
	damages    []*models.DamageDealt
}

// CastLogs apparie les débuts et fins d'incantation par sort et attribue à
// chaque cast les dégâts survenus entre sa fin et la fin suivante du même
// sort. L'appariement est positionnel : le i-ème début avec la i-ème fin
// (le moteur de simulation émet des paires). Un début sans fin en queue de
// log est un cast partiel légitime, pas une erreur.
func (a *Analyzer) CastLogs(events []models.Event) []*models.CastLog {
	buckets := make(map[string]*castBucket)
	var order []string

	bucket := func(key string) *castBucket {
		b, ok := buckets[key]
		if !ok {
			b = &castBucket{}
			buckets[key] = b
			order = append(order, key)
		}
		return b
	}

	for _, event := range events {
		switch e := event.(type) {
		case *models.CastBegan:
			key := a.bucketKey(e.ActionID)
			b := bucket(key)
			b.begans = append(b.begans, e)
		case *models.CastCompleted:
			key := a.bucketKey(e.ActionID)
			b := bucket(key)
			b.completeds = append(b.completeds, e)
		case *models.DamageDealt:
			key := a.bucketKey(e.ActionID)
			b := bucket(key)
			b.damages = append(b.damages, e)
		}
	}

	var casts []*models.CastLog
	for _, key := range order {
		casts = append(casts, buildCastLogs(buckets[key])...)
	}

	sort.SliceStable(casts, func(i, j int) bool {
		return casts[i].Timestamp() < casts[j].Timestamp()
	})

	return casts
}

// bucketKey clé de regroupement d'un sort. Certains sorts peuvent terminer
// leur incantation sous une variante taggée différente de celle du début
// (rang qui chute en cours de cast, effet qui rebondit) : ceux-là, listés
// en configuration, se regroupent hors tag.
func (a *Analyzer) bucketKey(id *models.ActionID) string {
	if id == nil {
		return ""
	}
	if a.tagInsensitiveSpells[id.SpellID] {
		return id.StringIgnoringTag()
	}
	return id.String()
}

// buildCastLogs construit les CastLog d'un bucket
func buildCastLogs(b *castBucket) []*models.CastLog {
	var casts []*models.CastLog

	for i, began := range b.begans {
		cast := &models.CastLog{
			CastBegan:     began,
			CastTime:      began.CastTime,
			EffectiveTime: began.EffectiveTime,
		}

		if i < len(b.completeds) {
			completed := b.completeds[i]
			cast.CastCompleted = completed

			delta := completed.Timestamp - began.Timestamp
			cast.CastTime = delta
			cast.EffectiveTime = delta

			// Fenêtre d'attribution des dégâts : [cette fin, fin suivante)
			var nextCompletion *float64
			if i+1 < len(b.completeds) {
				ts := b.completeds[i+1].Timestamp
				nextCompletion = &ts
			}
			for _, dmg := range b.damages {
				if dmg.Timestamp < completed.Timestamp {
					continue
				}
				if nextCompletion != nil && dmg.Timestamp >= *nextCompletion {
					continue
				}
				cast.DamageDealt = append(cast.DamageDealt, dmg)
			}

			cast.TravelTime = travelTime(cast)
		}

		casts = append(casts, cast)
	}

	return casts
}

// travelTime délai entre la fin d'incantation et l'impact, attribué
// uniquement pour un unique événement de dégâts non périodique strictement
// postérieur à la fin du cast
func travelTime(cast *models.CastLog) float64 {
	if len(cast.DamageDealt) != 1 || cast.CastCompleted == nil {
		return 0
	}
	dmg := cast.DamageDealt[0]
	if dmg.Tick || dmg.Timestamp <= cast.CastCompleted.Timestamp {
		return 0
	}
	return dmg.Timestamp - cast.CastCompleted.Timestamp
}
