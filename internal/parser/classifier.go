// internal/parser/classifier.go
package parser

import (
	"context"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"combatlog/internal/models"
)

// ActionResolver frontière avec le service Spell : résout un label textuel
// d'action/aura en identifiant canonique. ownerIndex est l'index de l'entité
// source (certains labels sont ambigus entre lanceurs).
type ActionResolver interface {
	Resolve(ctx context.Context, label string, ownerIndex *int) (*models.ActionID, error)
}

// Classifier transforme chaque ligne brute en exactement un événement typé
type Classifier struct {
	resolver    ActionResolver
	concurrency int64
}

// NewClassifier crée un classifieur avec la limite de résolutions concurrentes donnée
func NewClassifier(resolver ActionResolver, concurrency int) *Classifier {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Classifier{
		resolver:    resolver,
		concurrency: int64(concurrency),
	}
}

// ClassifyLine produit l'événement typé d'une ligne. Les patterns sont
// essayés dans l'ordre de priorité fixe de kindParsers ; sans correspondance
// la ligne retombe sur un événement générique (ce n'est pas une erreur).
func (c *Classifier) ClassifyLine(ctx context.Context, line models.RawLine) models.Event {
	header := models.EventHeader{
		Raw:      line.Text,
		LogIndex: line.LineIndex,
	}

	body := line.Text

	// Suffixes optionnels (Threat: f) puis (SpellSchool: n), tronqués
	// avant toute autre correspondance
	if m := threatPattern.FindStringSubmatch(body); m != nil {
		header.Threat = mustFloat(m[1])
		body = threatPattern.ReplaceAllString(body, "")
	}
	if m := spellSchoolPattern.FindStringSubmatch(body); m != nil {
		header.SpellSchool = mustAtoi(m[1])
		body = spellSchoolPattern.ReplaceAllString(body, "")
	}

	// Timestamp en tête ; absent pour les lignes vides ou hors événement,
	// qui retombent immédiatement en générique sans entités
	m := timestampPattern.FindStringSubmatch(body)
	if m == nil {
		return &models.Generic{EventHeader: header}
	}
	header.Timestamp = mustFloat(m[1])
	body = strings.TrimPrefix(body, m[0])

	// Les deux premières entités de la ligne sont par convention
	// source et cible
	entities := ParseEntities(body)
	if len(entities) > 0 {
		header.Source = entities[0]
	}
	if len(entities) > 1 {
		header.Target = entities[1]
	}

	for _, parse := range kindParsers {
		event, label, ok := parse(header, body)
		if !ok {
			continue
		}
		if label != "" {
			c.resolveActionID(ctx, event, label)
		}
		return event
	}

	return &models.Generic{EventHeader: header}
}

// resolveActionID résout le label d'action de l'événement. Un échec de
// résolution laisse l'identifiant absent et n'interrompt jamais le batch.
func (c *Classifier) resolveActionID(ctx context.Context, event models.Event, label string) {
	header := event.Header()

	var ownerIndex *int
	if header.Source != nil {
		idx := header.Source.Index
		ownerIndex = &idx
	}

	actionID, err := c.resolver.Resolve(ctx, label, ownerIndex)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"label":     label,
			"log_index": header.LogIndex,
			"error":     err.Error(),
			"service":   "combatlog",
		}).Warn("Action identity resolution failed, leaving action id absent")
		return
	}

	header.ActionID = actionID
}

// ParseAll classifie toutes les lignes du log. Les résolutions d'identité
// partent en parallèle (bornées par le sémaphore) et peuvent aboutir dans
// n'importe quel ordre ; chaque résultat est rangé à l'index de sa ligne,
// et la séquence n'est rendue qu'une fois toutes les lignes retombées —
// l'ordre de sortie est donc exactement l'ordre d'entrée.
func (c *Classifier) ParseAll(ctx context.Context, text string) []models.Event {
	lines := strings.Split(text, "\n")
	events := make([]models.Event, len(lines))

	sem := semaphore.NewWeighted(c.concurrency)
	var wg sync.WaitGroup

	for i, line := range lines {
		wg.Add(1)
		go func(idx int, text string) {
			defer wg.Done()
			if err := sem.Acquire(ctx, 1); err != nil {
				// Contexte annulé : la ligne dégrade en générique brut
				events[idx] = &models.Generic{EventHeader: models.EventHeader{Raw: text, LogIndex: idx}}
				return
			}
			defer sem.Release(1)
			events[idx] = c.ClassifyLine(ctx, models.RawLine{Text: text, LineIndex: idx})
		}(i, line)
	}

	wg.Wait()
	return events
}
