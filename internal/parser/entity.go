// internal/parser/entity.go
package parser

import (
	"fmt"
	"regexp"
	"strconv"

	"combatlog/internal/models"
)

// Formes de labels d'entité reconnues. Les index sont 1-based dans le texte
// et convertis en 0-based à la résolution.
var (
	bracketPattern = regexp.MustCompile(`\[([^\[\]]*)\]`)
	targetPattern  = regexp.MustCompile(`^Target (\d+)$`)
	petPattern     = regexp.MustCompile(`^(.+?) \(#(\d+)\) - (.+)$`)
	charPattern    = regexp.MustCompile(`^(.+?) \(#(\d+)\)$`)
)

// ParseEntities résout tous les labels d'entité entre crochets d'une ligne,
// dans leur ordre d'apparition. Le moteur de simulation garantit des labels
// bien formés : un contenu de crochets qui ne correspond à aucune des trois
// formes est un bug du classifieur, pas une condition d'entrée récupérable.
func ParseEntities(s string) []*models.Entity {
	var entities []*models.Entity

	for _, match := range bracketPattern.FindAllStringSubmatch(s, -1) {
		inner := match[1]

		if m := targetPattern.FindStringSubmatch(inner); m != nil {
			entities = append(entities, &models.Entity{
				Name:     "Target",
				Index:    mustAtoi(m[1]) - 1,
				IsTarget: true,
			})
			continue
		}

		if m := petPattern.FindStringSubmatch(inner); m != nil {
			entities = append(entities, &models.Entity{
				Name:      m[3],
				OwnerName: m[1],
				Index:     mustAtoi(m[2]) - 1,
				IsPet:     true,
			})
			continue
		}

		if m := charPattern.FindStringSubmatch(inner); m != nil {
			entities = append(entities, &models.Entity{
				Name:  m[1],
				Index: mustAtoi(m[2]) - 1,
			})
			continue
		}

		panic(fmt.Sprintf("malformed entity label %q: input contract violated", match[0]))
	}

	return entities
}

func mustAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		panic(fmt.Sprintf("numeric capture group did not parse: %q", s))
	}
	return n
}
