// internal/analysis/analyzer.go
package analysis

import (
	"combatlog/internal/config"
	"combatlog/internal/models"
)

// Analyzer reconstruit les séquences dérivées (auras, casts, DPS, ressources,
// menace) depuis la séquence d'événements de base. Chaque reconstruction
// possède son propre état de travail, limité à un appel : rejouer une
// reconstruction sur la même séquence produit un résultat identique bit à bit.
type Analyzer struct {
	dpsWindow            float64
	tagInsensitiveSpells map[int32]bool
}

// NewAnalyzer crée un analyseur depuis la configuration du parseur
func NewAnalyzer(cfg config.ParserConfig) *Analyzer {
	spells := make(map[int32]bool, len(cfg.TagInsensitiveSpells))
	for _, id := range cfg.TagInsensitiveSpells {
		spells[id] = true
	}

	window := cfg.DPSWindow
	if window <= 0 {
		window = config.DefaultDPSWindow
	}

	return &Analyzer{
		dpsWindow:            window,
		tagInsensitiveSpells: spells,
	}
}

// actionIDMatches teste l'égalité exacte ou hors tag entre deux identifiants
// (les rangs/variantes d'une même aura comptent comme la même aura)
func actionIDMatches(a, b *models.ActionID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equals(b) || a.EqualsIgnoringTag(b)
}
