// Package template implémente la procédure de normalisation des templates d'email.
//
// Deux formes historiques de stockage coexistent pour le champ nextSteps: un texte
// libre unique (ancienne forme) et un mapping par niveau d'adoption dont les clés
// peuvent porter des variantes de ponctuation (apostrophes typographiques,
// backticks). La normalisation s'exécute à chaque lecture et à chaque écriture: la
// forme réparée en mémoire fait foi, jamais la forme persistée.
package template

import (
	"encoding/json"
	"sort"
	"time"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/forgeit/astrolabe-qualif/internal/domain/entity"
)

// Raw template d'enjeu tel que lu du store ou du corps de requête, avant réparation.
// NextSteps reste brut car sa forme n'est pas fiable.
type Raw struct {
	Constat   string          `json:"constat"`
	Solution  string          `json:"solution"`
	NextSteps json.RawMessage `json:"nextSteps"`
}

// RawConfig enregistrement de configuration complet avant réparation.
type RawConfig struct {
	Version   string         `json:"version"`
	Templates map[string]Raw `json:"templates"`
	UpdatedAt *time.Time     `json:"updatedAt"`
	UpdatedBy string         `json:"updatedBy,omitempty"`
}

// NormalizeConfig répare un enregistrement complet en conservant ses métadonnées.
func NormalizeConfig(raw *RawConfig) *entity.EmailTemplateConfig {
	version := raw.Version
	if version == "" {
		version = "1.0"
	}
	return &entity.EmailTemplateConfig{
		Version:   version,
		Templates: Normalize(raw.Templates),
		UpdatedAt: raw.UpdatedAt,
		UpdatedBy: raw.UpdatedBy,
	}
}

// apostrophes ramène les variantes d'apostrophe à la forme canonique '.
var apostrophes = runes.Map(func(r rune) rune {
	switch r {
	case '’', '‘', '`':
		return '\''
	}
	return r
})

// NormalizeKey canonicalise la ponctuation d'une clé de niveau.
func NormalizeKey(key string) string {
	out, _, err := transform.String(apostrophes, key)
	if err != nil {
		return key
	}
	return out
}

// Normalize répare un ensemble de templates vers la forme canonique:
// nextSteps devient un mapping complet sur entity.NextStepLevels.
//
//   - ancienne forme (texte unique): le texte est recopié dans chaque niveau,
//     sans perte de contenu mais sans distinction par niveau;
//   - mapping: chaque niveau attendu prend la valeur de la première clé
//     correspondante (exacte ou à ponctuation normalisée), vide sinon;
//   - absent ou invalide: tous les niveaux à texte vide.
//
// La procédure est idempotente: l'appliquer à sa propre sortie ne change rien.
func Normalize(in map[string]Raw) map[string]entity.ChallengeTemplate {
	out := make(map[string]entity.ChallengeTemplate, len(in))
	for name, raw := range in {
		out[name] = entity.ChallengeTemplate{
			Constat:   raw.Constat,
			Solution:  raw.Solution,
			NextSteps: normalizeNextSteps(raw.NextSteps),
		}
	}
	return out
}

func normalizeNextSteps(raw json.RawMessage) map[string]string {
	next := make(map[string]string, len(entity.NextStepLevels))

	// Ancienne forme: un seul texte, recopié tel quel dans chaque niveau.
	var legacy string
	if len(raw) > 0 && json.Unmarshal(raw, &legacy) == nil {
		for _, level := range entity.NextStepLevels {
			next[level] = legacy
		}
		return next
	}

	var byLevel map[string]string
	if len(raw) == 0 || json.Unmarshal(raw, &byLevel) != nil || byLevel == nil {
		for _, level := range entity.NextStepLevels {
			next[level] = ""
		}
		return next
	}

	// Les clés sont parcourues en ordre trié pour que "première correspondance"
	// soit déterministe.
	keys := make([]string, 0, len(byLevel))
	for k := range byLevel {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, level := range entity.NextStepLevels {
		next[level] = matchLevel(level, keys, byLevel)
	}
	return next
}

func matchLevel(level string, keys []string, byLevel map[string]string) string {
	if v, ok := byLevel[level]; ok {
		return v
	}
	want := NormalizeKey(level)
	for _, k := range keys {
		if NormalizeKey(k) == want {
			return byLevel[k]
		}
	}
	return ""
}
