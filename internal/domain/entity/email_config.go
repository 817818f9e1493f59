package entity

import "time"

// NextStepLevels niveaux d'adoption Platform Engineering servant de clés au bloc
// "prochaines étapes" des templates d'email. Plusieurs contiennent une apostrophe:
// c'est la source historique des variantes de ponctuation que la procédure de
// normalisation répare (voir internal/domain/template).
var NextStepLevels = []string{
	"Pas encore à l'agenda",
	"En réflexion / POC prévu",
	"On a un Backstage ou une solution maison",
	"On cherche à scaler /industrialiser",
}

// TemplateChallenges noms des enjeux édités dans l'éditeur de templates admin.
var TemplateChallenges = []string{
	"Productivité & Delivery",
	"Onboarding & Rétention",
	"Qualité & Conformité",
	"Standardisation",
	"Visibilité sur les releases",
	"Maîtrise des coûts cloud",
}

// ChallengeTemplate contenu personnalisé de l'email de bienvenue pour un enjeu.
type ChallengeTemplate struct {
	Constat   string            `json:"constat"`
	Solution  string            `json:"solution"`
	NextSteps map[string]string `json:"nextSteps"` // clé = niveau d'adoption
}

// EmailTemplateConfig enregistrement singleton de configuration des templates.
// Créé paresseusement avec des textes vides à la première lecture; remplacé
// intégralement à chaque écriture.
type EmailTemplateConfig struct {
	Version   string                       `json:"version"`
	Templates map[string]ChallengeTemplate `json:"templates"`
	UpdatedAt *time.Time                   `json:"updatedAt"`
	UpdatedBy string                       `json:"updatedBy,omitempty"`
}

// DefaultEmailTemplateConfig renvoie la configuration par défaut: chaque enjeu
// avec constat/solution vides et tous les niveaux à texte vide.
func DefaultEmailTemplateConfig() *EmailTemplateConfig {
	templates := make(map[string]ChallengeTemplate, len(TemplateChallenges))
	for _, name := range TemplateChallenges {
		next := make(map[string]string, len(NextStepLevels))
		for _, level := range NextStepLevels {
			next[level] = ""
		}
		templates[name] = ChallengeTemplate{NextSteps: next}
	}
	return &EmailTemplateConfig{
		Version:   "1.0",
		Templates: templates,
	}
}
