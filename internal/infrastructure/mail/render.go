package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/forgeit/astrolabe-qualif/internal/domain/entity"
)

var (
	adminAlertTmpl = template.Must(template.New("admin_alert").Parse(adminAlertHTML))
	welcomeTmpl    = template.Must(template.New("welcome").Parse(welcomeHTML))
)

// challengeContent blocs personnalisés résolus pour l'email de bienvenue.
// Les textes sont déjà passés par formatRichText.
type challengeContent struct {
	Constat   template.HTML
	Solution  template.HTML
	NextSteps template.HTML
}

type adminAlertData struct {
	Prospect  *entity.Prospect
	CreatedAt string
}

type welcomeData struct {
	Prospect   *entity.Prospect
	AdminEmail string
	LogoURL    string
	Challenge  *challengeContent
}

// renderAdminAlert produit le corps HTML de l'alerte interne.
// Tous les champs saisis par le prospect sont échappés à l'interpolation.
func renderAdminAlert(p *entity.Prospect) (string, error) {
	var buf bytes.Buffer
	data := adminAlertData{
		Prospect:  p,
		CreatedAt: p.CreatedAt.Format("02/01/2006 15:04:05"),
	}
	if err := adminAlertTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendu alerte admin: %w", err)
	}
	return buf.String(), nil
}

// renderWelcome produit le corps HTML de l'email de bienvenue, personnalisé avec
// le template de l'enjeu principal quand la configuration en fournit un.
func renderWelcome(p *entity.Prospect, cfg *entity.EmailTemplateConfig, adminEmail, logoURL string) (string, error) {
	var buf bytes.Buffer
	data := welcomeData{
		Prospect:   p,
		AdminEmail: adminEmail,
		LogoURL:    logoURL,
		Challenge:  resolveChallenge(p, cfg),
	}
	if err := welcomeTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendu email de bienvenue: %w", err)
	}
	return buf.String(), nil
}

// resolveChallenge cherche le contenu personnalisé de l'enjeu principal.
// Renvoie nil (bloc générique) si: aucun enjeu sélectionné, enjeu saisi
// librement ("Autre: ..."), enjeu sans template, ou les trois textes vides.
func resolveChallenge(p *entity.Prospect, cfg *entity.EmailTemplateConfig) *challengeContent {
	if cfg == nil {
		return nil
	}
	challenge := p.Challenges.Primary()
	if challenge == "" || strings.HasPrefix(challenge, entity.OtherPrefix) {
		return nil
	}
	tpl, ok := cfg.Templates[challenge]
	if !ok {
		return nil
	}
	nextSteps := tpl.NextSteps[p.Diagnostic.MaturityLevel]
	if tpl.Constat == "" && tpl.Solution == "" && nextSteps == "" {
		return nil
	}
	return &challengeContent{
		Constat:   formatRichText(tpl.Constat),
		Solution:  formatRichText(tpl.Solution),
		NextSteps: formatRichText(nextSteps),
	}
}
