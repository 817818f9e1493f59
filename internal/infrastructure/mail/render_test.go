package mail

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeit/astrolabe-qualif/internal/domain/entity"
)

func sampleProspect() *entity.Prospect {
	return &entity.Prospect{
		ID: "5f1c9d44-0000-0000-0000-000000000001",
		Identity: entity.Identity{
			FirstName: "Marie",
			LastName:  "Dupont",
			Email:     "marie.dupont@exemple.fr",
			Company:   "Exemple SAS",
			Position:  "CTO",
		},
		TechEcosystem: entity.TechEcosystem{
			TeamSize: "40-100",
			Forges:   []string{"GitLab"},
			Clouds:   []string{"AWS"},
		},
		Diagnostic: entity.Diagnostic{MaturityLevel: "Pas encore à l'agenda"},
		Challenges: entity.Challenges{Priorities: []string{"Productivité & Delivery"}},
		Status:     entity.StatusNouveau,
		CreatedAt:  time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func configWith(challenge string, tpl entity.ChallengeTemplate) *entity.EmailTemplateConfig {
	return &entity.EmailTemplateConfig{
		Version:   "1.0",
		Templates: map[string]entity.ChallengeTemplate{challenge: tpl},
	}
}

func TestFormatRichText_EchappePuisFormate(t *testing.T) {
	out := string(formatRichText("**Important** <script>\nligne 2"))

	// L'échappement précède la mise en forme: le gras survit, le HTML non.
	assert.Contains(t, out, "<strong>Important</strong>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "<br>")
	assert.NotContains(t, out, "<script>")
}

func TestFormatRichText_Vide(t *testing.T) {
	assert.Empty(t, string(formatRichText("")))
}

func TestRenderAdminAlert_ContenuEchappe(t *testing.T) {
	p := sampleProspect()
	p.Identity.Company = `<img src=x onerror=alert(1)>`

	out, err := renderAdminAlert(p)
	require.NoError(t, err)

	assert.Contains(t, out, "Marie")
	assert.Contains(t, out, "14/03/2026 09:30:00")
	assert.Contains(t, out, "&lt;img")
	assert.NotContains(t, out, "<img src=x")
}

func TestRenderWelcome_Personnalise(t *testing.T) {
	p := sampleProspect()
	cfg := configWith("Productivité & Delivery", entity.ChallengeTemplate{
		Constat:  "Vos équipes perdent du temps",
		Solution: "**Astrolabe** centralise vos golden paths",
		NextSteps: map[string]string{
			"Pas encore à l'agenda": "Planifier un atelier de cadrage",
		},
	})

	out, err := renderWelcome(p, cfg, "contact@forgeit.fr", "https://exemple.fr/logo.png")
	require.NoError(t, err)

	assert.Contains(t, out, "Vos équipes perdent du temps")
	assert.Contains(t, out, "<strong>Astrolabe</strong>")
	assert.Contains(t, out, "Planifier un atelier de cadrage")
	assert.Contains(t, out, "contact@forgeit.fr")
	assert.Contains(t, out, "https://exemple.fr/logo.png")
}

func TestRenderWelcome_NiveauSansNextSteps(t *testing.T) {
	p := sampleProspect()
	p.Diagnostic.MaturityLevel = "Industrialisation" // pas une clé de nextSteps
	cfg := configWith("Productivité & Delivery", entity.ChallengeTemplate{
		Constat:   "Constat",
		NextSteps: map[string]string{"Pas encore à l'agenda": "Atelier"},
	})

	out, err := renderWelcome(p, cfg, "contact@forgeit.fr", "")
	require.NoError(t, err)

	// Le bloc personnalisé sort quand même, sans prochaines étapes.
	assert.Contains(t, out, "Constat")
	assert.NotContains(t, out, "Atelier")
}

func TestResolveChallenge_BlocGenerique(t *testing.T) {
	tpl := entity.ChallengeTemplate{Constat: "Constat"}

	cases := []struct {
		name string
		p    *entity.Prospect
		cfg  *entity.EmailTemplateConfig
	}{
		{"config absente", sampleProspect(), nil},
		{"aucun enjeu", func() *entity.Prospect {
			p := sampleProspect()
			p.Challenges.Priorities = nil
			return p
		}(), configWith("Productivité & Delivery", tpl)},
		{"enjeu saisi librement", func() *entity.Prospect {
			p := sampleProspect()
			p.Challenges.Priorities = []string{"Autre: gouvernance"}
			return p
		}(), configWith("Autre: gouvernance", tpl)},
		{"enjeu sans template", sampleProspect(), configWith("FinOps", tpl)},
		{"textes vides", sampleProspect(), configWith("Productivité & Delivery", entity.ChallengeTemplate{})},
	}
	for _, tc := range cases {
		assert.Nil(t, resolveChallenge(tc.p, tc.cfg), tc.name)
	}
}

func TestResolveChallenge_PremierEnjeuPilote(t *testing.T) {
	p := sampleProspect()
	p.Challenges.Priorities = []string{"FinOps", "Productivité & Delivery"}
	cfg := &entity.EmailTemplateConfig{
		Version: "1.0",
		Templates: map[string]entity.ChallengeTemplate{
			"FinOps":                  {Constat: "Constat FinOps"},
			"Productivité & Delivery": {Constat: "Constat Delivery"},
		},
	}

	got := resolveChallenge(p, cfg)
	require.NotNil(t, got)
	assert.True(t, strings.Contains(string(got.Constat), "FinOps"))
}
