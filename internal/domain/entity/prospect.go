package entity

import "time"

// Statuts d'un prospect sur le pipeline de qualification.
// Aucun graphe de transitions n'est imposé: le board Kanban est libre,
// tout statut est atteignable depuis tout autre.
const (
	StatusNouveau      = "Nouveau"
	StatusQualifie     = "Qualifie"
	StatusRDVPlanifie  = "RDV Planifie"
	StatusEnDiscussion = "En Discussion"
	StatusConverti     = "Converti"
	StatusPerdu        = "Perdu"
)

// ProspectStatuses ensemble ordonné des statuts (ordre des colonnes du board).
var ProspectStatuses = []string{
	StatusNouveau,
	StatusQualifie,
	StatusRDVPlanifie,
	StatusEnDiscussion,
	StatusConverti,
	StatusPerdu,
}

// IsValidStatus vérifie l'appartenance à l'ensemble des statuts.
func IsValidStatus(s string) bool {
	for _, v := range ProspectStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Valeurs proposées par le formulaire de qualification. Le serveur ne rejette pas
// les valeurs hors liste: chaque groupe accepte une entrée libre "Autre: ...".
var (
	Positions       = []string{"CTO", "VP Engineering", "Tech Lead", "Platform Engineer"}
	TeamSizes       = []string{"<40", "40-100", "100+"}
	Forges          = []string{"GitHub", "GitLab", "Azure DevOps", "Bitbucket"}
	Clouds          = []string{"AWS", "GCP", "Azure", "On-Premise"}
	Deployments     = []string{"ArgoCD", "Jenkins", "GitHub Actions", "GitLab CI"}
	TicketManagers  = []string{"Jira", "Azure DevOps", "Trello", "Notion"}
	MonitoringTools = []string{"Grafana", "Datadog", "Open Telemetry"}
	MaturityLevels  = []string{"Industrialisation", "Expertise", "Reconciliation", "Autre/Ne sait pas"}
	ChallengeNames  = []string{"Onboarding/Delivery", "Conformite/Scoring", "FinOps"}
)

// OtherPrefix marque une valeur saisie librement ("Autre: texte").
// Un enjeu portant ce préfixe ne déclenche pas de personnalisation d'email.
const OtherPrefix = "Autre:"

// Identity coordonnées du prospect.
type Identity struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Position  string `json:"position"`
}

// TechEcosystem outillage déclaré par le prospect.
type TechEcosystem struct {
	TeamSize        string   `json:"teamSize"`
	Forges          []string `json:"forges"`
	Clouds          []string `json:"clouds"`
	Deployments     []string `json:"deployments"`
	TicketManagers  []string `json:"ticketManagers"`
	MonitoringTools []string `json:"monitoringTools"`
}

// Diagnostic auto-évaluation de maturité Platform Engineering.
type Diagnostic struct {
	MaturityLevel string `json:"maturityLevel"`
}

// Challenges enjeux prioritaires sélectionnés (multi-sélection).
type Challenges struct {
	Priorities []string `json:"priorities"`
}

// Primary renvoie le premier enjeu sélectionné, vide si aucun.
// C'est lui qui pilote la personnalisation de l'email de bienvenue.
func (c Challenges) Primary() string {
	if len(c.Priorities) == 0 {
		return ""
	}
	return c.Priorities[0]
}

// CTA appels à l'action cochés en fin de formulaire.
type CTA struct {
	WantsDiagnostic bool `json:"wantsDiagnostic"`
	WantsTrial      bool `json:"wantsTrial"`
}

// Prospect entité centrale: une soumission du formulaire de qualification.
// ID et CreatedAt sont immuables après création; Status n'est modifiable que via
// l'opération d'update; UpdatedAt est réécrit à chaque mutation.
type Prospect struct {
	ID            string        `json:"id"`
	Identity      Identity      `json:"identity"`
	TechEcosystem TechEcosystem `json:"techEcosystem"`
	Diagnostic    Diagnostic    `json:"diagnostic"`
	Challenges    Challenges    `json:"challenges"`
	CTA           CTA           `json:"cta"`
	Status        string        `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}
