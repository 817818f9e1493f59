// Package gatekeeper rend la décision d'autorisation par requête: valider le
// bearer token et émettre allow ou deny. La décision ne révèle jamais quelle
// vérification a échoué (token absent, malformé, expiré ou mal signé produisent
// exactement le même deny).
package gatekeeper

import (
	"strings"

	"github.com/forgeit/astrolabe-qualif/pkg/jwt"
	"github.com/forgeit/astrolabe-qualif/pkg/secrets"
)

// Effect résultat d'une décision d'autorisation.
type Effect string

// Valeurs possibles d'Effect.
const (
	Allow Effect = "Allow"
	Deny  Effect = "Deny"
)

// DeniedPrincipal principal fixe attaché à tout refus.
const DeniedPrincipal = "unauthorized"

// Decision sortie du gatekeeper, consommée par le middleware de routage.
// Sur allow, Email et Role portent les claims pour les handlers en aval.
type Decision struct {
	PrincipalID string
	Effect      Effect
	Resource    string
	Email       string
	Role        string
}

// Allowed indique si la requête peut continuer.
func (d Decision) Allowed() bool {
	return d.Effect == Allow
}

// Gatekeeper vérifie les tokens avec le secret de signature mis en cache.
type Gatekeeper struct {
	secret *secrets.Cached
}

// New construit le gatekeeper.
func New(secret *secrets.Cached) *Gatekeeper {
	return &Gatekeeper{secret: secret}
}

// Authorize valide le header Authorization et décide allow/deny pour la requête.
// La ressource accordée est le motif joker couvrant toute l'API, pas seulement la
// route demandée: un token valide ouvre l'ensemble des routes protégées.
func (g *Gatekeeper) Authorize(authHeader, method, path string) Decision {
	token := extractBearer(authHeader)
	if token == "" {
		return deny(method, path)
	}
	secret, err := g.secret.Get()
	if err != nil {
		return deny(method, path)
	}
	email, role, err := jwt.Parse(secret, token)
	if err != nil {
		return deny(method, path)
	}
	if role == "" {
		role = "user"
	}
	return Decision{
		PrincipalID: email,
		Effect:      Allow,
		Resource:    wildcardResource(method, path),
		Email:       email,
		Role:        role,
	}
}

func deny(method, path string) Decision {
	return Decision{
		PrincipalID: DeniedPrincipal,
		Effect:      Deny,
		Resource:    wildcardResource(method, path),
	}
}

func extractBearer(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// wildcardResource remplace méthode et chemin de la requête par des jokers:
// la décision vaut pour toutes les routes, pas pour la seule ressource demandée.
func wildcardResource(method, path string) string {
	_ = method
	_ = path
	return "*/*"
}
