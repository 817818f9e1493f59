package entity

import "time"

// Rôles valides pour un Credential.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Credential compte d'accès à l'interface d'administration, indexé par email.
// Créé uniquement par le provisionnement hors-bande (cmd/seed_admin); jamais
// modifié ni supprimé par l'application.
type Credential struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"` // hash bcrypt, jamais en clair
	Role         string    `json:"role"`         // admin, user
	CreatedAt    time.Time `json:"createdAt"`
}
