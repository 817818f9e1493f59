package repository

import "github.com/forgeit/astrolabe-qualif/internal/domain/entity"

// CredentialRepository port de lecture des comptes d'accès.
// L'application ne crée jamais de credential: le provisionnement est hors-bande
// (cmd/seed_admin), d'où l'écriture séparée.
type CredentialRepository interface {
	// FindByEmail renvoie (nil, nil) si l'email est inconnu.
	FindByEmail(email string) (*entity.Credential, error)
	// Put insère ou remplace un compte (réservé au provisionnement).
	Put(c *entity.Credential) error
}
