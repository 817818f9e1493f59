package postgres

import (
	"github.com/forgeit/astrolabe-qualif/internal/domain/entity"
	"github.com/forgeit/astrolabe-qualif/internal/domain/repository"
)

var _ repository.CredentialRepository = (*CredentialRepo)(nil)

// CredentialRepo implémentation du port CredentialRepository sur le store
// clé-valeur. Clé: USER#<email>/PROFILE.
type CredentialRepo struct {
	store *Store
}

// NewCredentialRepository construit l'adaptateur de persistance des comptes.
func NewCredentialRepository(store *Store) *CredentialRepo {
	return &CredentialRepo{store: store}
}

// FindByEmail lit un compte, (nil, nil) si l'email est inconnu.
func (r *CredentialRepo) FindByEmail(email string) (*entity.Credential, error) {
	var c entity.Credential
	found, err := r.store.Get(userPrefix+email, skProfile, &c)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &c, nil
}

// Put insère ou remplace un compte (provisionnement hors-bande uniquement).
func (r *CredentialRepo) Put(c *entity.Credential) error {
	return r.store.Put(userPrefix+c.Email, skProfile, c)
}
