package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/forgeit/astrolabe-qualif/internal/domain/entity"
	"github.com/forgeit/astrolabe-qualif/internal/domain/repository"
)

var _ repository.ProspectRepository = (*ProspectRepo)(nil)

// ProspectRepo implémentation du port ProspectRepository sur le store clé-valeur.
type ProspectRepo struct {
	store *Store
}

// NewProspectRepository construit l'adaptateur de persistance des prospects.
func NewProspectRepository(store *Store) *ProspectRepo {
	return &ProspectRepo{store: store}
}

// Create persiste un nouveau prospect sous PROSPECT#<id>/METADATA.
func (r *ProspectRepo) Create(p *entity.Prospect) error {
	return r.store.Put(prospectPrefix+p.ID, skMetadata, p)
}

// GetByID lit un prospect, (nil, nil) si absent.
func (r *ProspectRepo) GetByID(id string) (*entity.Prospect, error) {
	var p entity.Prospect
	found, err := r.store.Get(prospectPrefix+id, skMetadata, &p)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &p, nil
}

// List scanne tous les enregistrements préfixés PROSPECT#.
func (r *ProspectRepo) List() ([]*entity.Prospect, error) {
	var list []*entity.Prospect
	err := r.store.ScanPrefix(prospectPrefix, skMetadata, func(doc []byte) error {
		var p entity.Prospect
		if err := json.Unmarshal(doc, &p); err != nil {
			return fmt.Errorf("décoder prospect: %w", err)
		}
		list = append(list, &p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Update remplace le document du prospect (dernière écriture gagnante).
func (r *ProspectRepo) Update(p *entity.Prospect) error {
	return r.store.Put(prospectPrefix+p.ID, skMetadata, p)
}

// Delete supprime inconditionnellement, id absent compris.
func (r *ProspectRepo) Delete(id string) error {
	return r.store.Delete(prospectPrefix+id, skMetadata)
}
