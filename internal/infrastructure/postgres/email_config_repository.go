package postgres

import (
	"github.com/forgeit/astrolabe-qualif/internal/domain/entity"
	"github.com/forgeit/astrolabe-qualif/internal/domain/repository"
	"github.com/forgeit/astrolabe-qualif/internal/domain/template"
)

var _ repository.EmailConfigRepository = (*EmailConfigRepo)(nil)

// EmailConfigRepo persistance de l'enregistrement singleton de configuration.
// Clé fixe: CONFIG#email_templates/METADATA.
type EmailConfigRepo struct {
	store *Store
}

// NewEmailConfigRepository construit l'adaptateur.
func NewEmailConfigRepository(store *Store) *EmailConfigRepo {
	return &EmailConfigRepo{store: store}
}

// Get lit la configuration en forme brute, (nil, nil) si jamais écrite.
func (r *EmailConfigRepo) Get() (*template.RawConfig, error) {
	var raw template.RawConfig
	found, err := r.store.Get(configKey, skMetadata, &raw)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &raw, nil
}

// Put remplace intégralement l'enregistrement.
func (r *EmailConfigRepo) Put(cfg *entity.EmailTemplateConfig) error {
	return r.store.Put(configKey, skMetadata, cfg)
}
