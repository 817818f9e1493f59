package emailconfig

import (
	"time"

	"github.com/forgeit/astrolabe-qualif/internal/application/dto"
	"github.com/forgeit/astrolabe-qualif/internal/domain/entity"
	"github.com/forgeit/astrolabe-qualif/internal/domain/repository"
	"github.com/forgeit/astrolabe-qualif/internal/domain/template"
)

// UseCase lecture et remplacement de la configuration singleton des templates.
type UseCase struct {
	repo repository.EmailConfigRepository
}

// NewUseCase construit le cas d'usage.
func NewUseCase(repo repository.EmailConfigRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Get renvoie la configuration normalisée, ou les valeurs par défaut (textes
// vides) si rien n'a encore été écrit.
func (uc *UseCase) Get() (*entity.EmailTemplateConfig, error) {
	raw, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return entity.DefaultEmailTemplateConfig(), nil
	}
	return template.NormalizeConfig(raw), nil
}

// Update normalise l'entrée, horodate, enregistre l'auteur et remplace
// intégralement l'enregistrement persisté.
func (uc *UseCase) Update(in dto.UpdateEmailConfigRequest, actor string) (*entity.EmailTemplateConfig, error) {
	if actor == "" {
		actor = "unknown"
	}
	now := time.Now()
	cfg := &entity.EmailTemplateConfig{
		Version:   "1.0",
		Templates: template.Normalize(in.Templates),
		UpdatedAt: &now,
		UpdatedBy: actor,
	}
	if err := uc.repo.Put(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
