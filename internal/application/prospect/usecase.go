package prospect

import (
	"time"

	"github.com/google/uuid"

	"github.com/forgeit/astrolabe-qualif/internal/application/dto"
	"github.com/forgeit/astrolabe-qualif/internal/domain"
	"github.com/forgeit/astrolabe-qualif/internal/domain/entity"
	"github.com/forgeit/astrolabe-qualif/internal/domain/repository"
	"github.com/forgeit/astrolabe-qualif/internal/domain/template"
	"github.com/forgeit/astrolabe-qualif/pkg/logger"
)

// UseCase opérations CRUD sur les prospects. Écritures last-write-wins, sans
// verrou ni transaction: chaque update ne pose que les sections fournies.
type UseCase struct {
	repo     repository.ProspectRepository
	configs  repository.EmailConfigRepository
	notifier Notifier
	log      *logger.Logger
}

// NewUseCase construit le cas d'usage.
func NewUseCase(repo repository.ProspectRepository, configs repository.EmailConfigRepository, notifier Notifier, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, configs: configs, notifier: notifier, log: log}
}

// Create génère l'identifiant, horodate, applique le statut par défaut, persiste
// puis déclenche les deux notifications en best-effort. Le prospect persisté est
// renvoyé quel que soit le sort des emails.
func (uc *UseCase) Create(in dto.CreateProspectRequest) (*dto.ProspectResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.StatusNouveau
	}
	if !entity.IsValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	now := time.Now()
	p := &entity.Prospect{
		ID:            uuid.New().String(),
		Identity:      in.Identity,
		TechEcosystem: in.TechEcosystem,
		Diagnostic:    in.Diagnostic,
		Challenges:    in.Challenges,
		CTA:           in.CTA,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}

	uc.notifier.SendAdminAlert(p)
	uc.notifier.SendWelcome(p, uc.loadTemplates())

	return toResponse(p), nil
}

// loadTemplates récupère la configuration de templates pour la personnalisation.
// Tout échec est journalisé et rend nil: l'email part sans personnalisation.
func (uc *UseCase) loadTemplates() *entity.EmailTemplateConfig {
	raw, err := uc.configs.Get()
	if err != nil {
		uc.log.Error().Err(err).Msg("lecture des templates d'email")
		return nil
	}
	if raw == nil {
		return entity.DefaultEmailTemplateConfig()
	}
	return template.NormalizeConfig(raw)
}

// List renvoie tous les prospects (scan complet, sans pagination).
func (uc *UseCase) List() ([]dto.ProspectResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProspectResponse, 0, len(items))
	for _, p := range items {
		out = append(out, *toResponse(p))
	}
	return out, nil
}

// Get renvoie un prospect par ID, ErrNotFound si absent.
func (uc *UseCase) Get(id string) (*dto.ProspectResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(p), nil
}

// Update fusionne uniquement les sections fournies dans l'enregistrement existant.
// ID et CreatedAt ne sont jamais réécrits; UpdatedAt l'est systématiquement.
func (uc *UseCase) Update(id string, in dto.UpdateProspectRequest) (*dto.ProspectResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	if in.Identity != nil {
		p.Identity = *in.Identity
	}
	if in.TechEcosystem != nil {
		p.TechEcosystem = *in.TechEcosystem
	}
	if in.Diagnostic != nil {
		p.Diagnostic = *in.Diagnostic
	}
	if in.Challenges != nil {
		p.Challenges = *in.Challenges
	}
	if in.CTA != nil {
		p.CTA = *in.CTA
	}
	if in.Status != nil {
		if !entity.IsValidStatus(*in.Status) {
			return nil, domain.ErrInvalidStatus
		}
		p.Status = *in.Status
	}
	p.UpdatedAt = time.Now()

	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toResponse(p), nil
}

// Delete supprime inconditionnellement: un id absent n'est pas une erreur.
func (uc *UseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toResponse(p *entity.Prospect) *dto.ProspectResponse {
	return &dto.ProspectResponse{
		ID:            p.ID,
		Identity:      p.Identity,
		TechEcosystem: p.TechEcosystem,
		Diagnostic:    p.Diagnostic,
		Challenges:    p.Challenges,
		CTA:           p.CTA,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
