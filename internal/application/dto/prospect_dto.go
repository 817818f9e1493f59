package dto

import (
	"time"

	"github.com/forgeit/astrolabe-qualif/internal/domain/entity"
)

// CreateProspectRequest charge utile du formulaire de qualification.
// Status est optionnel: "Nouveau" par défaut.
type CreateProspectRequest struct {
	Identity      entity.Identity      `json:"identity"`
	TechEcosystem entity.TechEcosystem `json:"techEcosystem"`
	Diagnostic    entity.Diagnostic    `json:"diagnostic"`
	Challenges    entity.Challenges    `json:"challenges"`
	CTA           entity.CTA           `json:"cta"`
	Status        string               `json:"status,omitempty"`
}

// UpdateProspectRequest mise à jour partielle: seules les sections présentes sont
// fusionnées. ID, CreatedAt et UpdatedAt sont acceptés (un client peut renvoyer
// l'entité complète) mais jamais appliqués; toute autre clé inconnue est rejetée.
type UpdateProspectRequest struct {
	ID            *string               `json:"id"`
	Identity      *entity.Identity      `json:"identity"`
	TechEcosystem *entity.TechEcosystem `json:"techEcosystem"`
	Diagnostic    *entity.Diagnostic    `json:"diagnostic"`
	Challenges    *entity.Challenges    `json:"challenges"`
	CTA           *entity.CTA           `json:"cta"`
	Status        *string               `json:"status"`
	CreatedAt     *time.Time            `json:"createdAt"`
	UpdatedAt     *time.Time            `json:"updatedAt"`
}

// ProspectResponse sortie d'un prospect.
type ProspectResponse struct {
	ID            string               `json:"id"`
	Identity      entity.Identity      `json:"identity"`
	TechEcosystem entity.TechEcosystem `json:"techEcosystem"`
	Diagnostic    entity.Diagnostic    `json:"diagnostic"`
	Challenges    entity.Challenges    `json:"challenges"`
	CTA           entity.CTA           `json:"cta"`
	Status        string               `json:"status"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}
