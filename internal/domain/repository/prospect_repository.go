package repository

import "github.com/forgeit/astrolabe-qualif/internal/domain/entity"

// ProspectRepository port de persistance des prospects (DIP).
// Les lectures renvoient (nil, nil) quand l'enregistrement est absent.
type ProspectRepository interface {
	Create(p *entity.Prospect) error
	GetByID(id string) (*entity.Prospect, error)
	// List renvoie tous les prospects, sans pagination (scan complet).
	List() ([]*entity.Prospect, error)
	Update(p *entity.Prospect) error
	// Delete est inconditionnel: supprimer un id absent n'est pas une erreur.
	Delete(id string) error
}
