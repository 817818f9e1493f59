package repository

import (
	"github.com/forgeit/astrolabe-qualif/internal/domain/entity"
	"github.com/forgeit/astrolabe-qualif/internal/domain/template"
)

// EmailConfigRepository port de persistance de la configuration singleton des
// templates d'email. La lecture renvoie la forme brute: la forme stockée n'est
// jamais considérée fiable, la normalisation s'applique après chaque lecture.
type EmailConfigRepository interface {
	// Get renvoie (nil, nil) si aucune configuration n'a encore été écrite.
	Get() (*template.RawConfig, error)
	// Put remplace intégralement l'enregistrement.
	Put(cfg *entity.EmailTemplateConfig) error
}
