package prospect

import "github.com/forgeit/astrolabe-qualif/internal/domain/entity"

// Notifier port d'envoi des emails déclenchés par une création de prospect.
// Les deux envois sont best-effort: l'implémentation journalise ses échecs et ne
// les remonte jamais, une création persistée n'est pas annulée pour un email.
type Notifier interface {
	// SendAdminAlert notifie l'équipe qu'une qualification a été soumise.
	SendAdminAlert(p *entity.Prospect)
	// SendWelcome envoie l'email de bienvenue au prospect, personnalisé avec la
	// configuration de templates si elle est disponible (cfg peut être nil).
	SendWelcome(p *entity.Prospect, cfg *entity.EmailTemplateConfig)
}
