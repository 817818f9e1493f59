// Package mail rend et expédie les emails de notification via SMTP.
// Les échecs d'envoi sont journalisés et avalés: un email perdu ne doit jamais
// faire échouer ni annuler la création du prospect qui l'a déclenché.
package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/forgeit/astrolabe-qualif/internal/application/prospect"
	"github.com/forgeit/astrolabe-qualif/internal/domain/entity"
	"github.com/forgeit/astrolabe-qualif/pkg/config"
	"github.com/forgeit/astrolabe-qualif/pkg/logger"
)

var _ prospect.Notifier = (*Sender)(nil)

// Sender implémentation du port Notifier sur un relais SMTP (gomail).
type Sender struct {
	dialer     *gomail.Dialer
	from       string
	adminEmail string
	logoURL    string
	log        *logger.Logger
}

// NewSender construit l'expéditeur depuis la configuration SMTP et mail.
func NewSender(smtp config.SMTPConfig, mailCfg config.MailConfig, log *logger.Logger) *Sender {
	from := smtp.From
	if from == "" {
		from = mailCfg.AdminEmail
	}
	return &Sender{
		dialer:     gomail.NewDialer(smtp.Host, smtp.Port, smtp.User, smtp.Password),
		from:       from,
		adminEmail: mailCfg.AdminEmail,
		logoURL:    mailCfg.LogoURL,
		log:        log,
	}
}

// SendAdminAlert envoie l'alerte interne "nouveau prospect" à l'adresse admin.
func (s *Sender) SendAdminAlert(p *entity.Prospect) {
	if s.adminEmail == "" {
		s.log.Warn().Msg("ADMIN_EMAIL non configuré, alerte prospect ignorée")
		return
	}
	body, err := renderAdminAlert(p)
	if err != nil {
		s.log.Error().Err(err).Str("prospect_id", p.ID).Msg("rendu de l'alerte admin")
		return
	}
	subject := fmt.Sprintf("🎯 Nouveau Prospect: %s %s - %s",
		p.Identity.FirstName, p.Identity.LastName, p.Identity.Company)
	s.send(s.adminEmail, subject, body, p.ID)
}

// SendWelcome envoie l'email de bienvenue au prospect.
func (s *Sender) SendWelcome(p *entity.Prospect, cfg *entity.EmailTemplateConfig) {
	if p.Identity.Email == "" {
		s.log.Warn().Str("prospect_id", p.ID).Msg("email du prospect absent, bienvenue ignorée")
		return
	}
	if s.adminEmail == "" {
		s.log.Warn().Msg("ADMIN_EMAIL non configuré, email de bienvenue ignoré")
		return
	}
	body, err := renderWelcome(p, cfg, s.adminEmail, s.logoURL)
	if err != nil {
		s.log.Error().Err(err).Str("prospect_id", p.ID).Msg("rendu de l'email de bienvenue")
		return
	}
	s.send(p.Identity.Email, "Bienvenue chez Forge IT", body, p.ID)
}

// send expédie un message HTML; l'échec est journalisé, jamais propagé.
func (s *Sender) send(to, subject, body, prospectID string) {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.log.Error().Err(err).
			Str("to", to).
			Str("prospect_id", prospectID).
			Msg("envoi SMTP échoué")
		return
	}
	s.log.Info().Str("to", to).Str("prospect_id", prospectID).Msg("email envoyé")
}
