package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/forgeit/astrolabe-qualif/internal/application/auth"
	"github.com/forgeit/astrolabe-qualif/internal/application/emailconfig"
	"github.com/forgeit/astrolabe-qualif/internal/application/gatekeeper"
	"github.com/forgeit/astrolabe-qualif/internal/application/prospect"
	"github.com/forgeit/astrolabe-qualif/internal/infrastructure/recaptcha"
)

// RouterDeps regroupe les dépendances injectées dans le routeur.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ProspectUC    *prospect.UseCase
	EmailConfigUC *emailconfig.UseCase
	Captcha       *recaptcha.Client
	Gatekeeper    *gatekeeper.Gatekeeper
}

// Router enregistre toutes les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	prospectHandler := NewProspectHandler(deps.ProspectUC)
	configHandler := NewEmailConfigHandler(deps.EmailConfigUC)
	captchaHandler := NewCaptchaHandler(deps.Captcha)

	guard := AuthMiddleware(deps.Gatekeeper)

	// Les préflights CORS doivent aboutir sans jeton.
	app.Options("/*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{})
	})

	// Routes publiques
	app.Post("/auth/login", authHandler.Login)
	app.Post("/recaptcha/verify", captchaHandler.Verify)
	app.Post("/prospects", prospectHandler.Create)

	// Routes protégées
	app.Get("/prospects", guard, prospectHandler.List)
	app.Get("/prospects/:id", guard, prospectHandler.GetByID)
	app.Patch("/prospects/:id", guard, prospectHandler.Update)
	app.Put("/prospects/:id", guard, prospectHandler.Update)
	app.Delete("/prospects/:id", guard, prospectHandler.Delete)

	app.Get("/config/email-templates", guard, configHandler.Get)
	app.Put("/config/email-templates", guard, configHandler.Update)
}
