package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/forgeit/astrolabe-qualif/internal/application/auth"
	"github.com/forgeit/astrolabe-qualif/internal/application/emailconfig"
	"github.com/forgeit/astrolabe-qualif/internal/application/gatekeeper"
	"github.com/forgeit/astrolabe-qualif/internal/application/prospect"
	"github.com/forgeit/astrolabe-qualif/internal/infrastructure/mail"
	"github.com/forgeit/astrolabe-qualif/internal/infrastructure/postgres"
	"github.com/forgeit/astrolabe-qualif/internal/infrastructure/recaptcha"
	httpRouter "github.com/forgeit/astrolabe-qualif/internal/interfaces/http"
	"github.com/forgeit/astrolabe-qualif/pkg/config"
	"github.com/forgeit/astrolabe-qualif/pkg/logger"
	"github.com/forgeit/astrolabe-qualif/pkg/secrets"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("chargement de la configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	store := postgres.NewStore(pool)
	prospectRepo := postgres.NewProspectRepository(store)
	credentialRepo := postgres.NewCredentialRepository(store)
	emailConfigRepo := postgres.NewEmailConfigRepository(store)

	// Les secrets sont résolus au premier usage, pas au démarrage.
	jwtSecret := secrets.FromConfig(cfg.JWT.Secret, cfg.JWT.SecretFile)
	captchaSecret := secrets.FromConfig(cfg.Recaptcha.Secret, cfg.Recaptcha.SecretFile)

	notifier := mail.NewSender(cfg.SMTP, cfg.Mail, log)
	prospectUC := prospect.NewUseCase(prospectRepo, emailConfigRepo, notifier, log)
	emailConfigUC := emailconfig.NewUseCase(emailConfigRepo)
	authUC := auth.NewAuthUseCase(credentialRepo, auth.TokenConfig{
		Secret: jwtSecret,
		TTL:    time.Duration(cfg.JWT.ExpHours) * time.Hour,
		Issuer: cfg.JWT.Issuer,
	})
	gk := gatekeeper.New(jwtSecret)
	captchaClient := recaptcha.NewClient(captchaSecret, cfg.Recaptcha.VerifyURL)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// L'origine est renvoyée telle quelle car le front envoie des cookies
	// et un en-tête Authorization depuis un domaine distinct.
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool { return origin != "" },
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Forge IT Qualification API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", httpRouter.MetricsHandler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ProspectUC:    prospectUC,
		EmailConfigUC: emailConfigUC,
		Captcha:       captchaClient,
		Gatekeeper:    gk,
	})

	// Sert le front (formulaire + back-office) quand un répertoire est fourni.
	if cfg.HTTP.StaticDir != "" {
		app.Static("/", cfg.HTTP.StaticDir)
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP terminé")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
