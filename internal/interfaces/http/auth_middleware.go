package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/forgeit/astrolabe-qualif/internal/application/dto"
	"github.com/forgeit/astrolabe-qualif/internal/application/gatekeeper"
)

// Locals keys pour les claims dans Fiber.
const (
	LocalEmail = "email"
	LocalRole  = "role"
)

// AuthMiddleware soumet la requête au gatekeeper et transforme tout deny en 401
// uniforme: le corps de refus ne distingue jamais la cause (token absent,
// malformé, expiré ou mal signé).
func AuthMiddleware(gk *gatekeeper.Gatekeeper) fiber.Handler {
	return func(c *fiber.Ctx) error {
		decision := gk.Authorize(c.Get("Authorization"), c.Method(), c.Path())
		if !decision.Allowed() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "non autorisé"})
		}
		c.Locals(LocalEmail, decision.Email)
		c.Locals(LocalRole, decision.Role)
		return c.Next()
	}
}

// GetEmail renvoie l'email du contexte (après le middleware d'auth).
func GetEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole renvoie le rôle du contexte (après le middleware d'auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
