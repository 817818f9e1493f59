package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/forgeit/astrolabe-qualif/internal/application/dto"
	"github.com/forgeit/astrolabe-qualif/internal/application/emailconfig"
)

// EmailConfigHandler expose la configuration des gabarits d'email de bienvenue.
type EmailConfigHandler struct {
	uc *emailconfig.UseCase
}

func NewEmailConfigHandler(uc *emailconfig.UseCase) *EmailConfigHandler {
	return &EmailConfigHandler{uc: uc}
}

// Get godoc
// @Summary      Obtenir la configuration des gabarits d'email
// @Tags         config
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  entity.EmailTemplateConfig
// @Router       /config/email-templates [get]
func (h *EmailConfigHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Remplacer la configuration des gabarits d'email
// @Tags         config
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateEmailConfigRequest  true  "Nouvelle configuration"
// @Success      200   {object}  entity.EmailTemplateConfig
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /config/email-templates [put]
func (h *EmailConfigHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmailConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if in.Templates == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "templates est requis"})
	}
	out, err := h.uc.Update(in, GetEmail(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
