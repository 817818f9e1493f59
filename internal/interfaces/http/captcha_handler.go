package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/forgeit/astrolabe-qualif/internal/application/dto"
	"github.com/forgeit/astrolabe-qualif/internal/infrastructure/recaptcha"
)

// CaptchaHandler relaie la vérification reCAPTCHA côté serveur.
type CaptchaHandler struct {
	client *recaptcha.Client
}

func NewCaptchaHandler(client *recaptcha.Client) *CaptchaHandler {
	return &CaptchaHandler{client: client}
}

// Verify godoc
// @Summary      Vérifier un jeton reCAPTCHA
// @Tags         recaptcha
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerifyCaptchaRequest  true  "Jeton reCAPTCHA"
// @Success      200   {object}  dto.VerifyCaptchaResponse
// @Failure      400   {object}  dto.VerifyCaptchaResponse
// @Router       /recaptcha/verify [post]
func (h *CaptchaHandler) Verify(c *fiber.Ctx) error {
	var in dto.VerifyCaptchaRequest
	if err := c.BodyParser(&in); err != nil || in.Token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.VerifyCaptchaResponse{
			Success: false,
			Error:   "jeton reCAPTCHA requis",
		})
	}
	res, err := h.client.Verify(in.Token)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.VerifyCaptchaResponse{
			Success: false,
			Error:   "échec de la vérification reCAPTCHA",
		})
	}
	if !res.Success {
		return c.Status(fiber.StatusBadRequest).JSON(dto.VerifyCaptchaResponse{
			Success:    false,
			Error:      "vérification reCAPTCHA refusée",
			ErrorCodes: res.ErrorCodes,
		})
	}
	return c.JSON(dto.VerifyCaptchaResponse{
		Success: true,
		Score:   res.Score,
		Action:  res.Action,
	})
}
