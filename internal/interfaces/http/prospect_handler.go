package http

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/forgeit/astrolabe-qualif/internal/application/dto"
	"github.com/forgeit/astrolabe-qualif/internal/application/prospect"
	"github.com/forgeit/astrolabe-qualif/internal/domain"
)

// ProspectHandler gère les requêtes HTTP des prospects.
// La création est publique (formulaire de qualification), le reste est protégé.
type ProspectHandler struct {
	uc *prospect.UseCase
}

// NewProspectHandler construit le handler.
func NewProspectHandler(uc *prospect.UseCase) *ProspectHandler {
	return &ProspectHandler{uc: uc}
}

// Create godoc
// @Summary      Soumettre une qualification prospect
// @Tags         prospects
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProspectRequest  true  "Données du formulaire"
// @Success      201   {object}  dto.ProspectResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /prospects [post]
func (h *ProspectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProspectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if in.Identity.FirstName == "" || in.Identity.LastName == "" || in.Identity.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "identity.firstName, identity.lastName et identity.email sont requis"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "statut de prospect invalide"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	RecordProspectCreated()
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Lister tous les prospects
// @Tags         prospects
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProspectResponse
// @Router       /prospects [get]
func (h *ProspectHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtenir un prospect par ID
// @Tags         prospects
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID du prospect"
// @Success      200  {object}  dto.ProspectResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /prospects/{id} [get]
func (h *ProspectHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "prospect non trouvé"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Mise à jour partielle d'un prospect
// @Tags         prospects
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID du prospect"
// @Param        body  body  dto.UpdateProspectRequest  true  "Sections à fusionner"
// @Success      200   {object}  dto.ProspectResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /prospects/{id} [patch]
func (h *ProspectHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id du prospect requis"})
	}
	// Décodage strict: une clé inconnue est rejetée au lieu d'être transmise
	// opaquement vers le store.
	var in dto.UpdateProspectRequest
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide ou clé inconnue"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "prospect non trouvé"})
		}
		if errors.Is(err, domain.ErrInvalidStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "statut de prospect invalide"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer un prospect
// @Tags         prospects
// @Security     Bearer
// @Param        id  path  string  true  "ID du prospect"
// @Success      204
// @Router       /prospects/{id} [delete]
func (h *ProspectHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id du prospect requis"})
	}
	if err := h.uc.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
