package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/docfinance/docfinance-api/internal/application/dto"
	"github.com/docfinance/docfinance-api/internal/application/orcamento"
)

// OrcamentoHandler secretarias e recursos orçamentários.
type OrcamentoHandler struct {
	uc *orcamento.OrcamentoUseCase
}

func NewOrcamentoHandler(uc *orcamento.OrcamentoUseCase) *OrcamentoHandler {
	return &OrcamentoHandler{uc: uc}
}

// CreateSecretaria POST /api/secretarias
func (h *OrcamentoHandler) CreateSecretaria(c *fiber.Ctx) error {
	var in dto.CreateSecretariaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Nome == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome é obrigatório"})
	}
	resp, err := h.uc.CreateSecretaria(GetUserID(c), ClientIP(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListSecretarias GET /api/secretarias
func (h *OrcamentoHandler) ListSecretarias(c *fiber.Ctx) error {
	resp, err := h.uc.ListSecretarias()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetSecretaria GET /api/secretarias/:id
func (h *OrcamentoHandler) GetSecretaria(c *fiber.Ctx) error {
	resp, err := h.uc.GetSecretaria(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// UpdateSecretaria PUT /api/secretarias/:id
func (h *OrcamentoHandler) UpdateSecretaria(c *fiber.Ctx) error {
	var in dto.UpdateSecretariaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Nome == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome é obrigatório"})
	}
	resp, err := h.uc.UpdateSecretaria(GetUserID(c), ClientIP(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// DeleteSecretaria DELETE /api/secretarias/:id
func (h *OrcamentoHandler) DeleteSecretaria(c *fiber.Ctx) error {
	if err := h.uc.DeleteSecretaria(GetUserID(c), ClientIP(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateRecurso POST /api/secretarias/:id/recursos
func (h *OrcamentoHandler) CreateRecurso(c *fiber.Ctx) error {
	var in dto.CreateRecursoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Nome == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome é obrigatório"})
	}
	resp, err := h.uc.CreateRecurso(GetUserID(c), ClientIP(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// DeleteRecurso DELETE /api/recursos/:id
func (h *OrcamentoHandler) DeleteRecurso(c *fiber.Ctx) error {
	if err := h.uc.DeleteRecurso(GetUserID(c), ClientIP(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
