package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/docfinance/docfinance-api/internal/application/dto"
	"github.com/docfinance/docfinance-api/internal/application/fornecedores"
)

// FornecedorHandler CRUD de fornecedores (protegido).
type FornecedorHandler struct {
	uc *fornecedores.FornecedorUseCase
}

// NewFornecedorHandler constrói o handler.
func NewFornecedorHandler(uc *fornecedores.FornecedorUseCase) *FornecedorHandler {
	return &FornecedorHandler{uc: uc}
}

// Create POST /api/fornecedores
func (h *FornecedorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Nome == "" || in.CnpjCpf == "" || in.Tipo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo, nome e cnpj_cpf são obrigatórios"})
	}
	resp, err := h.uc.Create(GetUserID(c), ClientIP(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List GET /api/fornecedores?busca=&limit=20&offset=0
func (h *FornecedorHandler) List(c *fiber.Ctx) error {
	var in dto.ListFornecedoresRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	resp, err := h.uc.List(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetByID GET /api/fornecedores/:id
func (h *FornecedorHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Update PUT /api/fornecedores/:id
func (h *FornecedorHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.uc.Update(GetUserID(c), ClientIP(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Delete DELETE /api/fornecedores/:id
func (h *FornecedorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), ClientIP(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
