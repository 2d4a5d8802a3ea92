package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/docfinance/docfinance-api/internal/application/documentos"
	"github.com/docfinance/docfinance-api/internal/application/dto"
)

// DocumentoHandler ciclo de vida do documento financeiro (protegido).
type DocumentoHandler struct {
	uc       *documentos.DocumentoUseCase
	reciboUC *documentos.ReciboUseCase
}

// NewDocumentoHandler constrói o handler.
func NewDocumentoHandler(uc *documentos.DocumentoUseCase, reciboUC *documentos.ReciboUseCase) *DocumentoHandler {
	return &DocumentoHandler{uc: uc, reciboUC: reciboUC}
}

// Create POST /api/documentos
func (h *DocumentoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDocumentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.FornecedorID == "" || in.Tipo == "" || in.DataDocumento == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fornecedor_id, tipo e data_documento são obrigatórios"})
	}
	resp, err := h.uc.Create(c.Context(), GetUserID(c), ClientIP(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List GET /api/documentos?busca=&etapa=&status=&secretaria_id=&limit=&offset=
func (h *DocumentoHandler) List(c *fiber.Ctx) error {
	var in dto.ListDocumentosRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	resp, err := h.uc.List(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetByID GET /api/documentos/:id
func (h *DocumentoHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Update PUT /api/documentos/:id
func (h *DocumentoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDocumentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.uc.Update(GetUserID(c), ClientIP(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Delete DELETE /api/documentos/:id
func (h *DocumentoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), ClientIP(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DarBaixa POST /api/documentos/:id/baixa — body opcional com data_pagamento.
func (h *DocumentoHandler) DarBaixa(c *fiber.Ctx) error {
	var in dto.DarBaixaRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
		}
	}
	resp, err := h.uc.DarBaixa(c.Context(), GetUserID(c), ClientIP(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// MudarEtapa POST /api/documentos/:id/etapa
func (h *DocumentoHandler) MudarEtapa(c *fiber.Ctx) error {
	var in dto.MudarEtapaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Etapa == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "etapa é obrigatória"})
	}
	resp, err := h.uc.MudarEtapa(c.Context(), GetUserID(c), ClientIP(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Historico GET /api/documentos/:id/historico
func (h *DocumentoHandler) Historico(c *fiber.Ctx) error {
	resp, err := h.uc.Historico(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Timeline GET /api/documentos/:id/etapas
func (h *DocumentoHandler) Timeline(c *fiber.Ctx) error {
	resp, err := h.uc.Timeline(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Recibo GET /api/documentos/:id/recibo — comprovante em PDF.
func (h *DocumentoHandler) Recibo(c *fiber.Ctx) error {
	pdfBytes, err := h.reciboUC.GerarRecibo(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="recibo-%s.pdf"`, c.Params("id")))
	return c.Send(pdfBytes)
}
