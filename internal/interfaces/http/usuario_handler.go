package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/docfinance/docfinance-api/internal/application/dto"
	"github.com/docfinance/docfinance-api/internal/application/usuarios"
	"github.com/docfinance/docfinance-api/internal/domain/entity"
)

// UsuarioHandler administração de contas e trilha de atividade.
type UsuarioHandler struct {
	uc     *usuarios.UsuarioUseCase
	logsUC *usuarios.LogsUseCase
}

func NewUsuarioHandler(uc *usuarios.UsuarioUseCase, logsUC *usuarios.LogsUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc, logsUC: logsUC}
}

// List GET /api/usuarios?status=
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	var in dto.ListUsuariosRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	resp, err := h.uc.List(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Aprovar POST /api/usuarios/:id/aprovar
func (h *UsuarioHandler) Aprovar(c *fiber.Ctx) error {
	var in dto.AprovarUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Role == "" {
		in.Role = entity.RoleConsulta
	}
	if !entity.RoleValida(in.Role) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "role inválida", Campo: "role"})
	}
	resp, err := h.uc.Aprovar(GetUserID(c), ClientIP(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Rejeitar POST /api/usuarios/:id/rejeitar
func (h *UsuarioHandler) Rejeitar(c *fiber.Ctx) error {
	resp, err := h.uc.Rejeitar(GetUserID(c), ClientIP(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Logs GET /api/logs?limit=&offset=
func (h *UsuarioHandler) Logs(c *fiber.Ctx) error {
	var in dto.PageRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	resp, err := h.logsUC.List(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
