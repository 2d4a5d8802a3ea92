package http

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/docfinance/docfinance-api/internal/application/documentos"
	"github.com/docfinance/docfinance-api/internal/application/dto"
	"github.com/docfinance/docfinance-api/internal/application/relatorios"
)

// RelatorioHandler dashboard e relatórios gerenciais, com exportação em CSV.
type RelatorioHandler struct {
	uc    *relatorios.RelatorioUseCase
	docUC *documentos.DocumentoUseCase
}

func NewRelatorioHandler(uc *relatorios.RelatorioUseCase, docUC *documentos.DocumentoUseCase) *RelatorioHandler {
	return &RelatorioHandler{uc: uc, docUC: docUC}
}

// Dashboard GET /api/relatorios/dashboard
func (h *RelatorioHandler) Dashboard(c *fiber.Ctx) error {
	resp, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Pagamentos GET /api/relatorios/pagamentos?inicio=&fim=&status=
func (h *RelatorioHandler) Pagamentos(c *fiber.Ctx) error {
	var in dto.RelatorioPeriodoRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	resp, err := h.uc.PagamentosPorRecurso(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// PagamentosCSV GET /api/relatorios/pagamentos/csv
func (h *RelatorioHandler) PagamentosCSV(c *fiber.Ctx) error {
	var in dto.RelatorioPeriodoRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	rel, err := h.uc.PagamentosPorRecurso(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	var buf bytes.Buffer
	if err := relatorios.EscreverPagamentosCSV(&buf, rel); err != nil {
		return respondError(c, err)
	}
	return enviarCSV(c, "pagamentos", buf.Bytes())
}

// Financeiro GET /api/relatorios/financeiro?inicio=&fim=&status=&agrupamento=
func (h *RelatorioHandler) Financeiro(c *fiber.Ctx) error {
	var in dto.RelatorioFinanceiroRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	resp, err := h.uc.Financeiro(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// FinanceiroCSV GET /api/relatorios/financeiro/csv
func (h *RelatorioHandler) FinanceiroCSV(c *fiber.Ctx) error {
	var in dto.RelatorioFinanceiroRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	rel, err := h.uc.Financeiro(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	var buf bytes.Buffer
	if err := relatorios.EscreverFinanceiroCSV(&buf, rel); err != nil {
		return respondError(c, err)
	}
	return enviarCSV(c, "financeiro", buf.Bytes())
}

// Contabilidade GET /api/relatorios/contabilidade?documentos=id1&documentos=id2
func (h *RelatorioHandler) Contabilidade(c *fiber.Ctx) error {
	var in dto.RelatorioContabilidadeRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	resp, err := h.uc.Contabilidade(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ContabilidadeCSV GET /api/relatorios/contabilidade/csv
func (h *RelatorioHandler) ContabilidadeCSV(c *fiber.Ctx) error {
	var in dto.RelatorioContabilidadeRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	rel, err := h.uc.Contabilidade(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	var buf bytes.Buffer
	if err := relatorios.EscreverContabilidadeCSV(&buf, rel); err != nil {
		return respondError(c, err)
	}
	return enviarCSV(c, "contabilidade", buf.Bytes())
}

// Fornecedores GET /api/relatorios/fornecedores?inicio=&fim=&status=
func (h *RelatorioHandler) Fornecedores(c *fiber.Ctx) error {
	var in dto.RelatorioPeriodoRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	resp, err := h.uc.DocumentosPorFornecedor(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// FornecedoresCSV GET /api/relatorios/fornecedores/csv
func (h *RelatorioHandler) FornecedoresCSV(c *fiber.Ctx) error {
	var in dto.RelatorioPeriodoRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	rel, err := h.uc.DocumentosPorFornecedor(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	var buf bytes.Buffer
	if err := relatorios.EscreverFornecedoresCSV(&buf, rel); err != nil {
		return respondError(c, err)
	}
	return enviarCSV(c, "fornecedores", buf.Bytes())
}

// DocumentosCSV GET /api/relatorios/documentos/csv — exporta a listagem
// corrente de documentos com os mesmos filtros da busca.
func (h *RelatorioHandler) DocumentosCSV(c *fiber.Ctx) error {
	var in dto.ListDocumentosRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	// Exportação ignora paginação: traz a lista completa do filtro.
	in.Limit = 10000
	in.Offset = 0
	lista, err := h.docUC.List(in)
	if err != nil {
		return respondError(c, err)
	}
	var buf bytes.Buffer
	if err := relatorios.EscreverDocumentosCSV(&buf, lista.Documentos); err != nil {
		return respondError(c, err)
	}
	return enviarCSV(c, "documentos", buf.Bytes())
}

func enviarCSV(c *fiber.Ctx, nome string, conteudo []byte) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s-%s.csv"`, nome, time.Now().Format("20060102")))
	return c.Send(conteudo)
}
