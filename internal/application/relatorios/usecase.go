package relatorios

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/docfinance/docfinance-api/internal/application/dto"
	"github.com/docfinance/docfinance-api/internal/domain"
	"github.com/docfinance/docfinance-api/internal/domain/repository"
)

const formatoData = "2006-01-02"

// RelatorioUseCase consultas agregadas: painel inicial e relatórios por
// período, com exportação em CSV.
type RelatorioUseCase struct {
	relRepo        repository.RelatorioRepository
	fornecedorRepo repository.FornecedorRepository
	secretariaRepo repository.SecretariaRepository
}

// NewRelatorioUseCase constrói o caso de uso.
func NewRelatorioUseCase(
	relRepo repository.RelatorioRepository,
	fornecedorRepo repository.FornecedorRepository,
	secretariaRepo repository.SecretariaRepository,
) *RelatorioUseCase {
	return &RelatorioUseCase{relRepo: relRepo, fornecedorRepo: fornecedorRepo, secretariaRepo: secretariaRepo}
}

// Dashboard devolve os totais por status e os documentos mais recentes.
func (uc *RelatorioUseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	totais, err := uc.relRepo.TotaisDashboard(ctx)
	if err != nil {
		return nil, err
	}
	ultimos, err := uc.relRepo.UltimosDocumentos(ctx, 5)
	if err != nil {
		return nil, err
	}
	docs := make([]dto.DocumentoResponse, 0, len(ultimos))
	for _, d := range ultimos {
		nome := ""
		if f, _ := uc.fornecedorRepo.GetByID(d.FornecedorID); f != nil {
			nome = f.Nome
		}
		r := dto.DocumentoResponse{
			ID:             d.ID,
			Numero:         d.Numero,
			Tipo:           d.Tipo,
			FornecedorID:   d.FornecedorID,
			FornecedorNome: nome,
			DataDocumento:  d.DataDocumento.Format(formatoData),
			DataEntrada:    d.DataEntrada.Format(formatoData),
			ValorDocumento: d.ValorDocumento,
			ValorLiquido:   d.ValorLiquido,
			Status:         d.Status,
			Etapa:          d.Etapa,
		}
		docs = append(docs, r)
	}
	return &dto.DashboardResponse{
		TotalPendentes: totais.TotalPendentes,
		TotalPagos:     totais.TotalPagos,
		TotalAtrasados: totais.TotalAtrasados,
		ValorPendente:  totais.ValorPendente,
		ValorPago:      totais.ValorPago,
		Ultimos:        docs,
	}, nil
}

// PagamentosPorRecurso agrega os documentos do período por secretaria e
// recurso orçamentário.
func (uc *RelatorioUseCase) PagamentosPorRecurso(ctx context.Context, in dto.RelatorioPeriodoRequest) (*dto.RelatorioPagamentosResponse, error) {
	inicio, fim, err := parsePeriodo(in.Inicio, in.Fim)
	if err != nil {
		return nil, err
	}
	linhas, err := uc.relRepo.PagamentosPorRecurso(ctx, inicio, fim, in.Status)
	if err != nil {
		return nil, err
	}
	resp := &dto.RelatorioPagamentosResponse{
		Inicio:     in.Inicio,
		Fim:        in.Fim,
		Linhas:     make([]dto.PagamentoRecursoResponse, 0, len(linhas)),
		ValorGeral: decimal.Zero,
	}
	for _, l := range linhas {
		resp.Linhas = append(resp.Linhas, dto.PagamentoRecursoResponse{
			Secretaria:    l.SecretariaNome,
			CodigoSec:     l.SecretariaCodigo,
			Recurso:       l.RecursoNome,
			CodigoRecurso: l.RecursoCodigo,
			Quantidade:    l.Quantidade,
			ValorTotal:    l.ValorTotal,
		})
		resp.ValorGeral = resp.ValorGeral.Add(l.ValorTotal)
	}
	return resp, nil
}

// DocumentosPorFornecedor agrega contagem e valor líquido por fornecedor.
func (uc *RelatorioUseCase) DocumentosPorFornecedor(ctx context.Context, in dto.RelatorioPeriodoRequest) (*dto.RelatorioFornecedoresResponse, error) {
	inicio, fim, err := parsePeriodo(in.Inicio, in.Fim)
	if err != nil {
		return nil, err
	}
	linhas, err := uc.relRepo.DocumentosPorFornecedor(ctx, inicio, fim)
	if err != nil {
		return nil, err
	}
	resp := &dto.RelatorioFornecedoresResponse{
		Inicio:     in.Inicio,
		Fim:        in.Fim,
		Linhas:     make([]dto.FornecedorResumoResponse, 0, len(linhas)),
		ValorGeral: decimal.Zero,
	}
	for _, l := range linhas {
		resp.Linhas = append(resp.Linhas, dto.FornecedorResumoResponse{
			Fornecedor: l.FornecedorNome,
			CnpjCpf:    l.CnpjCpf,
			Quantidade: l.Quantidade,
			ValorTotal: l.ValorTotal,
		})
		resp.ValorGeral = resp.ValorGeral.Add(l.ValorTotal)
	}
	return resp, nil
}

// Financeiro devolve os totais do período e o resumo agrupado por mês,
// secretaria ou recurso, cada grupo com o percentual sobre o valor total.
// As datas são opcionais; ausentes, o relatório cobre todos os documentos.
func (uc *RelatorioUseCase) Financeiro(ctx context.Context, in dto.RelatorioFinanceiroRequest) (*dto.RelatorioFinanceiroResponse, error) {
	agrupamento := in.Agrupamento
	if agrupamento == "" {
		agrupamento = "mes"
	}
	switch agrupamento {
	case "mes", "secretaria", "recurso":
	default:
		return nil, domain.NewValidationError("agrupamento", domain.CodigoFormatoInvalido,
			"Agrupamento deve ser mes, secretaria ou recurso")
	}

	filtro := repository.FiltroFinanceiro{Status: in.Status, Agrupamento: agrupamento}
	if in.Inicio != "" {
		inicio, err := time.Parse(formatoData, in.Inicio)
		if err != nil {
			return nil, domain.NewValidationError("inicio", domain.CodigoFormatoInvalido,
				"Início do período deve estar no formato AAAA-MM-DD")
		}
		filtro.Inicio = &inicio
	}
	if in.Fim != "" {
		fim, err := time.Parse(formatoData, in.Fim)
		if err != nil {
			return nil, domain.NewValidationError("fim", domain.CodigoFormatoInvalido,
				"Fim do período deve estar no formato AAAA-MM-DD")
		}
		if filtro.Inicio != nil && fim.Before(*filtro.Inicio) {
			return nil, domain.NewValidationError("fim", domain.CodigoFormatoInvalido,
				"Fim do período não pode ser anterior ao início")
		}
		filtro.Fim = &fim
	}

	grupos, err := uc.relRepo.ResumoFinanceiro(ctx, filtro)
	if err != nil {
		return nil, err
	}

	resp := &dto.RelatorioFinanceiroResponse{
		Inicio:        in.Inicio,
		Fim:           in.Fim,
		Agrupamento:   agrupamento,
		ValorTotal:    decimal.Zero,
		ValorPago:     decimal.Zero,
		ValorPendente: decimal.Zero,
		Grupos:        make([]dto.GrupoFinanceiroResponse, 0, len(grupos)),
	}
	for _, g := range grupos {
		resp.TotalDocumentos += g.Quantidade
		resp.ValorTotal = resp.ValorTotal.Add(g.ValorTotal)
		resp.ValorPago = resp.ValorPago.Add(g.ValorPago)
		resp.ValorPendente = resp.ValorPendente.Add(g.ValorPendente)
	}
	cem := decimal.NewFromInt(100)
	for _, g := range grupos {
		percentual := decimal.Zero
		if resp.ValorTotal.IsPositive() {
			percentual = g.ValorTotal.Mul(cem).Div(resp.ValorTotal).Round(2)
		}
		resp.Grupos = append(resp.Grupos, dto.GrupoFinanceiroResponse{
			Nome:          g.Nome,
			Quantidade:    g.Quantidade,
			ValorTotal:    g.ValorTotal,
			ValorPago:     g.ValorPago,
			ValorPendente: g.ValorPendente,
			Percentual:    percentual,
		})
	}
	return resp, nil
}

// Contabilidade monta o encaminhamento dos documentos selecionados: linhas
// numeradas em sequência, valor total e a secretaria do primeiro documento.
func (uc *RelatorioUseCase) Contabilidade(ctx context.Context, in dto.RelatorioContabilidadeRequest) (*dto.RelatorioContabilidadeResponse, error) {
	if len(in.Documentos) == 0 {
		return nil, domain.NewValidationError("documentos", domain.CodigoFormatoInvalido,
			"Nenhum documento foi selecionado para o relatório.")
	}
	docs, err := uc.relRepo.DocumentosPorIDs(ctx, in.Documentos)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, domain.ErrNotFound
	}

	resp := &dto.RelatorioContabilidadeResponse{
		Secretaria: "Não definido",
		Data:       time.Now().Format(formatoData),
		Linhas:     make([]dto.LinhaContabilidadeResponse, 0, len(docs)),
		ValorTotal: decimal.Zero,
	}
	if docs[0].SecretariaID != nil {
		if s, _ := uc.secretariaRepo.GetByID(*docs[0].SecretariaID); s != nil {
			resp.Secretaria = s.Nome
		}
	}
	for i, d := range docs {
		nome := ""
		if f, _ := uc.fornecedorRepo.GetByID(d.FornecedorID); f != nil {
			nome = f.Nome
		}
		resp.Linhas = append(resp.Linhas, dto.LinhaContabilidadeResponse{
			Seq:             i + 1,
			Fornecedor:      nome,
			NumeroDocumento: d.NumeroDocumento,
			Descricao:       d.Descricao,
			DataDocumento:   d.DataDocumento.Format(formatoData),
			Valor:           d.ValorDocumento,
		})
		resp.ValorTotal = resp.ValorTotal.Add(d.ValorDocumento)
	}
	return resp, nil
}

// parsePeriodo valida o intervalo: datas no formato AAAA-MM-DD e início não
// posterior ao fim.
func parsePeriodo(inicioStr, fimStr string) (time.Time, time.Time, error) {
	inicio, err := time.Parse(formatoData, inicioStr)
	if err != nil {
		return time.Time{}, time.Time{}, domain.NewValidationError("inicio", domain.CodigoFormatoInvalido,
			"Início do período deve estar no formato AAAA-MM-DD")
	}
	fim, err := time.Parse(formatoData, fimStr)
	if err != nil {
		return time.Time{}, time.Time{}, domain.NewValidationError("fim", domain.CodigoFormatoInvalido,
			"Fim do período deve estar no formato AAAA-MM-DD")
	}
	if fim.Before(inicio) {
		return time.Time{}, time.Time{}, domain.NewValidationError("fim", domain.CodigoFormatoInvalido,
			"Fim do período não pode ser anterior ao início")
	}
	return inicio, fim, nil
}
