package dto

import "github.com/shopspring/decimal"

// DashboardResponse painel inicial: totais por status e documentos recentes.
type DashboardResponse struct {
	TotalPendentes int                 `json:"total_pendentes"`
	TotalPagos     int                 `json:"total_pagos"`
	TotalAtrasados int                 `json:"total_atrasados"`
	ValorPendente  decimal.Decimal     `json:"valor_pendente"`
	ValorPago      decimal.Decimal     `json:"valor_pago"`
	Ultimos        []DocumentoResponse `json:"ultimos"`
}

// RelatorioPeriodoRequest período dos relatórios (AAAA-MM-DD).
type RelatorioPeriodoRequest struct {
	Inicio string `query:"inicio" validate:"required"`
	Fim    string `query:"fim" validate:"required"`
	Status string `query:"status" validate:"omitempty,oneof=PEN PAG ATR"`
}

// PagamentoRecursoResponse linha do relatório de pagamentos por recurso.
type PagamentoRecursoResponse struct {
	Secretaria    string          `json:"secretaria"`
	CodigoSec     string          `json:"codigo_secretaria"`
	Recurso       string          `json:"recurso"`
	CodigoRecurso string          `json:"codigo_recurso"`
	Quantidade    int             `json:"quantidade"`
	ValorTotal    decimal.Decimal `json:"valor_total"`
}

// RelatorioPagamentosResponse relatório agregado por secretaria/recurso.
type RelatorioPagamentosResponse struct {
	Inicio     string                     `json:"inicio"`
	Fim        string                     `json:"fim"`
	Linhas     []PagamentoRecursoResponse `json:"linhas"`
	ValorGeral decimal.Decimal            `json:"valor_geral"`
}

// RelatorioFinanceiroRequest filtros do relatório financeiro. As datas são
// opcionais (AAAA-MM-DD); agrupamento aceita mes, secretaria ou recurso.
type RelatorioFinanceiroRequest struct {
	Inicio      string `query:"inicio"`
	Fim         string `query:"fim"`
	Status      string `query:"status" validate:"omitempty,oneof=PEN PAG ATR"`
	Agrupamento string `query:"agrupamento" validate:"omitempty,oneof=mes secretaria recurso"`
}

// GrupoFinanceiroResponse linha do resumo financeiro: um mês, uma secretaria
// ou um recurso, com o percentual sobre o valor total do período.
type GrupoFinanceiroResponse struct {
	Nome          string          `json:"nome"`
	Quantidade    int             `json:"quantidade"`
	ValorTotal    decimal.Decimal `json:"valor_total"`
	ValorPago     decimal.Decimal `json:"valor_pago"`
	ValorPendente decimal.Decimal `json:"valor_pendente"`
	Percentual    decimal.Decimal `json:"percentual"`
}

// RelatorioFinanceiroResponse totais do período e resumo agrupado.
type RelatorioFinanceiroResponse struct {
	Inicio          string                    `json:"inicio,omitempty"`
	Fim             string                    `json:"fim,omitempty"`
	Agrupamento     string                    `json:"agrupamento"`
	TotalDocumentos int                       `json:"total_documentos"`
	ValorTotal      decimal.Decimal           `json:"valor_total"`
	ValorPago       decimal.Decimal           `json:"valor_pago"`
	ValorPendente   decimal.Decimal           `json:"valor_pendente"`
	Grupos          []GrupoFinanceiroResponse `json:"grupos"`
}

// RelatorioContabilidadeRequest documentos selecionados para o encaminhamento
// à contabilidade (?documentos=id1&documentos=id2...).
type RelatorioContabilidadeRequest struct {
	Documentos []string `query:"documentos" validate:"required,min=1"`
}

// LinhaContabilidadeResponse documento numerado no encaminhamento.
type LinhaContabilidadeResponse struct {
	Seq             int             `json:"seq"`
	Fornecedor      string          `json:"fornecedor"`
	NumeroDocumento string          `json:"numero_documento"`
	Descricao       string          `json:"descricao,omitempty"`
	DataDocumento   string          `json:"data_documento"`
	Valor           decimal.Decimal `json:"valor"`
}

// RelatorioContabilidadeResponse encaminhamento dos documentos selecionados,
// com a secretaria de origem (a do primeiro documento) e o valor total.
type RelatorioContabilidadeResponse struct {
	Secretaria string                       `json:"secretaria"`
	Data       string                       `json:"data"`
	Linhas     []LinhaContabilidadeResponse `json:"linhas"`
	ValorTotal decimal.Decimal              `json:"valor_total"`
}

// FornecedorResumoResponse linha do relatório por fornecedor.
type FornecedorResumoResponse struct {
	Fornecedor string          `json:"fornecedor"`
	CnpjCpf    string          `json:"cnpj_cpf"`
	Quantidade int             `json:"quantidade"`
	ValorTotal decimal.Decimal `json:"valor_total"`
}

// RelatorioFornecedoresResponse relatório agregado por fornecedor.
type RelatorioFornecedoresResponse struct {
	Inicio     string                     `json:"inicio"`
	Fim        string                     `json:"fim"`
	Linhas     []FornecedorResumoResponse `json:"linhas"`
	ValorGeral decimal.Decimal            `json:"valor_geral"`
}
