package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/docfinance/docfinance-api/internal/domain/entity"
)

// TotaisDashboard resultado cru da consulta de totais por status.
// A DB produz; o caso de uso converte em DTO.
type TotaisDashboard struct {
	TotalPendentes int
	TotalPagos     int
	TotalAtrasados int
	ValorPendente  decimal.Decimal // soma do valor líquido dos pendentes
	ValorPago      decimal.Decimal // soma do valor líquido dos pagos
}

// PagamentoPorRecurso linha agregada de pagamentos por recurso orçamentário.
type PagamentoPorRecurso struct {
	SecretariaID     string
	SecretariaNome   string
	SecretariaCodigo string
	RecursoID        string
	RecursoNome      string
	RecursoCodigo    string
	Quantidade       int
	ValorTotal       decimal.Decimal
}

// FiltroFinanceiro filtros do relatório financeiro. Datas nulas não limitam
// o período; status vazio inclui todos.
type FiltroFinanceiro struct {
	Inicio      *time.Time
	Fim         *time.Time
	Status      string
	Agrupamento string // mes | secretaria | recurso
}

// GrupoFinanceiro linha agregada do relatório financeiro: um mês, uma
// secretaria ou um recurso, conforme o agrupamento pedido.
type GrupoFinanceiro struct {
	Nome          string
	Quantidade    int
	ValorTotal    decimal.Decimal
	ValorPago     decimal.Decimal
	ValorPendente decimal.Decimal
}

// RelatorioRepository define as consultas de leitura para relatórios.
// As implementações são read-only.
type RelatorioRepository interface {
	// TotaisDashboard devolve contagens e somas por status de pagamento.
	TotaisDashboard(ctx context.Context) (*TotaisDashboard, error)

	// UltimosDocumentos devolve os documentos mais recentes por data do
	// documento, limitado a limit.
	UltimosDocumentos(ctx context.Context, limit int) ([]*entity.Documento, error)

	// PagamentosPorRecurso agrega documentos do período por secretaria e
	// recurso (soma do valor líquido e contagem). status vazio inclui todos.
	PagamentosPorRecurso(ctx context.Context, inicio, fim time.Time, status string) ([]PagamentoPorRecurso, error)

	// DocumentosPorFornecedor devolve contagem e soma do valor líquido por
	// fornecedor no período.
	DocumentosPorFornecedor(ctx context.Context, inicio, fim time.Time) ([]FornecedorResumo, error)

	// ResumoFinanceiro agrega os documentos filtrados por mês, secretaria ou
	// recurso, com valor total e as parcelas paga e pendente de cada grupo.
	ResumoFinanceiro(ctx context.Context, filtro FiltroFinanceiro) ([]GrupoFinanceiro, error)

	// DocumentosPorIDs devolve os documentos selecionados, ordenados por nome
	// do fornecedor e data do documento. IDs desconhecidos são ignorados.
	DocumentosPorIDs(ctx context.Context, ids []string) ([]*entity.Documento, error)
}

// FornecedorResumo linha agregada do relatório de fornecedores.
type FornecedorResumo struct {
	FornecedorID   string
	FornecedorNome string
	CnpjCpf        string
	Quantidade     int
	ValorTotal     decimal.Decimal
}
