package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/docfinance/docfinance-api/internal/domain/entity"
	"github.com/docfinance/docfinance-api/internal/domain/repository"
)

var _ repository.RelatorioRepository = (*RelatorioRepo)(nil)

// RelatorioRepo consultas de leitura para o painel e os relatórios por
// período. Sempre usa o pool; nunca participa de transações.
type RelatorioRepo struct {
	pool *pgxpool.Pool
}

// NewRelatorioRepository constrói o adaptador de relatórios.
func NewRelatorioRepository(pool *pgxpool.Pool) *RelatorioRepo {
	return &RelatorioRepo{pool: pool}
}

// TotaisDashboard conta documentos e soma o valor líquido por status.
func (r *RelatorioRepo) TotaisDashboard(ctx context.Context) (*repository.TotaisDashboard, error) {
	const query = `
	SELECT
	    COUNT(*) FILTER (WHERE status = 'PEN')                          AS total_pendentes,
	    COUNT(*) FILTER (WHERE status = 'PAG')                          AS total_pagos,
	    COUNT(*) FILTER (WHERE status = 'ATR')                          AS total_atrasados,
	    COALESCE(SUM(valor_liquido) FILTER (WHERE status = 'PEN'), 0)   AS valor_pendente,
	    COALESCE(SUM(valor_liquido) FILTER (WHERE status = 'PAG'), 0)   AS valor_pago
	FROM documentos`

	var t repository.TotaisDashboard
	err := r.pool.QueryRow(ctx, query).Scan(
		&t.TotalPendentes, &t.TotalPagos, &t.TotalAtrasados, &t.ValorPendente, &t.ValorPago,
	)
	if err != nil {
		return nil, fmt.Errorf("totais dashboard: %w", err)
	}
	return &t, nil
}

// UltimosDocumentos devolve os documentos mais recentes por data do documento.
func (r *RelatorioRepo) UltimosDocumentos(ctx context.Context, limit int) ([]*entity.Documento, error) {
	query := `SELECT ` + documentoColunas + ` FROM documentos ORDER BY data_documento DESC, created_at DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("ultimos documentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Documento
	for rows.Next() {
		d, err := scanDocumento(rows)
		if err != nil {
			return nil, fmt.Errorf("scan documento: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// PagamentosPorRecurso agrega os documentos do período por secretaria e
// recurso. Documentos sem recurso são ignorados; status vazio inclui todos.
func (r *RelatorioRepo) PagamentosPorRecurso(ctx context.Context, inicio, fim time.Time, status string) ([]repository.PagamentoPorRecurso, error) {
	query := `
	SELECT
	    s.id, s.nome, s.codigo,
	    rc.id, rc.nome, rc.codigo,
	    COUNT(d.id)                        AS quantidade,
	    COALESCE(SUM(d.valor_liquido), 0)  AS valor_total
	FROM documentos d
	JOIN recursos    rc ON rc.id = d.recurso_id
	JOIN secretarias s  ON s.id  = rc.secretaria_id
	WHERE d.data_documento BETWEEN $1 AND $2`
	args := []any{inicio, fim}
	if status != "" {
		query += ` AND d.status = $3`
		args = append(args, status)
	}
	query += `
	GROUP BY s.id, s.nome, s.codigo, rc.id, rc.nome, rc.codigo
	ORDER BY s.nome, rc.nome`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pagamentos por recurso: %w", err)
	}
	defer rows.Close()
	var list []repository.PagamentoPorRecurso
	for rows.Next() {
		var p repository.PagamentoPorRecurso
		if err := rows.Scan(
			&p.SecretariaID, &p.SecretariaNome, &p.SecretariaCodigo,
			&p.RecursoID, &p.RecursoNome, &p.RecursoCodigo,
			&p.Quantidade, &p.ValorTotal,
		); err != nil {
			return nil, fmt.Errorf("scan pagamento por recurso: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// DocumentosPorFornecedor agrega contagem e valor líquido por fornecedor.
func (r *RelatorioRepo) DocumentosPorFornecedor(ctx context.Context, inicio, fim time.Time) ([]repository.FornecedorResumo, error) {
	const query = `
	SELECT
	    f.id, f.nome, f.cnpj_cpf,
	    COUNT(d.id)                        AS quantidade,
	    COALESCE(SUM(d.valor_liquido), 0)  AS valor_total
	FROM documentos d
	JOIN fornecedores f ON f.id = d.fornecedor_id
	WHERE d.data_documento BETWEEN $1 AND $2
	GROUP BY f.id, f.nome, f.cnpj_cpf
	ORDER BY valor_total DESC`

	rows, err := r.pool.Query(ctx, query, inicio, fim)
	if err != nil {
		return nil, fmt.Errorf("documentos por fornecedor: %w", err)
	}
	defer rows.Close()
	var list []repository.FornecedorResumo
	for rows.Next() {
		var f repository.FornecedorResumo
		if err := rows.Scan(&f.FornecedorID, &f.FornecedorNome, &f.CnpjCpf, &f.Quantidade, &f.ValorTotal); err != nil {
			return nil, fmt.Errorf("scan fornecedor resumo: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

// ResumoFinanceiro agrega por mês, secretaria ou recurso. Documentos sem
// secretaria/recurso caem no grupo "Não definido".
func (r *RelatorioRepo) ResumoFinanceiro(ctx context.Context, filtro repository.FiltroFinanceiro) ([]repository.GrupoFinanceiro, error) {
	grupo := `to_char(date_trunc('month', d.data_documento), 'MM/YYYY')`
	joins := ""
	switch filtro.Agrupamento {
	case "secretaria":
		grupo = `COALESCE(s.nome, 'Não definido')`
		joins = ` LEFT JOIN secretarias s ON s.id = d.secretaria_id`
	case "recurso":
		grupo = `COALESCE(rc.nome, 'Não definido')`
		joins = ` LEFT JOIN recursos rc ON rc.id = d.recurso_id`
	}

	where := ""
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	add := func(cond string) {
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
	}
	if filtro.Inicio != nil {
		add("d.data_documento >= " + arg(*filtro.Inicio))
	}
	if filtro.Fim != nil {
		add("d.data_documento <= " + arg(*filtro.Fim))
	}
	if filtro.Status != "" {
		add("d.status = " + arg(filtro.Status))
	}

	query := `
	SELECT
	    ` + grupo + ` AS grupo,
	    COUNT(d.id)                                                       AS quantidade,
	    COALESCE(SUM(d.valor_documento), 0)                               AS valor_total,
	    COALESCE(SUM(d.valor_documento) FILTER (WHERE d.status = 'PAG'), 0) AS valor_pago,
	    COALESCE(SUM(d.valor_documento) FILTER (WHERE d.status = 'PEN'), 0) AS valor_pendente
	FROM documentos d` + joins + where + `
	GROUP BY grupo
	ORDER BY grupo`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("resumo financeiro: %w", err)
	}
	defer rows.Close()
	var list []repository.GrupoFinanceiro
	for rows.Next() {
		var g repository.GrupoFinanceiro
		if err := rows.Scan(&g.Nome, &g.Quantidade, &g.ValorTotal, &g.ValorPago, &g.ValorPendente); err != nil {
			return nil, fmt.Errorf("scan grupo financeiro: %w", err)
		}
		list = append(list, g)
	}
	return list, rows.Err()
}

// DocumentosPorIDs carrega os documentos selecionados para os relatórios de
// encaminhamento, ordenados por fornecedor e data.
func (r *RelatorioRepo) DocumentosPorIDs(ctx context.Context, ids []string) ([]*entity.Documento, error) {
	query := `
	SELECT ` + prefixarColunas("d") + `
	FROM documentos d
	JOIN fornecedores f ON f.id = d.fornecedor_id
	WHERE d.id = ANY($1)
	ORDER BY f.nome, d.data_documento`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("documentos por ids: %w", err)
	}
	defer rows.Close()
	var list []*entity.Documento
	for rows.Next() {
		d, err := scanDocumento(rows)
		if err != nil {
			return nil, fmt.Errorf("scan documento: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
