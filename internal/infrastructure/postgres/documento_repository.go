package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/docfinance/docfinance-api/internal/domain"
	"github.com/docfinance/docfinance-api/internal/domain/entity"
	"github.com/docfinance/docfinance-api/internal/domain/repository"
)

var _ repository.DocumentoRepository = (*DocumentoRepo)(nil)

const documentoColunas = `
	id, fornecedor_id, numero, numero_documento, processo, tipo,
	data_documento, data_pagamento, data_entrada,
	valor_documento, valor_irrf, valor_iss, valor_liquido,
	descricao, status, etapa, data_baixa, baixado_por,
	secretaria_id, recurso_id, created_at, updated_at`

// DocumentoRepo implementação de DocumentoRepository (usável com pool ou tx).
type DocumentoRepo struct {
	q Querier
}

// NewDocumentoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewDocumentoRepository(q Querier) *DocumentoRepo {
	return &DocumentoRepo{q: q}
}

// Create persiste um documento novo.
func (r *DocumentoRepo) Create(d *entity.Documento) error {
	query := `
		INSERT INTO documentos (` + documentoColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.FornecedorID, d.Numero, d.NumeroDocumento, d.Processo, d.Tipo,
		d.DataDocumento, d.DataPagamento, d.DataEntrada,
		d.ValorDocumento, d.ValorIRRF, d.ValorISS, d.ValorLiquido,
		d.Descricao, d.Status, d.Etapa, d.DataBaixa, d.BaixadoPor,
		d.SecretariaID, d.RecursoID, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert documento: %w", err)
	}
	return nil
}

// GetByID devolve o documento ou nil quando não existe.
func (r *DocumentoRepo) GetByID(id string) (*entity.Documento, error) {
	query := `SELECT ` + documentoColunas + ` FROM documentos WHERE id = $1`
	d, err := scanDocumento(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get documento: %w", err)
	}
	return d, nil
}

// List devolve a página filtrada por busca, etapa, status e secretaria, em
// ordem decrescente de data do documento, e o total que casa com o filtro.
func (r *DocumentoRepo) List(f repository.DocumentoFilter) ([]*entity.Documento, int, error) {
	where := ` WHERE 1=1`
	args := []any{}
	n := 0
	arg := func(v any) string {
		n++
		args = append(args, v)
		return fmt.Sprintf("$%d", n)
	}

	if f.Busca != "" {
		p := arg("%" + f.Busca + "%")
		where += ` AND (d.numero ILIKE ` + p + ` OR d.numero_documento ILIKE ` + p +
			` OR d.descricao ILIKE ` + p +
			` OR EXISTS (SELECT 1 FROM fornecedores fo WHERE fo.id = d.fornecedor_id AND fo.nome ILIKE ` + p + `))`
	}
	if f.Etapa != "" {
		where += ` AND d.etapa = ` + arg(f.Etapa)
	}
	if f.Status != "" {
		where += ` AND d.status = ` + arg(f.Status)
	}
	if f.SecretariaID != "" {
		where += ` AND d.secretaria_id = ` + arg(f.SecretariaID)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM documentos d` + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count documentos: %w", err)
	}

	query := `SELECT ` + prefixarColunas("d") + ` FROM documentos d` + where +
		` ORDER BY d.data_documento DESC, d.numero DESC LIMIT ` + arg(f.Limit) + ` OFFSET ` + arg(f.Offset)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list documentos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Documento
	for rows.Next() {
		d, err := scanDocumento(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan documento: %w", err)
		}
		list = append(list, d)
	}
	return list, total, rows.Err()
}

// Update atualiza todos os campos mutáveis do documento.
func (r *DocumentoRepo) Update(d *entity.Documento) error {
	query := `
		UPDATE documentos SET
			fornecedor_id = $2, numero_documento = $3, processo = $4, tipo = $5,
			data_documento = $6, data_pagamento = $7,
			valor_documento = $8, valor_irrf = $9, valor_iss = $10, valor_liquido = $11,
			descricao = $12, status = $13, etapa = $14, data_baixa = $15, baixado_por = $16,
			secretaria_id = $17, recurso_id = $18, updated_at = $19
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		d.ID, d.FornecedorID, d.NumeroDocumento, d.Processo, d.Tipo,
		d.DataDocumento, d.DataPagamento,
		d.ValorDocumento, d.ValorIRRF, d.ValorISS, d.ValorLiquido,
		d.Descricao, d.Status, d.Etapa, d.DataBaixa, d.BaixadoPor,
		d.SecretariaID, d.RecursoID, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update documento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove o documento; o histórico cai em cascata (FK ON DELETE CASCADE).
func (r *DocumentoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM documentos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete documento: %w", err)
	}
	return nil
}

// UltimoNumeroDoDia devolve o maior número entre os documentos com data de
// entrada no dia informado, ou vazio se não houver.
func (r *DocumentoRepo) UltimoNumeroDoDia(dia time.Time) (string, error) {
	query := `
		SELECT numero FROM documentos
		WHERE data_entrada >= $1 AND data_entrada < $2
		ORDER BY numero DESC LIMIT 1`
	inicio := time.Date(dia.Year(), dia.Month(), dia.Day(), 0, 0, 0, 0, dia.Location())
	fim := inicio.AddDate(0, 0, 1)
	var numero string
	err := r.q.QueryRow(context.Background(), query, inicio, fim).Scan(&numero)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("ultimo numero do dia: %w", err)
	}
	return numero, nil
}

// scanDocumento lê uma linha com as colunas de documentoColunas, na ordem.
func scanDocumento(row pgx.Row) (*entity.Documento, error) {
	var d entity.Documento
	err := row.Scan(
		&d.ID, &d.FornecedorID, &d.Numero, &d.NumeroDocumento, &d.Processo, &d.Tipo,
		&d.DataDocumento, &d.DataPagamento, &d.DataEntrada,
		&d.ValorDocumento, &d.ValorIRRF, &d.ValorISS, &d.ValorLiquido,
		&d.Descricao, &d.Status, &d.Etapa, &d.DataBaixa, &d.BaixadoPor,
		&d.SecretariaID, &d.RecursoID, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// prefixarColunas devolve documentoColunas com o alias da tabela.
func prefixarColunas(alias string) string {
	out := ""
	for i, col := range strings.Split(documentoColunas, ",") {
		if i > 0 {
			out += ", "
		}
		out += alias + "." + strings.TrimSpace(col)
	}
	return out
}
