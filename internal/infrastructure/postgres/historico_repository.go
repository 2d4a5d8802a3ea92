package postgres

import (
	"context"
	"fmt"

	"github.com/docfinance/docfinance-api/internal/domain/entity"
	"github.com/docfinance/docfinance-api/internal/domain/repository"
)

var _ repository.HistoricoRepository = (*HistoricoRepo)(nil)

// HistoricoRepo implementação de HistoricoRepository (usável com pool ou tx).
// A tabela é apenas acrescida; não há update nem delete individual.
type HistoricoRepo struct {
	q Querier
}

// NewHistoricoRepository constrói o adaptador.
func NewHistoricoRepository(q Querier) *HistoricoRepo {
	return &HistoricoRepo{q: q}
}

// Create acrescenta um registro de passagem por etapa.
func (r *HistoricoRepo) Create(h *entity.HistoricoDocumento) error {
	query := `
		INSERT INTO historico_documentos (id, documento_id, etapa, descricao, usuario_id, data_hora)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		h.ID, h.DocumentoID, h.Etapa, h.Descricao, h.UsuarioID, h.DataHora,
	)
	if err != nil {
		return fmt.Errorf("insert historico: %w", err)
	}
	return nil
}

// ListByDocumento devolve o histórico completo em ordem cronológica crescente.
func (r *HistoricoRepo) ListByDocumento(documentoID string) ([]*entity.HistoricoDocumento, error) {
	query := `
		SELECT id, documento_id, etapa, descricao, usuario_id, data_hora
		FROM historico_documentos WHERE documento_id = $1 ORDER BY data_hora, id`
	rows, err := r.q.Query(context.Background(), query, documentoID)
	if err != nil {
		return nil, fmt.Errorf("list historico: %w", err)
	}
	defer rows.Close()
	var list []*entity.HistoricoDocumento
	for rows.Next() {
		var h entity.HistoricoDocumento
		if err := rows.Scan(&h.ID, &h.DocumentoID, &h.Etapa, &h.Descricao, &h.UsuarioID, &h.DataHora); err != nil {
			return nil, fmt.Errorf("scan historico: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
