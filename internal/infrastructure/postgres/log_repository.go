package postgres

import (
	"context"
	"fmt"

	"github.com/docfinance/docfinance-api/internal/domain/entity"
	"github.com/docfinance/docfinance-api/internal/domain/repository"
)

var _ repository.LogAtividadeRepository = (*LogAtividadeRepo)(nil)

// LogAtividadeRepo implementação de LogAtividadeRepository. A trilha é apenas
// acrescida.
type LogAtividadeRepo struct {
	q Querier
}

// NewLogAtividadeRepository constrói o adaptador.
func NewLogAtividadeRepository(q Querier) *LogAtividadeRepo {
	return &LogAtividadeRepo{q: q}
}

// Create acrescenta um registro de auditoria.
func (r *LogAtividadeRepo) Create(l *entity.LogAtividade) error {
	query := `
		INSERT INTO logs_atividade (id, usuario_id, acao, detalhes, ip, data_hora)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.UsuarioID, l.Acao, l.Detalhes, l.IP, l.DataHora,
	)
	if err != nil {
		return fmt.Errorf("insert log: %w", err)
	}
	return nil
}

// List devolve os registros mais recentes primeiro.
func (r *LogAtividadeRepo) List(limit, offset int) ([]*entity.LogAtividade, error) {
	query := `
		SELECT id, usuario_id, acao, detalhes, ip, data_hora
		FROM logs_atividade ORDER BY data_hora DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.LogAtividade
	for rows.Next() {
		var l entity.LogAtividade
		if err := rows.Scan(&l.ID, &l.UsuarioID, &l.Acao, &l.Detalhes, &l.IP, &l.DataHora); err != nil {
			return nil, fmt.Errorf("scan log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
