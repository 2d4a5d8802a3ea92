package repository

import "github.com/docfinance/docfinance-api/internal/domain/entity"

// LogAtividadeRepository define a porta de persistência da trilha de auditoria.
// Somente acréscimo e leitura; registros nunca são editados.
type LogAtividadeRepository interface {
	Create(l *entity.LogAtividade) error
	// List devolve os registros mais recentes primeiro.
	List(limit, offset int) ([]*entity.LogAtividade, error)
}
