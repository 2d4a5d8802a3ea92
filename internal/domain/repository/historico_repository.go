package repository

import "github.com/docfinance/docfinance-api/internal/domain/entity"

// HistoricoRepository define a porta de persistência do histórico de etapas.
// O histórico é apenas acrescido: não há Update nem Delete individual; a
// remoção acontece somente em cascata com o documento.
type HistoricoRepository interface {
	Create(h *entity.HistoricoDocumento) error
	// ListByDocumento devolve o histórico completo em ordem cronológica
	// crescente de registro.
	ListByDocumento(documentoID string) ([]*entity.HistoricoDocumento, error)
}
