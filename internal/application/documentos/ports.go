package documentos

import (
	"context"

	"github.com/docfinance/docfinance-api/internal/domain/repository"
)

// TxRunner executa uma função com repositórios de documento e histórico
// ligados à mesma transação. Erro da função provoca rollback de ambos.
type TxRunner interface {
	RunDocumento(ctx context.Context, fn func(
		docRepo repository.DocumentoRepository,
		histRepo repository.HistoricoRepository,
	) error) error
}
