package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/docfinance/docfinance-api/internal/application/documentos"
	"github.com/docfinance/docfinance-api/internal/domain/repository"
)

var _ documentos.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunDocumento inicia uma transação, executa fn com os repositórios de
// documento e histórico atados à tx e faz Commit ou Rollback.
func (r *TxRunner) RunDocumento(ctx context.Context, fn func(
	docRepo repository.DocumentoRepository,
	histRepo repository.HistoricoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	docRepo := NewDocumentoRepository(tx)
	histRepo := NewHistoricoRepository(tx)

	if err := fn(docRepo, histRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
