package documentos

import (
	"context"

	"github.com/docfinance/docfinance-api/internal/domain"
	"github.com/docfinance/docfinance-api/internal/domain/entity"
	"github.com/docfinance/docfinance-api/internal/domain/repository"
)

// ReciboPDFGenerator gera o comprovante em PDF de um documento.
type ReciboPDFGenerator interface {
	GerarRecibo(ctx context.Context, doc *entity.Documento, forn *entity.Fornecedor, historicos []*entity.HistoricoDocumento) ([]byte, error)
}

// ReciboUseCase monta os dados e delega a geração do PDF do recibo.
type ReciboUseCase struct {
	docRepo        repository.DocumentoRepository
	histRepo       repository.HistoricoRepository
	fornecedorRepo repository.FornecedorRepository
	gen            ReciboPDFGenerator
}

// NewReciboUseCase constrói o caso de uso.
func NewReciboUseCase(
	docRepo repository.DocumentoRepository,
	histRepo repository.HistoricoRepository,
	fornecedorRepo repository.FornecedorRepository,
	gen ReciboPDFGenerator,
) *ReciboUseCase {
	return &ReciboUseCase{
		docRepo:        docRepo,
		histRepo:       histRepo,
		fornecedorRepo: fornecedorRepo,
		gen:            gen,
	}
}

// GerarRecibo devolve os bytes do PDF do comprovante do documento.
func (uc *ReciboUseCase) GerarRecibo(ctx context.Context, id string) ([]byte, error) {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	forn, err := uc.fornecedorRepo.GetByID(doc.FornecedorID)
	if err != nil {
		return nil, err
	}
	if forn == nil {
		return nil, domain.ErrNotFound
	}
	historicos, err := uc.histRepo.ListByDocumento(id)
	if err != nil {
		return nil, err
	}
	return uc.gen.GerarRecibo(ctx, doc, forn, historicos)
}
