package repository

import (
	"time"

	"github.com/docfinance/docfinance-api/internal/domain/entity"
)

// DocumentoFilter filtros de listagem de documentos.
type DocumentoFilter struct {
	Busca        string // número, nome do fornecedor ou descrição (icontains)
	Etapa        string
	Status       string
	SecretariaID string
	Limit        int
	Offset       int
}

// DocumentoRepository define a porta de persistência de Documento.
type DocumentoRepository interface {
	Create(doc *entity.Documento) error
	GetByID(id string) (*entity.Documento, error)
	// List devolve a página filtrada (ordem: data do documento decrescente)
	// e o total de registros que casam com o filtro.
	List(f DocumentoFilter) ([]*entity.Documento, int, error)
	Update(doc *entity.Documento) error
	Delete(id string) error
	// UltimoNumeroDoDia devolve o maior número entre os documentos cuja data
	// de entrada cai no dia informado, ou vazio se não houver nenhum.
	// Alimenta a geração do sequencial diário.
	UltimoNumeroDoDia(dia time.Time) (string, error)
}
