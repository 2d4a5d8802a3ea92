package repository

import "github.com/docfinance/docfinance-api/internal/domain/entity"

// FornecedorRepository define a porta de persistência de Fornecedor.
type FornecedorRepository interface {
	Create(f *entity.Fornecedor) error
	GetByID(id string) (*entity.Fornecedor, error)
	// GetByCnpjCpf busca pelo CPF/CNPJ normalizado (somente dígitos).
	GetByCnpjCpf(cnpjCpf string) (*entity.Fornecedor, error)
	// List devolve fornecedores ordenados por nome; busca filtra por nome ou
	// CPF/CNPJ (icontains).
	List(busca string, limit, offset int) ([]*entity.Fornecedor, error)
	Update(f *entity.Fornecedor) error
	// Delete remove o fornecedor; os documentos vinculados caem em cascata.
	Delete(id string) error
}
