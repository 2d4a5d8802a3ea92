package dto

import "time"

// CreateFornecedorRequest body para POST /api/fornecedores.
// CnpjCpf aceita com ou sem máscara; é normalizado para somente dígitos.
type CreateFornecedorRequest struct {
	Tipo     string `json:"tipo" validate:"required,oneof=PF PJ"`
	Nome     string `json:"nome" validate:"required,min=1,max=255"`
	CnpjCpf  string `json:"cnpj_cpf" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Telefone string `json:"telefone"`
	Endereco string `json:"endereco"`

	Banco     string `json:"banco"`
	TipoConta string `json:"tipo_conta" validate:"omitempty,oneof=CC PP"`
	Agencia   string `json:"agencia"`
	Conta     string `json:"conta"`
}

// UpdateFornecedorRequest body para PUT /api/fornecedores/:id.
type UpdateFornecedorRequest = CreateFornecedorRequest

// FornecedorResponse fornecedor nas respostas, com CPF/CNPJ mascarado.
type FornecedorResponse struct {
	ID               string    `json:"id"`
	Tipo             string    `json:"tipo"`
	Nome             string    `json:"nome"`
	CnpjCpf          string    `json:"cnpj_cpf"`
	CnpjCpfFormatado string    `json:"cnpj_cpf_formatado"`
	Email            string    `json:"email,omitempty"`
	Telefone         string    `json:"telefone,omitempty"`
	Endereco         string    `json:"endereco,omitempty"`
	Banco            string    `json:"banco,omitempty"`
	TipoConta        string    `json:"tipo_conta,omitempty"`
	Agencia          string    `json:"agencia,omitempty"`
	Conta            string    `json:"conta,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ListFornecedoresRequest busca por nome ou CPF/CNPJ.
type ListFornecedoresRequest struct {
	PageRequest
	Busca string `query:"busca"`
}

// ListFornecedoresResponse listagem paginada.
type ListFornecedoresResponse struct {
	Fornecedores []FornecedorResponse `json:"fornecedores"`
	Page         PageResponse         `json:"page"`
}
