package entity

import "time"

// Tipos de pessoa do fornecedor.
const (
	PessoaFisica   = "PF"
	PessoaJuridica = "PJ"
)

// Tipos de conta bancária.
const (
	ContaCorrente = "CC"
	ContaPoupanca = "PP"
)

// Fornecedor representa um credor (pessoa física ou jurídica) identificado
// pelo CPF/CNPJ normalizado (somente dígitos, único no cadastro).
type Fornecedor struct {
	ID       string
	Tipo     string // PF ou PJ
	Nome     string
	CnpjCpf  string // somente dígitos
	Email    string
	Telefone string
	Endereco string

	// Dados bancários para pagamento.
	Banco     string
	TipoConta string // CC ou PP
	Agencia   string // 0000 ou 0000-D (D pode ser X)
	Conta     string // até 11 dígitos, hífen e dígito verificador (pode ser X)

	CreatedAt time.Time
	UpdatedAt time.Time
}
