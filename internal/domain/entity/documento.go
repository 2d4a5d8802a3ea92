package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de documento financeiro.
const (
	TipoNotaFiscal        = "NF"   // Nota Fiscal
	TipoNotaServico       = "NFS"  // Nota Fiscal de Serviço
	TipoNotaServicoAvulsa = "NFSA" // Nota Fiscal de Serviço Avulsa
	TipoFatura            = "FAT"  // Fatura
	TipoRecibo            = "REC"  // Recibo
)

// Status de pagamento (independente da etapa do processo).
const (
	StatusPendente = "PEN"
	StatusPago     = "PAG"
	StatusAtrasado = "ATR"
)

// Etapas do processo administrativo, na ordem canônica (índice 0..4).
const (
	EtapaAbertura        = "ABERTURA"
	EtapaControleInterno = "CONTROLE_INTERNO"
	EtapaEmpenho         = "EMPENHO"
	EtapaPagamento       = "PAGAMENTO"
	EtapaBaixa           = "BAIXA"
)

// TiposValidos lista os tipos aceitos, na ordem de exibição.
var TiposValidos = []string{TipoNotaFiscal, TipoNotaServico, TipoNotaServicoAvulsa, TipoFatura, TipoRecibo}

// Documento representa um documento financeiro (nota, fatura, recibo) vinculado
// a um fornecedor e, opcionalmente, a uma secretaria e um recurso orçamentário.
type Documento struct {
	ID              string
	FornecedorID    string
	Numero          string // identificador único gerado: DDMMAAAAHHMMSS + sequencial 0000
	NumeroDocumento string // número impresso no documento do fornecedor
	Processo        string
	Tipo            string
	DataDocumento   time.Time
	DataPagamento   *time.Time
	DataEntrada     time.Time // fixada na criação, imutável
	ValorDocumento  decimal.Decimal
	ValorIRRF       decimal.Decimal
	ValorISS        decimal.Decimal
	ValorLiquido    decimal.Decimal
	Descricao       string
	Status          string
	Etapa           string
	DataBaixa       *time.Time
	BaixadoPor      *string // usuário que deu baixa; nil se nunca baixado ou usuário removido
	SecretariaID    *string
	RecursoID       *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RetemImpostos informa se o tipo do documento admite retenção de ISS/IRRF.
// Nota Fiscal e Fatura não carregam retenção: os valores são zerados na derivação.
func (d *Documento) RetemImpostos() bool {
	return d.Tipo != TipoNotaFiscal && d.Tipo != TipoFatura
}
