package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDocumentoRequest body para POST /api/documentos.
// Valores monetários chegam como decimal; ISS/IRRF são zerados automaticamente
// quando o tipo não admite retenção. O número interno é gerado no servidor.
type CreateDocumentoRequest struct {
	FornecedorID    string          `json:"fornecedor_id" validate:"required,uuid"`
	NumeroDocumento string          `json:"numero_documento"`
	Processo        string          `json:"processo"`
	Tipo            string          `json:"tipo" validate:"required,oneof=NF NFS NFSA FAT REC"`
	DataDocumento   string          `json:"data_documento" validate:"required"` // AAAA-MM-DD
	DataPagamento   string          `json:"data_pagamento,omitempty"`           // AAAA-MM-DD, obrigatória se status PAG
	ValorDocumento  decimal.Decimal `json:"valor_documento"`
	ValorISS        decimal.Decimal `json:"valor_iss"`
	ValorIRRF       decimal.Decimal `json:"valor_irrf"`
	Descricao       string          `json:"descricao"`
	Status          string          `json:"status" validate:"omitempty,oneof=PEN PAG ATR"`
	SecretariaID    string          `json:"secretaria_id,omitempty"`
	RecursoID       string          `json:"recurso_id,omitempty"`
}

// UpdateDocumentoRequest body para PUT /api/documentos/:id. Mesmos campos da
// criação; número interno e data de entrada permanecem imutáveis.
type UpdateDocumentoRequest struct {
	FornecedorID    string          `json:"fornecedor_id" validate:"required,uuid"`
	NumeroDocumento string          `json:"numero_documento"`
	Processo        string          `json:"processo"`
	Tipo            string          `json:"tipo" validate:"required,oneof=NF NFS NFSA FAT REC"`
	DataDocumento   string          `json:"data_documento" validate:"required"`
	DataPagamento   string          `json:"data_pagamento,omitempty"`
	ValorDocumento  decimal.Decimal `json:"valor_documento"`
	ValorISS        decimal.Decimal `json:"valor_iss"`
	ValorIRRF       decimal.Decimal `json:"valor_irrf"`
	Descricao       string          `json:"descricao"`
	Status          string          `json:"status" validate:"omitempty,oneof=PEN PAG ATR"`
	SecretariaID    string          `json:"secretaria_id,omitempty"`
	RecursoID       string          `json:"recurso_id,omitempty"`
}

// DocumentoResponse documento nas respostas.
type DocumentoResponse struct {
	ID              string          `json:"id"`
	Numero          string          `json:"numero"`
	NumeroDocumento string          `json:"numero_documento,omitempty"`
	Processo        string          `json:"processo,omitempty"`
	Tipo            string          `json:"tipo"`
	FornecedorID    string          `json:"fornecedor_id"`
	FornecedorNome  string          `json:"fornecedor_nome,omitempty"`
	DataDocumento   string          `json:"data_documento"`
	DataPagamento   string          `json:"data_pagamento,omitempty"`
	DataEntrada     string          `json:"data_entrada"`
	ValorDocumento  decimal.Decimal `json:"valor_documento"`
	ValorISS        decimal.Decimal `json:"valor_iss"`
	ValorIRRF       decimal.Decimal `json:"valor_irrf"`
	ValorLiquido    decimal.Decimal `json:"valor_liquido"`
	Descricao       string          `json:"descricao,omitempty"`
	Status          string          `json:"status"`
	Etapa           string          `json:"etapa"`
	DataBaixa       *time.Time      `json:"data_baixa,omitempty"`
	BaixadoPor      string          `json:"baixado_por,omitempty"`
	SecretariaID    string          `json:"secretaria_id,omitempty"`
	RecursoID       string          `json:"recurso_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ListDocumentosRequest filtros de listagem via query string.
type ListDocumentosRequest struct {
	PageRequest
	Busca        string `query:"busca"`
	Etapa        string `query:"etapa"`
	Status       string `query:"status"`
	SecretariaID string `query:"secretaria_id"`
}

// ListDocumentosResponse listagem paginada.
type ListDocumentosResponse struct {
	Documentos []DocumentoResponse `json:"documentos"`
	Page       PageResponse        `json:"page"`
}

// MudarEtapaRequest body para POST /api/documentos/:id/etapa.
// Em devolução (etapa anterior) é obrigatório MotivoTipo ou MotivoLivre.
type MudarEtapaRequest struct {
	Etapa       string `json:"etapa" validate:"required"`
	Descricao   string `json:"descricao"`
	MotivoTipo  string `json:"motivo_tipo,omitempty"`
	MotivoLivre string `json:"motivo_livre,omitempty"`
}

// DarBaixaRequest body para POST /api/documentos/:id/baixa. A data de
// pagamento é opcional (AAAA-MM-DD); ausente, a baixa usa a data de hoje.
type DarBaixaRequest struct {
	DataPagamento string `json:"data_pagamento,omitempty"`
}

// HistoricoResponse entrada do histórico de etapas.
type HistoricoResponse struct {
	ID          string    `json:"id"`
	Etapa       string    `json:"etapa"`
	Descricao   string    `json:"descricao"`
	UsuarioID   string    `json:"usuario_id,omitempty"`
	UsuarioNome string    `json:"usuario_nome,omitempty"`
	DataHora    time.Time `json:"data_hora"`
}

// EtapaTimelineResponse posição do documento na linha do tempo de etapas.
type EtapaTimelineResponse struct {
	Etapa     string     `json:"etapa"`
	Rotulo    string     `json:"rotulo"`
	Concluida bool       `json:"concluida"`
	Atual     bool       `json:"atual"`
	DataHora  *time.Time `json:"data_hora,omitempty"`
}
