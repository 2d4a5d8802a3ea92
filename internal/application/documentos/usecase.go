package documentos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/docfinance/docfinance-api/internal/application/audit"
	"github.com/docfinance/docfinance-api/internal/application/dto"
	"github.com/docfinance/docfinance-api/internal/domain"
	"github.com/docfinance/docfinance-api/internal/domain/documento"
	"github.com/docfinance/docfinance-api/internal/domain/entity"
	"github.com/docfinance/docfinance-api/internal/domain/repository"
)

// maxTentativasNumero limita as tentativas de regeração quando o número
// interno colide com outro criado no mesmo segundo.
const maxTentativasNumero = 3

const formatoData = "2006-01-02"

// DocumentoUseCase casos de uso do ciclo de vida do documento financeiro:
// criação com número gerado, edição, baixa e movimentação entre etapas.
type DocumentoUseCase struct {
	txRunner       TxRunner
	docRepo        repository.DocumentoRepository
	histRepo       repository.HistoricoRepository
	fornecedorRepo repository.FornecedorRepository
	usuarioRepo    repository.UsuarioRepository
	auditoria      audit.Sink
}

// NewDocumentoUseCase constrói o caso de uso.
func NewDocumentoUseCase(
	txRunner TxRunner,
	docRepo repository.DocumentoRepository,
	histRepo repository.HistoricoRepository,
	fornecedorRepo repository.FornecedorRepository,
	usuarioRepo repository.UsuarioRepository,
	auditoria audit.Sink,
) *DocumentoUseCase {
	return &DocumentoUseCase{
		txRunner:       txRunner,
		docRepo:        docRepo,
		histRepo:       histRepo,
		fornecedorRepo: fornecedorRepo,
		usuarioRepo:    usuarioRepo,
		auditoria:      auditoria,
	}
}

// Create registra um documento novo: valida o fornecedor, deriva os valores,
// gera o número interno a partir do último do dia e abre o histórico na etapa
// ABERTURA, tudo na mesma transação. Colisão de número é retentada com um
// número recém-gerado.
func (uc *DocumentoUseCase) Create(ctx context.Context, atorID, ip string, in dto.CreateDocumentoRequest) (*dto.DocumentoResponse, error) {
	forn, err := uc.fornecedorRepo.GetByID(in.FornecedorID)
	if err != nil {
		return nil, err
	}
	if forn == nil {
		return nil, domain.ErrNotFound
	}

	doc, err := uc.montarDocumento(in.FornecedorID, dto.UpdateDocumentoRequest(in))
	if err != nil {
		return nil, err
	}
	now := time.Now()
	doc.ID = uuid.New().String()
	doc.DataEntrada = now
	doc.Etapa = entity.EtapaAbertura
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if err := documento.ValidarEDerivar(doc); err != nil {
		return nil, err
	}

	for tentativa := 0; ; tentativa++ {
		ultimo, err := uc.docRepo.UltimoNumeroDoDia(now)
		if err != nil {
			return nil, err
		}
		doc.Numero = documento.GerarNumero(time.Now(), ultimo)

		err = uc.txRunner.RunDocumento(ctx, func(docRepo repository.DocumentoRepository, histRepo repository.HistoricoRepository) error {
			if err := docRepo.Create(doc); err != nil {
				return err
			}
			return histRepo.Create(&entity.HistoricoDocumento{
				ID:          uuid.New().String(),
				DocumentoID: doc.ID,
				Etapa:       entity.EtapaAbertura,
				Descricao:   "abertura de processo",
				UsuarioID:   &atorID,
				DataHora:    time.Now(),
			})
		})
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrDuplicate) && tentativa < maxTentativasNumero-1 {
			continue
		}
		return nil, err
	}

	uc.auditoria.Registrar(&atorID, "documento.criar",
		fmt.Sprintf("documento %s (%s) criado para %s", doc.Numero, doc.Tipo, forn.Nome), ip)
	return toDocumentoResponse(doc, forn.Nome), nil
}

// GetByID devolve o documento com o nome do fornecedor.
func (uc *DocumentoUseCase) GetByID(id string) (*dto.DocumentoResponse, error) {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	return toDocumentoResponse(doc, uc.nomeFornecedor(doc.FornecedorID)), nil
}

// List devolve a página filtrada e o total.
func (uc *DocumentoUseCase) List(in dto.ListDocumentosRequest) (*dto.ListDocumentosResponse, error) {
	in.DefaultPage()
	docs, total, err := uc.docRepo.List(repository.DocumentoFilter{
		Busca:        in.Busca,
		Etapa:        in.Etapa,
		Status:       in.Status,
		SecretariaID: in.SecretariaID,
		Limit:        in.Limit,
		Offset:       in.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.DocumentoResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, *toDocumentoResponse(d, uc.nomeFornecedor(d.FornecedorID)))
	}
	return &dto.ListDocumentosResponse{
		Documentos: out,
		Page:       dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// Update edita um documento. Número interno, data de entrada e etapa nunca
// mudam por aqui; os valores são revalidados e derivados de novo.
func (uc *DocumentoUseCase) Update(atorID, ip, id string, in dto.UpdateDocumentoRequest) (*dto.DocumentoResponse, error) {
	atual, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if atual == nil {
		return nil, domain.ErrNotFound
	}
	forn, err := uc.fornecedorRepo.GetByID(in.FornecedorID)
	if err != nil {
		return nil, err
	}
	if forn == nil {
		return nil, domain.ErrNotFound
	}

	doc, err := uc.montarDocumento(in.FornecedorID, in)
	if err != nil {
		return nil, err
	}
	doc.ID = atual.ID
	doc.Numero = atual.Numero
	doc.DataEntrada = atual.DataEntrada
	doc.Etapa = atual.Etapa
	doc.DataBaixa = atual.DataBaixa
	doc.BaixadoPor = atual.BaixadoPor
	doc.CreatedAt = atual.CreatedAt
	doc.UpdatedAt = time.Now()

	if err := documento.ValidarEDerivar(doc); err != nil {
		return nil, err
	}
	if err := uc.docRepo.Update(doc); err != nil {
		return nil, err
	}
	uc.auditoria.Registrar(&atorID, "documento.editar",
		fmt.Sprintf("documento %s editado", doc.Numero), ip)
	return toDocumentoResponse(doc, forn.Nome), nil
}

// Delete remove o documento; o histórico cai em cascata.
func (uc *DocumentoUseCase) Delete(atorID, ip, id string) error {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.ErrNotFound
	}
	if err := uc.docRepo.Delete(id); err != nil {
		return err
	}
	uc.auditoria.Registrar(&atorID, "documento.excluir",
		fmt.Sprintf("documento %s excluído", doc.Numero), ip)
	return nil
}

// DarBaixa quita um documento pendente: marca como pago, fixa a data de
// pagamento (a informada pelo chamador, ou hoje) e a data de baixa, registra
// quem baixou e leva o processo à etapa BAIXA com histórico, na mesma
// transação. A data informada não pode ser anterior à data do documento.
func (uc *DocumentoUseCase) DarBaixa(ctx context.Context, atorID, ip, id string, in dto.DarBaixaRequest) (*dto.DocumentoResponse, error) {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	if doc.Status != entity.StatusPendente {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	dataPagamento := now
	if in.DataPagamento != "" {
		dataPagamento, err = time.Parse(formatoData, in.DataPagamento)
		if err != nil {
			return nil, domain.NewValidationError("data_pagamento", domain.CodigoFormatoInvalido,
				"Data de pagamento deve estar no formato AAAA-MM-DD")
		}
		if dataPagamento.Before(doc.DataDocumento) {
			return nil, domain.NewValidationError("data_pagamento", domain.CodigoDataPagamentoAntes,
				"A data de pagamento não pode ser anterior à data do documento.")
		}
	}
	doc.Status = entity.StatusPago
	doc.DataPagamento = &dataPagamento
	doc.DataBaixa = &now
	doc.BaixadoPor = &atorID
	doc.Etapa = entity.EtapaBaixa
	doc.UpdatedAt = now

	err = uc.txRunner.RunDocumento(ctx, func(docRepo repository.DocumentoRepository, histRepo repository.HistoricoRepository) error {
		if err := docRepo.Update(doc); err != nil {
			return err
		}
		return histRepo.Create(&entity.HistoricoDocumento{
			ID:          uuid.New().String(),
			DocumentoID: doc.ID,
			Etapa:       entity.EtapaBaixa,
			Descricao:   "pago e fim de processo",
			UsuarioID:   &atorID,
			DataHora:    now,
		})
	})
	if err != nil {
		return nil, err
	}
	uc.auditoria.Registrar(&atorID, "documento.baixar",
		fmt.Sprintf("baixa do documento %s", doc.Numero), ip)
	return toDocumentoResponse(doc, uc.nomeFornecedor(doc.FornecedorID)), nil
}

// MudarEtapa movimenta o documento na linha do processo. Devoluções exigem
// motivo ou texto livre; a descrição gravada no histórico é composta pelas
// regras de transição. Atualização do documento e acréscimo do histórico
// acontecem na mesma transação.
func (uc *DocumentoUseCase) MudarEtapa(ctx context.Context, atorID, ip, id string, in dto.MudarEtapaRequest) (*dto.DocumentoResponse, error) {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}

	nota, err := documento.NotaTransicao(documento.Transicao{
		EtapaAtual:  doc.Etapa,
		EtapaNova:   in.Etapa,
		Descricao:   in.Descricao,
		Motivo:      in.MotivoTipo,
		MotivoLivre: in.MotivoLivre,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	doc.Etapa = in.Etapa
	doc.UpdatedAt = now

	err = uc.txRunner.RunDocumento(ctx, func(docRepo repository.DocumentoRepository, histRepo repository.HistoricoRepository) error {
		if err := docRepo.Update(doc); err != nil {
			return err
		}
		return histRepo.Create(&entity.HistoricoDocumento{
			ID:          uuid.New().String(),
			DocumentoID: doc.ID,
			Etapa:       in.Etapa,
			Descricao:   nota,
			UsuarioID:   &atorID,
			DataHora:    now,
		})
	})
	if err != nil {
		return nil, err
	}
	uc.auditoria.Registrar(&atorID, "documento.etapa",
		fmt.Sprintf("documento %s movido para %s", doc.Numero, in.Etapa), ip)
	return toDocumentoResponse(doc, uc.nomeFornecedor(doc.FornecedorID)), nil
}

// Historico devolve o histórico de etapas em ordem cronológica, com o nome de
// quem registrou cada passagem.
func (uc *DocumentoUseCase) Historico(id string) ([]dto.HistoricoResponse, error) {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	historicos, err := uc.histRepo.ListByDocumento(id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HistoricoResponse, 0, len(historicos))
	for _, h := range historicos {
		r := dto.HistoricoResponse{
			ID:        h.ID,
			Etapa:     h.Etapa,
			Descricao: h.Descricao,
			DataHora:  h.DataHora,
		}
		if h.UsuarioID != nil {
			r.UsuarioID = *h.UsuarioID
			if u, _ := uc.usuarioRepo.GetByID(*h.UsuarioID); u != nil {
				r.UsuarioNome = u.Nome
			}
		}
		out = append(out, r)
	}
	return out, nil
}

// Timeline devolve a visão consolidada por etapa (última passagem prevalece),
// marcando a etapa atual e as já concluídas.
func (uc *DocumentoUseCase) Timeline(id string) ([]dto.EtapaTimelineResponse, error) {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	historicos, err := uc.histRepo.ListByDocumento(id)
	if err != nil {
		return nil, err
	}
	infos := documento.MontarLinhaDoTempo(doc, historicos)
	out := make([]dto.EtapaTimelineResponse, 0, len(infos))
	for _, info := range infos {
		out = append(out, dto.EtapaTimelineResponse{
			Etapa:     info.Chave,
			Rotulo:    info.Rotulo,
			Concluida: info.Concluida,
			Atual:     info.Chave == doc.Etapa,
			DataHora:  info.Data,
		})
	}
	return out, nil
}

// montarDocumento traduz o DTO em entidade: parse das datas e normalização dos
// campos opcionais. Datas fora do formato AAAA-MM-DD viram erro de validação.
func (uc *DocumentoUseCase) montarDocumento(fornecedorID string, in dto.UpdateDocumentoRequest) (*entity.Documento, error) {
	dataDoc, err := time.Parse(formatoData, in.DataDocumento)
	if err != nil {
		return nil, domain.NewValidationError("data_documento", domain.CodigoFormatoInvalido,
			"Data do documento deve estar no formato AAAA-MM-DD")
	}
	var dataPag *time.Time
	if in.DataPagamento != "" {
		dp, err := time.Parse(formatoData, in.DataPagamento)
		if err != nil {
			return nil, domain.NewValidationError("data_pagamento", domain.CodigoFormatoInvalido,
				"Data de pagamento deve estar no formato AAAA-MM-DD")
		}
		dataPag = &dp
	}
	status := in.Status
	if status == "" {
		status = entity.StatusPendente
	}
	tipoValido := false
	for _, t := range entity.TiposValidos {
		if t == in.Tipo {
			tipoValido = true
			break
		}
	}
	if !tipoValido {
		return nil, domain.NewValidationError("tipo", domain.CodigoFormatoInvalido,
			"Tipo de documento desconhecido: "+in.Tipo)
	}
	return &entity.Documento{
		FornecedorID:    fornecedorID,
		NumeroDocumento: in.NumeroDocumento,
		Processo:        in.Processo,
		Tipo:            in.Tipo,
		DataDocumento:   dataDoc,
		DataPagamento:   dataPag,
		ValorDocumento:  in.ValorDocumento,
		ValorISS:        in.ValorISS,
		ValorIRRF:       in.ValorIRRF,
		Descricao:       in.Descricao,
		Status:          status,
		SecretariaID:    strPtrOuNil(in.SecretariaID),
		RecursoID:       strPtrOuNil(in.RecursoID),
	}, nil
}

func (uc *DocumentoUseCase) nomeFornecedor(id string) string {
	if f, _ := uc.fornecedorRepo.GetByID(id); f != nil {
		return f.Nome
	}
	return ""
}

func strPtrOuNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toDocumentoResponse(d *entity.Documento, fornecedorNome string) *dto.DocumentoResponse {
	r := &dto.DocumentoResponse{
		ID:              d.ID,
		Numero:          d.Numero,
		NumeroDocumento: d.NumeroDocumento,
		Processo:        d.Processo,
		Tipo:            d.Tipo,
		FornecedorID:    d.FornecedorID,
		FornecedorNome:  fornecedorNome,
		DataDocumento:   d.DataDocumento.Format(formatoData),
		DataEntrada:     d.DataEntrada.Format(formatoData),
		ValorDocumento:  d.ValorDocumento,
		ValorISS:        d.ValorISS,
		ValorIRRF:       d.ValorIRRF,
		ValorLiquido:    d.ValorLiquido,
		Descricao:       d.Descricao,
		Status:          d.Status,
		Etapa:           d.Etapa,
		DataBaixa:       d.DataBaixa,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
	if d.DataPagamento != nil {
		r.DataPagamento = d.DataPagamento.Format(formatoData)
	}
	if d.BaixadoPor != nil {
		r.BaixadoPor = *d.BaixadoPor
	}
	if d.SecretariaID != nil {
		r.SecretariaID = *d.SecretariaID
	}
	if d.RecursoID != nil {
		r.RecursoID = *d.RecursoID
	}
	return r
}
