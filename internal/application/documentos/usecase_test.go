package documentos_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docfinance/docfinance-api/internal/application/audit"
	"github.com/docfinance/docfinance-api/internal/application/documentos"
	"github.com/docfinance/docfinance-api/internal/application/dto"
	"github.com/docfinance/docfinance-api/internal/domain"
	"github.com/docfinance/docfinance-api/internal/domain/entity"
	"github.com/docfinance/docfinance-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeDocRepo struct {
	docs          map[string]*entity.Documento
	ultimoNumero  string
	falhasCriacao int // simula colisões de número nas N primeiras criações
	criacoes      int
}

func newFakeDocRepo() *fakeDocRepo {
	return &fakeDocRepo{docs: map[string]*entity.Documento{}}
}

func (r *fakeDocRepo) Create(d *entity.Documento) error {
	r.criacoes++
	if r.criacoes <= r.falhasCriacao {
		return domain.ErrDuplicate
	}
	cp := *d
	r.docs[d.ID] = &cp
	return nil
}

func (r *fakeDocRepo) GetByID(id string) (*entity.Documento, error) {
	d, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDocRepo) List(f repository.DocumentoFilter) ([]*entity.Documento, int, error) {
	var out []*entity.Documento
	for _, d := range r.docs {
		if f.Etapa != "" && d.Etapa != f.Etapa {
			continue
		}
		if f.Status != "" && d.Status != f.Status {
			continue
		}
		cp := *d
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (r *fakeDocRepo) Update(d *entity.Documento) error {
	if _, ok := r.docs[d.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *d
	r.docs[d.ID] = &cp
	return nil
}

func (r *fakeDocRepo) Delete(id string) error {
	delete(r.docs, id)
	return nil
}

func (r *fakeDocRepo) UltimoNumeroDoDia(time.Time) (string, error) {
	return r.ultimoNumero, nil
}

type fakeHistRepo struct {
	historicos []*entity.HistoricoDocumento
}

func (r *fakeHistRepo) Create(h *entity.HistoricoDocumento) error {
	cp := *h
	r.historicos = append(r.historicos, &cp)
	return nil
}

func (r *fakeHistRepo) ListByDocumento(documentoID string) ([]*entity.HistoricoDocumento, error) {
	var out []*entity.HistoricoDocumento
	for _, h := range r.historicos {
		if h.DocumentoID == documentoID {
			cp := *h
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeFornecedorRepo struct {
	fornecedores map[string]*entity.Fornecedor
}

func (r *fakeFornecedorRepo) Create(f *entity.Fornecedor) error { return nil }
func (r *fakeFornecedorRepo) GetByID(id string) (*entity.Fornecedor, error) {
	return r.fornecedores[id], nil
}
func (r *fakeFornecedorRepo) GetByCnpjCpf(string) (*entity.Fornecedor, error) { return nil, nil }
func (r *fakeFornecedorRepo) List(string, int, int) ([]*entity.Fornecedor, error) {
	return nil, nil
}
func (r *fakeFornecedorRepo) Update(*entity.Fornecedor) error { return nil }
func (r *fakeFornecedorRepo) Delete(string) error             { return nil }

type fakeUsuarioRepo struct{}

func (fakeUsuarioRepo) Create(*entity.Usuario) error                  { return nil }
func (fakeUsuarioRepo) GetByID(string) (*entity.Usuario, error)       { return nil, nil }
func (fakeUsuarioRepo) FindByEmail(string) (*entity.Usuario, error)   { return nil, nil }
func (fakeUsuarioRepo) List(string) ([]*entity.Usuario, error)        { return nil, nil }
func (fakeUsuarioRepo) Update(*entity.Usuario) error                  { return nil }

// fakeTxRunner executa a função diretamente sobre os fakes, sem transação real.
type fakeTxRunner struct {
	docRepo  *fakeDocRepo
	histRepo *fakeHistRepo
}

func (r *fakeTxRunner) RunDocumento(_ context.Context, fn func(repository.DocumentoRepository, repository.HistoricoRepository) error) error {
	return fn(r.docRepo, r.histRepo)
}

func novoUseCase(t *testing.T) (*documentos.DocumentoUseCase, *fakeDocRepo, *fakeHistRepo) {
	t.Helper()
	docRepo := newFakeDocRepo()
	histRepo := &fakeHistRepo{}
	fornRepo := &fakeFornecedorRepo{fornecedores: map[string]*entity.Fornecedor{
		"forn-1": {ID: "forn-1", Nome: "Construtora Alfa", CnpjCpf: "11222333000181", Tipo: entity.PessoaJuridica},
	}}
	uc := documentos.NewDocumentoUseCase(
		&fakeTxRunner{docRepo: docRepo, histRepo: histRepo},
		docRepo, histRepo, fornRepo, fakeUsuarioRepo{}, audit.Nulo{},
	)
	return uc, docRepo, histRepo
}

func requestValida() dto.CreateDocumentoRequest {
	return dto.CreateDocumentoRequest{
		FornecedorID:   "forn-1",
		Tipo:           entity.TipoNotaServico,
		DataDocumento:  "2025-08-10",
		ValorDocumento: decimal.RequireFromString("1000.00"),
		ValorISS:       decimal.RequireFromString("50.00"),
		ValorIRRF:      decimal.RequireFromString("15.00"),
		Descricao:      "serviço de manutenção",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_GeraNumeroEAbreHistorico(t *testing.T) {
	uc, docRepo, histRepo := novoUseCase(t)

	resp, err := uc.Create(context.Background(), "user-1", "10.0.0.1", requestValida())
	require.NoError(t, err)

	assert.Len(t, resp.Numero, 18, "número interno: prefixo de 14 + sequencial de 4")
	assert.Equal(t, entity.EtapaAbertura, resp.Etapa)
	assert.Equal(t, entity.StatusPendente, resp.Status)
	assert.Equal(t, "935.00", resp.ValorLiquido.StringFixed(2))
	assert.Equal(t, "Construtora Alfa", resp.FornecedorNome)

	require.Len(t, histRepo.historicos, 1)
	assert.Equal(t, entity.EtapaAbertura, histRepo.historicos[0].Etapa)
	assert.Equal(t, "abertura de processo", histRepo.historicos[0].Descricao)
	require.NotNil(t, histRepo.historicos[0].UsuarioID)
	assert.Equal(t, "user-1", *histRepo.historicos[0].UsuarioID)

	require.Len(t, docRepo.docs, 1)
}

func TestCreate_ColisaoDeNumeroRetenta(t *testing.T) {
	uc, docRepo, _ := novoUseCase(t)
	docRepo.falhasCriacao = 2

	resp, err := uc.Create(context.Background(), "user-1", "10.0.0.1", requestValida())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Numero)
	assert.Equal(t, 3, docRepo.criacoes, "duas colisões e uma criação bem sucedida")
}

func TestCreate_ColisaoPersistenteFalha(t *testing.T) {
	uc, docRepo, _ := novoUseCase(t)
	docRepo.falhasCriacao = 10

	_, err := uc.Create(context.Background(), "user-1", "10.0.0.1", requestValida())
	require.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, 3, docRepo.criacoes, "limite de tentativas respeitado")
}

func TestCreate_FornecedorInexistenteFalha(t *testing.T) {
	uc, _, _ := novoUseCase(t)
	in := requestValida()
	in.FornecedorID = "nao-existe"

	_, err := uc.Create(context.Background(), "user-1", "10.0.0.1", in)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_ValorNegativoFalhaComCampo(t *testing.T) {
	uc, _, _ := novoUseCase(t)
	in := requestValida()
	in.ValorISS = decimal.RequireFromString("-1")

	_, err := uc.Create(context.Background(), "user-1", "10.0.0.1", in)
	ve := domain.AsValidation(err)
	require.NotNil(t, ve)
	assert.Equal(t, "valor_iss", ve.Campo)
}

func TestCreate_DataInvalidaFalha(t *testing.T) {
	uc, _, _ := novoUseCase(t)
	in := requestValida()
	in.DataDocumento = "10/08/2025"

	_, err := uc.Create(context.Background(), "user-1", "10.0.0.1", in)
	ve := domain.AsValidation(err)
	require.NotNil(t, ve)
	assert.Equal(t, "data_documento", ve.Campo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_PreservaNumeroEDataEntrada(t *testing.T) {
	uc, _, _ := novoUseCase(t)
	criado, err := uc.Create(context.Background(), "user-1", "10.0.0.1", requestValida())
	require.NoError(t, err)

	in := dto.UpdateDocumentoRequest(requestValida())
	in.Descricao = "descrição revisada"
	atualizado, err := uc.Update("user-1", "10.0.0.1", criado.ID, in)
	require.NoError(t, err)

	assert.Equal(t, criado.Numero, atualizado.Numero)
	assert.Equal(t, criado.DataEntrada, atualizado.DataEntrada)
	assert.Equal(t, "descrição revisada", atualizado.Descricao)
}

// ──────────────────────────────────────────────────────────────────────────────
// DarBaixa
// ──────────────────────────────────────────────────────────────────────────────

func TestDarBaixa_QuitaDocumentoPendente(t *testing.T) {
	uc, _, histRepo := novoUseCase(t)
	criado, err := uc.Create(context.Background(), "user-1", "10.0.0.1", requestValida())
	require.NoError(t, err)

	baixado, err := uc.DarBaixa(context.Background(), "tesoureiro-1", "10.0.0.2", criado.ID, dto.DarBaixaRequest{})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPago, baixado.Status)
	assert.Equal(t, entity.EtapaBaixa, baixado.Etapa)
	assert.NotEmpty(t, baixado.DataPagamento)
	assert.NotNil(t, baixado.DataBaixa)
	assert.Equal(t, "tesoureiro-1", baixado.BaixadoPor)

	ultima := histRepo.historicos[len(histRepo.historicos)-1]
	assert.Equal(t, entity.EtapaBaixa, ultima.Etapa)
	assert.Equal(t, "pago e fim de processo", ultima.Descricao)
}

func TestDarBaixa_UsaDataDePagamentoInformada(t *testing.T) {
	uc, _, _ := novoUseCase(t)
	criado, err := uc.Create(context.Background(), "user-1", "10.0.0.1", requestValida())
	require.NoError(t, err)

	baixado, err := uc.DarBaixa(context.Background(), "tesoureiro-1", "10.0.0.2", criado.ID,
		dto.DarBaixaRequest{DataPagamento: "2025-08-20"})
	require.NoError(t, err)

	assert.Equal(t, "2025-08-20", baixado.DataPagamento)
}

func TestDarBaixa_DataAnteriorAoDocumentoFalha(t *testing.T) {
	uc, _, _ := novoUseCase(t)
	criado, err := uc.Create(context.Background(), "user-1", "10.0.0.1", requestValida())
	require.NoError(t, err)

	// data_documento é 2025-08-10; pagamento não pode vir antes
	_, err = uc.DarBaixa(context.Background(), "tesoureiro-1", "10.0.0.2", criado.ID,
		dto.DarBaixaRequest{DataPagamento: "2025-08-01"})
	ve := domain.AsValidation(err)
	require.NotNil(t, ve)
	assert.Equal(t, "data_pagamento", ve.Campo)
	assert.Equal(t, domain.CodigoDataPagamentoAntes, ve.Codigo)

	recarregado, err := uc.GetByID(criado.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPendente, recarregado.Status)
}

func TestDarBaixa_DocumentoJaPagoFalha(t *testing.T) {
	uc, _, _ := novoUseCase(t)
	criado, err := uc.Create(context.Background(), "user-1", "10.0.0.1", requestValida())
	require.NoError(t, err)

	_, err = uc.DarBaixa(context.Background(), "user-1", "10.0.0.1", criado.ID, dto.DarBaixaRequest{})
	require.NoError(t, err)

	_, err = uc.DarBaixa(context.Background(), "user-1", "10.0.0.1", criado.ID, dto.DarBaixaRequest{})
	require.ErrorIs(t, err, domain.ErrConflict)
}

// ──────────────────────────────────────────────────────────────────────────────
// MudarEtapa
// ──────────────────────────────────────────────────────────────────────────────

func TestMudarEtapa_AvancoRegistraHistorico(t *testing.T) {
	uc, _, histRepo := novoUseCase(t)
	criado, err := uc.Create(context.Background(), "user-1", "10.0.0.1", requestValida())
	require.NoError(t, err)

	resp, err := uc.MudarEtapa(context.Background(), "user-1", "10.0.0.1", criado.ID, dto.MudarEtapaRequest{
		Etapa: entity.EtapaControleInterno,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EtapaControleInterno, resp.Etapa)

	ultima := histRepo.historicos[len(histRepo.historicos)-1]
	assert.Equal(t, "recebido para análise", ultima.Descricao)
}

func TestMudarEtapa_DevolucaoSemMotivoFalha(t *testing.T) {
	uc, docRepo, _ := novoUseCase(t)
	criado, err := uc.Create(context.Background(), "user-1", "10.0.0.1", requestValida())
	require.NoError(t, err)

	_, err = uc.MudarEtapa(context.Background(), "user-1", "10.0.0.1", criado.ID, dto.MudarEtapaRequest{
		Etapa: entity.EtapaControleInterno,
	})
	require.NoError(t, err)
	_, err = uc.MudarEtapa(context.Background(), "user-1", "10.0.0.1", criado.ID, dto.MudarEtapaRequest{
		Etapa: entity.EtapaEmpenho,
	})
	require.NoError(t, err)

	_, err = uc.MudarEtapa(context.Background(), "user-1", "10.0.0.1", criado.ID, dto.MudarEtapaRequest{
		Etapa: entity.EtapaControleInterno,
	})
	ve := domain.AsValidation(err)
	require.NotNil(t, ve)
	assert.Equal(t, "motivo_tipo", ve.Campo)

	doc, _ := docRepo.GetByID(criado.ID)
	assert.Equal(t, entity.EtapaEmpenho, doc.Etapa, "etapa não muda quando a devolução é rejeitada")
}

func TestMudarEtapa_DevolucaoComMotivoComposDescricao(t *testing.T) {
	uc, _, histRepo := novoUseCase(t)
	criado, err := uc.Create(context.Background(), "user-1", "10.0.0.1", requestValida())
	require.NoError(t, err)

	_, err = uc.MudarEtapa(context.Background(), "user-1", "10.0.0.1", criado.ID, dto.MudarEtapaRequest{
		Etapa: entity.EtapaControleInterno,
	})
	require.NoError(t, err)

	_, err = uc.MudarEtapa(context.Background(), "user-1", "10.0.0.1", criado.ID, dto.MudarEtapaRequest{
		Etapa:       entity.EtapaAbertura,
		MotivoTipo:  "PENDENCIA_DOC",
		MotivoLivre: "falta certidão negativa",
	})
	require.NoError(t, err)

	ultima := histRepo.historicos[len(histRepo.historicos)-1]
	assert.Equal(t, "Devolução — Pendência de documentação — falta certidão negativa", ultima.Descricao)
}

// ──────────────────────────────────────────────────────────────────────────────
// Timeline
// ──────────────────────────────────────────────────────────────────────────────

func TestTimeline_MarcaAtualEConcluidas(t *testing.T) {
	uc, _, _ := novoUseCase(t)
	criado, err := uc.Create(context.Background(), "user-1", "10.0.0.1", requestValida())
	require.NoError(t, err)

	_, err = uc.MudarEtapa(context.Background(), "user-1", "10.0.0.1", criado.ID, dto.MudarEtapaRequest{
		Etapa: entity.EtapaControleInterno,
	})
	require.NoError(t, err)

	timeline, err := uc.Timeline(criado.ID)
	require.NoError(t, err)
	require.Len(t, timeline, 5)

	assert.True(t, timeline[0].Concluida)
	assert.True(t, timeline[1].Concluida)
	assert.True(t, timeline[1].Atual)
	assert.False(t, timeline[2].Concluida)
	assert.NotNil(t, timeline[0].DataHora, "abertura tem data do histórico ou da entrada")
}
