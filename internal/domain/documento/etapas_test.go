package documento_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docfinance/docfinance-api/internal/domain"
	"github.com/docfinance/docfinance-api/internal/domain/documento"
	"github.com/docfinance/docfinance-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Avanços — descrição do chamador ou padrão da etapa destino
// ──────────────────────────────────────────────────────────────────────────────

func TestNotaTransicao_AvancoSemDescricaoUsaPadrao(t *testing.T) {
	casos := []struct {
		para    string
		padrao  string
	}{
		{entity.EtapaControleInterno, "recebido para análise"},
		{entity.EtapaEmpenho, "recebido para empenho"},
		{entity.EtapaPagamento, "Apto para pagamento"},
		{entity.EtapaBaixa, "pago e fim de processo"},
	}
	for _, c := range casos {
		t.Run(c.para, func(t *testing.T) {
			nota, err := documento.NotaTransicao(documento.Transicao{
				EtapaAtual: entity.EtapaAbertura,
				EtapaNova:  c.para,
			})
			require.NoError(t, err)
			assert.Equal(t, c.padrao, nota)
		})
	}
}

func TestNotaTransicao_AvancoComDescricaoDoChamador(t *testing.T) {
	nota, err := documento.NotaTransicao(documento.Transicao{
		EtapaAtual: entity.EtapaAbertura,
		EtapaNova:  entity.EtapaControleInterno,
		Descricao:  "conferido pelo setor de compras",
	})
	require.NoError(t, err)
	assert.Equal(t, "conferido pelo setor de compras", nota)
}

// Permanecer na mesma etapa conta como avanço (não exige motivo).
func TestNotaTransicao_MesmaEtapaNaoExigeMotivo(t *testing.T) {
	nota, err := documento.NotaTransicao(documento.Transicao{
		EtapaAtual: entity.EtapaEmpenho,
		EtapaNova:  entity.EtapaEmpenho,
	})
	require.NoError(t, err)
	assert.Equal(t, "recebido para empenho", nota)
}

// ──────────────────────────────────────────────────────────────────────────────
// Devoluções — retrocessos exigem justificativa
// ──────────────────────────────────────────────────────────────────────────────

func TestNotaTransicao_DevolucaoSemJustificativaFalha(t *testing.T) {
	_, err := documento.NotaTransicao(documento.Transicao{
		EtapaAtual: entity.EtapaEmpenho,
		EtapaNova:  entity.EtapaControleInterno,
	})
	require.Error(t, err)
	ve := domain.AsValidation(err)
	require.NotNil(t, ve)
	assert.Equal(t, "motivo_tipo", ve.Campo)
	assert.Equal(t, domain.CodigoMotivoObrigatorio, ve.Codigo)
}

// Texto livre só com espaços não conta como justificativa.
func TestNotaTransicao_DevolucaoComTextoEmBrancoFalha(t *testing.T) {
	_, err := documento.NotaTransicao(documento.Transicao{
		EtapaAtual:  entity.EtapaEmpenho,
		EtapaNova:   entity.EtapaControleInterno,
		MotivoLivre: "   ",
	})
	require.Error(t, err)
}

func TestNotaTransicao_DevolucaoComMotivo(t *testing.T) {
	nota, err := documento.NotaTransicao(documento.Transicao{
		EtapaAtual: entity.EtapaEmpenho,
		EtapaNova:  entity.EtapaControleInterno,
		Motivo:     documento.MotivoErroEmpenho,
	})
	require.NoError(t, err)
	assert.Equal(t, "Devolução — Erro de empenho", nota)
}

func TestNotaTransicao_DevolucaoComMotivoETextoLivre(t *testing.T) {
	nota, err := documento.NotaTransicao(documento.Transicao{
		EtapaAtual:  entity.EtapaPagamento,
		EtapaNova:   entity.EtapaEmpenho,
		Motivo:      documento.MotivoAjusteValor,
		MotivoLivre: "valor empenhado diverge da nota",
	})
	require.NoError(t, err)
	assert.Equal(t, "Devolução — Ajuste de valor — valor empenhado diverge da nota", nota)
}

// A descrição do chamador é ignorada em devoluções: a nota é sempre
// recomposta a partir do motivo e do texto livre.
func TestNotaTransicao_DevolucaoIgnoraDescricaoDoChamador(t *testing.T) {
	nota, err := documento.NotaTransicao(documento.Transicao{
		EtapaAtual:  entity.EtapaBaixa,
		EtapaNova:   entity.EtapaAbertura,
		Descricao:   "texto que deve ser descartado",
		MotivoLivre: "processo reaberto por decisão administrativa",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(nota, "Devolução"))
	assert.NotContains(t, nota, "descartado")
}

// Documento em BAIXA ainda pode retroceder, desde que justificado.
func TestNotaTransicao_DevolucaoAPartirDaBaixa(t *testing.T) {
	nota, err := documento.NotaTransicao(documento.Transicao{
		EtapaAtual: entity.EtapaBaixa,
		EtapaNova:  entity.EtapaPagamento,
		Motivo:     documento.MotivoOutro,
	})
	require.NoError(t, err)
	assert.Equal(t, "Devolução — Outro", nota)
}

func TestNotaTransicao_EtapaDesconhecidaFalha(t *testing.T) {
	_, err := documento.NotaTransicao(documento.Transicao{
		EtapaAtual: entity.EtapaAbertura,
		EtapaNova:  "ARQUIVO_MORTO",
	})
	require.Error(t, err)
	ve := domain.AsValidation(err)
	require.NotNil(t, ve)
	assert.Equal(t, "etapa", ve.Campo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Linha do tempo — última entrada por etapa prevalece
// ──────────────────────────────────────────────────────────────────────────────

func TestMontarLinhaDoTempo_UltimaEntradaPorEtapaPrevalece(t *testing.T) {
	doc := novoDocumento(entity.TipoNotaFiscal)
	doc.Etapa = entity.EtapaEmpenho

	base := time.Date(2025, 9, 1, 8, 0, 0, 0, time.Local)
	historicos := []*entity.HistoricoDocumento{
		{Etapa: entity.EtapaControleInterno, Descricao: "primeira análise", DataHora: base},
		{Etapa: entity.EtapaEmpenho, Descricao: "recebido para empenho", DataHora: base.Add(time.Hour)},
		{Etapa: entity.EtapaControleInterno, Descricao: "reanálise após devolução", DataHora: base.Add(2 * time.Hour)},
	}

	infos := documento.MontarLinhaDoTempo(doc, historicos)
	require.Len(t, infos, 5)

	controle := infos[1]
	assert.Equal(t, entity.EtapaControleInterno, controle.Chave)
	assert.Equal(t, "reanálise após devolução", controle.Descricao,
		"a entrada mais recente da etapa deve sobrescrever a anterior")
	require.NotNil(t, controle.Data)
	assert.True(t, controle.Data.Equal(base.Add(2*time.Hour)))
}

func TestMontarLinhaDoTempo_AberturaSemHistoricoUsaDataEntrada(t *testing.T) {
	doc := novoDocumento(entity.TipoNotaFiscal)

	infos := documento.MontarLinhaDoTempo(doc, nil)
	require.Len(t, infos, 5)
	abertura := infos[0]
	require.NotNil(t, abertura.Data, "ABERTURA deve herdar a data de entrada")
	assert.True(t, abertura.Data.Equal(doc.DataEntrada))
}

func TestMontarLinhaDoTempo_ConcluidasAteEtapaAtual(t *testing.T) {
	doc := novoDocumento(entity.TipoNotaFiscal)
	doc.Etapa = entity.EtapaEmpenho

	infos := documento.MontarLinhaDoTempo(doc, nil)
	assert.True(t, infos[0].Concluida)
	assert.True(t, infos[1].Concluida)
	assert.True(t, infos[2].Concluida)
	assert.False(t, infos[3].Concluida)
	assert.False(t, infos[4].Concluida)
}
