package documento

import (
	"strings"
	"time"

	"github.com/docfinance/docfinance-api/internal/domain"
	"github.com/docfinance/docfinance-api/internal/domain/entity"
)

// Etapas é a sequência canônica do processo. O índice na fatia define o que é
// avanço e o que é retrocesso (devolução).
var Etapas = []string{
	entity.EtapaAbertura,
	entity.EtapaControleInterno,
	entity.EtapaEmpenho,
	entity.EtapaPagamento,
	entity.EtapaBaixa,
}

// RotulosEtapas nomes de exibição por etapa.
var RotulosEtapas = map[string]string{
	entity.EtapaAbertura:        "Abertura",
	entity.EtapaControleInterno: "Controle Interno",
	entity.EtapaEmpenho:         "Empenho",
	entity.EtapaPagamento:       "Pagamento",
	entity.EtapaBaixa:           "Baixa",
}

// Motivos de devolução (retrocesso de etapa).
const (
	MotivoPendenciaDoc         = "PENDENCIA_DOC"
	MotivoErroEmpenho          = "ERRO_EMPENHO"
	MotivoAjusteValor          = "AJUSTE_VALOR"
	MotivoDivergenciaDados     = "DIVERGENCIA_DADOS"
	MotivoSolicitacaoSecretaria = "SOLICITACAO_SECRETARIA"
	MotivoOutro                = "OUTRO"
)

// RotulosMotivos rótulos de exibição por motivo de devolução.
var RotulosMotivos = map[string]string{
	MotivoPendenciaDoc:          "Pendência de documentação",
	MotivoErroEmpenho:           "Erro de empenho",
	MotivoAjusteValor:           "Ajuste de valor",
	MotivoDivergenciaDados:      "Divergência de dados",
	MotivoSolicitacaoSecretaria: "Solicitação da secretaria",
	MotivoOutro:                 "Outro",
}

// descricaoPadrao é o texto usado em avanços quando o chamador não informa
// descrição própria.
var descricaoPadrao = map[string]string{
	entity.EtapaAbertura:        "abertura de processo",
	entity.EtapaControleInterno: "recebido para análise",
	entity.EtapaEmpenho:         "recebido para empenho",
	entity.EtapaPagamento:       "Apto para pagamento",
	entity.EtapaBaixa:           "pago e fim de processo",
}

// IndiceEtapa devolve a posição da etapa na ordem canônica e se ela é válida.
func IndiceEtapa(etapa string) (int, bool) {
	for i, e := range Etapas {
		if e == etapa {
			return i, true
		}
	}
	return 0, false
}

// Transicao descreve a mudança de etapa solicitada pelo chamador.
type Transicao struct {
	EtapaAtual  string
	EtapaNova   string
	Descricao   string // texto livre do chamador, usado em avanços
	Motivo      string // código de motivo, exigido em devoluções sem texto livre
	MotivoLivre string
}

// NotaTransicao valida a transição e compõe a descrição que vai para o
// histórico. Retrocessos exigem motivo ou texto livre e sempre recompõem a
// descrição como "Devolução — {motivo} — {texto}", ignorando a descrição do
// chamador. Avanços usam a descrição do chamador ou o padrão da etapa destino.
func NotaTransicao(t Transicao) (string, error) {
	idxNova, ok := IndiceEtapa(t.EtapaNova)
	if !ok {
		return "", domain.NewValidationError("etapa", domain.CodigoFormatoInvalido,
			"Etapa desconhecida: "+t.EtapaNova)
	}
	// Etapa atual desconhecida é tratada como ABERTURA (índice 0), como um
	// documento antigo sem etapa registrada.
	idxAtual, _ := IndiceEtapa(t.EtapaAtual)

	livre := strings.TrimSpace(t.MotivoLivre)
	if idxNova < idxAtual {
		if t.Motivo == "" && livre == "" {
			return "", domain.NewValidationError("motivo_tipo", domain.CodigoMotivoObrigatorio,
				"Escolha um motivo ou descreva no campo livre.")
		}
		partes := []string{"Devolução"}
		if t.Motivo != "" {
			rotulo, ok := RotulosMotivos[t.Motivo]
			if !ok {
				rotulo = t.Motivo
			}
			partes = append(partes, rotulo)
		}
		if livre != "" {
			partes = append(partes, livre)
		}
		return strings.Join(partes, " — "), nil
	}

	if d := strings.TrimSpace(t.Descricao); d != "" {
		return d, nil
	}
	return descricaoPadrao[t.EtapaNova], nil
}

// EtapaInfo é o estado consolidado de uma etapa para a linha do tempo do
// documento.
type EtapaInfo struct {
	Chave     string
	Rotulo    string
	Concluida bool
	Data      *time.Time
	Descricao string
}

// MontarLinhaDoTempo consolida o histórico completo em uma visão por etapa.
// O histórico é percorrido em ordem cronológica crescente e, para cada etapa,
// a entrada mais recente prevalece (entradas posteriores sobrescrevem as
// anteriores no resumo). ABERTURA ganha a data de entrada do documento quando
// não há registro próprio.
func MontarLinhaDoTempo(doc *entity.Documento, historicos []*entity.HistoricoDocumento) []EtapaInfo {
	datas := make(map[string]time.Time)
	descricoes := make(map[string]string)
	for _, h := range historicos {
		datas[h.Etapa] = h.DataHora
		if h.Descricao != "" {
			descricoes[h.Etapa] = h.Descricao
		}
	}
	if _, ok := datas[entity.EtapaAbertura]; !ok && !doc.DataEntrada.IsZero() {
		datas[entity.EtapaAbertura] = doc.DataEntrada
	}

	idxAtual, _ := IndiceEtapa(doc.Etapa)
	infos := make([]EtapaInfo, 0, len(Etapas))
	for i, chave := range Etapas {
		info := EtapaInfo{
			Chave:     chave,
			Rotulo:    RotulosEtapas[chave],
			Concluida: i <= idxAtual,
			Descricao: descricoes[chave],
		}
		if d, ok := datas[chave]; ok {
			dd := d
			info.Data = &dd
		}
		infos = append(infos, info)
	}
	return infos
}
