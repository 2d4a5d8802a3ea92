// Package pdf implementa a geração do comprovante (recibo) de um documento
// financeiro em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + número interno + data de emissão           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FORNECEDOR: nome, CPF/CNPJ, dados bancários                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DOCUMENTO: tipo, número, processo, datas                    │
//	│  VALORES: bruto, ISS, IRRF, líquido                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TRAMITAÇÃO: etapas percorridas com data e descrição         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/docfinance/docfinance-api/internal/application/documentos"
	"github.com/docfinance/docfinance-api/internal/domain/documento"
	"github.com/docfinance/docfinance-api/internal/domain/entity"
	"github.com/docfinance/docfinance-api/pkg/fiscal"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ documentos.ReciboPDFGenerator = (*MarotoReciboGenerator)(nil)

// MarotoReciboGenerator implementa documentos.ReciboPDFGenerator com Maroto v2.
type MarotoReciboGenerator struct {
	orgao string // nome do órgão emissor no cabeçalho
}

// NewMarotoReciboGenerator constrói o gerador.
func NewMarotoReciboGenerator(orgao string) *MarotoReciboGenerator {
	return &MarotoReciboGenerator{orgao: orgao}
}

// GerarRecibo gera o PDF e devolve os bytes.
func (g *MarotoReciboGenerator) GerarRecibo(
	_ context.Context,
	doc *entity.Documento,
	forn *entity.Fornecedor,
	historicos []*entity.HistoricoDocumento,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de Documento Financeiro", true).
		WithAuthor(g.orgao, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(fornecedorRow(forn))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(documentoRows(doc)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(valoresRow(doc))
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(tramitacaoRows(historicos)...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar recibo: %w", err)
	}
	return out.GetBytes(), nil
}

// headerRow: órgão (esq) e número interno + data de entrada (dir).
func (g *MarotoReciboGenerator) headerRow(doc *entity.Documento) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.orgao, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Recibo de documento financeiro", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("DOCUMENTO Nº", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(doc.Numero, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Entrada: "+doc.DataEntrada.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// fornecedorRow: credor com CPF/CNPJ mascarado e dados bancários.
func fornecedorRow(f *entity.Fornecedor) core.Row {
	identificador := fiscal.FormatCNPJ(f.CnpjCpf)
	if f.Tipo == entity.PessoaFisica {
		identificador = fiscal.FormatCPF(f.CnpjCpf)
	}
	banco := "—"
	if f.Banco != "" {
		banco = fmt.Sprintf("%s  Ag. %s  Conta %s", f.Banco, nonEmpty(f.Agencia, "—"), nonEmpty(f.Conta, "—"))
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("FORNECEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(f.Nome, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("CPF/CNPJ: %s   |   Banco: %s", identificador, banco),
				props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// documentoRows: identificação do documento e datas.
func documentoRows(doc *entity.Documento) []core.Row {
	campo := func(rotulo, valor string) core.Col {
		return col.New(3).Add(
			text.New(rotulo, props.Text{Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 1}),
			text.New(valor, props.Text{Size: 9, Top: 5}),
		)
	}
	pagamento := "—"
	if doc.DataPagamento != nil {
		pagamento = doc.DataPagamento.Format("02/01/2006")
	}
	rows := []core.Row{
		row.New(11).Add(
			campo("Tipo", doc.Tipo),
			campo("Nº do documento", nonEmpty(doc.NumeroDocumento, "—")),
			campo("Processo", nonEmpty(doc.Processo, "—")),
			campo("Status", doc.Status),
		),
		row.New(11).Add(
			campo("Data do documento", doc.DataDocumento.Format("02/01/2006")),
			campo("Data de pagamento", pagamento),
			campo("Etapa", documento.RotulosEtapas[doc.Etapa]),
			campo("", ""),
		),
	}
	if doc.Descricao != "" {
		rows = append(rows, row.New(9).Add(col.New(12).Add(
			text.New("Descrição: "+doc.Descricao, props.Text{Size: 8, Top: 2, Color: colorGray}),
		)))
	}
	return rows
}

// valoresRow: bloco de valores alinhado à direita, líquido em destaque.
func valoresRow(doc *entity.Documento) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Valor do documento:"),
			label("ISS retido:"),
			label("IRRF retido:"),
			grandLabel("VALOR LÍQUIDO:"),
		),
		col.New(3).Add(
			value(formatReal(doc.ValorDocumento)),
			value(formatReal(doc.ValorISS)),
			value(formatReal(doc.ValorIRRF)),
			grandValue(formatReal(doc.ValorLiquido)),
		),
		col.New(3),
	)
}

// tramitacaoRows: histórico de etapas em ordem cronológica.
func tramitacaoRows(historicos []*entity.HistoricoDocumento) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("TRAMITAÇÃO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, h := range historicos {
		rotulo := documento.RotulosEtapas[h.Etapa]
		if rotulo == "" {
			rotulo = h.Etapa
		}
		linha := fmt.Sprintf("%s  —  %s", h.DataHora.Format("02/01/2006 15:04"), rotulo)
		if h.Descricao != "" {
			linha += ": " + h.Descricao
		}
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(linha, props.Text{Size: 7.5, Color: colorGray, Top: 0.5, Left: 2}),
		)))
	}
	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			fmt.Sprintf("Emitido em %s. Documento gerado eletronicamente; dispensa assinatura.",
				time.Now().Format("02/01/2006 15:04")),
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))
	return rows
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatReal formata um decimal como moeda brasileira: R$ 1.234,56.
func formatReal(v decimal.Decimal) string {
	s := v.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	partes := strings.SplitN(s, ".", 2)
	inteiro, centavos := partes[0], partes[1]

	n := len(inteiro)
	var b strings.Builder
	for i, c := range []byte(inteiro) {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(c)
	}
	out := "R$ " + b.String() + "," + centavos
	if neg {
		out = "-" + out
	}
	return out
}
