package relatorios

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/docfinance/docfinance-api/internal/application/dto"
)

// EscreverPagamentosCSV serializa o relatório de pagamentos por recurso em
// CSV com cabeçalho e linha final de total geral. Valores usam ponto decimal
// e duas casas.
func EscreverPagamentosCSV(w io.Writer, rel *dto.RelatorioPagamentosResponse) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"secretaria", "codigo_secretaria", "recurso", "codigo_recurso", "quantidade", "valor_total"}); err != nil {
		return err
	}
	for _, l := range rel.Linhas {
		rec := []string{
			l.Secretaria,
			l.CodigoSec,
			l.Recurso,
			l.CodigoRecurso,
			strconv.Itoa(l.Quantidade),
			l.ValorTotal.StringFixed(2),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	if err := cw.Write([]string{"TOTAL", "", "", "", "", rel.ValorGeral.StringFixed(2)}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// EscreverFornecedoresCSV serializa o relatório por fornecedor em CSV.
func EscreverFornecedoresCSV(w io.Writer, rel *dto.RelatorioFornecedoresResponse) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"fornecedor", "cnpj_cpf", "quantidade", "valor_total"}); err != nil {
		return err
	}
	for _, l := range rel.Linhas {
		rec := []string{
			l.Fornecedor,
			l.CnpjCpf,
			strconv.Itoa(l.Quantidade),
			l.ValorTotal.StringFixed(2),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	if err := cw.Write([]string{"TOTAL", "", "", rel.ValorGeral.StringFixed(2)}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// EscreverFinanceiroCSV serializa o resumo financeiro em CSV, um grupo por
// linha e o total do período ao final.
func EscreverFinanceiroCSV(w io.Writer, rel *dto.RelatorioFinanceiroResponse) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{rel.Agrupamento, "quantidade", "valor_total", "valor_pago", "valor_pendente", "percentual"}); err != nil {
		return err
	}
	for _, g := range rel.Grupos {
		rec := []string{
			g.Nome,
			strconv.Itoa(g.Quantidade),
			g.ValorTotal.StringFixed(2),
			g.ValorPago.StringFixed(2),
			g.ValorPendente.StringFixed(2),
			g.Percentual.StringFixed(2),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	total := []string{
		"TOTAL",
		strconv.Itoa(rel.TotalDocumentos),
		rel.ValorTotal.StringFixed(2),
		rel.ValorPago.StringFixed(2),
		rel.ValorPendente.StringFixed(2),
		"",
	}
	if err := cw.Write(total); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// EscreverContabilidadeCSV serializa o encaminhamento à contabilidade em CSV.
func EscreverContabilidadeCSV(w io.Writer, rel *dto.RelatorioContabilidadeResponse) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"seq", "fornecedor", "numero_documento", "descricao", "data_documento", "valor"}); err != nil {
		return err
	}
	for _, l := range rel.Linhas {
		rec := []string{
			strconv.Itoa(l.Seq),
			l.Fornecedor,
			l.NumeroDocumento,
			l.Descricao,
			l.DataDocumento,
			l.Valor.StringFixed(2),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	if err := cw.Write([]string{"TOTAL", "", "", "", "", rel.ValorTotal.StringFixed(2)}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// EscreverDocumentosCSV serializa uma listagem de documentos em CSV, no mesmo
// layout das telas de consulta.
func EscreverDocumentosCSV(w io.Writer, docs []dto.DocumentoResponse) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"numero", "tipo", "fornecedor", "data_documento", "valor_documento", "valor_liquido", "status", "etapa"}); err != nil {
		return err
	}
	for _, d := range docs {
		rec := []string{
			d.Numero,
			d.Tipo,
			d.FornecedorNome,
			d.DataDocumento,
			d.ValorDocumento.StringFixed(2),
			d.ValorLiquido.StringFixed(2),
			d.Status,
			d.Etapa,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
