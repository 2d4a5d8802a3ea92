// Package documento concentra as regras de negócio do ciclo de vida de um
// documento financeiro: derivação e validação de valores antes de cada
// persistência, geração do número único e controle das etapas do processo.
package documento

import (
	"github.com/shopspring/decimal"

	"github.com/docfinance/docfinance-api/internal/domain"
	"github.com/docfinance/docfinance-api/internal/domain/entity"
)

// ValidarEDerivar valida os campos do documento e deriva os valores
// dependentes, mutando o próprio documento. Deve ser chamada antes de toda
// persistência; é idempotente e não faz I/O. A ordem dos passos importa:
// a normalização alimenta a validação, que alimenta a derivação do líquido.
func ValidarEDerivar(doc *entity.Documento) error {
	// Valores ausentes contam como zero, nunca como erro.
	doc.ValorDocumento = zeroSeVazio(doc.ValorDocumento)
	doc.ValorISS = zeroSeVazio(doc.ValorISS)
	doc.ValorIRRF = zeroSeVazio(doc.ValorIRRF)

	// Nota Fiscal e Fatura não carregam retenção: ISS e IRRF são zerados
	// independentemente do que o chamador enviou.
	if !doc.RetemImpostos() {
		doc.ValorISS = decimal.Zero
		doc.ValorIRRF = decimal.Zero
	}

	if doc.ValorISS.IsNegative() {
		return domain.NewValidationError("valor_iss", domain.CodigoValorNegativo,
			"O valor do ISS não pode ser negativo.")
	}
	if doc.ValorIRRF.IsNegative() {
		return domain.NewValidationError("valor_irrf", domain.CodigoValorNegativo,
			"O valor do IRRF não pode ser negativo.")
	}
	if doc.ValorDocumento.IsNegative() {
		return domain.NewValidationError("valor_documento", domain.CodigoValorNegativo,
			"O valor do documento não pode ser negativo.")
	}

	doc.ValorLiquido = doc.ValorDocumento.Sub(doc.ValorISS).Sub(doc.ValorIRRF)
	if doc.ValorLiquido.IsNegative() {
		return domain.NewValidationError("valor_liquido", domain.CodigoLiquidoNegativo,
			"O valor líquido não pode ser negativo.")
	}

	if doc.Status == entity.StatusPago {
		if doc.DataPagamento == nil {
			return domain.NewValidationError("data_pagamento", domain.CodigoDataPagamentoFalta,
				"A data de pagamento é obrigatória quando o status é Pago.")
		}
		if doc.DataPagamento.Before(doc.DataDocumento) {
			return domain.NewValidationError("data_pagamento", domain.CodigoDataPagamentoAntes,
				"A data de pagamento não pode ser anterior à data do documento.")
		}
	} else if doc.DataPagamento != nil {
		// Normalização silenciosa: documento não pago não guarda data de pagamento.
		doc.DataPagamento = nil
	}

	return nil
}

func zeroSeVazio(v decimal.Decimal) decimal.Decimal {
	// O zero value de decimal.Decimal já se comporta como 0; a cópia abaixo
	// apenas materializa o valor para comparações consistentes.
	if v.IsZero() {
		return decimal.Zero
	}
	return v
}
