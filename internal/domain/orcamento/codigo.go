// Package orcamento gera os códigos das unidades orçamentárias: a sigla da
// secretaria e o código prefixado do recurso, com desambiguação por sufixo
// numérico quando o código gerado já existe.
package orcamento

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeAcentos decompõe em NFD, descarta as marcas de combinação (acentos,
// cedilha) e recompõe em NFC. "Educação" vira "Educacao".
var removeAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

const maxSigla = 4

// Sigla deriva a sigla da secretaria a partir do nome: iniciais das palavras,
// sem acentos e sem caracteres não alfabéticos, até 4 letras maiúsculas.
// "Secretaria de Educação" vira "SDE"; nomes de uma palavra usam as primeiras
// letras ("Gabinete" vira "GABI").
func Sigla(nome string) string {
	plano, _, err := transform.String(removeAcentos, nome)
	if err != nil {
		plano = nome
	}

	palavras := strings.Fields(plano)
	var b strings.Builder
	for _, p := range palavras {
		for _, r := range p {
			if unicode.IsLetter(r) {
				b.WriteRune(unicode.ToUpper(r))
				break
			}
		}
		if b.Len() >= maxSigla {
			break
		}
	}

	sigla := b.String()
	if len(sigla) >= 2 {
		return sigla
	}

	// Nome de uma palavra (ou quase sem letras): completa com as primeiras
	// letras do nome plano.
	b.Reset()
	for _, r := range plano {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
			if b.Len() >= maxSigla {
				break
			}
		}
	}
	if b.Len() == 0 {
		return "SEC"
	}
	return b.String()
}

// CodigoRecurso monta o código do recurso: sigla da secretaria, hífen e o
// nome do recurso em forma de slug maiúsculo ("EDU-FUNDEB",
// "ADM-ILUMINACAO_PUBLICA").
func CodigoRecurso(siglaSecretaria, nome string) string {
	return siglaSecretaria + "-" + slug(nome)
}

// slug normaliza o nome: sem acentos, maiúsculas, sequências não alfanuméricas
// colapsadas em um único "_".
func slug(nome string) string {
	plano, _, err := transform.String(removeAcentos, nome)
	if err != nil {
		plano = nome
	}

	var b strings.Builder
	pendente := false
	for _, r := range plano {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendente && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendente = false
			b.WriteRune(unicode.ToUpper(r))
		default:
			pendente = true
		}
	}
	if b.Len() == 0 {
		return "RECURSO"
	}
	return b.String()
}

// ResolverColisao devolve o primeiro código livre: o próprio, ou o código com
// sufixo numérico crescente a partir de 2 ("EDU", "EDU2", "EDU3"...).
// existe responde se um código já está em uso.
func ResolverColisao(codigo string, existe func(string) bool) string {
	if !existe(codigo) {
		return codigo
	}
	for n := 2; ; n++ {
		candidato := codigo + strconv.Itoa(n)
		if !existe(candidato) {
			return candidato
		}
	}
}
