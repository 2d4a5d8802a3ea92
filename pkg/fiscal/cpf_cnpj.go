// Package fiscal contém validação e formatação de identificadores fiscais
// brasileiros (CPF e CNPJ), segundo o algoritmo módulo 11 da Receita Federal.
package fiscal

import "unicode"

// pesos para o primeiro e segundo dígito verificador do CNPJ.
// Aplicam-se aos dígitos da esquerda para a direita.
var (
	cnpjWeightsFirst  = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeightsSecond = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// ValidateCPF valida um CPF (com ou sem máscara). Retorna (false, mensagem)
// quando inválido; a mensagem é adequada para exibição ao usuário final.
func ValidateCPF(cpf string) (bool, string) {
	digits := ExtractDigits(cpf)
	if len(digits) != 11 {
		return false, "CPF deve ter 11 dígitos"
	}
	if allEqual(digits) {
		return false, "CPF inválido"
	}

	var sum int
	for i := 0; i < 9; i++ {
		sum += int(digits[i]-'0') * (10 - i)
	}
	first := checkDigit(sum)

	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(digits[i]-'0') * (11 - i)
	}
	second := checkDigit(sum)

	if int(digits[9]-'0') != first || int(digits[10]-'0') != second {
		return false, "CPF inválido"
	}
	return true, ""
}

// ValidateCNPJ valida um CNPJ (com ou sem máscara).
func ValidateCNPJ(cnpj string) (bool, string) {
	digits := ExtractDigits(cnpj)
	if len(digits) != 14 {
		return false, "CNPJ deve ter 14 dígitos"
	}
	if allEqual(digits) {
		return false, "CNPJ inválido"
	}

	var sum int
	for i := 0; i < 12; i++ {
		sum += int(digits[i]-'0') * cnpjWeightsFirst[i]
	}
	first := checkDigit(sum)

	sum = 0
	for i := 0; i < 12; i++ {
		sum += int(digits[i]-'0') * cnpjWeightsSecond[i]
	}
	sum += first * cnpjWeightsSecond[12]
	second := checkDigit(sum)

	if int(digits[12]-'0') != first || int(digits[13]-'0') != second {
		return false, "CNPJ inválido"
	}
	return true, ""
}

// Validate despacha a validação conforme o tipo de pessoa:
// "PF" valida como CPF (11 dígitos), qualquer outro valor como CNPJ (14 dígitos).
func Validate(taxID, kind string) (bool, string) {
	if kind == "PF" {
		return ValidateCPF(taxID)
	}
	return ValidateCNPJ(taxID)
}

// FormatCPF aplica a máscara 000.000.000-00. Entradas com tamanho inesperado
// são devolvidas apenas com os dígitos.
func FormatCPF(cpf string) string {
	d := ExtractDigits(cpf)
	if len(d) != 11 {
		return string(d)
	}
	return string(d[:3]) + "." + string(d[3:6]) + "." + string(d[6:9]) + "-" + string(d[9:])
}

// FormatCNPJ aplica a máscara 00.000.000/0000-00.
func FormatCNPJ(cnpj string) string {
	d := ExtractDigits(cnpj)
	if len(d) != 14 {
		return string(d)
	}
	return string(d[:2]) + "." + string(d[2:5]) + "." + string(d[5:8]) + "/" + string(d[8:12]) + "-" + string(d[12:])
}

// ExtractDigits devolve apenas os dígitos de s, na ordem original.
func ExtractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}

// checkDigit calcula o dígito verificador módulo 11: resto >= 10 vira 0.
func checkDigit(sum int) int {
	d := 11 - (sum % 11)
	if d >= 10 {
		d = 0
	}
	return d
}

func allEqual(digits []byte) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}
