package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound         = errors.New("recurso não encontrado")
	ErrUserNotFound     = errors.New("usuário não encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("registro duplicado")
	ErrUnauthorized     = errors.New("não autorizado")
	ErrForbidden        = errors.New("acesso negado")
	ErrConflict         = errors.New("conflito com o estado atual")
	ErrContaNaoAprovada = errors.New("conta ainda não aprovada")
)

// Códigos de erro de validação, associados ao campo que os originou.
const (
	CodigoValorNegativo      = "VALOR_NEGATIVO"
	CodigoLiquidoNegativo    = "LIQUIDO_NEGATIVO"
	CodigoDataPagamentoFalta = "DATA_PAGAMENTO_OBRIGATORIA"
	CodigoDataPagamentoAntes = "DATA_PAGAMENTO_ANTERIOR"
	CodigoMotivoObrigatorio  = "MOTIVO_OBRIGATORIO"
	CodigoCpfCnpjInvalido    = "CPF_CNPJ_INVALIDO"
	CodigoFormatoInvalido    = "FORMATO_INVALIDO"
)

// ValidationError é um erro de validação recuperável, associado a um campo.
// O chamador corrige a entrada e tenta novamente; nunca é fatal para o processo.
type ValidationError struct {
	Campo    string
	Codigo   string
	Mensagem string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Campo, e.Mensagem)
}

// NewValidationError constrói um erro de validação para o campo dado.
func NewValidationError(campo, codigo, mensagem string) *ValidationError {
	return &ValidationError{Campo: campo, Codigo: codigo, Mensagem: mensagem}
}

// AsValidation devolve o *ValidationError embrulhado em err, ou nil.
func AsValidation(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
