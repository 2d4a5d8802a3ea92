package fornecedores

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/docfinance/docfinance-api/internal/application/audit"
	"github.com/docfinance/docfinance-api/internal/application/dto"
	"github.com/docfinance/docfinance-api/internal/domain"
	"github.com/docfinance/docfinance-api/internal/domain/entity"
	"github.com/docfinance/docfinance-api/internal/domain/repository"
	"github.com/docfinance/docfinance-api/pkg/fiscal"
)

// FornecedorUseCase cadastro de fornecedores: CRUD com validação de CPF/CNPJ
// e unicidade do identificador normalizado.
type FornecedorUseCase struct {
	repo      repository.FornecedorRepository
	auditoria audit.Sink
}

// NewFornecedorUseCase constrói o caso de uso.
func NewFornecedorUseCase(repo repository.FornecedorRepository, auditoria audit.Sink) *FornecedorUseCase {
	return &FornecedorUseCase{repo: repo, auditoria: auditoria}
}

// Create cadastra um fornecedor. O CPF/CNPJ é validado conforme o tipo de
// pessoa e guardado somente com dígitos; duplicado devolve ErrDuplicate.
func (uc *FornecedorUseCase) Create(atorID, ip string, in dto.CreateFornecedorRequest) (*dto.FornecedorResponse, error) {
	f, err := uc.montar(in)
	if err != nil {
		return nil, err
	}
	existente, err := uc.repo.GetByCnpjCpf(f.CnpjCpf)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	f.ID = uuid.New().String()
	f.CreatedAt = now
	f.UpdatedAt = now
	if err := uc.repo.Create(f); err != nil {
		return nil, err
	}
	uc.auditoria.Registrar(&atorID, "fornecedor.criar",
		fmt.Sprintf("fornecedor %s cadastrado", f.Nome), ip)
	return toResponse(f), nil
}

// GetByID devolve o fornecedor ou ErrNotFound.
func (uc *FornecedorUseCase) GetByID(id string) (*dto.FornecedorResponse, error) {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(f), nil
}

// List devolve fornecedores ordenados por nome, filtrados pela busca.
func (uc *FornecedorUseCase) List(in dto.ListFornecedoresRequest) (*dto.ListFornecedoresResponse, error) {
	in.DefaultPage()
	fornecedores, err := uc.repo.List(in.Busca, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FornecedorResponse, 0, len(fornecedores))
	for _, f := range fornecedores {
		out = append(out, *toResponse(f))
	}
	return &dto.ListFornecedoresResponse{
		Fornecedores: out,
		Page:         dto.PageResponse{Limit: in.Limit, Offset: in.Offset},
	}, nil
}

// Update edita o cadastro. Trocar o CPF/CNPJ para um já usado por outro
// fornecedor devolve ErrDuplicate.
func (uc *FornecedorUseCase) Update(atorID, ip, id string, in dto.UpdateFornecedorRequest) (*dto.FornecedorResponse, error) {
	atual, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if atual == nil {
		return nil, domain.ErrNotFound
	}
	f, err := uc.montar(in)
	if err != nil {
		return nil, err
	}
	if f.CnpjCpf != atual.CnpjCpf {
		outro, err := uc.repo.GetByCnpjCpf(f.CnpjCpf)
		if err != nil {
			return nil, err
		}
		if outro != nil && outro.ID != id {
			return nil, domain.ErrDuplicate
		}
	}
	f.ID = atual.ID
	f.CreatedAt = atual.CreatedAt
	f.UpdatedAt = time.Now()
	if err := uc.repo.Update(f); err != nil {
		return nil, err
	}
	uc.auditoria.Registrar(&atorID, "fornecedor.editar",
		fmt.Sprintf("fornecedor %s editado", f.Nome), ip)
	return toResponse(f), nil
}

// Delete remove o fornecedor; documentos vinculados caem em cascata.
func (uc *FornecedorUseCase) Delete(atorID, ip, id string) error {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if f == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.auditoria.Registrar(&atorID, "fornecedor.excluir",
		fmt.Sprintf("fornecedor %s excluído", f.Nome), ip)
	return nil
}

// Formato bancário: agência 0000 ou 0000-D, conta 1 a 11 dígitos + -D,
// onde D é dígito ou X.
var (
	agenciaRe = regexp.MustCompile(`^\d{4}(-[\dXx])?$`)
	contaRe   = regexp.MustCompile(`^\d{1,11}-[\dXx]$`)
)

func (uc *FornecedorUseCase) montar(in dto.CreateFornecedorRequest) (*entity.Fornecedor, error) {
	digits := string(fiscal.ExtractDigits(in.CnpjCpf))
	if ok, msg := fiscal.Validate(digits, in.Tipo); !ok {
		return nil, domain.NewValidationError("cnpj_cpf", domain.CodigoCpfCnpjInvalido, msg)
	}
	if in.Agencia != "" && !agenciaRe.MatchString(in.Agencia) {
		return nil, domain.NewValidationError("agencia", domain.CodigoFormatoInvalido,
			"Agência deve estar no formato 0000 ou 0000-D")
	}
	if in.Conta != "" && !contaRe.MatchString(in.Conta) {
		return nil, domain.NewValidationError("conta", domain.CodigoFormatoInvalido,
			"Conta deve estar no formato número-dígito (dígito pode ser X)")
	}
	return &entity.Fornecedor{
		Tipo:      in.Tipo,
		Nome:      in.Nome,
		CnpjCpf:   digits,
		Email:     in.Email,
		Telefone:  in.Telefone,
		Endereco:  in.Endereco,
		Banco:     in.Banco,
		TipoConta: in.TipoConta,
		Agencia:   in.Agencia,
		Conta:     in.Conta,
	}, nil
}

func toResponse(f *entity.Fornecedor) *dto.FornecedorResponse {
	formatado := fiscal.FormatCNPJ(f.CnpjCpf)
	if f.Tipo == entity.PessoaFisica {
		formatado = fiscal.FormatCPF(f.CnpjCpf)
	}
	return &dto.FornecedorResponse{
		ID:               f.ID,
		Tipo:             f.Tipo,
		Nome:             f.Nome,
		CnpjCpf:          f.CnpjCpf,
		CnpjCpfFormatado: formatado,
		Email:            f.Email,
		Telefone:         f.Telefone,
		Endereco:         f.Endereco,
		Banco:            f.Banco,
		TipoConta:        f.TipoConta,
		Agencia:          f.Agencia,
		Conta:            f.Conta,
		CreatedAt:        f.CreatedAt,
		UpdatedAt:        f.UpdatedAt,
	}
}
