package fornecedores_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docfinance/docfinance-api/internal/application/audit"
	"github.com/docfinance/docfinance-api/internal/application/dto"
	"github.com/docfinance/docfinance-api/internal/application/fornecedores"
	"github.com/docfinance/docfinance-api/internal/domain"
	"github.com/docfinance/docfinance-api/internal/domain/entity"
)

// fakeRepo em memória, indexado por ID e por CPF/CNPJ.
type fakeRepo struct {
	porID map[string]*entity.Fornecedor
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{porID: map[string]*entity.Fornecedor{}}
}

func (r *fakeRepo) Create(f *entity.Fornecedor) error {
	cp := *f
	r.porID[f.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(id string) (*entity.Fornecedor, error) {
	f, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	cp := *f
	return &cp, nil
}

func (r *fakeRepo) GetByCnpjCpf(cnpjCpf string) (*entity.Fornecedor, error) {
	for _, f := range r.porID {
		if f.CnpjCpf == cnpjCpf {
			cp := *f
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) List(busca string, limit, offset int) ([]*entity.Fornecedor, error) {
	var out []*entity.Fornecedor
	for _, f := range r.porID {
		if busca != "" && !strings.Contains(strings.ToLower(f.Nome), strings.ToLower(busca)) {
			continue
		}
		cp := *f
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeRepo) Update(f *entity.Fornecedor) error {
	cp := *f
	r.porID[f.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(id string) error {
	delete(r.porID, id)
	return nil
}

func pj() dto.CreateFornecedorRequest {
	return dto.CreateFornecedorRequest{
		Tipo:    entity.PessoaJuridica,
		Nome:    "Construtora Alfa LTDA",
		CnpjCpf: "11.222.333/0001-81",
		Banco:   "Banco do Brasil",
	}
}

func TestCreate_NormalizaCnpjESalva(t *testing.T) {
	uc := fornecedores.NewFornecedorUseCase(newFakeRepo(), audit.Nulo{})

	resp, err := uc.Create("user-1", "10.0.0.1", pj())
	require.NoError(t, err)
	assert.Equal(t, "11222333000181", resp.CnpjCpf, "guarda somente dígitos")
	assert.Equal(t, "11.222.333/0001-81", resp.CnpjCpfFormatado)
}

func TestCreate_CpfParaPessoaFisica(t *testing.T) {
	uc := fornecedores.NewFornecedorUseCase(newFakeRepo(), audit.Nulo{})

	resp, err := uc.Create("user-1", "10.0.0.1", dto.CreateFornecedorRequest{
		Tipo:    entity.PessoaFisica,
		Nome:    "João da Silva",
		CnpjCpf: "529.982.247-25",
	})
	require.NoError(t, err)
	assert.Equal(t, "52998224725", resp.CnpjCpf)
	assert.Equal(t, "529.982.247-25", resp.CnpjCpfFormatado)
}

func TestCreate_CnpjInvalidoFalha(t *testing.T) {
	uc := fornecedores.NewFornecedorUseCase(newFakeRepo(), audit.Nulo{})
	in := pj()
	in.CnpjCpf = "11.222.333/0001-80"

	_, err := uc.Create("user-1", "10.0.0.1", in)
	ve := domain.AsValidation(err)
	require.NotNil(t, ve)
	assert.Equal(t, "cnpj_cpf", ve.Campo)
	assert.Equal(t, "CNPJ inválido", ve.Mensagem)
}

func TestCreate_CpfValidadoComoCnpjFalha(t *testing.T) {
	uc := fornecedores.NewFornecedorUseCase(newFakeRepo(), audit.Nulo{})
	in := pj()
	in.CnpjCpf = "529.982.247-25" // CPF válido, mas o tipo é PJ

	_, err := uc.Create("user-1", "10.0.0.1", in)
	ve := domain.AsValidation(err)
	require.NotNil(t, ve)
	assert.Equal(t, "CNPJ deve ter 14 dígitos", ve.Mensagem)
}

func TestCreate_AgenciaForaDoFormatoFalha(t *testing.T) {
	uc := fornecedores.NewFornecedorUseCase(newFakeRepo(), audit.Nulo{})
	in := pj()
	in.Agencia = "12345"

	_, err := uc.Create("user-1", "10.0.0.1", in)
	ve := domain.AsValidation(err)
	require.NotNil(t, ve)
	assert.Equal(t, "agencia", ve.Campo)
}

func TestCreate_DadosBancariosValidos(t *testing.T) {
	uc := fornecedores.NewFornecedorUseCase(newFakeRepo(), audit.Nulo{})
	in := pj()
	in.Agencia = "1234-5"
	in.Conta = "12345678-X"

	resp, err := uc.Create("user-1", "10.0.0.1", in)
	require.NoError(t, err)
	assert.Equal(t, "1234-5", resp.Agencia)
	assert.Equal(t, "12345678-X", resp.Conta)
}

func TestCreate_ContaSemDigitoFalha(t *testing.T) {
	uc := fornecedores.NewFornecedorUseCase(newFakeRepo(), audit.Nulo{})
	in := pj()
	in.Conta = "12345678"

	_, err := uc.Create("user-1", "10.0.0.1", in)
	ve := domain.AsValidation(err)
	require.NotNil(t, ve)
	assert.Equal(t, "conta", ve.Campo)
}

func TestCreate_DuplicadoFalha(t *testing.T) {
	uc := fornecedores.NewFornecedorUseCase(newFakeRepo(), audit.Nulo{})

	_, err := uc.Create("user-1", "10.0.0.1", pj())
	require.NoError(t, err)

	in := pj()
	in.Nome = "Outro nome, mesmo CNPJ"
	_, err = uc.Create("user-1", "10.0.0.1", in)
	require.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUpdate_TrocaParaCnpjDeOutroFalha(t *testing.T) {
	repo := newFakeRepo()
	uc := fornecedores.NewFornecedorUseCase(repo, audit.Nulo{})

	a, err := uc.Create("user-1", "10.0.0.1", pj())
	require.NoError(t, err)

	b, err := uc.Create("user-1", "10.0.0.1", dto.CreateFornecedorRequest{
		Tipo:    entity.PessoaFisica,
		Nome:    "João da Silva",
		CnpjCpf: "52998224725",
	})
	require.NoError(t, err)

	in := pj()
	in.Tipo = entity.PessoaFisica
	in.CnpjCpf = "52998224725"
	_, err = uc.Update("user-1", "10.0.0.1", a.ID, in)
	require.ErrorIs(t, err, domain.ErrDuplicate)

	// O próprio cadastro pode manter o seu CPF/CNPJ.
	_, err = uc.Update("user-1", "10.0.0.1", b.ID, dto.UpdateFornecedorRequest{
		Tipo:    entity.PessoaFisica,
		Nome:    "João da Silva Filho",
		CnpjCpf: "52998224725",
	})
	require.NoError(t, err)
}

func TestDelete_Inexistente(t *testing.T) {
	uc := fornecedores.NewFornecedorUseCase(newFakeRepo(), audit.Nulo{})
	err := uc.Delete("user-1", "10.0.0.1", "nao-existe")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
