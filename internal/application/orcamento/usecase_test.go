package orcamento_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docfinance/docfinance-api/internal/application/audit"
	"github.com/docfinance/docfinance-api/internal/application/dto"
	"github.com/docfinance/docfinance-api/internal/application/orcamento"
	"github.com/docfinance/docfinance-api/internal/domain"
	"github.com/docfinance/docfinance-api/internal/domain/entity"
)

type fakeSecretariaRepo struct {
	porID map[string]*entity.Secretaria
}

func (r *fakeSecretariaRepo) Create(s *entity.Secretaria) error {
	cp := *s
	r.porID[s.ID] = &cp
	return nil
}

func (r *fakeSecretariaRepo) GetByID(id string) (*entity.Secretaria, error) {
	return r.porID[id], nil
}

func (r *fakeSecretariaRepo) GetByCodigo(codigo string) (*entity.Secretaria, error) {
	for _, s := range r.porID {
		if s.Codigo == codigo {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSecretariaRepo) List() ([]*entity.Secretaria, error) {
	var out []*entity.Secretaria
	for _, s := range r.porID {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSecretariaRepo) Update(s *entity.Secretaria) error {
	cp := *s
	r.porID[s.ID] = &cp
	return nil
}

func (r *fakeSecretariaRepo) Delete(id string) error {
	delete(r.porID, id)
	return nil
}

type fakeRecursoRepo struct {
	porID map[string]*entity.Recurso
}

func (r *fakeRecursoRepo) Create(rec *entity.Recurso) error {
	cp := *rec
	r.porID[rec.ID] = &cp
	return nil
}

func (r *fakeRecursoRepo) GetByID(id string) (*entity.Recurso, error) {
	return r.porID[id], nil
}

func (r *fakeRecursoRepo) GetByCodigo(codigo string) (*entity.Recurso, error) {
	for _, rec := range r.porID {
		if rec.Codigo == codigo {
			return rec, nil
		}
	}
	return nil, nil
}

func (r *fakeRecursoRepo) ListBySecretaria(secretariaID string) ([]*entity.Recurso, error) {
	var out []*entity.Recurso
	for _, rec := range r.porID {
		if rec.SecretariaID == secretariaID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeRecursoRepo) Update(rec *entity.Recurso) error { return nil }

func (r *fakeRecursoRepo) Delete(id string) error {
	delete(r.porID, id)
	return nil
}

func novoUseCase() *orcamento.OrcamentoUseCase {
	return orcamento.NewOrcamentoUseCase(
		&fakeSecretariaRepo{porID: map[string]*entity.Secretaria{}},
		&fakeRecursoRepo{porID: map[string]*entity.Recurso{}},
		audit.Nulo{},
	)
}

func TestCreateSecretaria_GeraSiglaERecursos(t *testing.T) {
	uc := novoUseCase()

	resp, err := uc.CreateSecretaria("user-1", "10.0.0.1", dto.CreateSecretariaRequest{
		Nome:     "Secretaria de Educação",
		Recursos: []string{"FUNDEB", "Merenda Escolar"},
	})
	require.NoError(t, err)

	assert.Equal(t, "SDE", resp.Codigo)
	require.Len(t, resp.Recursos, 2)
	assert.Equal(t, "SDE-FUNDEB", resp.Recursos[0].Codigo)
	assert.Equal(t, "SDE-MERENDA_ESCOLAR", resp.Recursos[1].Codigo)
}

func TestCreateSecretaria_SiglaColididaRecebeSufixo(t *testing.T) {
	uc := novoUseCase()

	a, err := uc.CreateSecretaria("user-1", "10.0.0.1", dto.CreateSecretariaRequest{Nome: "Secretaria de Educação"})
	require.NoError(t, err)
	b, err := uc.CreateSecretaria("user-1", "10.0.0.1", dto.CreateSecretariaRequest{Nome: "Secretaria de Esportes"})
	require.NoError(t, err)

	assert.Equal(t, "SDE", a.Codigo)
	assert.Equal(t, "SDE2", b.Codigo)
}

func TestCreateRecurso_CodigoColididoRecebeSufixo(t *testing.T) {
	uc := novoUseCase()

	sec, err := uc.CreateSecretaria("user-1", "10.0.0.1", dto.CreateSecretariaRequest{Nome: "Gabinete"})
	require.NoError(t, err)

	r1, err := uc.CreateRecurso("user-1", "10.0.0.1", sec.ID, dto.CreateRecursoRequest{Nome: "Custeio"})
	require.NoError(t, err)
	r2, err := uc.CreateRecurso("user-1", "10.0.0.1", sec.ID, dto.CreateRecursoRequest{Nome: "custeio"})
	require.NoError(t, err)

	assert.Equal(t, "GABI-CUSTEIO", r1.Codigo)
	assert.Equal(t, "GABI-CUSTEIO2", r2.Codigo)
}

func TestUpdateSecretaria_MantemSigla(t *testing.T) {
	uc := novoUseCase()

	sec, err := uc.CreateSecretaria("user-1", "10.0.0.1", dto.CreateSecretariaRequest{Nome: "Secretaria de Educação"})
	require.NoError(t, err)

	renomeada, err := uc.UpdateSecretaria("user-1", "10.0.0.1", sec.ID, dto.UpdateSecretariaRequest{
		Nome: "Secretaria Municipal de Educação e Cultura",
	})
	require.NoError(t, err)
	assert.Equal(t, "SDE", renomeada.Codigo, "códigos emitidos continuam válidos")
}

func TestCreateRecurso_SecretariaInexistenteFalha(t *testing.T) {
	uc := novoUseCase()
	_, err := uc.CreateRecurso("user-1", "10.0.0.1", "nao-existe", dto.CreateRecursoRequest{Nome: "Custeio"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
