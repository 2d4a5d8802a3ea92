package usuarios_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docfinance/docfinance-api/internal/application/audit"
	"github.com/docfinance/docfinance-api/internal/application/dto"
	"github.com/docfinance/docfinance-api/internal/application/usuarios"
	"github.com/docfinance/docfinance-api/internal/domain"
	"github.com/docfinance/docfinance-api/internal/domain/entity"
	"github.com/docfinance/docfinance-api/pkg/logger"
)

type fakeUsuarioRepo struct {
	porID map[string]*entity.Usuario
}

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	cp := *u
	r.porID[u.ID] = &cp
	return nil
}

func (r *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	u, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	for _, u := range r.porID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) List(status string) ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range r.porID {
		if status != "" && u.Status != status {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUsuarioRepo) Update(u *entity.Usuario) error {
	cp := *u
	r.porID[u.ID] = &cp
	return nil
}

// fakeNotifier registra as notificações enviadas.
type fakeNotifier struct {
	aprovados  []string
	rejeitados []string
	err        error
}

func (n *fakeNotifier) ContaAprovada(email, _ string) error {
	n.aprovados = append(n.aprovados, email)
	return n.err
}

func (n *fakeNotifier) ContaRejeitada(email, _ string) error {
	n.rejeitados = append(n.rejeitados, email)
	return n.err
}

func setup() (*usuarios.UsuarioUseCase, *fakeUsuarioRepo, *fakeNotifier) {
	repo := &fakeUsuarioRepo{porID: map[string]*entity.Usuario{
		"u-1": {ID: "u-1", Email: "ana@prefeitura.gov.br", Nome: "Ana", Status: entity.ContaPendente, Role: entity.RoleConsulta},
		"u-2": {ID: "u-2", Email: "bia@prefeitura.gov.br", Nome: "Bia", Status: entity.ContaAprovada, Role: entity.RoleAdmin},
	}}
	notifier := &fakeNotifier{}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := usuarios.NewUsuarioUseCase(repo, notifier, audit.Nulo{}, log)
	return uc, repo, notifier
}

func TestAprovar_ConcedePerfilENotifica(t *testing.T) {
	uc, repo, notifier := setup()

	resp, err := uc.Aprovar("admin-1", "10.0.0.1", "u-1", dto.AprovarUsuarioRequest{Role: entity.RoleTesouraria})
	require.NoError(t, err)

	assert.Equal(t, entity.ContaAprovada, resp.Status)
	assert.Equal(t, entity.RoleTesouraria, resp.Role)
	assert.Equal(t, []string{"ana@prefeitura.gov.br"}, notifier.aprovados)

	salvo, _ := repo.GetByID("u-1")
	assert.Equal(t, entity.ContaAprovada, salvo.Status)
}

func TestAprovar_ContaJaDecididaFalha(t *testing.T) {
	uc, _, _ := setup()
	_, err := uc.Aprovar("admin-1", "10.0.0.1", "u-2", dto.AprovarUsuarioRequest{Role: entity.RoleAdmin})
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestAprovar_FalhaDeEmailNaoReverte(t *testing.T) {
	uc, repo, notifier := setup()
	notifier.err = assert.AnError

	_, err := uc.Aprovar("admin-1", "10.0.0.1", "u-1", dto.AprovarUsuarioRequest{Role: entity.RoleConsulta})
	require.NoError(t, err)

	salvo, _ := repo.GetByID("u-1")
	assert.Equal(t, entity.ContaAprovada, salvo.Status)
}

func TestRejeitar_Notifica(t *testing.T) {
	uc, repo, notifier := setup()

	resp, err := uc.Rejeitar("admin-1", "10.0.0.1", "u-1")
	require.NoError(t, err)

	assert.Equal(t, entity.ContaRejeitada, resp.Status)
	assert.Equal(t, []string{"ana@prefeitura.gov.br"}, notifier.rejeitados)

	salvo, _ := repo.GetByID("u-1")
	assert.Equal(t, entity.ContaRejeitada, salvo.Status)
}

func TestList_FiltraPorStatus(t *testing.T) {
	uc, _, _ := setup()

	pendentes, err := uc.List(dto.ListUsuariosRequest{Status: entity.ContaPendente})
	require.NoError(t, err)
	require.Len(t, pendentes, 1)
	assert.Equal(t, "ana@prefeitura.gov.br", pendentes[0].Email)

	todos, err := uc.List(dto.ListUsuariosRequest{})
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}
