package orcamento

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/docfinance/docfinance-api/internal/application/audit"
	"github.com/docfinance/docfinance-api/internal/application/dto"
	"github.com/docfinance/docfinance-api/internal/domain"
	"github.com/docfinance/docfinance-api/internal/domain/entity"
	domorc "github.com/docfinance/docfinance-api/internal/domain/orcamento"
	"github.com/docfinance/docfinance-api/internal/domain/repository"
)

// OrcamentoUseCase cadastro de secretarias e recursos orçamentários, com
// geração automática de sigla e código e desambiguação por sufixo.
type OrcamentoUseCase struct {
	secretariaRepo repository.SecretariaRepository
	recursoRepo    repository.RecursoRepository
	auditoria      audit.Sink
}

// NewOrcamentoUseCase constrói o caso de uso.
func NewOrcamentoUseCase(
	secretariaRepo repository.SecretariaRepository,
	recursoRepo repository.RecursoRepository,
	auditoria audit.Sink,
) *OrcamentoUseCase {
	return &OrcamentoUseCase{
		secretariaRepo: secretariaRepo,
		recursoRepo:    recursoRepo,
		auditoria:      auditoria,
	}
}

// CreateSecretaria cadastra a secretaria com sigla gerada do nome e cria os
// recursos iniciais informados, cada um com código prefixado pela sigla.
func (uc *OrcamentoUseCase) CreateSecretaria(atorID, ip string, in dto.CreateSecretariaRequest) (*dto.SecretariaResponse, error) {
	sigla := domorc.ResolverColisao(domorc.Sigla(in.Nome), func(c string) bool {
		s, _ := uc.secretariaRepo.GetByCodigo(c)
		return s != nil
	})
	now := time.Now()
	s := &entity.Secretaria{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		Codigo:    sigla,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.secretariaRepo.Create(s); err != nil {
		return nil, err
	}

	recursos := make([]dto.RecursoResponse, 0, len(in.Recursos))
	for _, nome := range in.Recursos {
		r, err := uc.criarRecurso(s, nome)
		if err != nil {
			return nil, err
		}
		recursos = append(recursos, *toRecursoResponse(r))
	}

	uc.auditoria.Registrar(&atorID, "secretaria.criar",
		fmt.Sprintf("secretaria %s (%s) cadastrada", s.Nome, s.Codigo), ip)
	resp := toSecretariaResponse(s)
	resp.Recursos = recursos
	return resp, nil
}

// GetSecretaria devolve a secretaria com seus recursos.
func (uc *OrcamentoUseCase) GetSecretaria(id string) (*dto.SecretariaResponse, error) {
	s, err := uc.secretariaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return uc.comRecursos(s)
}

// ListSecretarias devolve todas as secretarias com seus recursos.
func (uc *OrcamentoUseCase) ListSecretarias() ([]dto.SecretariaResponse, error) {
	secretarias, err := uc.secretariaRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SecretariaResponse, 0, len(secretarias))
	for _, s := range secretarias {
		resp, err := uc.comRecursos(s)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// UpdateSecretaria renomeia a secretaria. A sigla é mantida: os códigos dos
// recursos já emitidos continuam válidos.
func (uc *OrcamentoUseCase) UpdateSecretaria(atorID, ip, id string, in dto.UpdateSecretariaRequest) (*dto.SecretariaResponse, error) {
	s, err := uc.secretariaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	s.Nome = in.Nome
	s.UpdatedAt = time.Now()
	if err := uc.secretariaRepo.Update(s); err != nil {
		return nil, err
	}
	uc.auditoria.Registrar(&atorID, "secretaria.editar",
		fmt.Sprintf("secretaria %s renomeada", s.Codigo), ip)
	return uc.comRecursos(s)
}

// DeleteSecretaria remove a secretaria; os recursos caem em cascata.
func (uc *OrcamentoUseCase) DeleteSecretaria(atorID, ip, id string) error {
	s, err := uc.secretariaRepo.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	if err := uc.secretariaRepo.Delete(id); err != nil {
		return err
	}
	uc.auditoria.Registrar(&atorID, "secretaria.excluir",
		fmt.Sprintf("secretaria %s (%s) excluída", s.Nome, s.Codigo), ip)
	return nil
}

// CreateRecurso acrescenta um recurso à secretaria.
func (uc *OrcamentoUseCase) CreateRecurso(atorID, ip, secretariaID string, in dto.CreateRecursoRequest) (*dto.RecursoResponse, error) {
	s, err := uc.secretariaRepo.GetByID(secretariaID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	r, err := uc.criarRecurso(s, in.Nome)
	if err != nil {
		return nil, err
	}
	uc.auditoria.Registrar(&atorID, "recurso.criar",
		fmt.Sprintf("recurso %s criado em %s", r.Codigo, s.Codigo), ip)
	return toRecursoResponse(r), nil
}

// DeleteRecurso remove um recurso.
func (uc *OrcamentoUseCase) DeleteRecurso(atorID, ip, id string) error {
	r, err := uc.recursoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return domain.ErrNotFound
	}
	if err := uc.recursoRepo.Delete(id); err != nil {
		return err
	}
	uc.auditoria.Registrar(&atorID, "recurso.excluir",
		fmt.Sprintf("recurso %s excluído", r.Codigo), ip)
	return nil
}

func (uc *OrcamentoUseCase) criarRecurso(s *entity.Secretaria, nome string) (*entity.Recurso, error) {
	codigo := domorc.ResolverColisao(domorc.CodigoRecurso(s.Codigo, nome), func(c string) bool {
		r, _ := uc.recursoRepo.GetByCodigo(c)
		return r != nil
	})
	now := time.Now()
	r := &entity.Recurso{
		ID:           uuid.New().String(),
		SecretariaID: s.ID,
		Nome:         nome,
		Codigo:       codigo,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.recursoRepo.Create(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (uc *OrcamentoUseCase) comRecursos(s *entity.Secretaria) (*dto.SecretariaResponse, error) {
	recursos, err := uc.recursoRepo.ListBySecretaria(s.ID)
	if err != nil {
		return nil, err
	}
	resp := toSecretariaResponse(s)
	resp.Recursos = make([]dto.RecursoResponse, 0, len(recursos))
	for _, r := range recursos {
		resp.Recursos = append(resp.Recursos, *toRecursoResponse(r))
	}
	return resp, nil
}

func toSecretariaResponse(s *entity.Secretaria) *dto.SecretariaResponse {
	return &dto.SecretariaResponse{
		ID:        s.ID,
		Nome:      s.Nome,
		Codigo:    s.Codigo,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toRecursoResponse(r *entity.Recurso) *dto.RecursoResponse {
	return &dto.RecursoResponse{
		ID:           r.ID,
		SecretariaID: r.SecretariaID,
		Nome:         r.Nome,
		Codigo:       r.Codigo,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
