package usuarios

import (
	"fmt"
	"time"

	"github.com/docfinance/docfinance-api/internal/application/audit"
	"github.com/docfinance/docfinance-api/internal/application/auth"
	"github.com/docfinance/docfinance-api/internal/application/dto"
	"github.com/docfinance/docfinance-api/internal/domain"
	"github.com/docfinance/docfinance-api/internal/domain/entity"
	"github.com/docfinance/docfinance-api/internal/domain/repository"
	"github.com/docfinance/docfinance-api/pkg/logger"
)

// Notifier envia avisos por e-mail sobre o ciclo de aprovação de contas.
// Falha de envio não reverte a operação.
type Notifier interface {
	ContaAprovada(email, nome string) error
	ContaRejeitada(email, nome string) error
}

// UsuarioUseCase administração de contas: listagem por status, aprovação e
// rejeição de cadastros pendentes.
type UsuarioUseCase struct {
	repo      repository.UsuarioRepository
	notifier  Notifier
	auditoria audit.Sink
	log       *logger.Logger
}

// NewUsuarioUseCase constrói o caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository, notifier Notifier, auditoria audit.Sink, log *logger.Logger) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo, notifier: notifier, auditoria: auditoria, log: log}
}

// List devolve usuários filtrados por status de aprovação.
func (uc *UsuarioUseCase) List(in dto.ListUsuariosRequest) ([]dto.UsuarioResponse, error) {
	usuarios, err := uc.repo.List(in.Status)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, *auth.ToUsuarioResponse(u))
	}
	return out, nil
}

// Aprovar aprova uma conta pendente, concede o perfil informado e notifica o
// titular por e-mail. Contas já decididas devolvem ErrConflict.
func (uc *UsuarioUseCase) Aprovar(atorID, ip, id string, in dto.AprovarUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if u.Status != entity.ContaPendente {
		return nil, domain.ErrConflict
	}
	u.Status = entity.ContaAprovada
	u.Role = in.Role
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(u); err != nil {
		return nil, err
	}
	if err := uc.notifier.ContaAprovada(u.Email, u.Nome); err != nil {
		uc.log.Warn().Err(err).Str("email", u.Email).Msg("falha ao notificar aprovação")
	}
	uc.auditoria.Registrar(&atorID, "usuario.aprovar",
		fmt.Sprintf("conta de %s aprovada com perfil %s", u.Email, u.Role), ip)
	return auth.ToUsuarioResponse(u), nil
}

// Rejeitar rejeita uma conta pendente e notifica o titular.
func (uc *UsuarioUseCase) Rejeitar(atorID, ip, id string) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if u.Status != entity.ContaPendente {
		return nil, domain.ErrConflict
	}
	u.Status = entity.ContaRejeitada
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(u); err != nil {
		return nil, err
	}
	if err := uc.notifier.ContaRejeitada(u.Email, u.Nome); err != nil {
		uc.log.Warn().Err(err).Str("email", u.Email).Msg("falha ao notificar rejeição")
	}
	uc.auditoria.Registrar(&atorID, "usuario.rejeitar",
		fmt.Sprintf("conta de %s rejeitada", u.Email), ip)
	return auth.ToUsuarioResponse(u), nil
}
