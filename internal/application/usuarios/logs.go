package usuarios

import (
	"github.com/docfinance/docfinance-api/internal/application/dto"
	"github.com/docfinance/docfinance-api/internal/domain/repository"
)

// LogsUseCase consulta da trilha de auditoria, com o nome de quem executou
// cada ação quando a conta ainda existe.
type LogsUseCase struct {
	logRepo     repository.LogAtividadeRepository
	usuarioRepo repository.UsuarioRepository
}

// NewLogsUseCase constrói o caso de uso.
func NewLogsUseCase(logRepo repository.LogAtividadeRepository, usuarioRepo repository.UsuarioRepository) *LogsUseCase {
	return &LogsUseCase{logRepo: logRepo, usuarioRepo: usuarioRepo}
}

// List devolve os registros mais recentes primeiro.
func (uc *LogsUseCase) List(in dto.PageRequest) ([]dto.LogAtividadeResponse, error) {
	in.DefaultPage()
	logs, err := uc.logRepo.List(in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	nomes := map[string]string{}
	out := make([]dto.LogAtividadeResponse, 0, len(logs))
	for _, l := range logs {
		r := dto.LogAtividadeResponse{
			ID:       l.ID,
			Acao:     l.Acao,
			Detalhes: l.Detalhes,
			IP:       l.IP,
			DataHora: l.DataHora,
		}
		if l.UsuarioID != nil {
			r.UsuarioID = *l.UsuarioID
			nome, ok := nomes[*l.UsuarioID]
			if !ok {
				if u, _ := uc.usuarioRepo.GetByID(*l.UsuarioID); u != nil {
					nome = u.Nome
				}
				nomes[*l.UsuarioID] = nome
			}
			r.UsuarioNome = nome
		}
		out = append(out, r)
	}
	return out, nil
}
