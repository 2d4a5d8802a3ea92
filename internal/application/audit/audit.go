package audit

import (
	"time"

	"github.com/google/uuid"

	"github.com/docfinance/docfinance-api/internal/domain/entity"
	"github.com/docfinance/docfinance-api/internal/domain/repository"
	"github.com/docfinance/docfinance-api/pkg/logger"
)

// Sink recebe eventos de auditoria. O ator e o IP chegam por parâmetro em cada
// chamada; nenhuma operação lê estado ambiente de requisição.
type Sink interface {
	Registrar(usuarioID *string, acao, detalhes, ip string)
}

// Recorder grava eventos no repositório de logs. Falha de gravação não
// interrompe a operação auditada: o evento vai para o log estruturado.
type Recorder struct {
	logRepo repository.LogAtividadeRepository
	log     *logger.Logger
}

// NewRecorder constrói o sink padrão.
func NewRecorder(logRepo repository.LogAtividadeRepository, log *logger.Logger) *Recorder {
	return &Recorder{logRepo: logRepo, log: log}
}

// Registrar persiste o evento com data/hora do servidor.
func (r *Recorder) Registrar(usuarioID *string, acao, detalhes, ip string) {
	l := &entity.LogAtividade{
		ID:        uuid.New().String(),
		UsuarioID: usuarioID,
		Acao:      acao,
		Detalhes:  detalhes,
		IP:        ip,
		DataHora:  time.Now(),
	}
	if err := r.logRepo.Create(l); err != nil {
		r.log.Error().Err(err).Str("acao", acao).Msg("falha ao gravar log de atividade")
	}
}

// Nulo é um sink que descarta eventos. Útil em testes.
type Nulo struct{}

func (Nulo) Registrar(*string, string, string, string) {}
