package entity

import "time"

// LogAtividade é o registro de auditoria de uma ação no sistema. O ator e o IP
// chegam por parâmetro explícito em cada operação auditada, nunca por estado
// global de requisição.
type LogAtividade struct {
	ID        string
	UsuarioID *string // nil para ações anônimas ou usuário removido
	Acao      string
	Detalhes  string
	IP        string
	DataHora  time.Time
}
