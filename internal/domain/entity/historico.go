package entity

import "time"

// HistoricoDocumento é um registro imutável da passagem de um documento por uma
// etapa. Nunca é editado nem removido individualmente; a exclusão do documento
// remove o histórico em cascata.
type HistoricoDocumento struct {
	ID          string
	DocumentoID string
	Etapa       string
	Descricao   string
	UsuarioID   *string // nil quando o usuário foi removido
	DataHora    time.Time
}
