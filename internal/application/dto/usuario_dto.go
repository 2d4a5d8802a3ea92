package dto

import "time"

// RegisterRequest entrada para registro. A conta nasce pendente e só autentica
// depois de aprovada por um administrador.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Nome      string `json:"nome" validate:"required,min=1,max=200"`
	Matricula string `json:"matricula"`
	CPF       string `json:"cpf" validate:"required"`
	Telefone  string `json:"telefone"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT e dados do usuário autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// UsuarioResponse usuário nas respostas (sem hash de senha).
type UsuarioResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Nome      string    `json:"nome"`
	Matricula string    `json:"matricula,omitempty"`
	CPF       string    `json:"cpf,omitempty"`
	Telefone  string    `json:"telefone,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// AprovarUsuarioRequest body para POST /api/usuarios/:id/aprovar.
// Role define o perfil concedido na aprovação.
type AprovarUsuarioRequest struct {
	Role string `json:"role" validate:"required,oneof=admin tesouraria consulta"`
}

// ListUsuariosRequest filtro por status de aprovação.
type ListUsuariosRequest struct {
	Status string `query:"status" validate:"omitempty,oneof=pendente aprovado rejeitado"`
}

// LogAtividadeResponse entrada do log de auditoria.
type LogAtividadeResponse struct {
	ID          string    `json:"id"`
	UsuarioID   string    `json:"usuario_id,omitempty"`
	UsuarioNome string    `json:"usuario_nome,omitempty"`
	Acao        string    `json:"acao"`
	Detalhes    string    `json:"detalhes,omitempty"`
	IP          string    `json:"ip,omitempty"`
	DataHora    time.Time `json:"data_hora"`
}
