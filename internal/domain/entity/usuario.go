package entity

import "time"

// Perfis de acesso.
const (
	RoleAdmin      = "admin"
	RoleTesouraria = "tesouraria"
	RoleConsulta   = "consulta"
)

// RoleValida informa se o perfil é um dos conhecidos.
func RoleValida(role string) bool {
	switch role {
	case RoleAdmin, RoleTesouraria, RoleConsulta:
		return true
	}
	return false
}

// Status de aprovação da conta. Contas novas nascem pendentes e só podem
// autenticar depois de aprovadas por um administrador.
const (
	ContaPendente  = "pendente"
	ContaAprovada  = "aprovado"
	ContaRejeitada = "rejeitado"
)

// Usuario representa um usuário do sistema.
type Usuario struct {
	ID        string
	Email     string
	SenhaHash string // bcrypt, nunca em claro após persistir
	Nome      string
	Matricula string
	CPF       string // somente dígitos
	Telefone  string
	Role      string // admin, tesouraria, consulta
	Status    string // pendente, aprovado, rejeitado
	CreatedAt time.Time
	UpdatedAt time.Time
}
