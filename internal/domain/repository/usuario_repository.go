package repository

import "github.com/docfinance/docfinance-api/internal/domain/entity"

// UsuarioRepository define a porta de persistência de Usuario.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	FindByEmail(email string) (*entity.Usuario, error)
	// List devolve usuários filtrados por status de aprovação; status vazio
	// devolve todos, ordenados por nome.
	List(status string) ([]*entity.Usuario, error)
	Update(u *entity.Usuario) error
}
