package repository

import "github.com/docfinance/docfinance-api/internal/domain/entity"

// SecretariaRepository define a porta de persistência de Secretaria.
type SecretariaRepository interface {
	Create(s *entity.Secretaria) error
	GetByID(id string) (*entity.Secretaria, error)
	GetByCodigo(codigo string) (*entity.Secretaria, error)
	List() ([]*entity.Secretaria, error)
	Update(s *entity.Secretaria) error
	// Delete remove a secretaria; os recursos vinculados caem em cascata.
	Delete(id string) error
}

// RecursoRepository define a porta de persistência de Recurso.
type RecursoRepository interface {
	Create(r *entity.Recurso) error
	GetByID(id string) (*entity.Recurso, error)
	GetByCodigo(codigo string) (*entity.Recurso, error)
	ListBySecretaria(secretariaID string) ([]*entity.Recurso, error)
	Update(r *entity.Recurso) error
	Delete(id string) error
}
