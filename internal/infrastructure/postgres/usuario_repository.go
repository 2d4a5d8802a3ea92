package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/docfinance/docfinance-api/internal/domain"
	"github.com/docfinance/docfinance-api/internal/domain/entity"
	"github.com/docfinance/docfinance-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

const usuarioColunas = `
	id, email, senha_hash, nome, matricula, cpf, telefone, role, status, created_at, updated_at`

// UsuarioRepo implementação de UsuarioRepository.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository constrói o adaptador.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste um usuário novo. E-mail repetido vira ErrDuplicate.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (` + usuarioColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Email, u.SenhaHash, u.Nome, u.Matricula, u.CPF, u.Telefone, u.Role, u.Status,
		u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return r.get(`SELECT `+usuarioColunas+` FROM usuarios WHERE id = $1`, id)
}

func (r *UsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	return r.get(`SELECT `+usuarioColunas+` FROM usuarios WHERE email = $1`, email)
}

func (r *UsuarioRepo) get(query string, arg any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Email, &u.SenhaHash, &u.Nome, &u.Matricula, &u.CPF, &u.Telefone, &u.Role, &u.Status,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// List devolve usuários por status de aprovação; status vazio devolve todos.
func (r *UsuarioRepo) List(status string) ([]*entity.Usuario, error) {
	query := `SELECT ` + usuarioColunas + ` FROM usuarios`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY nome`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(
			&u.ID, &u.Email, &u.SenhaHash, &u.Nome, &u.Matricula, &u.CPF, &u.Telefone, &u.Role, &u.Status,
			&u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update atualiza o cadastro do usuário.
func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	query := `
		UPDATE usuarios SET
			email = $2, senha_hash = $3, nome = $4, matricula = $5, cpf = $6, telefone = $7,
			role = $8, status = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		u.ID, u.Email, u.SenhaHash, u.Nome, u.Matricula, u.CPF, u.Telefone, u.Role, u.Status, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
