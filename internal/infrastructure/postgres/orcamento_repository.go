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

var (
	_ repository.SecretariaRepository = (*SecretariaRepo)(nil)
	_ repository.RecursoRepository    = (*RecursoRepo)(nil)
)

// SecretariaRepo implementação de SecretariaRepository.
type SecretariaRepo struct {
	q Querier
}

// NewSecretariaRepository constrói o adaptador.
func NewSecretariaRepository(q Querier) *SecretariaRepo {
	return &SecretariaRepo{q: q}
}

func (r *SecretariaRepo) Create(s *entity.Secretaria) error {
	query := `
		INSERT INTO secretarias (id, nome, codigo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, s.ID, s.Nome, s.Codigo, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert secretaria: %w", err)
	}
	return nil
}

func (r *SecretariaRepo) GetByID(id string) (*entity.Secretaria, error) {
	return r.get(`SELECT id, nome, codigo, created_at, updated_at FROM secretarias WHERE id = $1`, id)
}

func (r *SecretariaRepo) GetByCodigo(codigo string) (*entity.Secretaria, error) {
	return r.get(`SELECT id, nome, codigo, created_at, updated_at FROM secretarias WHERE codigo = $1`, codigo)
}

func (r *SecretariaRepo) get(query string, arg any) (*entity.Secretaria, error) {
	var s entity.Secretaria
	err := r.q.QueryRow(context.Background(), query, arg).Scan(&s.ID, &s.Nome, &s.Codigo, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get secretaria: %w", err)
	}
	return &s, nil
}

func (r *SecretariaRepo) List() ([]*entity.Secretaria, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nome, codigo, created_at, updated_at FROM secretarias ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("list secretarias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Secretaria
	for rows.Next() {
		var s entity.Secretaria
		if err := rows.Scan(&s.ID, &s.Nome, &s.Codigo, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan secretaria: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *SecretariaRepo) Update(s *entity.Secretaria) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE secretarias SET nome = $2, codigo = $3, updated_at = $4 WHERE id = $1`,
		s.ID, s.Nome, s.Codigo, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update secretaria: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove a secretaria; os recursos caem em cascata (FK ON DELETE CASCADE).
func (r *SecretariaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM secretarias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete secretaria: %w", err)
	}
	return nil
}

// RecursoRepo implementação de RecursoRepository.
type RecursoRepo struct {
	q Querier
}

// NewRecursoRepository constrói o adaptador.
func NewRecursoRepository(q Querier) *RecursoRepo {
	return &RecursoRepo{q: q}
}

func (r *RecursoRepo) Create(rec *entity.Recurso) error {
	query := `
		INSERT INTO recursos (id, secretaria_id, nome, codigo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.SecretariaID, rec.Nome, rec.Codigo, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert recurso: %w", err)
	}
	return nil
}

func (r *RecursoRepo) GetByID(id string) (*entity.Recurso, error) {
	return r.get(`SELECT id, secretaria_id, nome, codigo, created_at, updated_at FROM recursos WHERE id = $1`, id)
}

func (r *RecursoRepo) GetByCodigo(codigo string) (*entity.Recurso, error) {
	return r.get(`SELECT id, secretaria_id, nome, codigo, created_at, updated_at FROM recursos WHERE codigo = $1`, codigo)
}

func (r *RecursoRepo) get(query string, arg any) (*entity.Recurso, error) {
	var rec entity.Recurso
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&rec.ID, &rec.SecretariaID, &rec.Nome, &rec.Codigo, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recurso: %w", err)
	}
	return &rec, nil
}

func (r *RecursoRepo) ListBySecretaria(secretariaID string) ([]*entity.Recurso, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, secretaria_id, nome, codigo, created_at, updated_at
		 FROM recursos WHERE secretaria_id = $1 ORDER BY nome`, secretariaID)
	if err != nil {
		return nil, fmt.Errorf("list recursos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Recurso
	for rows.Next() {
		var rec entity.Recurso
		if err := rows.Scan(&rec.ID, &rec.SecretariaID, &rec.Nome, &rec.Codigo, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan recurso: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

func (r *RecursoRepo) Update(rec *entity.Recurso) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE recursos SET nome = $2, codigo = $3, updated_at = $4 WHERE id = $1`,
		rec.ID, rec.Nome, rec.Codigo, rec.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update recurso: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *RecursoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM recursos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete recurso: %w", err)
	}
	return nil
}
