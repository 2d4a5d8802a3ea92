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

var _ repository.FornecedorRepository = (*FornecedorRepo)(nil)

const fornecedorColunas = `
	id, tipo, nome, cnpj_cpf, email, telefone, endereco,
	banco, tipo_conta, agencia, conta, created_at, updated_at`

// FornecedorRepo implementação de FornecedorRepository (usável com pool ou tx).
type FornecedorRepo struct {
	q Querier
}

// NewFornecedorRepository constrói o adaptador.
func NewFornecedorRepository(q Querier) *FornecedorRepo {
	return &FornecedorRepo{q: q}
}

// Create persiste um fornecedor novo. CPF/CNPJ repetido vira ErrDuplicate.
func (r *FornecedorRepo) Create(f *entity.Fornecedor) error {
	query := `
		INSERT INTO fornecedores (` + fornecedorColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.Tipo, f.Nome, f.CnpjCpf, f.Email, f.Telefone, f.Endereco,
		f.Banco, f.TipoConta, f.Agencia, f.Conta, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert fornecedor: %w", err)
	}
	return nil
}

// GetByID devolve o fornecedor ou nil quando não existe.
func (r *FornecedorRepo) GetByID(id string) (*entity.Fornecedor, error) {
	query := `SELECT ` + fornecedorColunas + ` FROM fornecedores WHERE id = $1`
	return r.get(query, id)
}

// GetByCnpjCpf busca pelo identificador normalizado (somente dígitos).
func (r *FornecedorRepo) GetByCnpjCpf(cnpjCpf string) (*entity.Fornecedor, error) {
	query := `SELECT ` + fornecedorColunas + ` FROM fornecedores WHERE cnpj_cpf = $1`
	return r.get(query, cnpjCpf)
}

func (r *FornecedorRepo) get(query string, arg any) (*entity.Fornecedor, error) {
	var f entity.Fornecedor
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&f.ID, &f.Tipo, &f.Nome, &f.CnpjCpf, &f.Email, &f.Telefone, &f.Endereco,
		&f.Banco, &f.TipoConta, &f.Agencia, &f.Conta, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fornecedor: %w", err)
	}
	return &f, nil
}

// List devolve fornecedores ordenados por nome; busca filtra por nome ou
// CPF/CNPJ.
func (r *FornecedorRepo) List(busca string, limit, offset int) ([]*entity.Fornecedor, error) {
	query := `SELECT ` + fornecedorColunas + ` FROM fornecedores`
	args := []any{}
	if busca != "" {
		query += ` WHERE nome ILIKE $1 OR cnpj_cpf LIKE $1`
		args = append(args, "%"+busca+"%")
		query += fmt.Sprintf(` ORDER BY nome LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	} else {
		query += ` ORDER BY nome LIMIT $1 OFFSET $2`
	}
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list fornecedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Fornecedor
	for rows.Next() {
		var f entity.Fornecedor
		if err := rows.Scan(
			&f.ID, &f.Tipo, &f.Nome, &f.CnpjCpf, &f.Email, &f.Telefone, &f.Endereco,
			&f.Banco, &f.TipoConta, &f.Agencia, &f.Conta, &f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan fornecedor: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Update atualiza o cadastro.
func (r *FornecedorRepo) Update(f *entity.Fornecedor) error {
	query := `
		UPDATE fornecedores SET
			tipo = $2, nome = $3, cnpj_cpf = $4, email = $5, telefone = $6, endereco = $7,
			banco = $8, tipo_conta = $9, agencia = $10, conta = $11, updated_at = $12
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		f.ID, f.Tipo, f.Nome, f.CnpjCpf, f.Email, f.Telefone, f.Endereco,
		f.Banco, f.TipoConta, f.Agencia, f.Conta, f.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update fornecedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove o fornecedor; os documentos vinculados caem em cascata.
func (r *FornecedorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM fornecedores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete fornecedor: %w", err)
	}
	return nil
}
