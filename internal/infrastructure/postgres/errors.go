package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// unique_violation (classe 23, integridade)
const codigoUniqueViolation = "23505"

// isUniqueViolation identifica colisão de chave única (CNPJ/CPF de
// fornecedor, código de secretaria ou recurso, e-mail de usuário). Os
// repositórios traduzem esse caso para domain.ErrDuplicate.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codigoUniqueViolation
}
