package entity

import "time"

// Secretaria é a unidade administrativa responsável pela despesa.
// O código (sigla) é gerado a partir do nome e é único.
type Secretaria struct {
	ID        string
	Nome      string
	Codigo    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Recurso é a fonte orçamentária da despesa. Pertence a exatamente uma
// secretaria e é removido em cascata quando a secretaria é excluída.
type Recurso struct {
	ID           string
	SecretariaID string
	Nome         string
	Codigo       string // prefixado pela sigla da secretaria, ex.: EDU-FUNDEB
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
