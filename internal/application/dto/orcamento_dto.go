package dto

import "time"

// CreateSecretariaRequest body para POST /api/secretarias. Recursos iniciais
// podem vir junto; sigla e códigos são gerados a partir dos nomes.
type CreateSecretariaRequest struct {
	Nome     string   `json:"nome" validate:"required,min=1,max=255"`
	Recursos []string `json:"recursos,omitempty"`
}

// UpdateSecretariaRequest body para PUT /api/secretarias/:id.
type UpdateSecretariaRequest struct {
	Nome string `json:"nome" validate:"required,min=1,max=255"`
}

// SecretariaResponse secretaria com seus recursos.
type SecretariaResponse struct {
	ID        string            `json:"id"`
	Nome      string            `json:"nome"`
	Codigo    string            `json:"codigo"`
	Recursos  []RecursoResponse `json:"recursos,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// CreateRecursoRequest body para POST /api/secretarias/:id/recursos.
type CreateRecursoRequest struct {
	Nome string `json:"nome" validate:"required,min=1,max=255"`
}

// RecursoResponse recurso orçamentário.
type RecursoResponse struct {
	ID           string    `json:"id"`
	SecretariaID string    `json:"secretaria_id"`
	Nome         string    `json:"nome"`
	Codigo       string    `json:"codigo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
