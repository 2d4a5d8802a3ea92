package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/docfinance/docfinance-api/internal/application/dto"
	"github.com/docfinance/docfinance-api/internal/domain"
	"github.com/docfinance/docfinance-api/internal/domain/entity"
	"github.com/docfinance/docfinance-api/internal/domain/repository"
	"github.com/docfinance/docfinance-api/pkg/fiscal"
	"github.com/docfinance/docfinance-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: registro e login.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Register cria um usuário com status pendente. A senha é hasheada com bcrypt
// e o CPF validado e normalizado para somente dígitos. Devolve ErrDuplicate se
// o e-mail já estiver cadastrado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	existente, _ := uc.usuarioRepo.FindByEmail(in.Email)
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	cpf := string(fiscal.ExtractDigits(in.CPF))
	if ok, msg := fiscal.ValidateCPF(cpf); !ok {
		return nil, domain.NewValidationError("cpf", domain.CodigoCpfCnpjInvalido, msg)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	u := &entity.Usuario{
		ID:        uuid.New().String(),
		Email:     in.Email,
		SenhaHash: string(hash),
		Nome:      in.Nome,
		Matricula: in.Matricula,
		CPF:       cpf,
		Telefone:  in.Telefone,
		Role:      entity.RoleConsulta,
		Status:    entity.ContaPendente,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.usuarioRepo.Create(u); err != nil {
		return nil, err
	}
	return ToUsuarioResponse(u), nil
}

// Login verifica e-mail/senha e exige conta aprovada antes de emitir o JWT.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.usuarioRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if u.Status != entity.ContaAprovada {
		return nil, domain.ErrContaNaoAprovada
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Usuario: *ToUsuarioResponse(u),
	}, nil
}

// ToUsuarioResponse converte a entidade para o DTO de resposta, sem o hash.
func ToUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:        u.ID,
		Email:     u.Email,
		Nome:      u.Nome,
		Matricula: u.Matricula,
		CPF:       u.CPF,
		Telefone:  u.Telefone,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}
