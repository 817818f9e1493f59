package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/forgeit/astrolabe-qualif/internal/application/dto"
	"github.com/forgeit/astrolabe-qualif/internal/domain"
	"github.com/forgeit/astrolabe-qualif/internal/domain/repository"
	"github.com/forgeit/astrolabe-qualif/pkg/jwt"
	"github.com/forgeit/astrolabe-qualif/pkg/secrets"
)

// TokenConfig paramètres d'émission des tokens.
// Le secret de signature est résolu paresseusement et mis en cache pour la durée
// de vie du process (pas de rotation).
type TokenConfig struct {
	Secret *secrets.Cached
	TTL    time.Duration
	Issuer string
}

// AuthUseCase cas d'usage d'authentification: login uniquement, les comptes sont
// provisionnés hors-bande.
type AuthUseCase struct {
	creds  repository.CredentialRepository
	tokens TokenConfig
}

// NewAuthUseCase construit le cas d'usage d'auth.
func NewAuthUseCase(creds repository.CredentialRepository, tokens TokenConfig) *AuthUseCase {
	return &AuthUseCase{creds: creds, tokens: tokens}
}

// Login vérifie email/password, génère un JWT 24h et renvoie token + identité.
// Utilisateur inconnu et mauvais mot de passe renvoient la même erreur générique.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	cred, err := uc.creds.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	secret, err := uc.tokens.Secret.Get()
	if err != nil {
		return nil, err
	}
	role := cred.Role
	if role == "" {
		role = "user"
	}
	token, err := jwt.Generate(secret, cred.Email, role, uc.tokens.Issuer, uc.tokens.TTL)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.UserResponse{Email: cred.Email, Role: role},
	}, nil
}
