package services

import (
	"context"
	"errors"
	"net/mail"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/koguilabs/calc-portal/internal/jwt"
	"github.com/koguilabs/calc-portal/internal/logger"
	"github.com/koguilabs/calc-portal/internal/models"
)

// Error variables
var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInactiveAccount     = errors.New("account is inactive")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrUserNotFound        = errors.New("user not found")
)

const minPasswordLength = 8

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, nome, email, passwordHash string) (*models.UserDB, error)
}

// TokenGenerator defines an interface for issuing and parsing JWT tokens.
type TokenGenerator interface {
	GenerateAccessToken(ctx context.Context, userID uuid.UUID, username string) (string, error)
	GenerateRefreshToken(ctx context.Context, userID uuid.UUID, username string) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RefreshTokenStore persists the active refresh token per user.
type RefreshTokenStore interface {
	Set(ctx context.Context, userID uuid.UUID, token string) error
	Get(ctx context.Context, userID uuid.UUID) (string, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

// AuthService handles registration, login, logout and token refresh.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenGenerator
	tokens RefreshTokenStore
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenGenerator, tokens RefreshTokenStore) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
		tokens: tokens,
	}
}

// Register creates a new user and returns it together with a token pair.
// Validation failures are reported field by field as FieldErrors.
func (svc *AuthService) Register(ctx context.Context, username, nome, email, senha, confirmarSenha string) (*models.UserDB, *models.TokenPair, error) {
	fieldErrs := FieldErrors{}
	if username == "" {
		fieldErrs.Add("username", "Este campo é obrigatório.")
	}
	if nome == "" {
		fieldErrs.Add("nome", "Este campo é obrigatório.")
	}
	if email == "" {
		fieldErrs.Add("email", "Este campo é obrigatório.")
	} else if _, err := mail.ParseAddress(email); err != nil {
		fieldErrs.Add("email", "Informe um endereço de e-mail válido.")
	}
	if len(senha) < minPasswordLength {
		fieldErrs.Add("senha", "A senha deve ter no mínimo 8 caracteres.")
	}
	if senha != confirmarSenha {
		fieldErrs.Add("confirmar_senha", "As senhas não coincidem.")
	}
	if len(fieldErrs) > 0 {
		logger.Log.Warnw("registration validation failed", "errors", fieldErrs.Error())
		return nil, nil, fieldErrs
	}

	existing, err := svc.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, nil, err
	}
	if existing != nil {
		if existing.Email == email {
			fieldErrs.Add("email", "Usuário com este e-mail já existe.")
		}
		if existing.Username == username {
			fieldErrs.Add("username", "Usuário com este username já existe.")
		}
		logger.Log.Warnw("user already exists", "username", username, "email", email)
		return nil, nil, fieldErrs
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, nil, err
	}

	user, err := svc.writer.Save(ctx, username, nome, email, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, nil, err
	}

	pair, err := svc.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	return user, pair, nil
}

// Login authenticates a user by email and password and returns the user
// together with a token pair. Unknown email and wrong password are reported
// identically.
func (svc *AuthService) Login(ctx context.Context, email, senha string) (*models.UserDB, *models.TokenPair, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, nil, err
	}
	if user == nil {
		logger.Log.Warnw("login for unknown email", "email", email)
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(senha)); err != nil {
		logger.Log.Warnw("invalid credentials", "email", email)
		return nil, nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		logger.Log.Warnw("login for inactive account", "email", email)
		return nil, nil, ErrInactiveAccount
	}

	pair, err := svc.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	return user, pair, nil
}

// Logout invalidates the presented refresh token. The token must be a valid
// refresh token and must match the stored one for its user.
func (svc *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := svc.validateRefreshToken(ctx, refreshToken)
	if err != nil {
		return err
	}

	if err := svc.tokens.Delete(ctx, claims.UserID); err != nil {
		logger.Log.Errorw("failed to delete refresh token", "err", err)
		return err
	}

	return nil
}

// Refresh rotates the token pair when the presented refresh token is valid
// and matches the stored one.
func (svc *AuthService) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	claims, err := svc.validateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := svc.reader.GetByID(ctx, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidRefreshToken
	}

	return svc.issueTokens(ctx, user)
}

// Profile returns the user record for the authenticated user ID.
func (svc *AuthService) Profile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// validateRefreshToken parses the token, checks its type and compares it
// against the stored token for the user.
func (svc *AuthService) validateRefreshToken(ctx context.Context, refreshToken string) (*jwt.Claims, error) {
	if refreshToken == "" {
		return nil, ErrInvalidRefreshToken
	}

	claims, err := svc.jwt.GetClaims(ctx, refreshToken)
	if err != nil {
		logger.Log.Warnw("failed to parse refresh token", "err", err)
		return nil, ErrInvalidRefreshToken
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		logger.Log.Warnw("token is not a refresh token", "type", claims.TokenType)
		return nil, ErrInvalidRefreshToken
	}

	stored, err := svc.tokens.Get(ctx, claims.UserID)
	if err != nil || stored != refreshToken {
		logger.Log.Warnw("refresh token does not match stored token", "user_id", claims.UserID, "err", err)
		return nil, ErrInvalidRefreshToken
	}

	return claims, nil
}

// issueTokens generates an access/refresh pair and stores the refresh token.
func (svc *AuthService) issueTokens(ctx context.Context, user *models.UserDB) (*models.TokenPair, error) {
	access, err := svc.jwt.GenerateAccessToken(ctx, user.UserID, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return nil, err
	}

	refresh, err := svc.jwt.GenerateRefreshToken(ctx, user.UserID, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate refresh token", "err", err)
		return nil, err
	}

	if err := svc.tokens.Set(ctx, user.UserID, refresh); err != nil {
		logger.Log.Errorw("failed to store refresh token", "err", err)
		return nil, err
	}

	return &models.TokenPair{Access: access, Refresh: refresh}, nil
}
