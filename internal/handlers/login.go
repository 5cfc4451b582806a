package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/koguilabs/calc-portal/internal/logger"
	"github.com/koguilabs/calc-portal/internal/models"
	"github.com/koguilabs/calc-portal/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, senha string) (*models.UserDB, *models.TokenPair, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: joao@email.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: senha12345
	Senha string `json:"senha"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Success message
	// default: Login realizado com sucesso
	Message string `json:"message"`

	// Authenticated user
	User models.UserResponse `json:"user"`

	// JWT token pair
	Tokens models.TokenPair `json:"tokens"`
}

// LoginErrorResponse represents an error response for login
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	// Error message
	// default: Credenciais inválidas
	Error string `json:"error"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate a user by email and password and return a JWT token pair. Wrong email and wrong password are reported identically.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "User and token pair returned"
// @Failure 400 {object} handlers.LoginErrorResponse "Invalid credentials or inactive account"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{
				Error: "Corpo da requisição inválido",
			})
			return
		}

		user, tokens, err := svc.Login(r.Context(), req.Email, req.Senha)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Credenciais inválidas",
				})
			case errors.Is(err, services.ErrInactiveAccount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Conta desativada",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Erro inesperado",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{
			Message: "Login realizado com sucesso",
			User:    models.NewUserResponse(user),
			Tokens:  *tokens,
		})
	}
}
