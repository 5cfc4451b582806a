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

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, nome, email, senha, confirmarSenha string) (*models.UserDB, *models.TokenPair, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: joao123
	Username string `json:"username"`

	// Display name
	// required: true
	// default: João Silva
	Nome string `json:"nome"`

	// Email
	// required: true
	// default: joao@email.com
	Email string `json:"email"`

	// Password (minimum 8 characters)
	// required: true
	// default: senha12345
	Senha string `json:"senha"`

	// Password confirmation
	// required: true
	// default: senha12345
	ConfirmarSenha string `json:"confirmar_senha"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: Usuário criado com sucesso
	Message string `json:"message"`

	// Created user
	User models.UserResponse `json:"user"`

	// JWT token pair
	Tokens models.TokenPair `json:"tokens"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	// default: Erro ao criar usuário
	Error string `json:"error"`

	// Field-level validation messages
	Details map[string][]string `json:"details,omitempty"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with unique username and email. The password is stored as a bcrypt hash. Returns the created user and a JWT token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.RegisterErrorResponse "Validation failure, field by field"
// @Router /auth/registro [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Error: "Corpo da requisição inválido",
			})
			return
		}

		user, tokens, err := svc.Register(r.Context(), req.Username, req.Nome, req.Email, req.Senha, req.ConfirmarSenha)
		if err != nil {
			var fieldErrs services.FieldErrors
			if errors.As(err, &fieldErrs) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error:   "Erro ao criar usuário",
					Details: fieldErrs,
				})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Error: "Erro inesperado",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{
			Message: "Usuário criado com sucesso",
			User:    models.NewUserResponse(user),
			Tokens:  *tokens,
		})
	}
}
