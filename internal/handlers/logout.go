package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/koguilabs/calc-portal/internal/logger"
	"github.com/koguilabs/calc-portal/internal/services"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, refreshToken string) error
}

// LogoutRequest represents the JSON body for logout
// swagger:model LogoutRequest
type LogoutRequest struct {
	// Refresh token to invalidate
	// required: true
	Refresh string `json:"refresh"`
}

// LogoutResponse represents a successful logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Success message
	// default: Logout realizado com sucesso
	Message string `json:"message"`
}

// LogoutErrorResponse represents an error response for logout
// swagger:model LogoutErrorResponse
type LogoutErrorResponse struct {
	// Error message
	// default: Token de refresh inválido ou faltando
	Error string `json:"error"`
}

// NewLogoutHandler returns an HTTP handler for logout.
// @Summary User logout
// @Description Invalidates the presented refresh token. The access token stays valid until its natural expiry.
// @Tags auth
// @Accept json
// @Produce json
// @Param logoutRequest body handlers.LogoutRequest true "Logout request"
// @Success 200 {object} handlers.LogoutResponse "Refresh token invalidated"
// @Failure 400 {object} handlers.LogoutErrorResponse "Invalid or missing refresh token"
// @Security BearerAuth
// @Router /auth/logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LogoutRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LogoutErrorResponse{
				Error: "Corpo da requisição inválido",
			})
			return
		}

		if err := svc.Logout(r.Context(), req.Refresh); err != nil {
			if errors.Is(err, services.ErrInvalidRefreshToken) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(LogoutErrorResponse{
					Error: "Token de refresh inválido ou faltando",
				})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LogoutErrorResponse{
				Error: "Erro inesperado",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogoutResponse{
			Message: "Logout realizado com sucesso",
		})
	}
}
