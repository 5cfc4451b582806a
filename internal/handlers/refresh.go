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

// Refresher defines the interface that the token refresh service must implement.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
}

// RefreshRequest represents the JSON body for token refresh
// swagger:model RefreshRequest
type RefreshRequest struct {
	// Current refresh token
	// required: true
	Refresh string `json:"refresh"`
}

// RefreshErrorResponse represents an error response for token refresh
// swagger:model RefreshErrorResponse
type RefreshErrorResponse struct {
	// Error message
	// default: Token de refresh inválido ou faltando
	Error string `json:"error"`
}

// NewRefreshHandler returns an HTTP handler for token refresh.
// @Summary Refresh JWT tokens
// @Description Exchanges a valid refresh token for a new token pair. The old refresh token is rotated out and can no longer be used.
// @Tags auth
// @Accept json
// @Produce json
// @Param refreshRequest body handlers.RefreshRequest true "Refresh request"
// @Success 200 {object} models.TokenPair "New token pair"
// @Failure 400 {object} handlers.RefreshErrorResponse "Invalid or missing refresh token"
// @Router /auth/token/refresh [post]
func NewRefreshHandler(svc Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RefreshRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RefreshErrorResponse{
				Error: "Corpo da requisição inválido",
			})
			return
		}

		tokens, err := svc.Refresh(r.Context(), req.Refresh)
		if err != nil {
			if errors.Is(err, services.ErrInvalidRefreshToken) || errors.Is(err, services.ErrUserNotFound) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RefreshErrorResponse{
					Error: "Token de refresh inválido ou faltando",
				})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RefreshErrorResponse{
				Error: "Erro inesperado",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(tokens)
	}
}
