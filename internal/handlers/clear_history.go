package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/koguilabs/calc-portal/internal/logger"
	"github.com/koguilabs/calc-portal/internal/middlewares"
)

// HistoryCleaner defines the interface that the clear history service must implement.
type HistoryCleaner interface {
	ClearAll(ctx context.Context, userID uuid.UUID) (int64, error)
}

// ClearHistoryResponse represents a successful clear history response
// swagger:model ClearHistoryResponse
type ClearHistoryResponse struct {
	// Success message
	// default: Todas as operações foram deletadas com sucesso
	Message string `json:"message"`

	// Number of deleted operations
	Count int64 `json:"count"`
}

// ClearHistoryErrorResponse represents an error response for clear history
// swagger:model ClearHistoryErrorResponse
type ClearHistoryErrorResponse struct {
	// Error message
	// default: Erro inesperado
	Error string `json:"error"`
}

// NewClearHistoryHandler returns an HTTP handler that removes the whole history.
// @Summary Clear operation history
// @Description Deletes every operation of the authenticated user and reports how many were removed. An empty history clears successfully with count zero.
// @Tags calc
// @Produce json
// @Success 200 {object} handlers.ClearHistoryResponse "History cleared"
// @Failure 401 {string} string "Unauthorized"
// @Security BearerAuth
// @Router /calc/limpar_historico [delete]
func NewClearHistoryHandler(svc HistoryCleaner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		count, err := svc.ClearAll(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ClearHistoryErrorResponse{
				Error: "Erro inesperado",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ClearHistoryResponse{
			Message: "Todas as operações foram deletadas com sucesso",
			Count:   count,
		})
	}
}
