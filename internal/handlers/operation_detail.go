package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/koguilabs/calc-portal/internal/logger"
	"github.com/koguilabs/calc-portal/internal/middlewares"
	"github.com/koguilabs/calc-portal/internal/models"
	"github.com/koguilabs/calc-portal/internal/services"
)

// OperationGetter defines the interface that the operation detail service must implement.
type OperationGetter interface {
	Get(ctx context.Context, userID, operationID uuid.UUID) (*models.OperationDB, error)
}

// OperationErrorResponse represents an error response for operation endpoints
// swagger:model OperationErrorResponse
type OperationErrorResponse struct {
	// Error message
	// default: Operação não encontrada
	Error string `json:"error"`
}

// NewOperationDetailHandler returns an HTTP handler for a single operation.
// @Summary Get a single operation
// @Description Returns one operation from the authenticated user's history. Another user's operation is indistinguishable from a missing one.
// @Tags calc
// @Produce json
// @Param id path string true "Operation ID"
// @Success 200 {object} models.OperationResponse "Operation"
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {object} handlers.OperationErrorResponse "Operation not found"
// @Security BearerAuth
// @Router /calc/operacao/{id} [get]
func NewOperationDetailHandler(svc OperationGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		operationID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(OperationErrorResponse{
				Error: "Operação não encontrada",
			})
			return
		}

		op, err := svc.Get(r.Context(), claims.UserID, operationID)
		if err != nil {
			if errors.Is(err, services.ErrOperationNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(OperationErrorResponse{
					Error: "Operação não encontrada",
				})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(OperationErrorResponse{
				Error: "Erro inesperado",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.NewOperationResponse(op))
	}
}
