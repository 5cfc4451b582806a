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
	"github.com/koguilabs/calc-portal/internal/services"
)

// OperationDeleter defines the interface that the operation delete service must implement.
type OperationDeleter interface {
	Delete(ctx context.Context, userID, operationID uuid.UUID) error
}

// OperationDeleteResponse represents a successful delete response
// swagger:model OperationDeleteResponse
type OperationDeleteResponse struct {
	// Success message
	// default: Operação deletada com sucesso
	Message string `json:"message"`
}

// NewOperationDeleteHandler returns an HTTP handler that deletes a single operation.
// @Summary Delete a single operation
// @Description Removes one operation from the authenticated user's history. Deleting the same operation twice yields 404 on the second attempt.
// @Tags calc
// @Produce json
// @Param id path string true "Operation ID"
// @Success 200 {object} handlers.OperationDeleteResponse "Operation deleted"
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {object} handlers.OperationErrorResponse "Operation not found"
// @Security BearerAuth
// @Router /calc/operacao/{id}/deletar [delete]
func NewOperationDeleteHandler(svc OperationDeleter) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), claims.UserID, operationID); err != nil {
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
		json.NewEncoder(w).Encode(OperationDeleteResponse{
			Message: "Operação deletada com sucesso",
		})
	}
}
