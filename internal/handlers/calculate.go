package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/koguilabs/calc-portal/internal/logger"
	"github.com/koguilabs/calc-portal/internal/middlewares"
	"github.com/koguilabs/calc-portal/internal/models"
	"github.com/koguilabs/calc-portal/internal/services"
)

// Calculator defines the interface that the calculation service must implement.
type Calculator interface {
	Calculate(ctx context.Context, userID uuid.UUID, tipoOperacao string, numeros []float64) (*models.OperationDB, error)
}

// CalculateRequest represents the JSON body for a calculation
// swagger:model CalculateRequest
type CalculateRequest struct {
	// Operands, at least two
	// required: true
	// default: [10.5, 20.3, 5.2]
	Numeros []float64 `json:"numeros"`

	// Legacy alias for numeros, used when numeros is absent
	Parametros []float64 `json:"parametros"`

	// Operation kind: soma, subtracao, multiplicacao or divisao
	// required: true
	// default: soma
	TipoOperacao string `json:"tipo_operacao"`
}

// CalculateResponse represents a successful calculation response
// swagger:model CalculateResponse
type CalculateResponse struct {
	// Success message
	// default: Cálculo realizado com sucesso
	Message string `json:"message"`

	// Persisted operation
	Operacao models.OperationResponse `json:"operacao"`
}

// CalculateErrorResponse represents an error response for a calculation
// swagger:model CalculateErrorResponse
type CalculateErrorResponse struct {
	// Error message
	// default: Erro de validação
	Error string `json:"error"`

	// Field-level validation messages
	Details map[string][]string `json:"details,omitempty"`
}

// NewCalculateHandler returns an HTTP handler that performs and persists a calculation.
// @Summary Perform a calculation
// @Description Computes the requested arithmetic operation over the operand list and records it in the authenticated user's history. Nothing is persisted when validation fails.
// @Tags calc
// @Accept json
// @Produce json
// @Param calculateRequest body handlers.CalculateRequest true "Calculation request"
// @Success 201 {object} handlers.CalculateResponse "Operation computed and recorded"
// @Failure 400 {object} handlers.CalculateErrorResponse "Validation failure"
// @Failure 401 {string} string "Unauthorized"
// @Security BearerAuth
// @Router /calc/calcular [post]
func NewCalculateHandler(svc Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		var req CalculateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CalculateErrorResponse{
				Error: "Corpo da requisição inválido",
			})
			return
		}

		numeros := req.Numeros
		if len(numeros) == 0 {
			numeros = req.Parametros
		}

		op, err := svc.Calculate(r.Context(), claims.UserID, req.TipoOperacao, numeros)
		if err != nil {
			var fieldErrs services.FieldErrors
			if errors.As(err, &fieldErrs) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CalculateErrorResponse{
					Error:   "Erro de validação",
					Details: fieldErrs,
				})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CalculateErrorResponse{
				Error: "Erro inesperado",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CalculateResponse{
			Message:  "Cálculo realizado com sucesso",
			Operacao: models.NewOperationResponse(op),
		})
	}
}
