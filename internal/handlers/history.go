package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/koguilabs/calc-portal/internal/logger"
	"github.com/koguilabs/calc-portal/internal/middlewares"
	"github.com/koguilabs/calc-portal/internal/models"
	"github.com/koguilabs/calc-portal/internal/services"
)

// HistoryLister defines the interface that the history service must implement.
type HistoryLister interface {
	List(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]models.OperationDB, int64, error)
}

// HistoryResponse represents a page of the operation history
// swagger:model HistoryResponse
type HistoryResponse struct {
	// Total number of operations for the user
	Count int64 `json:"count"`

	// Next page number, null on the last page
	Next *int `json:"next"`

	// Previous page number, null on the first page
	Previous *int `json:"previous"`

	// Operations on this page, newest first
	Results []models.OperationResponse `json:"results"`
}

// HistoryErrorResponse represents an error response for the history endpoint
// swagger:model HistoryErrorResponse
type HistoryErrorResponse struct {
	// Error message
	// default: Erro inesperado
	Error string `json:"error"`
}

// NewHistoryHandler returns an HTTP handler for the paginated operation history.
// @Summary List operation history
// @Description Returns the authenticated user's operations, newest first, paginated by page and page_size query parameters.
// @Tags calc
// @Produce json
// @Param page query int false "Page number, starting at 1" default(1)
// @Param page_size query int false "Page size, capped at 100" default(10)
// @Success 200 {object} handlers.HistoryResponse "Page of operations"
// @Failure 401 {string} string "Unauthorized"
// @Security BearerAuth
// @Router /calc/historico [get]
func NewHistoryHandler(svc HistoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		page := queryInt(r, "page", 1)
		if page < 1 {
			page = 1
		}
		pageSize := queryInt(r, "page_size", services.DefaultPageSize)
		if pageSize < 1 {
			pageSize = services.DefaultPageSize
		}
		if pageSize > services.MaxPageSize {
			pageSize = services.MaxPageSize
		}

		ops, total, err := svc.List(r.Context(), claims.UserID, page, pageSize)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(HistoryErrorResponse{
				Error: "Erro inesperado",
			})
			return
		}

		results := make([]models.OperationResponse, 0, len(ops))
		for i := range ops {
			results = append(results, models.NewOperationResponse(&ops[i]))
		}

		resp := HistoryResponse{
			Count:   total,
			Results: results,
		}
		if int64(page)*int64(pageSize) < total {
			next := page + 1
			resp.Next = &next
		}
		if page > 1 {
			previous := page - 1
			resp.Previous = &previous
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
