package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/koguilabs/calc-portal/internal/models"
	"github.com/koguilabs/calc-portal/internal/services"
)

func TestOperationDetailHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockOperationGetter(ctrl)

	router := chi.NewRouter()
	router.Get("/api/calc/operacao/{id}", NewOperationDetailHandler(mockSvc))

	userID := uuid.New()
	operationID := uuid.New()
	op := &models.OperationDB{
		OperationID:  operationID,
		UserID:       userID,
		TipoOperacao: "divisao",
		Parametros:   "[10,4]",
		Resultado:    2.5,
		DataCriacao:  time.Now().UTC(),
	}

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().
			Get(gomock.Any(), userID, operationID).
			Return(op, nil)

		req := authedRequest(http.MethodGet, "/api/calc/operacao/"+operationID.String(), nil, userID)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp models.OperationResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, operationID, resp.ID)
		assert.Equal(t, userID, resp.Usuario)
		assert.Equal(t, "divisao", resp.TipoOperacao)
		assert.Equal(t, []float64{10, 4}, resp.Parametros)
		assert.Equal(t, "10, 4", resp.ParametrosDisplay)
		assert.Equal(t, "÷", resp.SimboloOperacao)
		assert.Equal(t, 2.5, resp.Resultado)
	})

	t.Run("not found", func(t *testing.T) {
		missing := uuid.New()
		mockSvc.EXPECT().
			Get(gomock.Any(), userID, missing).
			Return(nil, services.ErrOperationNotFound)

		req := authedRequest(http.MethodGet, "/api/calc/operacao/"+missing.String(), nil, userID)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp OperationErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Operação não encontrada", resp.Error)
	})

	t.Run("malformed id", func(t *testing.T) {
		req := authedRequest(http.MethodGet, "/api/calc/operacao/not-a-uuid", nil, userID)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("no claims in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/calc/operacao/"+operationID.String(), nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().
			Get(gomock.Any(), userID, operationID).
			Return(nil, errors.New("database error"))

		req := authedRequest(http.MethodGet, "/api/calc/operacao/"+operationID.String(), nil, userID)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestOperationDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockOperationDeleter(ctrl)

	router := chi.NewRouter()
	router.Delete("/api/calc/operacao/{id}/deletar", NewOperationDeleteHandler(mockSvc))

	userID := uuid.New()
	operationID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().
			Delete(gomock.Any(), userID, operationID).
			Return(nil)

		req := authedRequest(http.MethodDelete, "/api/calc/operacao/"+operationID.String()+"/deletar", nil, userID)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp OperationDeleteResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Operação deletada com sucesso", resp.Message)
	})

	t.Run("already deleted", func(t *testing.T) {
		mockSvc.EXPECT().
			Delete(gomock.Any(), userID, operationID).
			Return(services.ErrOperationNotFound)

		req := authedRequest(http.MethodDelete, "/api/calc/operacao/"+operationID.String()+"/deletar", nil, userID)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp OperationErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Operação não encontrada", resp.Error)
	})

	t.Run("malformed id", func(t *testing.T) {
		req := authedRequest(http.MethodDelete, "/api/calc/operacao/not-a-uuid/deletar", nil, userID)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().
			Delete(gomock.Any(), userID, operationID).
			Return(errors.New("database error"))

		req := authedRequest(http.MethodDelete, "/api/calc/operacao/"+operationID.String()+"/deletar", nil, userID)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
