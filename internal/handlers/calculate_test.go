package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/koguilabs/calc-portal/internal/models"
	"github.com/koguilabs/calc-portal/internal/services"
)

func TestCalculateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCalculator(ctrl)

	userID := uuid.New()
	op := &models.OperationDB{
		OperationID:  uuid.New(),
		UserID:       userID,
		TipoOperacao: "soma",
		Parametros:   "[10.5,20.3,5.2]",
		Resultado:    36,
		DataCriacao:  time.Now().UTC(),
	}

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "success with numeros",
			inputBody: map[string]interface{}{
				"tipo_operacao": "soma",
				"numeros":       []float64{10.5, 20.3, 5.2},
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Calculate(gomock.Any(), userID, "soma", []float64{10.5, 20.3, 5.2}).
					Return(op, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "parametros alias accepted",
			inputBody: map[string]interface{}{
				"tipo_operacao": "soma",
				"parametros":    []float64{10.5, 20.3, 5.2},
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Calculate(gomock.Any(), userID, "soma", []float64{10.5, 20.3, 5.2}).
					Return(op, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "numeros wins over parametros",
			inputBody: map[string]interface{}{
				"tipo_operacao": "soma",
				"numeros":       []float64{1, 2},
				"parametros":    []float64{9, 9, 9},
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Calculate(gomock.Any(), userID, "soma", []float64{1, 2}).
					Return(op, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "validation failure",
			inputBody: map[string]interface{}{
				"tipo_operacao": "divisao",
				"numeros":       []float64{10, 0},
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Calculate(gomock.Any(), userID, "divisao", []float64{10, 0}).
					Return(nil, services.FieldErrors{
						"numeros": {"Divisão por zero não é permitida."},
					})
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "internal error",
			inputBody: map[string]interface{}{
				"tipo_operacao": "soma",
				"numeros":       []float64{1, 2},
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Calculate(gomock.Any(), userID, "soma", []float64{1, 2}).
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := authedRequest(http.MethodPost, "/api/calc/calcular", bytes.NewReader(bodyBytes), userID)
			w := httptest.NewRecorder()

			NewCalculateHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusCreated {
				var resp CalculateResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "Cálculo realizado com sucesso", resp.Message)
				assert.Equal(t, op.OperationID, resp.Operacao.ID)
				assert.Equal(t, []float64{10.5, 20.3, 5.2}, resp.Operacao.Parametros)
				assert.Equal(t, "10.5, 20.3, 5.2", resp.Operacao.ParametrosDisplay)
				assert.Equal(t, "+", resp.Operacao.SimboloOperacao)
			}
		})
	}

	t.Run("no claims in context", func(t *testing.T) {
		body, _ := json.Marshal(map[string]interface{}{
			"tipo_operacao": "soma",
			"numeros":       []float64{1, 2},
		})
		req := httptest.NewRequest(http.MethodPost, "/api/calc/calcular", bytes.NewReader(body))
		w := httptest.NewRecorder()

		NewCalculateHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("validation details in body", func(t *testing.T) {
		mockSvc.EXPECT().
			Calculate(gomock.Any(), userID, "potencia", []float64{2, 3}).
			Return(nil, services.FieldErrors{
				"tipo_operacao": {"Tipo de operação inválido."},
			})

		body, _ := json.Marshal(map[string]interface{}{
			"tipo_operacao": "potencia",
			"numeros":       []float64{2, 3},
		})
		req := authedRequest(http.MethodPost, "/api/calc/calcular", bytes.NewReader(body), userID)
		w := httptest.NewRecorder()

		NewCalculateHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp CalculateErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Erro de validação", resp.Error)
		assert.Equal(t, []string{"Tipo de operação inválido."}, resp.Details["tipo_operacao"])
	})
}
