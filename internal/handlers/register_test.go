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

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegisterer(ctrl)

	userID := uuid.New()
	user := &models.UserDB{
		UserID:     userID,
		Username:   "joao123",
		Nome:       "João Silva",
		Email:      "joao@email.com",
		IsActive:   true,
		DtInclusao: time.Now(),
	}
	tokens := &models.TokenPair{Access: "ACCESS", Refresh: "REFRESH"}

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			inputBody: RegisterRequest{
				Username:       "joao123",
				Nome:           "João Silva",
				Email:          "joao@email.com",
				Senha:          "senha12345",
				ConfirmarSenha: "senha12345",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "joao123", "João Silva", "joao@email.com", "senha12345", "senha12345").
					Return(user, tokens, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: &RegisterResponse{
				Message: "Usuário criado com sucesso",
				User:    models.NewUserResponse(user),
				Tokens:  *tokens,
			},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &RegisterErrorResponse{
				Error: "Corpo da requisição inválido",
			},
		},
		{
			name: "field validation failure",
			inputBody: RegisterRequest{
				Username:       "joao123",
				Nome:           "João Silva",
				Email:          "joao@email.com",
				Senha:          "curta",
				ConfirmarSenha: "curta",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "joao123", "João Silva", "joao@email.com", "curta", "curta").
					Return(nil, nil, services.FieldErrors{
						"senha": {"A senha deve ter no mínimo 8 caracteres."},
					})
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &RegisterErrorResponse{
				Error: "Erro ao criar usuário",
				Details: map[string][]string{
					"senha": {"A senha deve ter no mínimo 8 caracteres."},
				},
			},
		},
		{
			name: "internal error",
			inputBody: RegisterRequest{
				Username:       "joao123",
				Nome:           "João Silva",
				Email:          "joao@email.com",
				Senha:          "senha12345",
				ConfirmarSenha: "senha12345",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "joao123", "João Silva", "joao@email.com", "senha12345", "senha12345").
					Return(nil, nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &RegisterErrorResponse{
				Error: "Erro inesperado",
			},
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

			req := httptest.NewRequest(http.MethodPost, "/api/auth/registro", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewRegisterHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusCreated:
				respBody = &RegisterResponse{}
			default:
				respBody = &RegisterErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			if resp, ok := respBody.(*RegisterResponse); ok {
				expected := tt.expectedBody.(*RegisterResponse)
				assert.Equal(t, expected.Message, resp.Message)
				assert.Equal(t, expected.User, resp.User)
				assert.Equal(t, expected.Tokens, resp.Tokens)
			} else {
				assert.Equal(t, tt.expectedBody, respBody)
			}
		})
	}
}
