package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/koguilabs/calc-portal/internal/models"
	"github.com/koguilabs/calc-portal/internal/services"
)

func TestRefreshHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRefresher(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:      "success",
			inputBody: RefreshRequest{Refresh: "OLD_REFRESH"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Refresh(gomock.Any(), "OLD_REFRESH").
					Return(&models.TokenPair{Access: "NEW_ACCESS", Refresh: "NEW_REFRESH"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &models.TokenPair{Access: "NEW_ACCESS", Refresh: "NEW_REFRESH"},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &RefreshErrorResponse{
				Error: "Corpo da requisição inválido",
			},
		},
		{
			name:      "invalid refresh token",
			inputBody: RefreshRequest{Refresh: "garbage"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Refresh(gomock.Any(), "garbage").
					Return(nil, services.ErrInvalidRefreshToken)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &RefreshErrorResponse{
				Error: "Token de refresh inválido ou faltando",
			},
		},
		{
			name:      "user no longer exists",
			inputBody: RefreshRequest{Refresh: "ORPHAN"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Refresh(gomock.Any(), "ORPHAN").
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &RefreshErrorResponse{
				Error: "Token de refresh inválido ou faltando",
			},
		},
		{
			name:      "internal error",
			inputBody: RefreshRequest{Refresh: "OLD_REFRESH"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Refresh(gomock.Any(), "OLD_REFRESH").
					Return(nil, errors.New("redis down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &RefreshErrorResponse{
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

			req := httptest.NewRequest(http.MethodPost, "/api/auth/token/refresh", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewRefreshHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &models.TokenPair{}
			default:
				respBody = &RefreshErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
