package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/domain"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/dto"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/service/authservice"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"login":"trader1","password":"s3cr3tpass"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "trader1", "s3cr3tpass").Return(&domain.User{
					ID:           1,
					Login:        "trader1",
					PasswordHash: "hashedpassword",
				}, nil)
				service.EXPECT().GenerateToken(1).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Login already taken",
			body: `{"login":"trader1","password":"s3cr3tpass"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "trader1", "s3cr3tpass").Return(nil, authservice.ErrLoginTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: authservice.ErrLoginTaken.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:         "Password too short",
			body:         `{"login":"trader1","password":"short"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Error generating token",
			body: `{"login":"trader1","password":"s3cr3tpass"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "trader1", "s3cr3tpass").Return(&domain.User{
					ID:           1,
					Login:        "trader1",
					PasswordHash: "hashedpassword",
				}, nil)
				service.EXPECT().GenerateToken(1).Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedToken string
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"login":"trader1","password":"s3cr3tpass"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "trader1", "s3cr3tpass").Return(&domain.User{
					ID:    1,
					Login: "trader1",
				}, nil)
				service.EXPECT().GenerateToken(1).Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "some-jwt-token",
		},
		{
			name: "Invalid credentials",
			body: `{"login":"trader1","password":"wrongpass"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "trader1", "wrongpass").Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "invalid credentials",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"login":"trader1","password":"s3cr3tpass"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "trader1", "s3cr3tpass").Return(&domain.User{
					ID:    1,
					Login: "trader1",
				}, nil)
				service.EXPECT().GenerateToken(1).Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedToken != "" {
				var resp dto.TokenResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, resp.Token)
			}
			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}
