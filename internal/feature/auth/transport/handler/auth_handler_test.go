package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAuthUsecase はAuthUsecaseインターフェースのモック実装です。
type mockAuthUsecase struct {
	SignupFunc func(ctx context.Context, email, password string) error
	LoginFunc  func(ctx context.Context, email, password string) (string, error)
}

func (m *mockAuthUsecase) Signup(ctx context.Context, email, password string) error {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, email, password)
	}
	return nil
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", nil
}

func performAuthRequest(uc AuthUsecase, method, path, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(uc)
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// TestAuthHandler_Signup はSignupエンドポイントの各種シナリオを検証します。
func TestAuthHandler_Signup(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSignupFunc func(ctx context.Context, email, password string) error
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: valid signup",
			body: `{"email":"test@example.com","password":"password123"}`,
			mockSignupFunc: func(ctx context.Context, email, password string) error {
				assert.Equal(t, "test@example.com", email)
				assert.Equal(t, "password123", password)
				return nil
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"message":"ok"}`,
		},
		{
			name:           "failure: malformed JSON",
			body:           `{"email":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request"}`,
		},
		{
			name:           "failure: invalid email format",
			body:           `{"email":"not-an-email","password":"password123"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request"}`,
		},
		{
			name:           "failure: password below minimum length",
			body:           `{"email":"test@example.com","password":"short"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request"}`,
		},
		{
			name: "failure: usecase error maps to conflict without detail",
			body: `{"email":"dup@example.com","password":"password123"}`,
			mockSignupFunc: func(ctx context.Context, email, password string) error {
				return errors.New("auth: email already exists")
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"signup failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockAuthUsecase{SignupFunc: tt.mockSignupFunc}
			w := performAuthRequest(mock, http.MethodPost, "/signup", tt.body)

			require.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

// TestAuthHandler_Login はLoginエンドポイントの各種シナリオを検証します。
func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockLoginFunc  func(ctx context.Context, email, password string) (string, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: returns token",
			body: `{"email":"test@example.com","password":"password123"}`,
			mockLoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "signed.jwt.token", nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"token":"signed.jwt.token"}`,
		},
		{
			name:           "failure: malformed JSON",
			body:           `not json`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request"}`,
		},
		{
			name:           "failure: missing password",
			body:           `{"email":"test@example.com"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request"}`,
		},
		{
			name: "failure: authentication error maps to generic message",
			body: `{"email":"test@example.com","password":"wrongpassword"}`,
			mockLoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "", errors.New("invalid email or password")
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"invalid email or password"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockAuthUsecase{LoginFunc: tt.mockLoginFunc}
			w := performAuthRequest(mock, http.MethodPost, "/login", tt.body)

			require.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
