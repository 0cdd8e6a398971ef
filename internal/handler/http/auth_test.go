package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-marketplace/internal/service"
	"github.com/MKhiriev/go-marketplace/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authResponse(user models.User) models.AuthResponse {
	return models.AuthResponse{
		Token: models.Token{SignedString: "signed.jwt.value", ExpiresAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)},
		User:  user,
	}
}

func TestRegister(t *testing.T) {
	var got models.RegisterRequest
	authSvc := &mockAuthService{
		registerFn: func(_ context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
			got = req
			return authResponse(models.User{ID: customerPrincipal.ID, Email: req.Email, Role: models.RoleCustomer}), nil
		},
	}
	router := newTestHandler(&service.Services{AuthService: authSvc}).Init()

	rec := serve(router, http.MethodPost, "/api/auth/register",
		`{"email":"NEW@example.com","password":"password1","firstName":"New","lastName":"User"}`, "")

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Bearer signed.jwt.value", rec.Header().Get("Authorization"))
	assert.Equal(t, "new@example.com", got.Email)

	var body struct {
		Token struct {
			Token string `json:"token"`
		} `json:"token"`
		User struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "signed.jwt.value", body.Token.Token)
	assert.Equal(t, "new@example.com", body.User.Email)
	assert.Equal(t, "CUSTOMER", body.User.Role)
}

func TestRegister_EmailTaken(t *testing.T) {
	authSvc := &mockAuthService{
		registerFn: func(_ context.Context, _ models.RegisterRequest) (models.AuthResponse, error) {
			return models.AuthResponse{}, service.ErrEmailTaken
		},
	}
	router := newTestHandler(&service.Services{AuthService: authSvc}).Init()

	rec := serve(router, http.MethodPost, "/api/auth/register",
		`{"email":"taken@example.com","password":"password1","firstName":"A","lastName":"B"}`, "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, service.ErrEmailTaken.Error(), errorMessage(t, rec))
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "success", wantStatus: http.StatusOK},
		{
			name:        "wrong password",
			err:         service.ErrInvalidCredentials,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: service.ErrInvalidCredentials.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := &mockAuthService{
				loginFn: func(_ context.Context, req models.LoginRequest) (models.AuthResponse, error) {
					if tt.err != nil {
						return models.AuthResponse{}, tt.err
					}
					return authResponse(models.User{ID: sellerPrincipal.ID, Email: req.Email}), nil
				},
			}
			router := newTestHandler(&service.Services{AuthService: authSvc}).Init()

			rec := serve(router, http.MethodPost, "/api/auth/login", `{"email":"s@example.com","password":"password1"}`, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, errorMessage(t, rec))
				return
			}
			assert.Equal(t, "Bearer signed.jwt.value", rec.Header().Get("Authorization"))
		})
	}
}

func TestForgotPassword_AlwaysAccepted(t *testing.T) {
	calls := 0
	authSvc := &mockAuthService{
		forgotFn: func(_ context.Context, req models.ForgotPasswordRequest) error {
			calls++
			assert.Equal(t, "who@example.com", req.Email)
			return nil
		},
	}
	router := newTestHandler(&service.Services{AuthService: authSvc}).Init()

	rec := serve(router, http.MethodPost, "/api/auth/forgot-password", `{"email":" Who@Example.com "}`, "")

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, calls)
}

func TestResetPassword(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{
			name:       "success",
			body:       `{"token":"abc","password":"password1","confirmPassword":"password1"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "expired token",
			body:       `{"token":"abc","password":"password1","confirmPassword":"password1"}`,
			err:        service.ErrInvalidResetToken,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "passwords differ",
			body:       `{"token":"abc","password":"password1","confirmPassword":"password2"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := &mockAuthService{
				resetFn: func(_ context.Context, _ models.ResetPasswordRequest) error {
					return tt.err
				},
			}
			router := newTestHandler(&service.Services{AuthService: authSvc}).Init()

			rec := serve(router, http.MethodPost, "/api/auth/reset-password", tt.body, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
