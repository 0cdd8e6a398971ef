package service

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/mock"
	"github.com/MKhiriev/go-marketplace/internal/store"
	"github.com/MKhiriev/go-marketplace/internal/utils"
	"github.com/MKhiriev/go-marketplace/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// recordingNotifier keeps the last reset link it was asked to deliver.
type recordingNotifier struct {
	user models.User
	link string
	err  error
}

func (n *recordingNotifier) NotifyPasswordReset(_ context.Context, user models.User, link string) error {
	n.user = user
	n.link = link
	return n.err
}

func newTestAuthService(t *testing.T) (*authService, *mock.MockUserRepository, *recordingNotifier) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	notifier := &recordingNotifier{}
	cfg := testAppConfig()

	svc := NewAuthService(users, NewTokenService(cfg, logger.Nop()), notifier, fixedIDs{id: testNewID}, cfg, logger.Nop()).(*authService)
	return svc, users, notifier
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := hashPassword(password)
	require.NoError(t, err)
	return hash
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, users, _ := newTestAuthService(t)

	req := models.RegisterRequest{
		Email:     "jane@example.com",
		Password:  "s3cret-pass",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      "CUSTOMER",
		Phone:     strPtr("+100000"),
	}

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, testNewID, u.ID)
			assert.Equal(t, models.RoleCustomer, u.Role)
			assert.Equal(t, models.StatusActive, u.Status)
			assert.NotEqual(t, req.Password, u.PasswordHash)
			ok, err := checkPassword(u.PasswordHash, req.Password)
			require.NoError(t, err)
			assert.True(t, ok)
			return u, nil
		},
	)

	resp, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, testNewID, resp.User.ID)
	assert.NotEmpty(t, resp.Token.SignedString)
	assert.Equal(t, models.RoleCustomer, resp.Token.Claims.Role)
}

func TestAuthService_Register_Errors(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		repoErr error
		wantErr error
	}{
		{name: "super admin refused", role: "SUPER_ADMIN", wantErr: ErrCannotSelfRegisterAdmin},
		{name: "unknown role", role: "ROOT", wantErr: models.ErrUnknownRole},
		{name: "email taken", role: "SELLER", repoErr: store.ErrUserAlreadyExists, wantErr: ErrEmailTaken},
		{name: "store failure", role: "SELLER", repoErr: store.ErrExecutingQuery, wantErr: store.ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users, _ := newTestAuthService(t)
			if tt.repoErr != nil {
				users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, tt.repoErr)
			}

			_, err := svc.Register(context.Background(), models.RegisterRequest{
				Email: "a@b.c", Password: "password1", FirstName: "A", LastName: "B", Role: tt.role,
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	stored := models.User{
		ID:           testUserID,
		Email:        "jane@example.com",
		PasswordHash: mustHash(t, "right-password"),
		Role:         models.RoleSeller,
		Status:       models.StatusActive,
	}

	tests := []struct {
		name     string
		password string
		status   models.Status
		repoErr  error
		wantErrs []error
	}{
		{name: "success", password: "right-password", status: models.StatusActive},
		{name: "wrong password", password: "wrong-password", status: models.StatusActive, wantErrs: []error{ErrInvalidCredentials}},
		{name: "unknown email", repoErr: store.ErrUserNotFound, wantErrs: []error{ErrInvalidCredentials}},
		{name: "suspended", password: "right-password", status: models.StatusSuspended, wantErrs: []error{ErrForbidden, ErrAccountSuspended}},
		{name: "deactivated", password: "right-password", status: models.StatusDeactivated, wantErrs: []error{ErrForbidden, ErrAccountInactive}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users, _ := newTestAuthService(t)

			user := stored
			user.Status = tt.status
			users.EXPECT().FindUserByEmail(gomock.Any(), "jane@example.com").Return(user, tt.repoErr)

			resp, err := svc.Login(context.Background(), models.LoginRequest{Email: "jane@example.com", Password: tt.password})
			if len(tt.wantErrs) == 0 {
				require.NoError(t, err)
				assert.Equal(t, testUserID, resp.User.ID)
				assert.NotEmpty(t, resp.Token.SignedString)
				return
			}
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestAuthService_ForgotPassword_StoresDigestAndNotifies(t *testing.T) {
	svc, users, notifier := newTestAuthService(t)
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	user := models.User{ID: testUserID, Email: "jane@example.com", Status: models.StatusActive}
	users.EXPECT().FindUserByEmail(gomock.Any(), user.Email).Return(user, nil)

	var storedDigest string
	users.EXPECT().SetResetToken(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, digest *string, expiresAt *time.Time) error {
			require.NotNil(t, digest)
			require.NotNil(t, expiresAt)
			storedDigest = *digest
			assert.Equal(t, now.Add(15*time.Minute), *expiresAt)
			return nil
		},
	)

	require.NoError(t, svc.ForgotPassword(context.Background(), models.ForgotPasswordRequest{Email: user.Email}))

	require.True(t, strings.HasPrefix(notifier.link, "https://shop.example/reset?token="))
	link, err := url.Parse(notifier.link)
	require.NoError(t, err)
	token := link.Query().Get("token")
	require.NotEmpty(t, token)

	assert.NotEqual(t, token, storedDigest, "the raw token must never be stored")
	assert.Equal(t, utils.HashString(token, "test-hash-key"), storedDigest)
}

func TestAuthService_ForgotPassword_SilentCases(t *testing.T) {
	tests := []struct {
		name    string
		user    models.User
		repoErr error
	}{
		{name: "unknown email", repoErr: store.ErrUserNotFound},
		{name: "suspended account", user: models.User{ID: testUserID, Status: models.StatusSuspended}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users, notifier := newTestAuthService(t)
			users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(tt.user, tt.repoErr)

			require.NoError(t, svc.ForgotPassword(context.Background(), models.ForgotPasswordRequest{Email: "x@y.z"}))
			assert.Empty(t, notifier.link)
		})
	}
}

func TestAuthService_ResetPassword(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	digest := utils.HashString("raw-token", "test-hash-key")
	future := now.Add(time.Minute)
	past := now.Add(-time.Minute)

	tests := []struct {
		name      string
		expiresAt *time.Time
		repoErr   error
		wantErr   error
	}{
		{name: "valid token", expiresAt: &future},
		{name: "expired token", expiresAt: &past, wantErr: ErrInvalidResetToken},
		{name: "missing expiry", expiresAt: nil, wantErr: ErrInvalidResetToken},
		{name: "unknown token", repoErr: store.ErrUserNotFound, wantErr: ErrInvalidResetToken},
		{name: "store failure", repoErr: errors.New("boom"), wantErr: errors.New("reset token lookup failed")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users, _ := newTestAuthService(t)
			svc.now = func() time.Time { return now }

			user := models.User{ID: testUserID, ResetTokenHash: &digest, ResetTokenExpiresAt: tt.expiresAt}
			users.EXPECT().FindUserByResetToken(gomock.Any(), digest).Return(user, tt.repoErr)
			if tt.wantErr == nil {
				users.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u models.UserUpdate) (models.User, error) {
						assert.Equal(t, testUserID, u.ID)
						require.NotNil(t, u.PasswordHash)
						ok, err := checkPassword(*u.PasswordHash, "new-password")
						require.NoError(t, err)
						assert.True(t, ok)
						return user, nil
					},
				)
			}

			err := svc.ResetPassword(context.Background(), models.ResetPasswordRequest{
				Token: "raw-token", Password: "new-password", ConfirmPassword: "new-password",
			})
			switch {
			case tt.wantErr == nil:
				require.NoError(t, err)
			case errors.Is(tt.wantErr, ErrInvalidResetToken):
				assert.ErrorIs(t, err, ErrInvalidResetToken)
			default:
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
			}
		})
	}
}
