package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/mock"
	"github.com/MKhiriev/go-marketplace/internal/store"
	"github.com/MKhiriev/go-marketplace/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewIdentityResolver_SelectsStrategy(t *testing.T) {
	cfg := testAppConfig()

	cfg.IdentityMode = config.IdentityModeClaims
	resolver, err := NewIdentityResolver(nil, cfg, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &trustClaimsResolver{}, resolver)

	cfg.IdentityMode = config.IdentityModeStore
	resolver, err = NewIdentityResolver(nil, cfg, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &storeConfirmedResolver{}, resolver)

	cfg.IdentityMode = "ldap"
	_, err = NewIdentityResolver(nil, cfg, logger.Nop())
	assert.ErrorIs(t, err, config.ErrInvalidIdentityMode)
}

func TestTrustClaimsResolver_Resolve(t *testing.T) {
	resolver := &trustClaimsResolver{}

	principal, err := resolver.Resolve(context.Background(), models.Claims{SubjectID: testUserID, Role: models.RoleSeller})
	require.NoError(t, err)
	assert.Equal(t, testUserID, principal.ID)
	assert.Equal(t, models.RoleSeller, principal.Role)
	assert.True(t, principal.Status.IsZero())
	assert.False(t, principal.Confirmed)
}

func TestStoreConfirmedResolver_Resolve(t *testing.T) {
	claims := models.Claims{SubjectID: testUserID, Role: models.RoleSuperAdmin}
	storeErr := errors.New("connection refused")

	tests := []struct {
		name      string
		user      models.User
		repoErr   error
		wantRole  models.Role
		wantErrs  []error
		wantNoErr bool
	}{
		{
			name:      "stored role overrides claimed role",
			user:      models.User{ID: testUserID, Email: "jane@example.com", Role: models.RoleCustomer, Status: models.StatusActive},
			wantRole:  models.RoleCustomer,
			wantNoErr: true,
		},
		{
			name:     "deleted subject is unauthenticated",
			repoErr:  store.ErrUserNotFound,
			wantErrs: []error{ErrUnauthenticated, ErrSubjectNotFound},
		},
		{
			name:     "deactivated subject is unauthenticated",
			user:     models.User{ID: testUserID, Role: models.RoleSeller, Status: models.StatusDeactivated},
			wantErrs: []error{ErrUnauthenticated, ErrAccountInactive},
		},
		{
			name:     "suspended subject is forbidden",
			user:     models.User{ID: testUserID, Role: models.RoleSeller, Status: models.StatusSuspended},
			wantErrs: []error{ErrForbidden, ErrAccountSuspended},
		},
		{
			name:     "store failure is passed through",
			repoErr:  storeErr,
			wantErrs: []error{storeErr},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			users := mock.NewMockUserRepository(ctrl)
			users.EXPECT().FindUserByID(gomock.Any(), testUserID).Return(tt.user, tt.repoErr)

			resolver := &storeConfirmedResolver{userRepository: users, logger: logger.Nop()}
			principal, err := resolver.Resolve(context.Background(), claims)

			if tt.wantNoErr {
				require.NoError(t, err)
				assert.Equal(t, tt.wantRole, principal.Role)
				assert.Equal(t, "jane@example.com", principal.Email)
				assert.True(t, principal.Confirmed)
				return
			}

			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
			if errors.Is(err, ErrUnauthenticated) {
				assert.NotErrorIs(t, err, ErrForbidden)
			}
		})
	}
}
