package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-marketplace/internal/access"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/utils"
	"github.com/MKhiriev/go-marketplace/models"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	gate := access.BuildAccessGate(models.RoleSuperAdmin, models.RoleSeller)

	tests := []struct {
		name        string
		principal   *models.Principal
		wantStatus  int
		wantMessage string
		wantCalled  bool
	}{
		{name: "seller allowed", principal: &sellerPrincipal, wantStatus: http.StatusOK, wantCalled: true},
		{name: "admin allowed", principal: &adminPrincipal, wantStatus: http.StatusOK, wantCalled: true},
		{
			name:        "customer forbidden",
			principal:   &customerPrincipal,
			wantStatus:  http.StatusForbidden,
			wantMessage: msgAccessDenied,
		},
		{
			name:        "no principal is unauthenticated",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Authentication required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop()}

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})

			req := httptest.NewRequest(http.MethodPost, "/test", nil)
			if tt.principal != nil {
				req = req.WithContext(utils.WithPrincipal(req.Context(), *tt.principal))
			}
			rec := httptest.NewRecorder()
			h.authorize(gate)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCalled, called)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, errorMessage(t, rec))
			}
		})
	}
}
