package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/service"
	"github.com/MKhiriev/go-marketplace/internal/utils"
	"github.com/MKhiriev/go-marketplace/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var (
	adminPrincipal = models.Principal{
		ID:   uuid.MustParse("0195f7a0-3c1e-7c3b-9d7e-000000000001"),
		Role: models.RoleSuperAdmin,
	}
	sellerPrincipal = models.Principal{
		ID:   uuid.MustParse("0195f7a0-3c1e-7c3b-9d7e-000000000002"),
		Role: models.RoleSeller,
	}
	customerPrincipal = models.Principal{
		ID:   uuid.MustParse("0195f7a0-3c1e-7c3b-9d7e-000000000003"),
		Role: models.RoleCustomer,
	}
)

// bearer tokens understood by fakeGate
const (
	adminToken    = "Bearer admin-token"
	sellerToken   = "Bearer seller-token"
	customerToken = "Bearer customer-token"
)

// fakeGate returns a token service and resolver that accept the fixed test
// tokens and reject everything else the way the real services do.
func fakeGate() (*mockTokenService, *mockIdentityResolver) {
	known := map[string]models.Principal{
		adminToken:    adminPrincipal,
		sellerToken:   sellerPrincipal,
		customerToken: customerPrincipal,
	}
	byID := make(map[uuid.UUID]models.Principal, len(known))
	for _, p := range known {
		byID[p.ID] = p
	}

	tokens := &mockTokenService{
		verifyFn: func(_ context.Context, header string) (models.Claims, error) {
			if header == "" {
				return models.Claims{}, fmt.Errorf("%w: %w", service.ErrUnauthenticated, service.ErrNoTokenProvided)
			}
			p, ok := known[header]
			if !ok {
				return models.Claims{}, fmt.Errorf("%w: %w", service.ErrUnauthenticated, service.ErrTokenIsInvalid)
			}
			return models.Claims{SubjectID: p.ID, Role: p.Role}, nil
		},
	}
	resolver := &mockIdentityResolver{
		resolveFn: func(_ context.Context, claims models.Claims) (models.Principal, error) {
			p, ok := byID[claims.SubjectID]
			if !ok {
				return models.Principal{}, fmt.Errorf("%w: %w", service.ErrUnauthenticated, service.ErrSubjectNotFound)
			}
			return p, nil
		},
	}
	return tokens, resolver
}

// newTestHandler builds a Handler over svcs. Missing gate services are
// filled with fakeGate.
func newTestHandler(svcs *service.Services) *Handler {
	if svcs.TokenService == nil || svcs.IdentityResolver == nil {
		tokens, resolver := fakeGate()
		svcs.TokenService = tokens
		svcs.IdentityResolver = resolver
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test-version"}
	}
	return NewHandler(svcs, config.Server{}, logger.Nop())
}

func serve(router http.Handler, method, path, body, authHeader string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body utils.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body.Error
}

func validationDetails(t *testing.T, rec *httptest.ResponseRecorder) validationErrorBody {
	t.Helper()
	var body validationErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body
}

func paths(body validationErrorBody) []string {
	out := make([]string, 0, len(body.Details))
	for _, d := range body.Details {
		out = append(out, d.Path)
	}
	return out
}
