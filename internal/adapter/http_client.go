package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	defaultBaseURL = "http://localhost:8080"
	defaultTimeout = 15 * time.Second
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration

	// RetryCount is the number of retries after a transport failure or a
	// 5xx response to a GET request.
	RetryCount int
}

type httpClient struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

func NewHTTPClient(cfg HTTPClientConfig, logger *logger.Logger) MarketplaceAPI {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetError(&errorBody{}).
		SetRetryCount(cfg.RetryCount).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil || resp == nil {
				return true
			}
			return resp.Request.Method == http.MethodGet && resp.StatusCode() >= http.StatusInternalServerError
		}).
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			logger.Debug().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Int("status", resp.StatusCode()).
				Dur("duration", resp.Time()).
				Msg("marketplace API call")
			return nil
		})

	return &httpClient{client: cli, logger: logger}
}

func (h *httpClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpClient) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/register", req)
}

func (h *httpClient) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/login", req)
}

// authenticate posts credentials and stores the bearer token from the
// Authorization response header.
func (h *httpClient) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var out models.AuthResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s parse bearer token: %w", path, err)
	}

	h.SetToken(token)
	return out, nil
}

func (h *httpClient) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	return h.send(ctx, h.client.R(), http.MethodPost, "/api/auth/forgot-password", req, nil)
}

func (h *httpClient) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	return h.send(ctx, h.client.R(), http.MethodPost, "/api/auth/reset-password", req, nil)
}

func (h *httpClient) Me(ctx context.Context) (models.User, error) {
	var user models.User
	err := h.send(ctx, h.authedRequest(), http.MethodGet, "/api/users/me", nil, &user)
	return user, err
}

func (h *httpClient) UpdateMe(ctx context.Context, req models.UpdateProfileRequest) (models.User, error) {
	var user models.User
	err := h.send(ctx, h.authedRequest(), http.MethodPatch, "/api/users/me", req, &user)
	return user, err
}

func (h *httpClient) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	return h.send(ctx, h.authedRequest(), http.MethodPut, "/api/users/me/password", req, nil)
}

func (h *httpClient) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	var user models.User
	err := h.send(ctx, h.authedRequest(), http.MethodPost, "/api/users", req, &user)
	return user, err
}

func (h *httpClient) UpdateUser(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (models.User, error) {
	var user models.User
	err := h.send(ctx, h.authedRequest(), http.MethodPatch, "/api/users/"+id.String(), req, &user)
	return user, err
}

func (h *httpClient) CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (models.Category, error) {
	var category models.Category
	err := h.send(ctx, h.authedRequest(), http.MethodPost, "/api/categories", req, &category)
	return category, err
}

func (h *httpClient) UpdateCategory(ctx context.Context, id uuid.UUID, req models.UpdateCategoryRequest) (models.Category, error) {
	var category models.Category
	err := h.send(ctx, h.authedRequest(), http.MethodPatch, "/api/categories/"+id.String(), req, &category)
	return category, err
}

func (h *httpClient) CreateAttribute(ctx context.Context, req models.CreateAttributeRequest) (models.Attribute, error) {
	var attribute models.Attribute
	err := h.send(ctx, h.authedRequest(), http.MethodPost, "/api/attributes", req, &attribute)
	return attribute, err
}

func (h *httpClient) UpdateAttribute(ctx context.Context, id uuid.UUID, req models.UpdateAttributeRequest) (models.Attribute, error) {
	var attribute models.Attribute
	err := h.send(ctx, h.authedRequest(), http.MethodPatch, "/api/attributes/"+id.String(), req, &attribute)
	return attribute, err
}

func (h *httpClient) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

// send executes the request and decodes a 2xx body into out when out is not
// nil.
func (h *httpClient) send(ctx context.Context, req *resty.Request, method, path string, body, out any) error {
	req.SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpClient) authedRequest() *resty.Request {
	req := h.client.R()
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func parseBearerToken(value string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(value), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errNoBearerToken
	}
	return strings.TrimSpace(token), nil
}
