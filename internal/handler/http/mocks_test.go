package http

import (
	"context"

	"github.com/MKhiriev/go-marketplace/models"
	"github.com/google/uuid"
)

// ---- Mock: TokenService ----

type mockTokenService struct {
	issueFn  func(ctx context.Context, user models.User) (models.Token, error)
	verifyFn func(ctx context.Context, header string) (models.Claims, error)
}

func (m *mockTokenService) Issue(ctx context.Context, user models.User) (models.Token, error) {
	return m.issueFn(ctx, user)
}

func (m *mockTokenService) Verify(ctx context.Context, header string) (models.Claims, error) {
	return m.verifyFn(ctx, header)
}

// ---- Mock: IdentityResolver ----

type mockIdentityResolver struct {
	resolveFn func(ctx context.Context, claims models.Claims) (models.Principal, error)
}

func (m *mockIdentityResolver) Resolve(ctx context.Context, claims models.Claims) (models.Principal, error) {
	return m.resolveFn(ctx, claims)
}

// ---- Mock: AuthService ----

type mockAuthService struct {
	registerFn func(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	loginFn    func(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	forgotFn   func(ctx context.Context, req models.ForgotPasswordRequest) error
	resetFn    func(ctx context.Context, req models.ResetPasswordRequest) error
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	return m.forgotFn(ctx, req)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	return m.resetFn(ctx, req)
}

// ---- Mock: UserService ----

type mockUserService struct {
	getFn            func(ctx context.Context, id uuid.UUID) (models.User, error)
	updateProfileFn  func(ctx context.Context, id uuid.UUID, req models.UpdateProfileRequest) (models.User, error)
	changePasswordFn func(ctx context.Context, id uuid.UUID, req models.ChangePasswordRequest) error
	createFn         func(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	updateFn         func(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (models.User, error)
}

func (m *mockUserService) GetUser(ctx context.Context, id uuid.UUID) (models.User, error) {
	return m.getFn(ctx, id)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, id uuid.UUID, req models.UpdateProfileRequest) (models.User, error) {
	return m.updateProfileFn(ctx, id, req)
}

func (m *mockUserService) ChangePassword(ctx context.Context, id uuid.UUID, req models.ChangePasswordRequest) error {
	return m.changePasswordFn(ctx, id, req)
}

func (m *mockUserService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	return m.createFn(ctx, req)
}

func (m *mockUserService) UpdateUser(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (models.User, error) {
	return m.updateFn(ctx, id, req)
}

// ---- Mock: CategoryService ----

type mockCategoryService struct {
	createFn func(ctx context.Context, createdBy uuid.UUID, req models.CreateCategoryRequest) (models.Category, error)
	updateFn func(ctx context.Context, id uuid.UUID, req models.UpdateCategoryRequest) (models.Category, error)
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, createdBy uuid.UUID, req models.CreateCategoryRequest) (models.Category, error) {
	return m.createFn(ctx, createdBy, req)
}

func (m *mockCategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req models.UpdateCategoryRequest) (models.Category, error) {
	return m.updateFn(ctx, id, req)
}

// ---- Mock: AttributeService ----

type mockAttributeService struct {
	createFn func(ctx context.Context, req models.CreateAttributeRequest) (models.Attribute, error)
	updateFn func(ctx context.Context, id uuid.UUID, req models.UpdateAttributeRequest) (models.Attribute, error)
}

func (m *mockAttributeService) CreateAttribute(ctx context.Context, req models.CreateAttributeRequest) (models.Attribute, error) {
	return m.createFn(ctx, req)
}

func (m *mockAttributeService) UpdateAttribute(ctx context.Context, id uuid.UUID, req models.UpdateAttributeRequest) (models.Attribute, error) {
	return m.updateFn(ctx, id, req)
}

// ---- Mock: AppInfoService ----

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}
