package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/store"
	"github.com/MKhiriev/go-marketplace/internal/utils"
	"github.com/MKhiriev/go-marketplace/models"
)

// authService is the concrete implementation of AuthService.
// It handles self-registration, credential verification and the password
// reset flow on top of a UserRepository.
type authService struct {
	userRepository store.UserRepository
	tokenService   TokenService
	notifier       ResetNotifier
	ids            IDGenerator

	// hashKey is the HMAC secret used to digest reset tokens before they
	// are stored.
	hashKey string

	resetTokenDuration time.Duration
	resetURL           string

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService. All state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	tokenService TokenService,
	notifier ResetNotifier,
	ids IDGenerator,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:     userRepository,
		tokenService:       tokenService,
		notifier:           notifier,
		ids:                ids,
		hashKey:            cfg.PasswordHashKey,
		resetTokenDuration: cfg.ResetTokenDuration,
		resetURL:           cfg.ResetURL,
		now:                time.Now,
		logger:             logger,
	}
}

// Register creates an ACTIVE account and signs a credential for it.
//
// Returns:
//   - ErrCannotSelfRegisterAdmin if SUPER_ADMIN is requested.
//   - ErrEmailTaken if the email is already registered.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	role, err := models.ParseRole(req.Role)
	if err != nil {
		return models.AuthResponse{}, err
	}
	if role == models.RoleSuperAdmin {
		log.Warn().Str("email", req.Email).Msg("attempt to self-register a super admin")
		return models.AuthResponse{}, ErrCannotSelfRegisterAdmin
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		return models.AuthResponse{}, err
	}

	user := models.User{
		ID:            a.ids.Generate(),
		Email:         req.Email,
		PasswordHash:  passwordHash,
		Role:          role,
		Status:        models.StatusActive,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Phone:         req.Phone,
		CompanyName:   req.CompanyName,
		StreetAddress: req.StreetAddress,
		City:          req.City,
		State:         req.State,
		Country:       req.Country,
		ZipCode:       req.ZipCode,
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrUserAlreadyExists) {
		return models.AuthResponse{}, ErrEmailTaken
	}
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.respond(ctx, created)
}

// Login verifies the email and password and signs a credential.
//
// Unknown emails and wrong passwords both yield ErrInvalidCredentials.
// Accounts that are not ACTIVE are refused with ErrForbidden.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.AuthResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := checkPassword(user.PasswordHash, req.Password)
	if err != nil {
		return models.AuthResponse{}, err
	}
	if !ok {
		log.Debug().Str("user_id", user.ID.String()).Msg("wrong password")
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	switch user.Status {
	case models.StatusSuspended:
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrForbidden, ErrAccountSuspended)
	case models.StatusDeactivated:
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrForbidden, ErrAccountInactive)
	}

	return a.respond(ctx, user)
}

// ForgotPassword stores the digest of a fresh reset token and hands the reset
// link to the notifier. Unknown or inactive accounts are silently ignored.
func (a *authService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Msg("password reset requested for unknown email")
		return nil
	}
	if err != nil {
		return fmt.Errorf("user search by email failed: %w", err)
	}
	if user.Status != models.StatusActive {
		log.Debug().Str("user_id", user.ID.String()).Msg("password reset requested for inactive account")
		return nil
	}

	token, err := utils.NewResetToken()
	if err != nil {
		return err
	}
	digest := utils.HashString(token, a.hashKey)
	expiresAt := a.now().Add(a.resetTokenDuration)

	if err = a.userRepository.SetResetToken(ctx, user.ID, &digest, &expiresAt); err != nil {
		return fmt.Errorf("error storing reset token: %w", err)
	}

	if err = a.notifier.NotifyPasswordReset(ctx, user, a.resetLink(token)); err != nil {
		return fmt.Errorf("error sending reset link: %w", err)
	}

	return nil
}

// ResetPassword consumes an unexpired reset token and sets the new password.
func (a *authService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	digest := utils.HashString(req.Token, a.hashKey)

	user, err := a.userRepository.FindUserByResetToken(ctx, digest)
	if errors.Is(err, store.ErrUserNotFound) {
		return ErrInvalidResetToken
	}
	if err != nil {
		return fmt.Errorf("reset token lookup failed: %w", err)
	}

	if user.ResetTokenHash == nil || !utils.EqualHashes(*user.ResetTokenHash, digest) ||
		user.ResetTokenExpiresAt == nil || !a.now().Before(*user.ResetTokenExpiresAt) {
		return ErrInvalidResetToken
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		return err
	}

	// the repository clears the reset token together with the password
	if _, err = a.userRepository.UpdateUser(ctx, models.UserUpdate{ID: user.ID, PasswordHash: &passwordHash}); err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}

	return nil
}

func (a *authService) respond(ctx context.Context, user models.User) (models.AuthResponse, error) {
	token, err := a.tokenService.Issue(ctx, user)
	if err != nil {
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{Token: token, User: user}, nil
}

func (a *authService) resetLink(token string) string {
	return a.resetURL + "?token=" + url.QueryEscape(token)
}

// logResetNotifier writes reset links to the log. It stands in for a mail
// gateway.
type logResetNotifier struct {
	logger *logger.Logger
}

func NewLogResetNotifier(logger *logger.Logger) ResetNotifier {
	return &logResetNotifier{logger: logger}
}

func (n *logResetNotifier) NotifyPasswordReset(ctx context.Context, user models.User, link string) error {
	logger.FromContext(ctx).Info().
		Str("user_id", user.ID.String()).
		Str("email", user.Email).
		Str("link", link).
		Msg("password reset link issued")
	return nil
}
