package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/store"
	"github.com/MKhiriev/go-marketplace/models"
	"github.com/google/uuid"
)

type userService struct {
	userRepository store.UserRepository
	ids            IDGenerator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, ids IDGenerator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		ids:            ids,
		logger:         logger,
	}
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, userStoreError(err)
	}
	return user, nil
}

// UpdateProfile changes the caller's own name and contact fields.
func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, req models.UpdateProfileRequest) (models.User, error) {
	update := models.UserUpdate{
		ID:            id,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Phone:         req.Phone.Update(),
		CompanyName:   req.CompanyName.Update(),
		StreetAddress: req.StreetAddress.Update(),
		City:          req.City.Update(),
		State:         req.State.Update(),
		Country:       req.Country.Update(),
		ZipCode:       req.ZipCode.Update(),
	}

	return s.update(ctx, update)
}

// ChangePassword replaces the caller's password after checking the current
// one. Returns ErrWrongPassword on mismatch.
func (s *userService) ChangePassword(ctx context.Context, id uuid.UUID, req models.ChangePasswordRequest) error {
	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return userStoreError(err)
	}

	ok, err := checkPassword(user.PasswordHash, req.CurrentPassword)
	if err != nil {
		return err
	}
	if !ok {
		return ErrWrongPassword
	}

	passwordHash, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	_, err = s.update(ctx, models.UserUpdate{ID: id, PasswordHash: &passwordHash})
	return err
}

// CreateUser creates an account with any role and status on behalf of an
// administrator.
func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	role, err := models.ParseRole(req.Role)
	if err != nil {
		return models.User{}, err
	}
	status, err := models.ParseStatus(req.Status)
	if err != nil {
		return models.User{}, err
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		return models.User{}, err
	}

	created, err := s.userRepository.CreateUser(ctx, models.User{
		ID:            s.ids.Generate(),
		Email:         req.Email,
		PasswordHash:  passwordHash,
		Role:          role,
		Status:        status,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Phone:         req.Phone,
		CompanyName:   req.CompanyName,
		StreetAddress: req.StreetAddress,
		City:          req.City,
		State:         req.State,
		Country:       req.Country,
		ZipCode:       req.ZipCode,
	})
	if err != nil {
		return models.User{}, userStoreError(err)
	}

	logger.FromContext(ctx).Info().
		Str("user_id", created.ID.String()).
		Str("role", role.String()).
		Msg("user created by administrator")

	return created, nil
}

// UpdateUser applies an administrator's partial update to any account.
func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (models.User, error) {
	update := models.UserUpdate{
		ID:            id,
		Email:         req.Email,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Phone:         req.Phone.Update(),
		CompanyName:   req.CompanyName.Update(),
		StreetAddress: req.StreetAddress.Update(),
		City:          req.City.Update(),
		State:         req.State.Update(),
		Country:       req.Country.Update(),
		ZipCode:       req.ZipCode.Update(),
	}

	if req.Role != nil {
		role, err := models.ParseRole(*req.Role)
		if err != nil {
			return models.User{}, err
		}
		update.Role = &role
	}
	if req.Status != nil {
		status, err := models.ParseStatus(*req.Status)
		if err != nil {
			return models.User{}, err
		}
		update.Status = &status
	}
	if req.Password != nil {
		passwordHash, err := hashPassword(*req.Password)
		if err != nil {
			return models.User{}, err
		}
		update.PasswordHash = &passwordHash
	}

	return s.update(ctx, update)
}

func (s *userService) update(ctx context.Context, update models.UserUpdate) (models.User, error) {
	if update.IsEmpty() {
		return models.User{}, ErrNothingToUpdate
	}

	updated, err := s.userRepository.UpdateUser(ctx, update)
	if err != nil {
		return models.User{}, userStoreError(err)
	}
	return updated, nil
}

func userStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, store.ErrUserAlreadyExists):
		return ErrEmailTaken
	default:
		return fmt.Errorf("user storage error: %w", err)
	}
}
