package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"canasta/internal/auth"
	"canasta/internal/model"
	"canasta/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// userService implements UserService.
type userService struct {
	userRepo repository.UserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, logger zerolog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger.With().Str("service", "user").Logger(),
	}
}

// Register creates a new account, hashing the supplied credential. The raw
// credential is never stored.
func (s *userService) Register(ctx context.Context, req *model.UserRequest) (*model.User, error) {
	if err := validateUserRequest(req, true); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash password")
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	now := time.Now()
	user := &model.User{
		ID:        uuid.New(),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Password:  hash,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("user registered")

	return user, nil
}

// GetAll retrieves all users with pagination.
func (s *userService) GetAll(ctx context.Context, limit, offset int) ([]model.User, error) {
	limit, offset = clampPage(limit, offset)

	users, err := s.userRepo.GetAll(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to get all users")
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	return users, nil
}

// GetByID retrieves a single user by ID.
func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", id.String()).Msg("failed to get user by ID")
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		return nil, model.ErrUserNotFound
	}

	return user, nil
}

// Update applies changes to an existing user. The stored hash is kept when
// no new password is supplied; a supplied password is hashed before saving,
// and an already-hashed value passes through unchanged.
func (s *userService) Update(ctx context.Context, id uuid.UUID, req *model.UserRequest) (*model.User, error) {
	if err := validateUserRequest(req, false); err != nil {
		return nil, err
	}

	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.FirstName = strings.TrimSpace(req.FirstName)
	user.LastName = strings.TrimSpace(req.LastName)
	user.Email = strings.TrimSpace(req.Email)
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to hash password")
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
		user.Password = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("user updated")

	return user, nil
}

// Delete removes a user.
func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id.String()).Msg("user deleted")

	return nil
}

// validateUserRequest validates the user payload. The password is required
// only on registration.
func validateUserRequest(req *model.UserRequest, requirePassword bool) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeInvalidArgument, "User payload is required")
	}
	if strings.TrimSpace(req.FirstName) == "" {
		return model.NewDomainError(model.ErrCodeInvalidArgument, "First name is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return model.NewDomainError(model.ErrCodeInvalidArgument, "Email is required")
	}
	if requirePassword && req.Password == "" {
		return model.NewDomainError(model.ErrCodeInvalidArgument, "Password is required")
	}
	return nil
}

// clampPage applies the shared pagination bounds.
func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
