package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/jetistik-hub/internal/models"
	"github.com/yukikurage/jetistik-hub/internal/repository"
	"github.com/yukikurage/jetistik-hub/internal/storage"
	"github.com/yukikurage/jetistik-hub/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrCannotDeleteSelf = errors.New("administrators cannot delete their own account")

// UserService handles administrator-only account management.
type UserService struct {
	auth            *AuthService
	userRepo        repository.UserRepository
	achievementRepo repository.AchievementRepository
	pipeline        *storage.Pipeline
	logger          *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(auth *AuthService, userRepo repository.UserRepository, achievementRepo repository.AchievementRepository, pipeline *storage.Pipeline, logger *zap.Logger) *UserService {
	return &UserService{
		auth:            auth,
		userRepo:        userRepo,
		achievementRepo: achievementRepo,
		pipeline:        pipeline,
		logger:          logger,
	}
}

// CreateUserInput represents an admin-provisioned account
type CreateUserInput struct {
	Username string
	Password string
	IsAdmin  bool
	Profile  Profile
}

// CreateUser provisions an account on behalf of an administrator
func (s *UserService) CreateUser(ctx context.Context, actor *models.User, input CreateUserInput) (*models.User, error) {
	if !actor.IsAdmin {
		return nil, ErrForbidden
	}
	user, err := s.auth.createUser(ctx, input.Username, input.Password, input.Profile, input.IsAdmin)
	if err != nil {
		return nil, err
	}
	s.logger.Info("user created by admin",
		zap.Uint64("admin_id", actor.ID),
		zap.String("username", user.Username),
		zap.Bool("is_admin", user.IsAdmin),
	)
	return user, nil
}

// ListUsers returns a page of users ordered by username
func (s *UserService) ListUsers(ctx context.Context, actor *models.User, params utils.PaginationParams) ([]models.User, int64, error) {
	if !actor.IsAdmin {
		return nil, 0, ErrForbidden
	}
	users, total, err := s.userRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

// DeleteUser removes a user, their achievements and every stored file.
func (s *UserService) DeleteUser(ctx context.Context, actor *models.User, id uint64) error {
	if !actor.IsAdmin {
		return ErrForbidden
	}
	if actor.ID == id {
		return ErrCannotDeleteSelf
	}

	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	achievements, err := s.achievementRepo.ListByUser(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to list achievements: %w", err)
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	for _, a := range achievements {
		ref, ok := storage.RefOf(a)
		if !ok {
			continue
		}
		if err := s.pipeline.Delete(ctx, ref); err != nil {
			s.logger.Warn("failed to delete stored file",
				zap.Uint64("achievement_id", a.ID),
				zap.String("key", ref.Key),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("user deleted",
		zap.Uint64("admin_id", actor.ID),
		zap.Uint64("user_id", id),
		zap.Int("achievements", len(achievements)),
	)
	return nil
}
