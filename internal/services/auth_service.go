package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/jetistik-hub/internal/constants"
	"github.com/yukikurage/jetistik-hub/internal/models"
	"github.com/yukikurage/jetistik-hub/internal/repository"
	"github.com/yukikurage/jetistik-hub/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameRequired     = errors.New("username is required")
	ErrUsernameTaken        = errors.New("username already exists")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrPasswordMismatch     = errors.New("passwords do not match")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// dummyHash is compared against when the username does not exist so that both
// failure paths cost one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("jetistik-dummy-password"), bcrypt.DefaultCost)

// AuthService handles authentication related business logic.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// Profile holds the optional descriptive fields of an account.
type Profile struct {
	FullName   string
	School     string
	Subject    string
	Category   string
	Experience int
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Username        string
	Password        string
	ConfirmPassword string
	Profile         Profile
}

// Register creates a new non-admin user.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	if input.Password != input.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	return s.createUser(ctx, input.Username, input.Password, input.Profile, false)
}

func (s *AuthService) createUser(ctx context.Context, username, password string, profile Profile, isAdmin bool) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if len(password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	experience := profile.Experience
	if experience < 0 {
		experience = 0
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		FullName:     strings.TrimSpace(profile.FullName),
		IsAdmin:      isAdmin,
		School:       strings.TrimSpace(profile.School),
		Subject:      strings.TrimSpace(profile.Subject),
		Category:     strings.TrimSpace(profile.Category),
		Experience:   experience,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate verifies credentials and returns the authenticated user.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(ctx context.Context, id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// EnsureAdmin creates the bootstrap administrator when no user with that name
// exists. An empty password is replaced by a generated one, which is logged.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string, logger *zap.Logger) error {
	_, err := s.userRepo.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up admin: %w", err)
	}

	generated := password == ""
	if generated {
		password, err = utils.GeneratePassword()
		if err != nil {
			return fmt.Errorf("failed to generate admin password: %w", err)
		}
	}

	_, err = s.createUser(ctx, username, password, Profile{FullName: "Administrator"}, true)
	if errors.Is(err, ErrUsernameTaken) {
		// another instance created it first
		return nil
	}
	if err != nil {
		return err
	}

	if generated {
		logger.Warn("created admin user with generated password",
			zap.String("username", username),
			zap.String("password", password),
		)
	} else {
		logger.Info("created admin user", zap.String("username", username))
	}
	return nil
}
