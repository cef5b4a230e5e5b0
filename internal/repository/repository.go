package repository

import (
	"context"

	"github.com/yukikurage/jetistik-hub/internal/models"
	"github.com/yukikurage/jetistik-hub/internal/utils"
)

// AchievementRepository defines the interface for achievement data access
type AchievementRepository interface {
	// Create inserts a new achievement
	Create(ctx context.Context, achievement *models.Achievement) error

	// FindByID finds an achievement by ID
	FindByID(ctx context.Context, id uint64) (*models.Achievement, error)

	// ListByUser returns the user's achievements, newest first
	ListByUser(ctx context.Context, userID uint64) ([]models.Achievement, error)

	// List returns achievements across all users with their owners loaded
	List(ctx context.Context, filter AchievementFilter) ([]models.Achievement, int64, error)

	// UpdateStatus overwrites the moderation status
	UpdateStatus(ctx context.Context, id uint64, status models.AchievementStatus) error

	// Delete removes an achievement
	Delete(ctx context.Context, id uint64) error
}

// AchievementFilter holds filtering options for listing achievements
type AchievementFilter struct {
	Status     *models.AchievementStatus
	Pagination *utils.PaginationParams
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user. A taken username yields ErrDuplicateUsername.
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// List returns users ordered by username
	List(ctx context.Context, params utils.PaginationParams) ([]models.User, int64, error)

	// Delete removes a user together with their achievements
	Delete(ctx context.Context, id uint64) error
}
