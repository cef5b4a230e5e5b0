package repository

import (
	"context"

	"github.com/yukikurage/jetistik-hub/internal/database"
	"github.com/yukikurage/jetistik-hub/internal/models"
	"gorm.io/gorm"
)

// GormAchievementRepository is a GORM implementation of AchievementRepository
type GormAchievementRepository struct {
	db *gorm.DB
}

// NewAchievementRepository creates a new AchievementRepository
func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &GormAchievementRepository{db: db}
}

// Create inserts a new achievement
func (r *GormAchievementRepository) Create(ctx context.Context, achievement *models.Achievement) error {
	return r.db.WithContext(ctx).Create(achievement).Error
}

// FindByID finds an achievement by ID
func (r *GormAchievementRepository) FindByID(ctx context.Context, id uint64) (*models.Achievement, error) {
	var achievement models.Achievement
	if err := r.db.WithContext(ctx).First(&achievement, id).Error; err != nil {
		return nil, err
	}
	return &achievement, nil
}

// ListByUser returns the user's achievements, newest first
func (r *GormAchievementRepository) ListByUser(ctx context.Context, userID uint64) ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Scopes(database.NewestFirst).
		Find(&achievements).Error
	if err != nil {
		return nil, err
	}
	return achievements, nil
}

// List returns achievements across users, newest first, with owners preloaded
func (r *GormAchievementRepository) List(ctx context.Context, filter AchievementFilter) ([]models.Achievement, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Achievement{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Scopes(database.NewestFirst)
	if filter.Pagination != nil {
		listQuery = listQuery.Scopes(database.Paginate(*filter.Pagination))
	}

	var achievements []models.Achievement
	if err := listQuery.Preload("User").Find(&achievements).Error; err != nil {
		return nil, 0, err
	}
	return achievements, total, nil
}

// UpdateStatus overwrites the moderation status
func (r *GormAchievementRepository) UpdateStatus(ctx context.Context, id uint64, status models.AchievementStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Achievement{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Delete removes an achievement
func (r *GormAchievementRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&models.Achievement{}, id).Error
}
