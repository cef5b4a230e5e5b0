package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/jetistik-hub/internal/models"
	"github.com/yukikurage/jetistik-hub/internal/points"
	"github.com/yukikurage/jetistik-hub/internal/repository"
	"github.com/yukikurage/jetistik-hub/internal/storage"
	"github.com/yukikurage/jetistik-hub/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrAchievementNotFound = errors.New("achievement not found")
	ErrForbidden           = errors.New("permission denied")
	ErrInvalidAchievement  = errors.New("invalid achievement data")
)

// AchievementService handles submission, listing and moderation of achievements.
type AchievementService struct {
	repo     repository.AchievementRepository
	pipeline *storage.Pipeline
	logger   *zap.Logger
}

// NewAchievementService creates a new AchievementService
func NewAchievementService(repo repository.AchievementRepository, pipeline *storage.Pipeline, logger *zap.Logger) *AchievementService {
	return &AchievementService{
		repo:     repo,
		pipeline: pipeline,
		logger:   logger,
	}
}

// CreateAchievementInput represents the submitted form fields
type CreateAchievementInput struct {
	Type        models.AchievementType
	StudentName string
	Title       string
	Description string
	Category    string
	Level       models.Level
	Place       models.Place
}

func (in CreateAchievementInput) validate() error {
	switch in.Type {
	case models.AchievementTypeStudent, models.AchievementTypeTeacher,
		models.AchievementTypeSocial, models.AchievementTypeEducational:
	default:
		return ErrInvalidAchievement
	}
	switch in.Level {
	case models.LevelCity, models.LevelRegional, models.LevelNational, models.LevelInternational:
	default:
		return ErrInvalidAchievement
	}
	switch in.Place {
	case models.PlaceFirst, models.PlaceSecond, models.PlaceThird, models.PlaceCertificate:
	default:
		return ErrInvalidAchievement
	}
	return nil
}

// Create stores the attachment, if any, and records a pending achievement
// for owner. Points always come from the points table.
func (s *AchievementService) Create(ctx context.Context, owner *models.User, input CreateAchievementInput, att storage.Attachment) (*models.Achievement, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	achievement := &models.Achievement{
		UserID:      owner.ID,
		Type:        input.Type,
		StudentName: strings.TrimSpace(input.StudentName),
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Category:    strings.TrimSpace(input.Category),
		Level:       input.Level,
		Place:       input.Place,
		Points:      points.For(input.Level, input.Place),
		Status:      models.StatusPending,
	}

	var ref storage.FileRef
	if att.Present() {
		stored, err := s.pipeline.Store(ctx, owner.ID, att)
		if err != nil {
			return nil, err
		}
		ref = stored
		achievement.FileBackend = ref.Backend
		achievement.FilePath = ref.Key
		achievement.FileName = ref.Name
	}

	if err := s.repo.Create(ctx, achievement); err != nil {
		if achievement.HasFile() {
			if delErr := s.pipeline.Delete(ctx, ref); delErr != nil {
				s.logger.Warn("failed to remove orphaned upload",
					zap.String("key", ref.Key),
					zap.Error(delErr),
				)
			}
		}
		return nil, fmt.Errorf("failed to create achievement: %w", err)
	}

	return achievement, nil
}

// ListForUser returns the user's own achievements in any status, newest first
func (s *AchievementService) ListForUser(ctx context.Context, userID uint64) ([]models.Achievement, error) {
	achievements, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	return achievements, nil
}

// ListPending returns every pending achievement. Admin only.
func (s *AchievementService) ListPending(ctx context.Context, actor *models.User) ([]models.Achievement, error) {
	status := models.StatusPending
	achievements, _, err := s.ListByStatus(ctx, actor, &status, nil)
	return achievements, err
}

// ListByStatus returns achievements of all users filtered by status. A nil
// status lists everything; nil params disables pagination. Admin only.
func (s *AchievementService) ListByStatus(ctx context.Context, actor *models.User, status *models.AchievementStatus, params *utils.PaginationParams) ([]models.Achievement, int64, error) {
	if !actor.IsAdmin {
		return nil, 0, ErrForbidden
	}

	achievements, total, err := s.repo.List(ctx, repository.AchievementFilter{
		Status:     status,
		Pagination: params,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list achievements: %w", err)
	}
	return achievements, total, nil
}

// Approve marks an achievement approved. Admin only.
func (s *AchievementService) Approve(ctx context.Context, id uint64, actor *models.User) (*models.Achievement, error) {
	return s.transition(ctx, id, actor, models.StatusApproved)
}

// Reject marks an achievement rejected. Admin only.
func (s *AchievementService) Reject(ctx context.Context, id uint64, actor *models.User) (*models.Achievement, error) {
	return s.transition(ctx, id, actor, models.StatusRejected)
}

func (s *AchievementService) transition(ctx context.Context, id uint64, actor *models.User, status models.AchievementStatus) (*models.Achievement, error) {
	if !actor.IsAdmin {
		return nil, ErrForbidden
	}

	achievement, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to update achievement status: %w", err)
	}
	achievement.Status = status

	s.logger.Info("achievement moderated",
		zap.Uint64("achievement_id", id),
		zap.Uint64("admin_id", actor.ID),
		zap.String("status", string(status)),
	)
	return achievement, nil
}

// Delete removes an achievement and its stored file. Only the owner or an
// admin may delete.
func (s *AchievementService) Delete(ctx context.Context, id uint64, actor *models.User) error {
	achievement, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if !achievement.OwnedBy(actor.ID) && !actor.IsAdmin {
		return ErrForbidden
	}

	s.removeFile(ctx, *achievement)

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete achievement: %w", err)
	}
	return nil
}

// Download reads the attached file. Only the owner or an admin may download.
func (s *AchievementService) Download(ctx context.Context, id uint64, actor *models.User) (*storage.Object, string, error) {
	achievement, err := s.find(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if !achievement.OwnedBy(actor.ID) && !actor.IsAdmin {
		return nil, "", ErrForbidden
	}

	ref, ok := storage.RefOf(*achievement)
	if !ok {
		return nil, "", storage.ErrNoAttachment
	}

	obj, err := s.pipeline.Open(ctx, ref)
	if err != nil {
		if errors.Is(err, storage.ErrFileMissing) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("failed to read attachment: %w", err)
	}
	return obj, ref.Name, nil
}

func (s *AchievementService) find(ctx context.Context, id uint64) (*models.Achievement, error) {
	achievement, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAchievementNotFound
		}
		return nil, fmt.Errorf("failed to find achievement: %w", err)
	}
	return achievement, nil
}

// removeFile deletes the stored attachment. Failures are logged; the record
// is deleted regardless.
func (s *AchievementService) removeFile(ctx context.Context, achievement models.Achievement) {
	ref, ok := storage.RefOf(achievement)
	if !ok {
		return
	}
	if err := s.pipeline.Delete(ctx, ref); err != nil {
		s.logger.Warn("failed to delete stored file",
			zap.Uint64("achievement_id", achievement.ID),
			zap.String("key", ref.Key),
			zap.Error(err),
		)
	}
}
