package handlers

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/jetistik-hub/internal/constants"
	"github.com/yukikurage/jetistik-hub/internal/dto"
	apierrors "github.com/yukikurage/jetistik-hub/internal/errors"
	"github.com/yukikurage/jetistik-hub/internal/i18n"
	"github.com/yukikurage/jetistik-hub/internal/logger"
	"github.com/yukikurage/jetistik-hub/internal/middleware"
	"github.com/yukikurage/jetistik-hub/internal/models"
	"github.com/yukikurage/jetistik-hub/internal/points"
	"github.com/yukikurage/jetistik-hub/internal/services"
	"github.com/yukikurage/jetistik-hub/internal/storage"
	"github.com/yukikurage/jetistik-hub/internal/utils"
	"go.uber.org/zap"
)

var (
	achievementTypes = []models.AchievementType{
		models.AchievementTypeStudent, models.AchievementTypeTeacher,
		models.AchievementTypeSocial, models.AchievementTypeEducational,
	}
	achievementLevels = []models.Level{
		models.LevelCity, models.LevelRegional, models.LevelNational, models.LevelInternational,
	}
	achievementPlaces = []models.Place{
		models.PlaceFirst, models.PlaceSecond, models.PlaceThird, models.PlaceCertificate,
	}
	moderationFilters = []string{
		string(models.StatusPending), string(models.StatusApproved), string(models.StatusRejected), "all",
	}
)

// AchievementHandler handles the cabinet, submission, download and moderation pages.
type AchievementHandler struct {
	achievementService *services.AchievementService
}

// NewAchievementHandler creates a new AchievementHandler
func NewAchievementHandler(achievementService *services.AchievementService) *AchievementHandler {
	return &AchievementHandler{
		achievementService: achievementService,
	}
}

// Home renders the personal cabinet: profile, own achievements and score.
func (h *AchievementHandler) Home(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	achievements, err := h.achievementService.ListForUser(c.Request.Context(), user.ID)
	if err != nil {
		internalError(c, "failed to list achievements", err)
		return
	}

	body := dto.CabinetResponse{
		User:         dto.ToUserDTO(*user),
		Achievements: dto.ToAchievementDTOs(achievements),
		TotalPoints:  points.Total(achievements),
	}
	render(c, http.StatusOK, "home.html", gin.H{
		"Achievements": body.Achievements,
		"TotalPoints":  body.TotalPoints,
		"Types":        achievementTypes,
		"Levels":       achievementLevels,
		"Places":       achievementPlaces,
	}, body)
}

// Create handles the multipart submission form.
func (h *AchievementHandler) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, constants.MaxRequestBodySize)

	form, att, err := readSubmission(c)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case storage.IsValidationError(err):
			respondAchievementError(c, err, "/home")
		case errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large"):
			apierrors.RedirectWithError(c, "/home", apierrors.CodeFileTooLarge)
		default:
			apierrors.BadRequest(c, "")
		}
		return
	}

	input := services.CreateAchievementInput{
		Type:        models.AchievementType(form.Get("type")),
		StudentName: form.Get("student_name"),
		Title:       form.Get("title"),
		Description: form.Get("description"),
		Category:    form.Get("category"),
		Level:       models.Level(form.Get("level")),
		Place:       models.Place(form.Get("place")),
	}

	achievement, err := h.achievementService.Create(c.Request.Context(), user, input, att)
	if err != nil {
		respondAchievementError(c, err, "/home")
		return
	}

	logger.FromGin(c).Info("achievement submitted",
		zap.Uint64("achievement_id", achievement.ID),
		zap.Uint64("user_id", user.ID),
		zap.Int("points", achievement.Points),
	)
	flash(c, i18n.KeyAchievementAdded)
	seeOther(c, "/home")
}

// readSubmission streams the form parts. The file extension is checked from
// the part header before any content is read, and at most one byte past the
// upload limit is buffered, so rejections follow the upload rules order even
// when the body is oversized. URL-encoded posts carry no attachment.
func readSubmission(c *gin.Context) (url.Values, storage.Attachment, error) {
	mr, err := c.Request.MultipartReader()
	if err != nil {
		if !errors.Is(err, http.ErrNotMultipart) {
			return nil, storage.NoAttachment, err
		}
		if err := c.Request.ParseForm(); err != nil {
			return nil, storage.NoAttachment, err
		}
		return c.Request.PostForm, storage.NoAttachment, nil
	}

	form := url.Values{}
	att := storage.NoAttachment
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return form, att, nil
		}
		if err != nil {
			return nil, storage.NoAttachment, err
		}

		name := part.FormName()
		switch {
		case name == "file":
			if part.FileName() == "" {
				continue
			}
			if err := storage.CheckExtension(part.FileName()); err != nil {
				return nil, storage.NoAttachment, err
			}
			content, err := io.ReadAll(io.LimitReader(part, constants.MaxUploadSize+1))
			if err != nil {
				return nil, storage.NoAttachment, err
			}
			if len(content) > constants.MaxUploadSize {
				return nil, storage.NoAttachment, storage.ErrFileTooLarge
			}
			att = storage.NewAttachment(part.FileName(), content)
		case name != "":
			value, err := io.ReadAll(io.LimitReader(part, constants.MaxFormFieldSize))
			if err != nil {
				return nil, storage.NoAttachment, err
			}
			form.Add(name, string(value))
		}
	}
}

// Download streams the attachment to its owner or an admin.
func (h *AchievementHandler) Download(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id, _ := middleware.GetRecordID(c)

	obj, name, err := h.achievementService.Download(c.Request.Context(), id, user)
	if err != nil {
		respondAchievementError(c, err, "/home")
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	c.Header("X-Content-Type-Options", "nosniff")
	c.Data(http.StatusOK, obj.ContentType, obj.Data)
}

// Delete removes an achievement owned by the user, or any achievement for admins.
func (h *AchievementHandler) Delete(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id, _ := middleware.GetRecordID(c)
	next := localPath(c.PostForm("next"), "/home")

	if err := h.achievementService.Delete(c.Request.Context(), id, user); err != nil {
		respondAchievementError(c, err, next)
		return
	}

	logger.FromGin(c).Info("achievement deleted", zap.Uint64("achievement_id", id), zap.Uint64("actor_id", user.ID))
	seeOther(c, next)
}

// Moderate renders the moderation queue. ?status= selects pending (default),
// approved, rejected or all.
func (h *AchievementHandler) Moderate(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	filter := c.DefaultQuery("status", string(models.StatusPending))
	var status *models.AchievementStatus
	if filter != "all" {
		s := models.AchievementStatus(filter)
		if !s.Valid() {
			s = models.StatusPending
			filter = string(s)
		}
		status = &s
	}
	params := utils.GetPaginationParams(c)

	achievements, total, err := h.achievementService.ListByStatus(c.Request.Context(), user, status, &params)
	if err != nil {
		respondAchievementError(c, err, "/moderate")
		return
	}

	body := dto.AchievementListResponse{
		Achievements: dto.ToAchievementDTOs(achievements),
		Status:       filter,
		Pagination:   utils.PaginationResponse{Page: params.Page, Limit: params.Limit, Total: total},
	}
	render(c, http.StatusOK, "moderate.html", gin.H{
		"Achievements": body.Achievements,
		"Status":       body.Status,
		"Statuses":     moderationFilters,
		"Pagination":   body.Pagination,
	}, body)
}

// Approve marks an achievement approved.
func (h *AchievementHandler) Approve(c *gin.Context) {
	h.moderate(c, h.achievementService.Approve)
}

// Reject marks an achievement rejected.
func (h *AchievementHandler) Reject(c *gin.Context) {
	h.moderate(c, h.achievementService.Reject)
}

func (h *AchievementHandler) moderate(c *gin.Context, transition func(context.Context, uint64, *models.User) (*models.Achievement, error)) {
	user, _ := middleware.CurrentUser(c)
	id, _ := middleware.GetRecordID(c)
	next := localPath(c.PostForm("next"), "/moderate")

	if _, err := transition(c.Request.Context(), id, user); err != nil {
		respondAchievementError(c, err, next)
		return
	}
	seeOther(c, next)
}

func respondAchievementError(c *gin.Context, err error, location string) {
	switch {
	case errors.Is(err, storage.ErrUnsupportedFileType):
		apierrors.RedirectWithError(c, location, apierrors.CodeUnsupportedFile)
	case errors.Is(err, storage.ErrFileTooLarge):
		apierrors.RedirectWithError(c, location, apierrors.CodeFileTooLarge)
	case errors.Is(err, storage.ErrEmptyFile):
		apierrors.RedirectWithError(c, location, apierrors.CodeEmptyFile)
	case errors.Is(err, services.ErrInvalidAchievement):
		apierrors.RedirectWithError(c, location, apierrors.CodeInvalidInput)
	case errors.Is(err, services.ErrForbidden):
		apierrors.Forbidden(c, "")
	case errors.Is(err, services.ErrAchievementNotFound):
		apierrors.NotFound(c, "")
	case errors.Is(err, storage.ErrNoAttachment):
		apierrors.NotFound(c, i18n.T(apierrors.LocaleOf(c), i18n.ErrorKey(apierrors.CodeNoAttachment)))
	case errors.Is(err, storage.ErrFileMissing):
		apierrors.Gone(c, "")
	default:
		internalError(c, "achievement operation failed", err)
	}
}
