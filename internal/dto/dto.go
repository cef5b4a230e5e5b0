package dto

import (
	"time"

	"github.com/yukikurage/jetistik-hub/internal/models"
	"github.com/yukikurage/jetistik-hub/internal/utils"
)

// UserDTO represents a user in page data and JSON responses
type UserDTO struct {
	ID         uint64    `json:"id"`
	Username   string    `json:"username"`
	FullName   string    `json:"full_name"`
	IsAdmin    bool      `json:"is_admin"`
	School     string    `json:"school,omitempty"`
	Subject    string    `json:"subject,omitempty"`
	Category   string    `json:"category,omitempty"`
	Experience int       `json:"experience"`
	CreatedAt  time.Time `json:"created_at"`
}

// AchievementDTO represents an achievement in page data and JSON responses
type AchievementDTO struct {
	ID          uint64                   `json:"id"`
	Type        models.AchievementType   `json:"type"`
	StudentName string                   `json:"student_name,omitempty"`
	Title       string                   `json:"title"`
	Description string                   `json:"description,omitempty"`
	Category    string                   `json:"category,omitempty"`
	Level       models.Level             `json:"level"`
	Place       models.Place             `json:"place"`
	Points      int                      `json:"points"`
	Status      models.AchievementStatus `json:"status"`
	HasFile     bool                     `json:"has_file"`
	FileName    string                   `json:"file_name,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
	Owner       *UserDTO                 `json:"owner,omitempty"`
}

// CabinetResponse is the data behind the personal cabinet page
type CabinetResponse struct {
	User         UserDTO          `json:"user"`
	Achievements []AchievementDTO `json:"achievements"`
	TotalPoints  int              `json:"total_points"`
}

// AchievementListResponse represents a paginated moderation list
type AchievementListResponse struct {
	Achievements []AchievementDTO         `json:"achievements"`
	Status       string                   `json:"status"`
	Pagination   utils.PaginationResponse `json:"pagination"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users      []UserDTO                `json:"users"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// Conversion functions

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:         user.ID,
		Username:   user.Username,
		FullName:   user.DisplayName(),
		IsAdmin:    user.IsAdmin,
		School:     user.School,
		Subject:    user.Subject,
		Category:   user.Category,
		Experience: user.Experience,
		CreatedAt:  user.CreatedAt,
	}
}

// ToAchievementDTO converts an Achievement model to AchievementDTO
func ToAchievementDTO(a models.Achievement) AchievementDTO {
	dto := AchievementDTO{
		ID:          a.ID,
		Type:        a.Type,
		StudentName: a.StudentName,
		Title:       a.Title,
		Description: a.Description,
		Category:    a.Category,
		Level:       a.Level,
		Place:       a.Place,
		Points:      a.Points,
		Status:      a.Status,
		HasFile:     a.HasFile(),
		FileName:    a.FileName,
		CreatedAt:   a.CreatedAt,
	}

	// Include owner if preloaded
	if a.User.ID != 0 {
		owner := ToUserDTO(a.User)
		dto.Owner = &owner
	}

	return dto
}

// ToAchievementDTOs converts a slice of achievements
func ToAchievementDTOs(achievements []models.Achievement) []AchievementDTO {
	items := make([]AchievementDTO, len(achievements))
	for i, a := range achievements {
		items[i] = ToAchievementDTO(a)
	}
	return items
}

// ToUserListResponse converts a page of users to UserListResponse
func ToUserListResponse(users []models.User, params utils.PaginationParams, total int64) UserListResponse {
	items := make([]UserDTO, len(users))
	for i, u := range users {
		items[i] = ToUserDTO(u)
	}
	return UserListResponse{
		Users:      items,
		Pagination: utils.PaginationResponse{Page: params.Page, Limit: params.Limit, Total: total},
	}
}
