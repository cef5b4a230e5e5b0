package models

import "time"

type AchievementType string

const (
	AchievementTypeStudent     AchievementType = "student"
	AchievementTypeTeacher     AchievementType = "teacher"
	AchievementTypeSocial      AchievementType = "social"
	AchievementTypeEducational AchievementType = "educational"
)

type Level string

const (
	LevelCity          Level = "city"
	LevelRegional      Level = "regional"
	LevelNational      Level = "national"
	LevelInternational Level = "international"
)

type Place string

const (
	PlaceFirst       Place = "1"
	PlaceSecond      Place = "2"
	PlaceThird       Place = "3"
	PlaceCertificate Place = "certificate"
)

type AchievementStatus string

const (
	StatusPending  AchievementStatus = "pending"
	StatusApproved AchievementStatus = "approved"
	StatusRejected AchievementStatus = "rejected"
)

// Valid reports whether s is one of the known statuses.
func (s AchievementStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type FileBackend string

const (
	FileBackendLocal  FileBackend = "local"
	FileBackendRemote FileBackend = "remote"
)

type Achievement struct {
	ID          uint64            `gorm:"primarykey" json:"id"`
	UserID      uint64            `gorm:"not null;index" json:"user_id"`
	Type        AchievementType   `gorm:"type:varchar(20);not null" json:"type"`
	StudentName string            `gorm:"type:varchar(255)" json:"student_name,omitempty"`
	Title       string            `gorm:"type:varchar(255);not null" json:"title"`
	Description string            `gorm:"type:text" json:"description"`
	Category    string            `gorm:"type:varchar(100)" json:"category"`
	Level       Level             `gorm:"type:varchar(20);not null" json:"level"`
	Place       Place             `gorm:"type:varchar(20);not null" json:"place"`
	FileBackend FileBackend       `gorm:"type:varchar(10)" json:"-"`
	FilePath    string            `gorm:"type:varchar(512)" json:"-"`
	FileName    string            `gorm:"type:varchar(255)" json:"file_name,omitempty"`
	Points      int               `gorm:"not null;default:0" json:"points"`
	Status      AchievementStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt   time.Time         `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// HasFile reports whether a file was attached at submission.
func (a Achievement) HasFile() bool {
	return a.FilePath != ""
}

// OwnedBy reports whether userID submitted the achievement.
func (a Achievement) OwnedBy(userID uint64) bool {
	return a.UserID == userID
}
