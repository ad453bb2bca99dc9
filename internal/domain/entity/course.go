package entity

import (
	"time"

	"gorm.io/datatypes"
)

type CourseCategory string

const (
	CategoryMandatory  CourseCategory = "Mandatory"
	CategorySpecialist CourseCategory = "Specialist"
	CategoryAdvanced   CourseCategory = "Advanced"
	CategoryOptional   CourseCategory = "Optional"
)

func (c CourseCategory) String() string {
	return string(c)
}

func (c CourseCategory) IsValid() bool {
	switch c {
	case CategoryMandatory, CategorySpecialist, CategoryAdvanced, CategoryOptional:
		return true
	}
	return false
}

type CourseDifficulty string

const (
	DifficultyBeginner     CourseDifficulty = "Beginner"
	DifficultyIntermediate CourseDifficulty = "Intermediate"
	DifficultyAdvanced     CourseDifficulty = "Advanced"
)

func (d CourseDifficulty) String() string {
	return string(d)
}

func (d CourseDifficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// CourseDeliveryType distinguishes on-demand video courses from scheduled
// live sessions held over a meeting platform.
type CourseDeliveryType string

const (
	DeliveryVideo       CourseDeliveryType = "video"
	DeliveryLiveSession CourseDeliveryType = "live_session"
)

func (d CourseDeliveryType) String() string {
	return string(d)
}

// Course is reference data: end users never mutate it. AssignedRoles tags
// which staff roles see the course in their catalog; enrollment grants
// visibility regardless of the tags.
type Course struct {
	ID              int                           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title           string                        `gorm:"type:varchar(255);not null" json:"title"`
	Description     string                        `gorm:"type:text;not null" json:"description"`
	Category        CourseCategory                `gorm:"type:varchar(50);not null" json:"category"`
	Difficulty      CourseDifficulty              `gorm:"type:varchar(50);not null" json:"difficulty"`
	Duration        string                        `gorm:"type:varchar(50);not null" json:"duration"`
	Modules         int                           `gorm:"not null;default:1" json:"modules"`
	Thumbnail       string                        `gorm:"type:varchar(512)" json:"thumbnail,omitempty"`
	ExpiryDays      int                           `gorm:"not null;default:365" json:"expiry_days"`
	AssignedRoles   datatypes.JSONSlice[UserRole] `gorm:"not null" json:"assigned_roles"`
	DeliveryType    CourseDeliveryType            `gorm:"type:varchar(50);not null;default:'video'" json:"delivery_type"`
	VideoURL        string                        `gorm:"type:varchar(512)" json:"video_url,omitempty"`
	MeetingURL      string                        `gorm:"type:varchar(512)" json:"meeting_url,omitempty"`
	MeetingPlatform string                        `gorm:"type:varchar(100)" json:"meeting_platform,omitempty"`
	CreatedAt       time.Time                     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time                     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Course) TableName() string {
	return "courses"
}

// VisibleTo reports whether the course is tagged for the given role.
func (c *Course) VisibleTo(role UserRole) bool {
	for _, r := range c.AssignedRoles {
		if r == role {
			return true
		}
	}
	return false
}
