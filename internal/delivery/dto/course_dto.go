package dto

import "time"

type CourseResponse struct {
	ID              int       `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Difficulty      string    `json:"difficulty"`
	Duration        string    `json:"duration"`
	Modules         int       `json:"modules"`
	Thumbnail       string    `json:"thumbnail,omitempty"`
	ExpiryDays      int       `json:"expiry_days"`
	AssignedRoles   []string  `json:"assigned_roles"`
	DeliveryType    string    `json:"delivery_type"`
	VideoURL        string    `json:"video_url,omitempty"`
	MeetingURL      string    `json:"meeting_url,omitempty"`
	MeetingPlatform string    `json:"meeting_platform,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
	Total   int              `json:"total"`
}
