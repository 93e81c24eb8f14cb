package domain

import "time"

// Status is the review state of an archive
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Statuses lists every accepted status value.
var Statuses = []Status{StatusPending, StatusApproved, StatusRejected}

const (
	// DefaultOrganization is stored when the issuer is left blank.
	DefaultOrganization = "未知单位"
	// DateLayout is the format of Archive.Date.
	DateLayout = "2006-01-02"
)

// Archive is one growth-record entry (academic, practice, award, certificate...)
type Archive struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	UserID       string    `json:"user_id" gorm:"index;not null"`
	Title        string    `json:"title" gorm:"not null"`
	Category     string    `json:"category" gorm:"index;not null"`
	Organization string    `json:"organization"`
	Date         string    `json:"date"`
	Status       Status    `json:"status" gorm:"not null"`
	ImageURL     string    `json:"image_url"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
