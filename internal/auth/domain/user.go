package domain

import "time"

// DefaultName is given to users who register without one.
const DefaultName = "新用户"

// User is a student profile. The row doubles as the credential record.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Phone        string    `json:"phone" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"` // Never return password in JSON
	Name         string    `json:"name"`
	StudentID    string    `json:"student_id"`
	Avatar       string    `json:"avatar"`
	Grade        string    `json:"grade"`
	Major        string    `json:"major"`
	University   string    `json:"university"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "profiles"
}
