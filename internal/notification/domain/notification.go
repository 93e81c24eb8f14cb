package domain

import "time"

// Type classifies a notification for display
type Type string

const (
	TypeCertificate Type = "certificate"
	TypeStatus      Type = "status"
	TypeMilestone   Type = "milestone"
	TypeSystem      Type = "system"
	TypeAlert       Type = "alert"
)

// Valid reports whether t is one of the known types.
func (t Type) Valid() bool {
	switch t {
	case TypeCertificate, TypeStatus, TypeMilestone, TypeSystem, TypeAlert:
		return true
	}
	return false
}

// Notification is a message shown in the user's inbox. Rows are only created
// as side effects of archive lifecycle events.
type Notification struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"index;not null"`
	Type        Type      `json:"type" gorm:"not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Read        bool      `json:"read" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
}
