package domain

import (
	"time"
)

// Trainer represents a coaching account. The email is the login identity
// and must be unique across all trainers.
type Trainer struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	Email            string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash     string    `gorm:"not null" json:"-"` // Never expose this via JSON
	SubscriptionPlan string    `gorm:"default:'free'" json:"subscription_plan"`
	IsActive         bool      `gorm:"default:true" json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`

	// Roster of clients owned by this trainer.
	Clients []Client `gorm:"foreignKey:TrainerID" json:"-"`
}

// TableName keeps the table name explicit rather than relying on
// GORM's pluralization rules.
func (Trainer) TableName() string {
	return "trainers"
}
