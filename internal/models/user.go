package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"

	StatusActive  = "active"
	StatusBlocked = "blocked"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:150" json:"name"`
	Email     string    `gorm:"size:150;uniqueIndex" json:"email"`
	Password  string    `gorm:"size:255" json:"-"`
	Role      string    `gorm:"size:20;default:user" json:"role"`
	Status    string    `gorm:"size:20;default:active" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
