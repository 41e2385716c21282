package users

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"size:255;not null;uniqueIndex:idx_users_username" json:"username"`
	Email        string `gorm:"size:255;not null;uniqueIndex:idx_users_email" json:"email"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
