// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Role values assigned to users.
const (
	RoleUser  = "role_user"
	RoleAdmin = "role_admin"
)

// User represents a registered account.
//
// Email is stored lowercased; Nick keeps its display case but uniqueness is
// case-insensitive, enforced by a unique index over lower(nick) so concurrent
// registrations cannot slip past the handler-level duplicate check. Password
// holds the bcrypt hash and is never serialized.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	LastName  string    `gorm:"not null" json:"last_name"`
	Nick      string    `gorm:"not null;uniqueIndex:idx_users_nick_lower,expression:lower(nick)" json:"nick"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);default:'role_user'" json:"role"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Publications []Publication `gorm:"foreignKey:UserID" json:"publications,omitempty"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// PublicUser is the projection of User exposed on listings: no password hash,
// email or role.
type PublicUser struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	LastName  string    `json:"last_name"`
	Nick      string    `json:"nick"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

// Public returns the listing projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		LastName:  u.LastName,
		Nick:      u.Nick,
		Image:     u.Image,
		CreatedAt: u.CreatedAt,
	}
}
