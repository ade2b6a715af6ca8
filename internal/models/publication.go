// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Publication represents a text post, optionally with one attached media URL.
type Publication struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	File      string    `json:"file,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// Author reference; weak by id, optional enrichment only.
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for GORM.
func (Publication) TableName() string {
	return "publications"
}
