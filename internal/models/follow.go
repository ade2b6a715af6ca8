// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Follow represents a directed follow edge: FollowingUserID follows
// FollowedUserID. The composite unique index is the concurrency guard: two
// racing follow calls for the same ordered pair resolve at the constraint, and
// the loser surfaces as a conflict error.
type Follow struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	FollowingUserID uint      `gorm:"not null;uniqueIndex:idx_follow_pair" json:"following_user"`
	FollowedUserID  uint      `gorm:"not null;uniqueIndex:idx_follow_pair" json:"followed_user"`
	CreatedAt       time.Time `json:"created_at"`

	// Enrichment references; weak by id, a missing user is not an error.
	FollowingUser *User `gorm:"foreignKey:FollowingUserID" json:"following_user_detail,omitempty"`
	FollowedUser  *User `gorm:"foreignKey:FollowedUserID" json:"followed_user_detail,omitempty"`
}

// TableName specifies the table name for GORM.
func (Follow) TableName() string {
	return "follows"
}

// RelationIDs holds both directions of a user's follow graph in one view.
type RelationIDs struct {
	Following []uint `json:"following"`
	Followers []uint `json:"followers"`
}

// FollowStatus is the pairwise relationship between a viewer and a target.
type FollowStatus struct {
	ViewerFollowsTarget bool `json:"following"`
	TargetFollowsViewer bool `json:"follower"`
}
