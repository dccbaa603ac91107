package models

import (
	"time"

	"gorm.io/datatypes"
)

type UserRole string

const (
	UserRoleClient  UserRole = "client"
	UserRoleStudent UserRole = "student"
	UserRoleAdmin   UserRole = "admin"
)

type User struct {
	UID      uint     `gorm:"primaryKey;column:u_id" json:"uid"`
	Username string   `gorm:"size:50;not null;unique" json:"username"`
	Password string   `gorm:"size:255;not null" json:"-"`
	Email    *string  `gorm:"size:100" json:"email,omitempty"`
	FullName *string  `gorm:"size:50" json:"full_name,omitempty"`
	Role     UserRole `gorm:"type:user_role;default:'student';not null" json:"role"`

	// Student-side profile fields consumed by discovery ranking.
	Skills          datatypes.JSONSlice[string] `gorm:"column:skills" json:"skills"`
	FollowedClients datatypes.JSONSlice[uint]   `gorm:"column:followed_clients" json:"followed_clients"`
	BlockedClients  datatypes.JSONSlice[uint]   `gorm:"column:blocked_clients" json:"blocked_clients"`

	// Running aggregate maintained by the review service inside a
	// row-locking transaction.
	AverageRating float64 `gorm:"type:numeric(4,2);default:0" json:"average_rating"`
	TotalRatings  int     `gorm:"default:0" json:"total_ratings"`

	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}
