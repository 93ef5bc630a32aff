package models

import (
	"errors"
	"time"
)

// Role is the closed set of account roles. Anything else is rejected at
// registration time, so code past the boundary can switch exhaustively.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleParticipant Role = "participant"
)

var ErrUnknownRole = errors.New("unknown role")

// ParseRole validates a raw role string against the closed enum.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleParticipant:
		return RoleParticipant, nil
	default:
		return "", ErrUnknownRole
	}
}

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         Role      `gorm:"size:20;not null" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
