package models

import (
	"time"
)

// User represents the canonical identity entity.
type User struct {
	ID             uint      `gorm:"column:user_id;primaryKey;autoIncrement"`
	Username       string    `gorm:"column:username;not null;uniqueIndex"`
	HashedPassword string    `gorm:"column:hashed_password;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string { return "users" }
