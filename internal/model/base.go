package model

import (
	"time"
)

// CreatedAt and UpdatedAt are managed automatically by GORM.
type BaseEntity struct {
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}
