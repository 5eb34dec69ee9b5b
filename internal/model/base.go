package model

import (
	"time"
)

// BaseEntity holds the audit columns shared by every table.
// GORM fills CreatedAt and UpdatedAt; CreatedBy is set by services that know
// the acting member.
type BaseEntity struct {
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
	CreatedBy *uint32   `gorm:"column:created_by"`
}
