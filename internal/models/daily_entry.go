package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DailyEntry is the one-per-day record of a user's intention. The composite
// unique index is the real guard against two requests racing to create the
// same day; application checks alone cannot close that window.
type DailyEntry struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uniq_user_date;index:idx_user_date" json:"userId"`
	User      User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Date      datatypes.Date `gorm:"not null;uniqueIndex:uniq_user_date;index:idx_user_date" json:"date"`
	Intention string         `gorm:"type:text;not null" json:"intention"`
	Completed Completion     `json:"completed"`
	Skipped   bool           `gorm:"not null;default:false" json:"skipped"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt *time.Time     `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

// Day returns the entry date as a plain date-only time.Time.
func (e *DailyEntry) Day() time.Time {
	return time.Time(e.Date)
}
