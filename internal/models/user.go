package models

import (
	"time"

	"github.com/google/uuid"
)

const DefaultTimezone = "America/Sao_Paulo"

// User is an account holder. Email is unique, compared case-sensitively
// exactly as stored.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"size:180;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	DisplayName  string    `gorm:"size:255;not null" json:"displayName"`
	Timezone     string    `gorm:"size:64;not null;default:'America/Sao_Paulo'" json:"timezone"`
	CreatedAt    time.Time `json:"createdAt"`
}
