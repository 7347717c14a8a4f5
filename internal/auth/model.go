package auth

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user profile
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	FullName  string    `json:"fullName"`
	Role      Role      `gorm:"type:string;default:'student'" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName overrides the table name used by GORM
func (User) TableName() string {
	return "profiles"
}
