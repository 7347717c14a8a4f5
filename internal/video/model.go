package video

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Video represents a published video record. Records are created by the
// upload pipeline and mutated only by owner edits and view-count increments;
// they are never deleted here.
type Video struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `json:"description"`
	Subject      string    `json:"subject"`
	GradeLevel   string    `gorm:"column:grade_level" json:"gradeLevel"`
	VideoURL     string    `gorm:"column:video_url;not null" json:"videoUrl"`
	ThumbnailURL string    `gorm:"column:thumbnail_url" json:"thumbnailUrl"`
	Duration     int       `json:"duration"`
	Tags         string    `json:"tags"`
	UploaderID   uuid.UUID `gorm:"type:uuid;index;not null" json:"uploaderId"`
	ViewCount    int64     `gorm:"default:0" json:"viewCount"`
	IsPremium    bool      `gorm:"default:false" json:"isPremium"`
	PremiumPrice *float64  `json:"premiumPrice"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BeforeCreate assigns the record id and enforces creation-time invariants
func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	// New records always start with zero views
	v.ViewCount = 0
	if !v.IsPremium {
		v.PremiumPrice = nil
	}
	return nil
}
