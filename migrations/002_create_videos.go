package migrations

import (
	"github.com/edulearn/platform/internal/video"
	"gorm.io/gorm"
)

type VideoMigration struct {
	db *gorm.DB
}

func NewVideoMigration(db *gorm.DB) *VideoMigration {
	return &VideoMigration{db: db}
}

func (m *VideoMigration) Up() error {
	if err := m.db.AutoMigrate(&video.Video{}); err != nil {
		return err
	}
	// Catalog listings sort by recency
	return m.db.Exec("CREATE INDEX IF NOT EXISTS idx_videos_created_at ON videos (created_at DESC)").Error
}

func (m *VideoMigration) Down() error {
	return m.db.Migrator().DropTable(&video.Video{})
}
