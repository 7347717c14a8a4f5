package migrations

import (
	"github.com/edulearn/platform/internal/auth"
	"gorm.io/gorm"
)

type ProfileMigration struct {
	db *gorm.DB
}

func NewProfileMigration(db *gorm.DB) *ProfileMigration {
	return &ProfileMigration{db: db}
}

func (m *ProfileMigration) Up() error {
	return m.db.AutoMigrate(&auth.User{})
}

func (m *ProfileMigration) Down() error {
	return m.db.Migrator().DropTable(&auth.User{})
}
