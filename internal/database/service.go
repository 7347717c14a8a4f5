package database

import (
	"fmt"
	"time"

	"github.com/edulearn/platform/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DatabaseService implements the Service interface
type DatabaseService struct {
	config *config.DatabaseConfig
	logger Logger
	db     *gorm.DB
}

// NewDatabaseService creates a new database service instance
func NewDatabaseService(config *config.DatabaseConfig, logger Logger) *DatabaseService {
	return &DatabaseService{
		config: config,
		logger: logger,
	}
}

// Connect establishes a connection to the database
func (s *DatabaseService) Connect() (*gorm.DB, error) {
	s.logger.LogInfo(fmt.Sprintf("Attempting to connect to database: %s", s.config.Dbname), nil)

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		s.config.Host,
		s.config.User,
		s.config.Password,
		s.config.Dbname,
		s.config.Port,
		s.config.Sslmode,
		s.config.Timezone,
	)

	gormConfig := &gorm.Config{
		PrepareStmt: true,
		Logger:      NewGormLogger(s.logger, 200*time.Millisecond),
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(s.config.Pool.MaxOpen)
	sqlDB.SetMaxIdleConns(s.config.Pool.MaxIdle)

	s.logger.LogInfo(fmt.Sprintf("Connected to database: host=%s dbname=%s port=%d",
		s.config.Host, s.config.Dbname, s.config.Port), nil)

	s.db = db
	return db, nil
}

// Close closes the database connection
func (s *DatabaseService) Close() error {
	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err != nil {
			return fmt.Errorf("failed to get database instance: %v", err)
		}
		if err := sqlDB.Close(); err != nil {
			return fmt.Errorf("failed to close database connection: %v", err)
		}
	}
	return nil
}
