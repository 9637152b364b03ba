package psql

import (
	"context"
	"fmt"

	"studybuddy/studybuddy/config"
	"studybuddy/studybuddy/sources/psql/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Database struct {
	DB *gorm.DB
}

// Uniqueness of the shared discussion room is enforced in the database;
// EnsureDefaultRoom's ON CONFLICT DO NOTHING insert relies on this index.
const defaultRoomIndexDDL = `CREATE UNIQUE INDEX IF NOT EXISTS idx_study_rooms_default_name ` +
	`ON study_rooms (name) WHERE name = '` + models.DefaultRoomName + `'`

func NewDatabase(ctx context.Context, cfg config.Config) (*Database, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.WithContext(ctx).
		AutoMigrate(
			&models.User{},
			&models.Assessment{},
			&models.StudyRoom{},
			&models.RoomMember{},
			&models.RoomMessage{},
			&models.Note{},
		)
	if err != nil {
		return nil, fmt.Errorf("failed to auto-migrate: %w", err)
	}

	if err := db.WithContext(ctx).Exec(defaultRoomIndexDDL).Error; err != nil {
		return nil, fmt.Errorf("failed to create default room index: %w", err)
	}

	return &Database{DB: db}, nil
}

func (db *Database) Close() {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return
	}
	sqlDB.Close()
}
