package database

import (
	"fmt"
	"log"

	"pawlearn_backend/internal/config"
	"pawlearn_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the MySQL pool and migrates the schema. The handle is returned
// to the caller for injection; no package-level singleton is kept.
func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}

// Migrate applies the schema for every persisted entity. Split out so the
// seeding CLI and tests can reuse it against other handles.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Animal{},
		&model.AnimalImage{},
		&model.Course{},
		&model.Lesson{},
		&model.LessonStep{},
		&model.LessonProgress{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.QuizOption{},
		&model.QuizAttempt{},
		&model.Badge{},
		&model.UserBadge{},
	)
}
