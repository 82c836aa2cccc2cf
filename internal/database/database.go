package database

import (
	"fmt"
	"log"

	"talentscout-backend/internal/config"
	"talentscout-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Println("database connected")
	return db
}

// Migrate runs the additive schema fixes once at startup, then lets gorm
// reconcile the rest. Earlier deployments created answers without the
// is_correct column; the guard adds it with its default instead of
// recreating the table.
func Migrate(db *gorm.DB) {
	db.Exec(`DO $$
	BEGIN
		IF EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'answers')
		   AND NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'answers' AND column_name = 'is_correct')
		THEN
			ALTER TABLE answers ADD COLUMN is_correct boolean NOT NULL DEFAULT false;
			UPDATE answers SET is_correct = (user_answer = correct_answer);
		END IF;
	END $$;`)

	err := db.AutoMigrate(
		&models.Recruiter{},
		&models.Candidate{},
		&models.Answer{},
	)
	if err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}
	log.Println("database migrated")
}
