package db

import (
	"fmt"
	"log"

	"github.com/campusgig/platform-go/config"
	"github.com/campusgig/platform-go/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func createEnums() {
	enums := []string{
		`DO $$ BEGIN CREATE TYPE user_role AS ENUM ('client', 'student', 'admin'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE gig_status AS ENUM ('open', 'in_progress', 'awaiting_payout', 'completed', 'closed'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE applicant_status AS ENUM ('pending', 'accepted', 'rejected'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE transaction_status AS ENUM ('pending', 'succeeded', 'failed', 'pending_release_to_student', 'payout_to_student_succeeded'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE payment_intent_status AS ENUM ('created', 'confirmed', 'failed'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	}

	for _, enum := range enums {
		if err := DB.Exec(enum).Error; err != nil {
			log.Printf("Failed to create enum: %s, error: %v", enum, err)
		}
	}
}

func Migrate() {
	createEnums()

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Gig{},
		&models.Applicant{},
		&models.ProgressReport{},
		&models.PaymentIntent{},
		&models.Transaction{},
		&models.Review{},
		&models.ChatThread{},
		&models.ChatMessage{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}
}

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	// TranslateError turns driver unique-violations into
	// gorm.ErrDuplicatedKey, which the services match on.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	Migrate()

	log.Println("Database connected and migrated")
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
