package main

import (
	"log"
	"os"

	"predictplay-be/internal/model"
	"predictplay-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions & Enums
	log.Println("Step 1: Setting up Extensions and Enums...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,

		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'token_transaction_type') THEN CREATE TYPE token_transaction_type AS ENUM ('deduction', 'credit'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'contest_status') THEN CREATE TYPE contest_status AS ENUM ('active', 'closed'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'analyzer_request_status') THEN CREATE TYPE analyzer_request_status AS ENUM ('processing', 'completed', 'failed'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'vote_type') THEN CREATE TYPE vote_type AS ENUM ('up', 'down'); END IF; END $$;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.UserTokenBalance{},
		&model.TokenTransaction{},
		&model.Contest{},
		&model.ContestEntry{},
		&model.AnalyzerModel{},
		&model.AnalyzerRequest{},
		&model.UserStreak{},
		&model.UserXP{},
		&model.BadgeDefinition{},
		&model.UserBadge{},
		&model.SocialVote{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatal("Error: AutoMigrate failed:", err)
	}

	// 5. Post-Migration: constraints AutoMigrate cannot express
	log.Println("Step 3: Applying partial unique indexes...")

	postSQL := []string{
		// One entry per (contest, user, card); NULL cards are their own identity.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_contest_entry_identity
			ON contest_entries (contest_id, user_id, prediction_card_id)
			WHERE prediction_card_id IS NOT NULL;`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_contest_entry_identity_nocard
			ON contest_entries (contest_id, user_id)
			WHERE prediction_card_id IS NULL;`,

		// One vote per user per target.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_vote_analyzer_target
			ON social_votes (user_id, analyzer_request_id)
			WHERE analyzer_request_id IS NOT NULL;`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_vote_card_target
			ON social_votes (user_id, prediction_card_id)
			WHERE prediction_card_id IS NOT NULL;`,
	}

	for _, sql := range postSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to create index: %v. Continuing...", err)
		}
	}

	log.Println("✅ Migration completed successfully")
}
