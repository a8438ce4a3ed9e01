package main

import (
	"log"
	"os"
	"time"

	"predictplay-be/internal/model"
	"predictplay-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding badge definitions...")
	seedBadgeDefinitions(db)

	color.Cyan("Seeding analyzer models...")
	seedAnalyzerModels(db)

	color.Cyan("Seeding demo contests...")
	seedContests(db)

	color.Green("✅ Seed completed")
}

func seedBadgeDefinitions(db *gorm.DB) {
	badges := []model.BadgeDefinition{
		{Id: uuid.New(), Slug: "first_win", Name: "First Win", Description: "Get your first prediction right", XpReward: 100},
		{Id: uuid.New(), Slug: "streak_master", Name: "Streak Master", Description: "Stay active seven days in a row", XpReward: 250},
		{Id: uuid.New(), Slug: "contest_champion", Name: "Contest Champion", Description: "Win a contest entry", XpReward: 500},
		{Id: uuid.New(), Slug: "social_butterfly", Name: "Social Butterfly", Description: "Cast 50 votes on the community feed", XpReward: 150},
		{Id: uuid.New(), Slug: "high_roller", Name: "High Roller", Description: "Spend 1000 tokens", XpReward: 300},
		{Id: uuid.New(), Slug: "accuracy_ace", Name: "Accuracy Ace", Description: "Keep an 80% hit rate over 20 judged entries", XpReward: 400},
	}

	for _, b := range badges {
		b.CreatedAt = time.Now()
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).Create(&b).Error
		if err != nil {
			color.Red("  failed to seed badge %s: %v", b.Slug, err)
			continue
		}
		color.White("  badge: %s", b.Slug)
	}
}

func seedAnalyzerModels(db *gorm.DB) {
	models := []model.AnalyzerModel{
		{Id: uuid.New(), Name: "Match Outcome Analyzer", Slug: "match-outcome", TokenCost: 5, IsActive: true},
		{Id: uuid.New(), Name: "Player Form Analyzer", Slug: "player-form", TokenCost: 3, IsActive: true},
		{Id: uuid.New(), Name: "Legacy Odds Model", Slug: "legacy-odds", TokenCost: 1, IsActive: false},
	}

	for _, m := range models {
		m.CreatedAt = time.Now()
		m.UpdatedAt = m.CreatedAt
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).Create(&m).Error
		if err != nil {
			color.Red("  failed to seed model %s: %v", m.Slug, err)
			continue
		}
		color.White("  model: %s (cost %d)", m.Slug, m.TokenCost)
	}
}

func seedContests(db *gorm.DB) {
	maxEntries := 100
	endsAt := time.Now().AddDate(0, 0, 14)

	contests := []model.Contest{
		{
			Id:          uuid.New(),
			Title:       "Weekend Derby Picks",
			Description: "Predict the derby scorelines",
			Status:      "active",
			TokenCost:   50,
			EndsAt:      &endsAt,
		},
		{
			Id:          uuid.New(),
			Title:       "Top Scorer Challenge",
			Description: "Call the league top scorer",
			Status:      "active",
			TokenCost:   25,
			MaxEntries:  &maxEntries,
			EndsAt:      &endsAt,
		},
	}

	for _, c := range contests {
		c.CreatedAt = time.Now()
		c.UpdatedAt = c.CreatedAt
		err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&c).Error
		if err != nil {
			color.Red("  failed to seed contest %q: %v", c.Title, err)
			continue
		}
		color.White("  contest: %s (cost %d)", c.Title, c.TokenCost)
	}
}
