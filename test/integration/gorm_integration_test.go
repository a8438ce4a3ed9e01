package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"predictplay-be/internal/entity"
	"predictplay-be/internal/repository/unitofwork"
	"predictplay-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.TokenRepository())
	assert.NotNil(t, uow.ContestRepository())
	assert.NotNil(t, uow.AchievementRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	userId := uuid.New()

	t.Run("Conditional Debit Round Trip", func(t *testing.T) {
		tokenRepo := uow.TokenRepository()

		require.NoError(t, tokenRepo.CreateBalance(context.Background(), &entity.UserTokenBalance{
			UserId:  userId,
			Balance: 100,
		}))

		newBalance, ok, err := tokenRepo.DebitBalance(context.Background(), userId, 60)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 40, newBalance)

		// Overdraw is refused at write time.
		_, ok, err = tokenRepo.DebitBalance(context.Background(), userId, 41)
		require.NoError(t, err)
		assert.False(t, ok)

		newBalance, err = tokenRepo.CreditBalance(context.Background(), userId, 60)
		require.NoError(t, err)
		assert.Equal(t, 100, newBalance)
	})

	t.Run("Transactional Debit Rolls Back", func(t *testing.T) {
		txUow := uowFactory.NewUnitOfWork(context.Background())
		require.NoError(t, txUow.Begin(context.Background()))

		_, ok, err := txUow.TokenRepository().DebitBalance(context.Background(), userId, 100)
		require.NoError(t, err)
		assert.True(t, ok)

		require.NoError(t, txUow.Rollback())

		balance, err := uow.TokenRepository().GetBalance(context.Background(), userId)
		require.NoError(t, err)
		require.NotNil(t, balance)
		assert.Equal(t, 100, balance.Balance, "rolled back debit must not persist")
	})

	t.Run("XP Adds In Place And Level Is Monotonic", func(t *testing.T) {
		achRepo := uow.AchievementRepository()

		xp, err := achRepo.AddXP(context.Background(), userId, 2500)
		require.NoError(t, err)
		assert.Equal(t, 2500, xp.XpPoints)
		assert.Equal(t, 3, xp.Level)

		// A second award lands on top of the first, never over it.
		xp, err = achRepo.AddXP(context.Background(), userId, 100)
		require.NoError(t, err)
		assert.Equal(t, 2600, xp.XpPoints)
		assert.Equal(t, 3, xp.Level, "a smaller award must not lower the level")

		stored, err := achRepo.GetXP(context.Background(), userId)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, 2600, stored.XpPoints)
		assert.Equal(t, 3, stored.Level)
	})
}
