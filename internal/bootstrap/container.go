package bootstrap

import (
	"context"
	"log"
	"time"

	"predictplay-be/internal/config"
	"predictplay-be/internal/controller"
	"predictplay-be/internal/pkg/clock"
	"predictplay-be/internal/pkg/logger"
	"predictplay-be/internal/repository/unitofwork"
	"predictplay-be/internal/service"
	"predictplay-be/pkg/analyzer"

	pktNats "predictplay-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	TokenController       controller.ITokenController
	ContestController     controller.IContestController
	AnalyzerController    controller.IAnalyzerController
	VoteController        controller.IVoteController
	StreakController      controller.IStreakController
	AchievementController controller.IAchievementController
	LeaderboardController controller.ILeaderboardController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	sysClock := clock.NewSystemClock()

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// Badge definitions change rarely; a short TTL cache keeps the
	// achievement sweep off the definitions table.
	defCache := gocache.New(5*time.Minute, 10*time.Minute)

	// Analyzer provider
	resultProvider, err := analyzer.NewResultProvider(
		cfg.Analyzer.Provider,
		cfg.Analyzer.BaseURL,
		time.Duration(cfg.Analyzer.TimeoutSeconds)*time.Second,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize analyzer provider: %v", err)
	}
	log.Printf("[INFO] Using Analyzer Provider: %s", cfg.Analyzer.Provider)

	// 3. Services
	publisherService := service.NewPublisherService(pubSub)

	tokenService := service.NewTokenService(uowFactory, sysLogger)
	streakService := service.NewStreakService(uowFactory, publisherService, natsPub, cfg.Topics, sysClock, sysLogger)
	achievementService := service.NewAchievementService(uowFactory, publisherService, natsPub, cfg.Topics, defCache, sysClock, sysLogger)
	leaderboardService := service.NewLeaderboardService(rdb, sysLogger)
	contestService := service.NewContestService(uowFactory, tokenService, streakService, publisherService, natsPub, cfg.Topics, sysClock, sysLogger)
	analyzerService := service.NewAnalyzerService(uowFactory, tokenService, resultProvider, publisherService, natsPub, cfg.Topics, cfg.Analyzer.DefaultTokenCost, sysClock, sysLogger)
	voteService := service.NewVoteService(uowFactory, publisherService, cfg.Topics, sysClock, sysLogger)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Topics,
		uowFactory,
		achievementService,
		leaderboardService,
		sysLogger,
	)

	// 4. Controllers
	return &Container{
		TokenController:       controller.NewTokenController(tokenService),
		ContestController:     controller.NewContestController(contestService),
		AnalyzerController:    controller.NewAnalyzerController(analyzerService),
		VoteController:        controller.NewVoteController(voteService),
		StreakController:      controller.NewStreakController(streakService),
		AchievementController: controller.NewAchievementController(achievementService),
		LeaderboardController: controller.NewLeaderboardController(leaderboardService),
		ConsumerService:       consumerService,
	}
}
