package service

import (
	"context"

	"predictplay-be/internal/dto"
	"predictplay-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const xpLeaderboardKey = "leaderboard:xp"

// ILeaderboardService maintains the XP ranking in a Redis sorted set. It is a
// read-optimized projection of user_xp; Postgres stays the source of truth.
type ILeaderboardService interface {
	RecordXP(ctx context.Context, userId uuid.UUID, xpPoints int) error
	Top(ctx context.Context, limit int) (*dto.LeaderboardResponse, error)
}

type leaderboardService struct {
	rdb *redis.Client
	log logger.ILogger
}

func NewLeaderboardService(rdb *redis.Client, log logger.ILogger) ILeaderboardService {
	return &leaderboardService{
		rdb: rdb,
		log: log,
	}
}

func (s *leaderboardService) RecordXP(ctx context.Context, userId uuid.UUID, xpPoints int) error {
	if s.rdb == nil {
		return nil
	}
	err := s.rdb.ZAdd(ctx, xpLeaderboardKey, redis.Z{
		Score:  float64(xpPoints),
		Member: userId.String(),
	}).Err()
	if err != nil {
		s.log.Warn("leaderboard", "failed to record xp score", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
	}
	return err
}

func (s *leaderboardService) Top(ctx context.Context, limit int) (*dto.LeaderboardResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	resp := &dto.LeaderboardResponse{Entries: []dto.LeaderboardEntry{}}
	if s.rdb == nil {
		return resp, nil
	}

	results, err := s.rdb.ZRevRangeWithScores(ctx, xpLeaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	for i, z := range results {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		userId, err := uuid.Parse(member)
		if err != nil {
			continue
		}
		resp.Entries = append(resp.Entries, dto.LeaderboardEntry{
			UserId:   userId,
			XpPoints: int(z.Score),
			Rank:     i + 1,
		})
	}
	return resp, nil
}
