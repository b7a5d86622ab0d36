package service

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/redis/go-redis/v9"

	"lumiere_go/internal/core/logger"
	"lumiere_go/internal/model"
	"lumiere_go/internal/pkg/apperr"
	"lumiere_go/internal/repository"
)

const (
	statsCacheKey = "admin:stats"
	statsCacheTTL = 60 * time.Second
	trendWindow   = 30 * 24 * time.Hour
)

// AdminService Dashboard aggregates
type AdminService struct {
	articleRepo    repository.ArticleRepository
	spotRepo       repository.SpotRepository
	commentRepo    repository.CommentRepository
	newsletterRepo repository.NewsletterRepository
	rdb            *redis.Client
}

// NewAdminService Create admin service. rdb may be nil to skip stats caching.
func NewAdminService(
	articleRepo repository.ArticleRepository,
	spotRepo repository.SpotRepository,
	commentRepo repository.CommentRepository,
	newsletterRepo repository.NewsletterRepository,
	rdb *redis.Client,
) *AdminService {
	return &AdminService{
		articleRepo:    articleRepo,
		spotRepo:       spotRepo,
		commentRepo:    commentRepo,
		newsletterRepo: newsletterRepo,
		rdb:            rdb,
	}
}

// Stats Dashboard totals with 30-day trends.
// Aggregation crosses four tables, so the result is cached briefly in redis.
func (s *AdminService) Stats(ctx context.Context) (*model.StatsResponse, error) {
	if s.rdb != nil {
		data, err := s.rdb.Get(ctx, statsCacheKey).Bytes()
		if err == nil {
			var stats model.StatsResponse
			if jsonErr := json.Unmarshal(data, &stats); jsonErr == nil {
				return &stats, nil
			}
		} else if err != redis.Nil {
			logger.Warn("stats cache: redis get", logger.Err(err))
		}
	}

	stats, err := s.computeStats(ctx)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := s.rdb.Set(ctx, statsCacheKey, data, statsCacheTTL).Err(); err != nil {
				logger.Warn("stats cache: redis set", logger.Err(err))
			}
		}
	}
	return stats, nil
}

func (s *AdminService) computeStats(ctx context.Context) (*model.StatsResponse, error) {
	now := time.Now()
	curFrom, prevFrom := now.Add(-trendWindow), now.Add(-2*trendWindow)

	totalViews, err := s.articleRepo.SumViews(ctx)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	totalSpots, err := s.spotRepo.Count(ctx)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	totalSubscribers, err := s.newsletterRepo.CountActive(ctx)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	pendingComments, err := s.commentRepo.CountPending(ctx)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}

	curViews, err := s.articleRepo.SumViewsCreatedBetween(ctx, curFrom, now)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	prevViews, err := s.articleRepo.SumViewsCreatedBetween(ctx, prevFrom, curFrom)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}

	curSpots, err := s.spotRepo.CountCreatedBetween(ctx, curFrom, now)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	prevSpots, err := s.spotRepo.CountCreatedBetween(ctx, prevFrom, curFrom)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}

	curSubs, err := s.newsletterRepo.CountSubscribedBetween(ctx, curFrom, now)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	prevSubs, err := s.newsletterRepo.CountSubscribedBetween(ctx, prevFrom, curFrom)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}

	return &model.StatsResponse{
		TotalViews:       totalViews,
		TotalSpots:       totalSpots,
		TotalSubscribers: totalSubscribers,
		PendingComments:  pendingComments,
		TrendViews:       Trend(float64(curViews), float64(prevViews)),
		TrendSpots:       Trend(float64(curSpots), float64(prevSpots)),
		TrendSubscribers: Trend(float64(curSubs), float64(prevSubs)),
	}, nil
}

// Trend Percentage change of cur against prev, one decimal.
// An empty previous window yields 0 rather than a division blowup.
func Trend(cur, prev float64) float64 {
	if prev == 0 {
		return 0
	}
	return math.Round((cur-prev)/prev*1000) / 10
}

// InvalidateStats Drop the cached aggregates after a bulk mutation
func (s *AdminService) InvalidateStats(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, statsCacheKey).Err(); err != nil {
		logger.Warn("stats cache: redis del", logger.Err(err))
	}
}
