package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"lumiere_go/internal/core/config"
	"lumiere_go/internal/core/logger"
	"lumiere_go/internal/core/snowflake"
	"lumiere_go/internal/model"
	"lumiere_go/internal/pkg/apperr"
	"lumiere_go/internal/pkg/pool"
	"lumiere_go/internal/repository"
)

// SpotService Photo spots with a two-level read cache.
// L1 is in-process bigcache, L2 is redis; cache misses collapse through
// singleflight so a hot spot hits the database once.
type SpotService struct {
	repo  repository.SpotRepository
	l1    *pool.BigCache[*model.SpotResponse]
	rdb   *redis.Client
	l2TTL time.Duration
	sf    singleflight.Group
}

// NewSpotService Create spot service. rdb may be nil, leaving L1 only.
func NewSpotService(repo repository.SpotRepository, rdb *redis.Client, cacheCfg *config.CacheConfig) (*SpotService, error) {
	l1, err := pool.NewBigCache[*model.SpotResponse](cacheCfg.L1CapMB, time.Duration(cacheCfg.L2TTL)*time.Second)
	if err != nil {
		return nil, err
	}
	return &SpotService{
		repo:  repo,
		l1:    l1,
		rdb:   rdb,
		l2TTL: time.Duration(cacheCfg.L2TTL) * time.Second,
	}, nil
}

func spotCacheKey(id int64) string {
	return fmt.Sprintf("spot:%d", id)
}

// List Fetch spots, filtered by category and a name/location search term,
// best rated first. Lists are not cached, only single-spot reads.
func (s *SpotService) List(ctx context.Context, category, search string, skip, limit int) ([]*model.SpotResponse, error) {
	spots, err := s.repo.List(ctx, category, search, skip, limit)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	result := make([]*model.SpotResponse, 0, len(spots))
	for _, sp := range spots {
		result = append(result, toSpotResponse(sp))
	}
	return result, nil
}

// Get Fetch one spot through the cache hierarchy
func (s *SpotService) Get(ctx context.Context, id int64) (*model.SpotResponse, error) {
	key := spotCacheKey(id)

	if resp, ok := s.l1.Get(key); ok {
		return resp, nil
	}

	if s.rdb != nil {
		data, err := s.rdb.Get(ctx, key).Bytes()
		if err == nil {
			var resp model.SpotResponse
			if jsonErr := json.Unmarshal(data, &resp); jsonErr == nil {
				_ = s.l1.Set(key, &resp)
				return &resp, nil
			}
		} else if err != redis.Nil {
			logger.Warn("spot cache: redis get", logger.Err(err), logger.String("key", key))
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		spot, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
		}
		if spot == nil {
			return nil, apperr.New(apperr.CodeSpotNotFound, "photo spot not found")
		}

		resp := toSpotResponse(spot)
		s.fillCaches(ctx, key, resp)
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.SpotResponse), nil
}

// Create Persist a new spot
func (s *SpotService) Create(ctx context.Context, req *model.SpotCreateRequest) (*model.SpotResponse, error) {
	spot := &model.Spot{
		ID:          snowflake.Generate(),
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Rating:      req.Rating,
		Tags:        req.Tags,
		BestTime:    req.BestTime,
		Equipment:   req.Equipment,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, spot); err != nil {
		logger.Error("create spot", logger.Err(err), logger.String("name", spot.Name))
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}

	return toSpotResponse(spot), nil
}

// Update Apply a partial update, then invalidate the cached entry
func (s *SpotService) Update(ctx context.Context, id int64, req *model.SpotUpdateRequest) (*model.SpotResponse, error) {
	spot, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	if spot == nil {
		return nil, apperr.New(apperr.CodeSpotNotFound, "photo spot not found")
	}

	if req.Name != nil {
		spot.Name = *req.Name
	}
	if req.Description != nil {
		spot.Description = *req.Description
	}
	if req.Location != nil {
		spot.Location = *req.Location
	}
	if req.Latitude != nil {
		spot.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		spot.Longitude = *req.Longitude
	}
	if req.Category != nil {
		spot.Category = *req.Category
	}
	if req.ImageURL != nil {
		spot.ImageURL = *req.ImageURL
	}
	if req.Rating != nil {
		spot.Rating = *req.Rating
	}
	if req.Tags != nil {
		spot.Tags = *req.Tags
	}
	if req.BestTime != nil {
		spot.BestTime = *req.BestTime
	}
	if req.Equipment != nil {
		spot.Equipment = *req.Equipment
	}

	if err := s.repo.Update(ctx, spot); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDatabaseError)
	}

	s.invalidate(ctx, id)
	return toSpotResponse(spot), nil
}

// Delete Remove a spot and drop it from the caches
func (s *SpotService) Delete(ctx context.Context, id int64) error {
	spot, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	if spot == nil {
		return apperr.New(apperr.CodeSpotNotFound, "photo spot not found")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Wrap(err, apperr.CodeDatabaseError)
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *SpotService) fillCaches(ctx context.Context, key string, resp *model.SpotResponse) {
	_ = s.l1.Set(key, resp)
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, data, s.l2TTL).Err(); err != nil {
		logger.Warn("spot cache: redis set", logger.Err(err), logger.String("key", key))
	}
}

func (s *SpotService) invalidate(ctx context.Context, id int64) {
	key := spotCacheKey(id)
	_ = s.l1.Remove(key)
	if s.rdb != nil {
		if err := s.rdb.Del(ctx, key).Err(); err != nil {
			logger.Warn("spot cache: redis del", logger.Err(err), logger.String("key", key))
		}
	}
}

func toSpotResponse(sp *model.Spot) *model.SpotResponse {
	return &model.SpotResponse{
		ID:          sp.ID,
		Name:        sp.Name,
		Description: sp.Description,
		Location:    sp.Location,
		Latitude:    sp.Latitude,
		Longitude:   sp.Longitude,
		Category:    sp.Category,
		ImageURL:    sp.ImageURL,
		Rating:      sp.Rating,
		Tags:        sp.Tags,
		BestTime:    sp.BestTime,
		Equipment:   sp.Equipment,
		CreatedAt:   sp.CreatedAt,
		UpdatedAt:   sp.UpdatedAt,
	}
}
