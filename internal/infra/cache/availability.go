package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"laundromat-api/internal/domain/availability"
	"laundromat-api/internal/pkg/errs"
	"laundromat-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// AvailabilityCache stores one day of occupancy per machine or laundromat.
type AvailabilityCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewAvailabilityCache(client redis.Cmdable, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

func (c *AvailabilityCache) Get(ctx context.Context, scope queries.CacheScope, id uuid.UUID, dayKey string) ([]availability.Occupancy, bool, error) {
	data, err := c.client.Get(ctx, availabilityKey(scope, id, dayKey)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errs.Wrap(err, "read availability cache")
	}

	var occ []availability.Occupancy
	if err := json.Unmarshal(data, &occ); err != nil {
		return nil, false, errs.Wrap(err, "decode availability cache")
	}
	return occ, true, nil
}

func (c *AvailabilityCache) Set(ctx context.Context, scope queries.CacheScope, id uuid.UUID, dayKey string, occ []availability.Occupancy) error {
	if occ == nil {
		occ = []availability.Occupancy{}
	}
	payload, err := json.Marshal(occ)
	if err != nil {
		return errs.Wrap(err, "encode availability cache")
	}
	if err := c.client.Set(ctx, availabilityKey(scope, id, dayKey), payload, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "write availability cache")
	}
	return nil
}

// Invalidate drops the day of the machine and of its laundromat.
func (c *AvailabilityCache) Invalidate(ctx context.Context, machineID, laundromatID uuid.UUID, dayKey string) error {
	keys := []string{availabilityKey(queries.ScopeMachine, machineID, dayKey)}
	if laundromatID != uuid.Nil {
		keys = append(keys, availabilityKey(queries.ScopeLaundromat, laundromatID, dayKey))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errs.Wrap(err, "invalidate availability cache")
	}
	return nil
}

func availabilityKey(scope queries.CacheScope, id uuid.UUID, dayKey string) string {
	return fmt.Sprintf("availability:%s:%s:%s", scope, id, dayKey)
}
