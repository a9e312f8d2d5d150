// Package redis provides the tracking status cache backed by Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/redis/go-redis/v9"
)

// trackingKeyPattern builds the cache key from a tracking id.
const trackingKeyPattern = "order:tracking:%s"

// trackingTTL bounds staleness between status transitions.
const trackingTTL = 5 * time.Minute

// trackingEntry is the JSON form of a cached tracking response.
type trackingEntry struct {
	TrackingID      string   `json:"tracking_id"`
	Status          string   `json:"status"`
	FailureMessages []string `json:"failure_messages,omitempty"`
}

// TrackingCache caches tracking responses in Redis with a short TTL.
// Implements queries.TrackingCache.
type TrackingCache struct {
	client *redis.Client
}

// NewTrackingCache creates a tracking cache over an existing Redis client.
func NewTrackingCache(client *redis.Client) *TrackingCache {
	return &TrackingCache{client: client}
}

// Get returns the cached response for the queried tracking id.
// Returns queries.ErrTrackingStatusNotCached on a miss.
func (c *TrackingCache) Get(
	ctx context.Context,
	query queries.TrackOrderQuery,
) (queries.TrackOrderQueryResponse, error) {
	key := fmt.Sprintf(trackingKeyPattern, query.TrackingID().String())

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return queries.TrackOrderQueryResponse{}, queries.ErrTrackingStatusNotCached
		}
		return queries.TrackOrderQueryResponse{}, fmt.Errorf("read tracking cache: %w", err)
	}

	var entry trackingEntry
	if err = json.Unmarshal(data, &entry); err != nil {
		return queries.TrackOrderQueryResponse{}, fmt.Errorf("decode tracking cache entry: %w", err)
	}

	return entryToResponse(entry)
}

// Set stores a tracking response under its tracking id.
func (c *TrackingCache) Set(ctx context.Context, response queries.TrackOrderQueryResponse) error {
	entry := trackingEntry{
		TrackingID:      response.TrackingID.String(),
		Status:          response.Status.String(),
		FailureMessages: response.FailureMessages,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode tracking cache entry: %w", err)
	}

	key := fmt.Sprintf(trackingKeyPattern, response.TrackingID.String())
	if err = c.client.Set(ctx, key, data, trackingTTL).Err(); err != nil {
		return fmt.Errorf("write tracking cache: %w", err)
	}

	return nil
}

// Invalidate removes the cached entry for a tracking id. Deleting a key
// that is not cached is not an error. Implements commands.TrackingInvalidator.
func (c *TrackingCache) Invalidate(ctx context.Context, trackingID kernel.TrackingID) error {
	key := fmt.Sprintf(trackingKeyPattern, trackingID.String())
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("evict tracking cache: %w", err)
	}

	return nil
}

func entryToResponse(entry trackingEntry) (queries.TrackOrderQueryResponse, error) {
	trackingID, err := kernel.TrackingIDFromString(entry.TrackingID)
	if err != nil {
		return queries.TrackOrderQueryResponse{}, err
	}

	status, err := order.StatusFromString(entry.Status)
	if err != nil {
		return queries.TrackOrderQueryResponse{}, err
	}

	return queries.TrackOrderQueryResponse{
		TrackingID:      trackingID,
		Status:          status,
		FailureMessages: entry.FailureMessages,
	}, nil
}
