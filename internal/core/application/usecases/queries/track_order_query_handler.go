package queries

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"gorm.io/gorm"
)

// failureMessageDelimiter separates failure messages in their persisted form.
const failureMessageDelimiter = ","

// ErrTrackingStatusNotCached is returned by a TrackingCache on a miss.
var ErrTrackingStatusNotCached = errors.New("tracking status not cached")

// TrackingCache is a read-through cache for tracking responses. Implementations
// must return ErrTrackingStatusNotCached on a miss.
type TrackingCache interface {
	Get(ctx context.Context, query TrackOrderQuery) (TrackOrderQueryResponse, error)
	Set(ctx context.Context, response TrackOrderQueryResponse) error
}

// TrackOrderQueryHandler answers tracking requests. Reads go through the cache
// first and fall back to the database; the cache is refreshed on the way out.
// Cache failures degrade to a plain database read, never to an error.
type TrackOrderQueryHandler struct {
	db    *gorm.DB
	cache TrackingCache
}

// NewTrackOrderQueryHandler creates a handler for tracking queries.
// Requires a GORM database connection and a tracking cache.
func NewTrackOrderQueryHandler(db *gorm.DB, cache TrackingCache) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db, cache: cache}
}

// Handle executes the tracking query.
// Returns ports.ErrOrderNotFound when no order carries the tracking id.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	if cached, err := h.cache.Get(ctx, query); err == nil {
		return cached, nil
	}

	var (
		statusName      string
		failureMessages sql.NullString
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			failure_messages
		FROM orders
		WHERE tracking_id = ?
	`, query.TrackingID().Bytes()).Row()

	if err := row.Scan(&statusName, &failureMessages); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackOrderQueryResponse{}, ports.ErrOrderNotFound
		}
		return TrackOrderQueryResponse{}, err
	}

	status, err := order.StatusFromString(statusName)
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	response := TrackOrderQueryResponse{
		TrackingID:      query.TrackingID(),
		Status:          status,
		FailureMessages: splitFailureMessages(failureMessages.String),
	}

	// best effort, a failed refresh only costs the next reader a DB round trip
	_ = h.cache.Set(ctx, response)

	return response, nil
}

func splitFailureMessages(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, failureMessageDelimiter)
}
