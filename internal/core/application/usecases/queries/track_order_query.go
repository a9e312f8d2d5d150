// Package queries contains read operations in the CQRS architecture.
// Query handlers read the database directly, bypassing the domain model,
// and return plain response structures.
package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
)

// TrackOrderQuery retrieves the current state of an order by the tracking
// identifier handed out at creation.
//
// Example:
//
//	query, err := NewTrackOrderQuery(trackingID)
//	if err != nil {
//	    return fmt.Errorf("invalid tracking id: %w", err)
//	}
//
//	status, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to track order: %w", err)
//	}
//	fmt.Printf("Order is %s\n", status.Status)
type TrackOrderQuery struct { //nolint:recvcheck //using for validation
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a query to track an order.
// Validates that the tracking id is a constructed identity.
func NewTrackOrderQuery(trackingID kernel.TrackingID) (TrackOrderQuery, error) {
	trackQuery := TrackOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := trackQuery.setTrackingID(trackingID); err != nil {
		return TrackOrderQuery{}, err
	}

	return trackQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackOrderQueryIsNotConstructed if validation fails.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// TrackingID returns the tracking identifier being queried.
func (q TrackOrderQuery) TrackingID() kernel.TrackingID {
	return q.trackingID
}

func (q *TrackOrderQuery) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	q.trackingID = trackingID
	return nil
}

// TrackOrderQueryResponse is the externally visible state of an order.
// FailureMessages is empty unless a cancellation path was taken.
type TrackOrderQueryResponse struct {
	TrackingID      kernel.TrackingID
	Status          order.Status
	FailureMessages []string
}
