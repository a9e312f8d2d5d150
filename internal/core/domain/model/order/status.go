package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Paid ──> Approved
//	   │          │
//	   └──────────┴──> Cancelling ──> Cancelled
//	   │
//	   └─────────────────────────────> Cancelled
//	        (immediate cancellation)
//
// Approved and Cancelled are terminal. Status is a value object that validates
// state transitions and provides string representations for persistence and
// display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) marks an order that has not been initialized yet.
	Unknown Status = iota

	// Pending is the initial status assigned when an order is initialized.
	// Orders in this status await payment confirmation.
	Pending

	// Paid indicates the payment for the order has been confirmed.
	Paid

	// Approved indicates the restaurant accepted the paid order.
	// This is the terminal success state.
	Approved

	// Cancelling indicates a cancellation has been initiated and the
	// payment rollback is in flight.
	Cancelling

	// Cancelled indicates the order was cancelled.
	// This is the terminal failure state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Paid:       "Paid",
		Approved:   "Approved",
		Cancelling: "Cancelling",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Paid:       "Paid",
		Approved:   "Approved",
		Cancelling: "Cancelling",
		Cancelled:  "Cancelled",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid. Used to vet status values
// arriving from external sources such as the database.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// StatusFromString parses a persisted status name back into a Status.
// Only valid lifecycle states parse; "Unknown" and unrecognized names fail.
func StatusFromString(value string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("order status",
		fmt.Errorf("%q is not a valid status", value))
}

// String returns the human-readable name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Pay transitions the status to Paid.
//
// Valid transitions:
//   - Pending -> Paid (payment confirmed)
//
// Returns (0, error) if the current status does not allow payment; the error
// names the attempted operation and the current status.
func (s Status) Pay() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("cannot pay order in %s status", s.String()),
		)
	}

	return Paid, nil
}

// Approve transitions the status to Approved.
//
// Valid transitions:
//   - Paid -> Approved (restaurant accepted the order)
//
// Approved is a terminal state with no further transitions possible.
func (s Status) Approve() (Status, error) {
	if s != Paid {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("cannot approve order in %s status", s.String()),
		)
	}

	return Approved, nil
}

// BeginCancel transitions the status to Cancelling.
//
// Valid transitions:
//   - Paid -> Cancelling (restaurant rejected a paid order)
//   - Pending -> Cancelling (early cancellation)
//
// Fails from Approved and from any already-cancelled state.
func (s Status) BeginCancel() (Status, error) {
	if s != Pending && s != Paid {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("cannot begin cancelling order in %s status", s.String()),
		)
	}

	return Cancelling, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Cancelling -> Cancelled (payment rollback confirmed)
//   - Pending -> Cancelled (immediate cancel without the intermediate state)
//
// Fails from Approved; approved orders can no longer be cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Cancelling && s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("cannot cancel order in %s status", s.String()),
		)
	}

	return Cancelled, nil
}
