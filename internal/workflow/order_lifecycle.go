// Package workflow holds the order status state machine.
//
// The flow is linear, draft -> ongoing -> completed, with cancelled as an
// absorbing state reachable from any non-terminal status. Completed and
// cancelled are terminal: a completed order can never be cancelled, and
// neither terminal state permits further transitions.
package workflow

import (
	"fmt"

	"github.com/ElbertWijaya/sumatra-jewelry-v2.0/internal/model"
)

var statusFlow = []model.OrderStatus{model.OrderDraft, model.OrderOngoing, model.OrderCompleted}

// Terminal reports whether no further transition is permitted from status.
func Terminal(status model.OrderStatus) bool {
	return status == model.OrderCompleted || status == model.OrderCancelled
}

// Next returns the linear successor of status. Terminal statuses map to
// themselves; a status outside the closed enumeration is rejected.
func Next(status model.OrderStatus) (model.OrderStatus, error) {
	if status == model.OrderCancelled {
		return status, nil
	}
	for i, s := range statusFlow {
		if s != status {
			continue
		}
		if i == len(statusFlow)-1 {
			return status, nil
		}
		return statusFlow[i+1], nil
	}
	return "", fmt.Errorf("%w: %q", model.ErrInvalidStatus, status)
}

// Advance returns the status the order moves to on the next step of the
// linear flow. Terminal orders advance to their current status (no-op).
func Advance(o model.Order) (model.OrderStatus, error) {
	return Next(o.Status)
}

// Cancel returns the status the order moves to when cancelled. Idempotent on
// an already-cancelled order; rejected on a completed one.
func Cancel(o model.Order) (model.OrderStatus, error) {
	if o.Status == model.OrderCancelled {
		return o.Status, nil
	}
	if o.Status == model.OrderCompleted {
		return "", fmt.Errorf("%w: completed orders cannot be cancelled", model.ErrInvalidTransition)
	}
	if !known(o.Status) {
		return "", fmt.Errorf("%w: %q", model.ErrInvalidStatus, o.Status)
	}
	return model.OrderCancelled, nil
}

// Step validates a requested transition from -> to. Allowed moves are the
// linear successor and cancellation from a non-terminal status. A no-move
// request on a terminal status is a no-op, not an error, so repeated taps on
// an already-finished order stay harmless.
func Step(from, to model.OrderStatus) error {
	if !known(from) {
		return fmt.Errorf("%w: %q", model.ErrInvalidStatus, from)
	}
	if !known(to) {
		return fmt.Errorf("%w: %q", model.ErrInvalidStatus, to)
	}
	if from == to && Terminal(from) {
		return nil
	}
	if to == model.OrderCancelled {
		if from == model.OrderCompleted {
			return fmt.Errorf("%w: completed orders cannot be cancelled", model.ErrInvalidTransition)
		}
		return nil
	}
	next, err := Next(from)
	if err != nil {
		return err
	}
	if to != next || next == from {
		return fmt.Errorf("%w: %s -> %s", model.ErrInvalidTransition, from, to)
	}
	return nil
}

func known(status model.OrderStatus) bool {
	for _, s := range model.OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}
