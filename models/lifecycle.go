package models

import "fmt"

// Action is a vendor-triggered step in the order lifecycle.
type Action struct {
	Name    string      `json:"name"`
	Label   string      `json:"label"`
	Target  OrderStatus `json:"target"`
	Primary bool        `json:"primary,omitempty"`
}

const (
	ActionAccept            = "accept"
	ActionReady             = "ready"
	ActionDispatch          = "dispatch"
	ActionSimulateDelivered = "simulate_delivered"
)

// lifecycle is the complete transition table. Statuses missing from it are
// display-only.
var lifecycle = map[OrderStatus][]Action{
	StatusPending: {
		{Name: ActionAccept, Label: "Accept & Prepare", Target: StatusPreparing},
	},
	StatusPreparing: {
		{Name: ActionReady, Label: "Ready for Pickup", Target: StatusReadyForPickup},
	},
	StatusReadyForPickup: {
		{Name: ActionDispatch, Label: "Dispatch", Target: StatusOutForDelivery, Primary: true},
		{Name: ActionSimulateDelivered, Label: "Simulate Delivered", Target: StatusDelivered},
	},
}

// Actions returns the actions offered for an order in the given status.
func (s OrderStatus) Actions() []Action {
	actions := lifecycle[s]
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

// DisplayOnly reports whether no action can be taken from s.
func (s OrderStatus) DisplayOnly() bool {
	return len(lifecycle[s]) == 0
}

func CanTransition(from, to OrderStatus) bool {
	for _, a := range lifecycle[from] {
		if a.Target == to {
			return true
		}
	}
	return false
}

// ValidateTransition returns ErrIllegalTransition when to is not reachable
// from from in one step.
func ValidateTransition(from, to OrderStatus) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("cannot transition order from %s to %s: %w", from, to, ErrIllegalTransition)
	}
	return nil
}

// ActionFor looks up a named action among those offered from s.
func ActionFor(s OrderStatus, name string) (Action, error) {
	for _, a := range lifecycle[s] {
		if a.Name == name {
			return a, nil
		}
	}
	return Action{}, fmt.Errorf("action %q not available for status %s: %w", name, s, ErrIllegalTransition)
}
