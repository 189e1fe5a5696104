package kernel

import (
	"errors"
	"strings"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrRouteIsNotConstructed is returned when validating a zero-value
// Route. Instances must be created via NewRoute.
var ErrRouteIsNotConstructed = errs.NewValueIsRequiredError(
	"route must be created via NewRoute constructor")

// Route is an immutable value object describing the journey an
// announcement covers: a start point, an ordered list of intermediate
// waypoints, and a destination. All stops are free-form place names;
// geocoding and route optimization are outside the core.
type Route struct {
	startPoint  string
	waypoints   []string
	destination string

	guard guard.ConstructorGuard
}

// NewRoute creates a validated Route. Start point and destination are
// required and trimmed; waypoints are trimmed with blank entries dropped.
func NewRoute(startPoint string, waypoints []string, destination string) (Route, error) {
	r := Route{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setStartPoint(startPoint),
		r.setDestination(destination),
	); err != nil {
		return Route{}, err
	}

	r.setWaypoints(waypoints)
	return r, nil
}

// StartPoint returns the departure place name.
func (r Route) StartPoint() string {
	return r.startPoint
}

// Waypoints returns a copy of the ordered intermediate stops.
func (r Route) Waypoints() []string {
	out := make([]string, len(r.waypoints))
	copy(out, r.waypoints)
	return out
}

// Destination returns the arrival place name.
func (r Route) Destination() string {
	return r.destination
}

// Validate returns ErrRouteIsNotConstructed for the zero value.
func (r Route) Validate() error {
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

func (r *Route) setStartPoint(startPoint string) error {
	startPoint = strings.TrimSpace(startPoint)
	if startPoint == "" {
		return errs.NewValueIsRequiredError("startPoint")
	}
	r.startPoint = startPoint
	return nil
}

func (r *Route) setDestination(destination string) error {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	r.destination = destination
	return nil
}

func (r *Route) setWaypoints(waypoints []string) {
	cleaned := make([]string, 0, len(waypoints))
	for _, wp := range waypoints {
		wp = strings.TrimSpace(wp)
		if wp != "" {
			cleaned = append(cleaned, wp)
		}
	}
	r.waypoints = cleaned
}
