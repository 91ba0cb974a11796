package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNoRoute is the planner's explicit "no route" signal.
var ErrNoRoute = errors.New("no route between stations")

// Route is the computed leg between two stations.
type Route struct {
	DistanceKm float64
	Duration   time.Duration
}

// RoutePlanner computes distance and duration between two station names for
// a given departure instant.
type RoutePlanner interface {
	PlanRoute(ctx context.Context, origin, destination string, departure time.Time) (Route, error)
}
