package domain

import (
	"context"
	"errors"
)

// ErrPlaceNotFound is the locator's explicit "nothing matched" signal.
var ErrPlaceNotFound = errors.New("no place found")

// Place is what the geocoding collaborator knows about a searched location.
type Place struct {
	DisplayName string
	Types       []string
}

// PlaceLocator resolves a station name and city against a places directory.
type PlaceLocator interface {
	Locate(ctx context.Context, name, city string) (Place, error)
}

// IsBusStation reports whether the located place can host bus departures.
func (p Place) IsBusStation() bool {
	for _, t := range p.Types {
		switch t {
		case "bus_station", "bus_stop", "transit_station", "travel_agency":
			return true
		}
	}
	return false
}
