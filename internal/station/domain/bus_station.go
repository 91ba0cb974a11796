package domain

import (
	"context"
)

// BusStation is a terminal a travel departs from or arrives at. Records are
// immutable once created.
type BusStation struct {
	ID        int64  `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"index"`
	City      string `json:"city" gorm:"index"`
	StateCode string `json:"stateCode" gorm:"size:2"`
}

type BusStationRepository interface {
	Save(ctx context.Context, station BusStation) (BusStation, error)

	FindAll(ctx context.Context) ([]BusStation, error)
	FindByID(ctx context.Context, id int64) (BusStation, error)
	FindByName(ctx context.Context, name string) (BusStation, error)
	FindByCity(ctx context.Context, city string) ([]BusStation, error)
	Delete(ctx context.Context, id int64) error
}
