package infrastructure

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	stationDomain "github.com/mmacedo-dev/bustrip/internal/station/domain"
	"github.com/mmacedo-dev/bustrip/internal/travel/domain"
	"github.com/mmacedo-dev/bustrip/pkg/application"
	pkgDomain "github.com/mmacedo-dev/bustrip/pkg/domain"
)

type gormTravelRepository struct {
	db     *gorm.DB
	logger application.AppLogger
}

func NewGormTravelRepository(db *gorm.DB, logger application.AppLogger) (domain.TravelRepository, error) {
	if err := db.AutoMigrate(&domain.Travel{}); err != nil {
		return nil, err
	}

	return &gormTravelRepository{db: db, logger: logger}, nil
}

func (r *gormTravelRepository) Save(ctx context.Context, travel domain.Travel) (domain.Travel, error) {
	if err := r.db.WithContext(ctx).Create(&travel).Error; err != nil {
		application.LogError(ctx, r.logger, "failed to save travel", err, map[string]interface{}{
			"travel": travel,
		})
		return domain.Travel{}, err
	}
	return travel, nil
}

func (r *gormTravelRepository) FindAll(ctx context.Context) ([]domain.Travel, error) {
	var travels []domain.Travel
	if err := r.db.WithContext(ctx).Find(&travels).Error; err != nil {
		return nil, err
	}
	return travels, nil
}

func (r *gormTravelRepository) FindByID(ctx context.Context, id int64) (domain.Travel, error) {
	var travel domain.Travel
	err := r.db.WithContext(ctx).First(&travel, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Travel{}, pkgDomain.NewNotFoundError(fmt.Sprintf("no travel found with ID: %d", id))
	}
	if err != nil {
		return domain.Travel{}, err
	}
	return travel, nil
}

func (r *gormTravelRepository) Search(ctx context.Context, filter domain.TravelSearchFilter) ([]domain.Travel, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Travel{})

	if filter.OriginCity != "" {
		tx = tx.Where("departure_station_id IN (?)",
			r.db.Model(&stationDomain.BusStation{}).Select("id").Where("city = ?", filter.OriginCity))
	}
	if filter.DestinationCity != "" {
		tx = tx.Where("arrival_station_id IN (?)",
			r.db.Model(&stationDomain.BusStation{}).Select("id").Where("city = ?", filter.DestinationCity))
	}
	if !filter.DepartureDate.IsZero() {
		dayStart := domain.DayStart(filter.DepartureDate)
		tx = tx.Where("departure_time >= ? AND departure_time < ?", dayStart, dayStart.AddDate(0, 0, 1))
	}

	var travels []domain.Travel
	if err := tx.Find(&travels).Error; err != nil {
		return nil, err
	}
	return travels, nil
}

// ReserveSeat locks the travel row so two concurrent bookings cannot both
// observe the same seat as free.
func (r *gormTravelRepository) ReserveSeat(ctx context.Context, id int64, seatNumber int) (domain.Travel, error) {
	var travel domain.Travel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&travel, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgDomain.NewNotFoundError(fmt.Sprintf("no travel found with ID: %d", id))
			}
			return err
		}

		if err := travel.ReserveSeat(seatNumber); err != nil {
			return err
		}

		return tx.Model(&domain.Travel{}).Where("id = ?", id).
			Update("available_seats", travel.AvailableSeats).Error
	})
	if err != nil {
		return domain.Travel{}, err
	}
	return travel, nil
}

func (r *gormTravelRepository) ReleaseSeat(ctx context.Context, id int64, seatNumber int) (domain.Travel, error) {
	var travel domain.Travel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&travel, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgDomain.NewNotFoundError(fmt.Sprintf("no travel found with ID: %d", id))
			}
			return err
		}

		travel.ReleaseSeat(seatNumber)

		return tx.Model(&domain.Travel{}).Where("id = ?", id).
			Update("available_seats", travel.AvailableSeats).Error
	})
	if err != nil {
		return domain.Travel{}, err
	}
	return travel, nil
}

func (r *gormTravelRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Travel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgDomain.NewNotFoundError(fmt.Sprintf("no travel found with ID: %d", id))
	}
	return nil
}
