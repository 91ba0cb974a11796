package infrastructure

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mmacedo-dev/bustrip/internal/station/domain"
	"github.com/mmacedo-dev/bustrip/pkg/application"
	pkgDomain "github.com/mmacedo-dev/bustrip/pkg/domain"
)

type gormBusStationRepository struct {
	db     *gorm.DB
	logger application.AppLogger
}

func NewGormBusStationRepository(db *gorm.DB, logger application.AppLogger) (domain.BusStationRepository, error) {
	if err := db.AutoMigrate(&domain.BusStation{}); err != nil {
		return nil, err
	}

	return &gormBusStationRepository{db: db, logger: logger}, nil
}

func (r *gormBusStationRepository) Save(ctx context.Context, station domain.BusStation) (domain.BusStation, error) {
	if err := r.db.WithContext(ctx).Create(&station).Error; err != nil {
		application.LogError(ctx, r.logger, "failed to save bus station", err, map[string]interface{}{
			"station": station,
		})
		return domain.BusStation{}, err
	}
	return station, nil
}

func (r *gormBusStationRepository) FindAll(ctx context.Context) ([]domain.BusStation, error) {
	var stations []domain.BusStation
	if err := r.db.WithContext(ctx).Find(&stations).Error; err != nil {
		return nil, err
	}
	return stations, nil
}

func (r *gormBusStationRepository) FindByID(ctx context.Context, id int64) (domain.BusStation, error) {
	var station domain.BusStation
	err := r.db.WithContext(ctx).First(&station, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.BusStation{}, pkgDomain.NewNotFoundError(fmt.Sprintf("no bus station found with ID: %d", id))
	}
	if err != nil {
		return domain.BusStation{}, err
	}
	return station, nil
}

func (r *gormBusStationRepository) FindByName(ctx context.Context, name string) (domain.BusStation, error) {
	var station domain.BusStation
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&station).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.BusStation{}, pkgDomain.NewNotFoundError(fmt.Sprintf("no bus station found with name: %s", name))
	}
	if err != nil {
		return domain.BusStation{}, err
	}
	return station, nil
}

func (r *gormBusStationRepository) FindByCity(ctx context.Context, city string) ([]domain.BusStation, error) {
	var stations []domain.BusStation
	if err := r.db.WithContext(ctx).Where("city = ?", city).Find(&stations).Error; err != nil {
		return nil, err
	}
	return stations, nil
}

func (r *gormBusStationRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.BusStation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgDomain.NewNotFoundError(fmt.Sprintf("no bus station found with ID: %d", id))
	}
	return nil
}
