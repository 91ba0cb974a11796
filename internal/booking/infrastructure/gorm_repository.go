package infrastructure

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mmacedo-dev/bustrip/internal/booking/domain"
	"github.com/mmacedo-dev/bustrip/pkg/application"
	pkgDomain "github.com/mmacedo-dev/bustrip/pkg/domain"
)

type gormPassengerRepository struct {
	db     *gorm.DB
	logger application.AppLogger
}

func NewGormPassengerRepository(db *gorm.DB, logger application.AppLogger) (domain.PassengerRepository, error) {
	if err := db.AutoMigrate(&domain.Passenger{}); err != nil {
		return nil, err
	}

	return &gormPassengerRepository{db: db, logger: logger}, nil
}

func (r *gormPassengerRepository) Save(ctx context.Context, passenger domain.Passenger) (domain.Passenger, error) {
	if err := r.db.WithContext(ctx).Create(&passenger).Error; err != nil {
		application.LogError(ctx, r.logger, "failed to save passenger", err, map[string]interface{}{
			"passenger": passenger,
		})
		return domain.Passenger{}, err
	}
	return passenger, nil
}

func (r *gormPassengerRepository) FindAll(ctx context.Context) ([]domain.Passenger, error) {
	var passengers []domain.Passenger
	if err := r.db.WithContext(ctx).Find(&passengers).Error; err != nil {
		return nil, err
	}
	return passengers, nil
}

func (r *gormPassengerRepository) FindByID(ctx context.Context, id int64) (domain.Passenger, error) {
	var passenger domain.Passenger
	err := r.db.WithContext(ctx).First(&passenger, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Passenger{}, pkgDomain.NewNotFoundError(fmt.Sprintf("no passenger found with ID: %d", id))
	}
	if err != nil {
		return domain.Passenger{}, err
	}
	return passenger, nil
}

func (r *gormPassengerRepository) FindByDocument(ctx context.Context, document string) (domain.Passenger, error) {
	var passenger domain.Passenger
	err := r.db.WithContext(ctx).Where("document = ?", document).First(&passenger).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Passenger{}, pkgDomain.NewNotFoundError(fmt.Sprintf("no passenger found with document: %s", document))
	}
	if err != nil {
		return domain.Passenger{}, err
	}
	return passenger, nil
}

func (r *gormPassengerRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Passenger{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgDomain.NewNotFoundError(fmt.Sprintf("no passenger found with ID: %d", id))
	}
	return nil
}
