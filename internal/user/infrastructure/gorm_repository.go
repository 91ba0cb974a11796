package infrastructure

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mmacedo-dev/bustrip/internal/user/domain"
	"github.com/mmacedo-dev/bustrip/pkg/application"
	pkgDomain "github.com/mmacedo-dev/bustrip/pkg/domain"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger application.AppLogger
}

func NewGormUserRepository(db *gorm.DB, logger application.AppLogger) (domain.UserRepository, error) {
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		return nil, err
	}

	return &gormUserRepository{db: db, logger: logger}, nil
}

func (r *gormUserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		application.LogError(ctx, r.logger, "failed to save user", err, map[string]interface{}{
			"email": user.Email,
		})
		return domain.User{}, err
	}
	return user, nil
}

func (r *gormUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *gormUserRepository) FindByID(ctx context.Context, id int64) (domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.User{}, pkgDomain.NewNotFoundError(fmt.Sprintf("no user found with ID: %d", id))
	}
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (r *gormUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.findBy(ctx, "email = ?", email, fmt.Sprintf("no user found with email: %s", email))
}

func (r *gormUserRepository) FindByCPF(ctx context.Context, cpf string) (domain.User, error) {
	return r.findBy(ctx, "cpf = ?", cpf, fmt.Sprintf("no user found with CPF: %s", cpf))
}

func (r *gormUserRepository) FindByTelephone(ctx context.Context, telephone string) (domain.User, error) {
	return r.findBy(ctx, "telephone = ?", telephone, fmt.Sprintf("no user found with telephone: %s", telephone))
}

func (r *gormUserRepository) findBy(ctx context.Context, condition, value, notFound string) (domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where(condition, value).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.User{}, pkgDomain.NewNotFoundError(notFound)
	}
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (r *gormUserRepository) UpdateTelephone(ctx context.Context, id int64, telephone string) (domain.User, error) {
	user, err := r.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	if err := r.db.WithContext(ctx).Model(&user).Update("telephone", telephone).Error; err != nil {
		return domain.User{}, err
	}
	user.Telephone = telephone
	return user, nil
}

func (r *gormUserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgDomain.NewNotFoundError(fmt.Sprintf("no user found with ID: %d", id))
	}
	return nil
}

func (r *gormUserRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgDomain.NewNotFoundError(fmt.Sprintf("no user found with ID: %d", id))
	}
	return nil
}
