package users

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"crm-backend/internal/models"
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (models.UserProfile, error)
	GetByEmail(ctx context.Context, email string) (models.UserProfile, error)
	Create(ctx context.Context, item *models.UserProfile) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (models.UserProfile, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) GetByID(ctx context.Context, id uuid.UUID) (models.UserProfile, error) {
	var item models.UserProfile
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	return item, err
}

func (r *GormRepository) GetByEmail(ctx context.Context, email string) (models.UserProfile, error) {
	var item models.UserProfile
	err := r.db.WithContext(ctx).First(&item, "email = ?", email).Error
	return item, err
}

func (r *GormRepository) Create(ctx context.Context, item *models.UserProfile) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *GormRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (models.UserProfile, error) {
	var item models.UserProfile
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return models.UserProfile{}, err
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&item).Updates(updates).Error; err != nil {
			return models.UserProfile{}, err
		}
	}
	return item, nil
}
