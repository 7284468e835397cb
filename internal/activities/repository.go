package activities

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"crm-backend/internal/models"
)

type Repository interface {
	List(ctx context.Context, search string, limit, offset int) ([]models.ActivityLog, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.ActivityLog, error)
	Create(ctx context.Context, item *models.ActivityLog) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (models.ActivityLog, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) List(ctx context.Context, search string, limit, offset int) ([]models.ActivityLog, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.ActivityLog{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(activity_type) LIKE ? OR LOWER(notes) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]models.ActivityLog, 0)
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *GormRepository) GetByID(ctx context.Context, id uuid.UUID) (models.ActivityLog, error) {
	var item models.ActivityLog
	err := r.db.WithContext(ctx).Preload("Contact").Preload("Account").First(&item, "id = ?", id).Error
	return item, err
}

func (r *GormRepository) Create(ctx context.Context, item *models.ActivityLog) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *GormRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (models.ActivityLog, error) {
	var item models.ActivityLog
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return models.ActivityLog{}, err
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&item).Updates(updates).Error; err != nil {
			return models.ActivityLog{}, err
		}
	}
	return item, nil
}

func (r *GormRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.ActivityLog{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.ActivityLog{}).Count(&total).Error
	return total, err
}
