package leads

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"crm-backend/internal/models"
)

type Repository interface {
	List(ctx context.Context, search string, limit, offset int) ([]models.Lead, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.Lead, error)
	Create(ctx context.Context, item *models.Lead) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (models.Lead, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) List(ctx context.Context, search string, limit, offset int) ([]models.Lead, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Lead{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(company) LIKE ? OR LOWER(email) LIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]models.Lead, 0)
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *GormRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Lead, error) {
	var item models.Lead
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	return item, err
}

func (r *GormRepository) Create(ctx context.Context, item *models.Lead) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *GormRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (models.Lead, error) {
	var item models.Lead
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return models.Lead{}, err
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&item).Updates(updates).Error; err != nil {
			return models.Lead{}, err
		}
	}
	return item, nil
}

func (r *GormRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Lead{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Lead{}).Count(&total).Error
	return total, err
}
