package repository

import (
	"context"

	"github.com/luckyspin-lab/backend/internal/entity"
	"github.com/luckyspin-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type TenantAggregate struct {
	TotalPages  int64
	TotalSpins  int64
	TotalPrizes int64
	TotalUsers  int64
}

// TenantRepository is the tenant record store. Two implementations exist: a
// relational one over gorm and a document one over redis. Callers match
// missing records with gorm.ErrRecordNotFound regardless of the backend.
type TenantRepository interface {
	Create(ctx context.Context, data *entity.Tenant) error
	GetByID(ctx context.Context, id string) (*entity.Tenant, error)
	GetList(ctx context.Context) ([]entity.Tenant, error)
	Update(ctx context.Context, data *entity.Tenant) error
	DeleteByID(ctx context.Context, id string) error
	Aggregate(ctx context.Context, pageID string) (*TenantAggregate, error)
}

type tenantRepository struct{}

func NewTenantRepository() *tenantRepository {
	return &tenantRepository{}
}

func (r *tenantRepository) Create(ctx context.Context, data *entity.Tenant) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *tenantRepository) GetByID(ctx context.Context, id string) (*entity.Tenant, error) {
	var result entity.Tenant
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *tenantRepository) GetList(ctx context.Context) ([]entity.Tenant, error) {
	var result []entity.Tenant
	if err := xcontext.DB(ctx).Order("created_at ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

// Update writes the full record back. The merge semantics live in the domain;
// a struct-based gorm Updates would silently skip zero values like
// is_active=false, so the whole row is saved.
func (r *tenantRepository) Update(ctx context.Context, data *entity.Tenant) error {
	return xcontext.DB(ctx).Save(data).Error
}

func (r *tenantRepository) DeleteByID(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).Delete(&entity.Tenant{}, "id=?", id)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *tenantRepository) Aggregate(ctx context.Context, pageID string) (*TenantAggregate, error) {
	tx := xcontext.DB(ctx).Model(&entity.Tenant{}).
		Select("COUNT(*) AS total_pages, " +
			"COALESCE(SUM(total_spins), 0) AS total_spins, " +
			"COALESCE(SUM(total_prizes), 0) AS total_prizes, " +
			"COALESCE(SUM(total_users), 0) AS total_users")

	if pageID != "" {
		tx = tx.Where("id=?", pageID)
	}

	var result TenantAggregate
	if err := tx.Scan(&result).Error; err != nil {
		return nil, err
	}

	return &result, nil
}
