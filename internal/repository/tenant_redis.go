package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/luckyspin-lab/backend/internal/entity"
	"github.com/luckyspin-lab/backend/pkg/xcontext"
	"github.com/luckyspin-lab/backend/pkg/xredis"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// tenantDocumentRepository is the document-store variant of the tenant record
// store: one JSON document per tenant, keyed by page id. It exists to keep
// persistence swappable; the relational variant is the production default.
type tenantDocumentRepository struct {
	redisClient xredis.Client
}

func NewTenantDocumentRepository(redisClient xredis.Client) *tenantDocumentRepository {
	return &tenantDocumentRepository{redisClient: redisClient}
}

func (r *tenantDocumentRepository) key(id string) string {
	return fmt.Sprintf("tenant:%s", id)
}

func (r *tenantDocumentRepository) write(ctx context.Context, data *entity.Tenant) error {
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}

	return r.redisClient.Set(ctx, r.key(data.ID), string(b))
}

// Create stamps the timestamps itself; there is no gorm hook on this path.
func (r *tenantDocumentRepository) Create(ctx context.Context, data *entity.Tenant) error {
	now := time.Now()
	if data.CreatedAt.IsZero() {
		data.CreatedAt = now
	}
	data.UpdatedAt = now

	return r.write(ctx, data)
}

func (r *tenantDocumentRepository) GetByID(ctx context.Context, id string) (*entity.Tenant, error) {
	value, err := r.redisClient.Get(ctx, r.key(id))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, gorm.ErrRecordNotFound
		}

		return nil, err
	}

	var result entity.Tenant
	if err := json.Unmarshal([]byte(value), &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *tenantDocumentRepository) GetList(ctx context.Context) ([]entity.Tenant, error) {
	keys, err := r.redisClient.Keys(ctx, r.key("*"))
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return nil, nil
	}

	values, err := r.redisClient.MGet(ctx, keys...)
	if err != nil {
		return nil, err
	}

	var result []entity.Tenant
	for i := range values {
		s, ok := values[i].(string)
		if !ok {
			continue
		}

		var record entity.Tenant
		if err := json.Unmarshal([]byte(s), &record); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot unmarshal tenant document: %v", err)
			continue
		}

		result = append(result, record)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

func (r *tenantDocumentRepository) Update(ctx context.Context, data *entity.Tenant) error {
	data.UpdatedAt = time.Now()
	return r.write(ctx, data)
}

func (r *tenantDocumentRepository) DeleteByID(ctx context.Context, id string) error {
	exist, err := r.redisClient.Exist(ctx, r.key(id))
	if err != nil {
		return err
	}

	if !exist {
		return gorm.ErrRecordNotFound
	}

	return r.redisClient.Del(ctx, r.key(id))
}

func (r *tenantDocumentRepository) Aggregate(ctx context.Context, pageID string) (*TenantAggregate, error) {
	tenants, err := r.GetList(ctx)
	if err != nil {
		return nil, err
	}

	result := TenantAggregate{}
	for _, tenant := range tenants {
		if pageID != "" && tenant.ID != pageID {
			continue
		}

		result.TotalPages++
		result.TotalSpins += tenant.TotalSpins
		result.TotalPrizes += tenant.TotalPrizes
		result.TotalUsers += tenant.TotalUsers
	}

	return &result, nil
}
