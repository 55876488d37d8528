package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/luckyspin-lab/backend/internal/entity"
	"github.com/luckyspin-lab/backend/pkg/xcontext"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestContext(t *testing.T) context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	ctx := xcontext.WithDB(context.Background(), db)
	require.NoError(t, entity.MigrateTable(ctx))
	return ctx
}

func Test_tenantRepository_CreateAndGet(t *testing.T) {
	ctx := newTestContext(t)
	repo := NewTenantRepository()

	tenant := &entity.Tenant{
		Base:     entity.Base{ID: "1001"},
		ShopName: "Circle Coffee",
		IsActive: true,
		Config: entity.Map{
			"shop_patterns": []any{"Circle Coffee"},
		},
	}
	require.NoError(t, repo.Create(ctx, tenant))

	result, err := repo.GetByID(ctx, "1001")
	require.NoError(t, err)
	require.Equal(t, "Circle Coffee", result.ShopName)
	require.Equal(t, []any{"Circle Coffee"}, result.Config["shop_patterns"])
	require.False(t, result.CreatedAt.IsZero())

	_, err = repo.GetByID(ctx, "missing")
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func Test_tenantRepository_Update(t *testing.T) {
	ctx := newTestContext(t)
	repo := NewTenantRepository()

	tenant := &entity.Tenant{
		Base:     entity.Base{ID: "1001"},
		ShopName: "Circle Coffee",
		IsActive: true,
		Config:   entity.Map{},
	}
	require.NoError(t, repo.Create(ctx, tenant))
	createdAt := tenant.CreatedAt

	time.Sleep(10 * time.Millisecond)

	// Zero values persist on a full save: deactivation must stick.
	tenant.IsActive = false
	require.NoError(t, repo.Update(ctx, tenant))

	result, err := repo.GetByID(ctx, "1001")
	require.NoError(t, err)
	require.False(t, result.IsActive)
	require.Equal(t, createdAt.Unix(), result.CreatedAt.Unix())
	require.True(t, result.UpdatedAt.After(result.CreatedAt))
}

func Test_tenantRepository_Delete(t *testing.T) {
	ctx := newTestContext(t)
	repo := NewTenantRepository()

	require.NoError(t, repo.Create(ctx, &entity.Tenant{Base: entity.Base{ID: "1001"}, Config: entity.Map{}}))
	require.NoError(t, repo.DeleteByID(ctx, "1001"))

	_, err := repo.GetByID(ctx, "1001")
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	err = repo.DeleteByID(ctx, "1001")
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func Test_tenantRepository_Aggregate(t *testing.T) {
	ctx := newTestContext(t)
	repo := NewTenantRepository()

	require.NoError(t, repo.Create(ctx, &entity.Tenant{
		Base: entity.Base{ID: "1001"}, Config: entity.Map{},
		TotalSpins: 10, TotalPrizes: 2, TotalUsers: 5,
	}))
	require.NoError(t, repo.Create(ctx, &entity.Tenant{
		Base: entity.Base{ID: "1002"}, Config: entity.Map{},
		TotalSpins: 30, TotalPrizes: 4, TotalUsers: 15,
	}))

	all, err := repo.Aggregate(ctx, "")
	require.NoError(t, err)
	require.Equal(t, TenantAggregate{TotalPages: 2, TotalSpins: 40, TotalPrizes: 6, TotalUsers: 20}, *all)

	one, err := repo.Aggregate(ctx, "1001")
	require.NoError(t, err)
	require.Equal(t, TenantAggregate{TotalPages: 1, TotalSpins: 10, TotalPrizes: 2, TotalUsers: 5}, *one)

	none, err := repo.Aggregate(ctx, "unknown")
	require.NoError(t, err)
	require.Equal(t, TenantAggregate{}, *none)
}
