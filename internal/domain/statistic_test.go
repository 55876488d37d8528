package domain

import (
	"testing"

	"github.com/luckyspin-lab/backend/internal/model"
	"github.com/luckyspin-lab/backend/internal/repository"
	"github.com/luckyspin-lab/backend/pkg/testutil"

	"github.com/stretchr/testify/require"
)

func Test_statisticDomain_GetStats(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := NewStatisticDomain(repository.NewTenantRepository())

	// Unscoped stats sum over every page.
	resp, err := domain.GetStats(ctx, &model.GetStatsRequest{})
	require.NoError(t, err)
	require.Equal(t, int64(2), resp.TotalPages)
	require.Equal(t, testutil.Tenant1.TotalSpins+testutil.Tenant2.TotalSpins, resp.TotalSpins)
	require.Equal(t, testutil.Tenant1.TotalPrizes+testutil.Tenant2.TotalPrizes, resp.TotalPrizes)
	require.Equal(t, testutil.Tenant1.TotalUsers+testutil.Tenant2.TotalUsers, resp.TotalUsers)

	// Scoped stats equal the page's own counters.
	resp, err = domain.GetStats(ctx, &model.GetStatsRequest{PageID: testutil.Tenant1.ID})
	require.NoError(t, err)
	require.Equal(t, int64(1), resp.TotalPages)
	require.Equal(t, testutil.Tenant1.TotalSpins, resp.TotalSpins)
	require.Equal(t, testutil.Tenant1.TotalPrizes, resp.TotalPrizes)
	require.Equal(t, testutil.Tenant1.TotalUsers, resp.TotalUsers)

	// No match yields zeros, not an error.
	resp, err = domain.GetStats(ctx, &model.GetStatsRequest{PageID: "unknown"})
	require.NoError(t, err)
	require.Equal(t, int64(0), resp.TotalPages)
	require.Equal(t, int64(0), resp.TotalSpins)
}
