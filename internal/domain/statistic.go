package domain

import (
	"context"

	"github.com/luckyspin-lab/backend/internal/model"
	"github.com/luckyspin-lab/backend/internal/repository"
	"github.com/luckyspin-lab/backend/pkg/errorx"
	"github.com/luckyspin-lab/backend/pkg/xcontext"
)

type StatisticDomain interface {
	GetStats(context.Context, *model.GetStatsRequest) (*model.GetStatsResponse, error)
}

type statisticDomain struct {
	tenantRepo repository.TenantRepository
}

func NewStatisticDomain(tenantRepo repository.TenantRepository) StatisticDomain {
	return &statisticDomain{tenantRepo: tenantRepo}
}

func (d *statisticDomain) GetStats(
	ctx context.Context, req *model.GetStatsRequest,
) (*model.GetStatsResponse, error) {
	aggregate, err := d.tenantRepo.Aggregate(ctx, req.PageID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot aggregate tenant counters: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetStatsResponse{
		TotalPages:  aggregate.TotalPages,
		TotalSpins:  aggregate.TotalSpins,
		TotalPrizes: aggregate.TotalPrizes,
		TotalUsers:  aggregate.TotalUsers,
	}, nil
}
