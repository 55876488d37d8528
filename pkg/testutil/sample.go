package testutil

import (
	"context"

	"github.com/luckyspin-lab/backend/internal/entity"
	"github.com/luckyspin-lab/backend/internal/repository"
)

var Tenant1 = &entity.Tenant{
	Base:        entity.Base{ID: "1001"},
	ShopName:    "Circle Coffee",
	AccessToken: "EAAG-tenant1-token-EAAG-tenant1-token-EAAG-tenant1-token",
	IsActive:    true,
	Config: entity.Map{
		entity.ConfigKeyShopPatterns: []any{"Circle Coffee", "CircleCF"},
		entity.ConfigKeyPrizes: []any{
			map[string]any{"name": "Voucher 50k", "rate": 0.05, "emoji": "🎉", "instruction": "Show this message to the staff"},
			map[string]any{"name": "Free drink", "rate": 0.15, "emoji": "🥤", "instruction": "Show this message for a free drink"},
			map[string]any{"name": "Better luck next time", "rate": 0.8, "emoji": "🍀", "instruction": "Come back tomorrow"},
		},
	},
	TotalSpins:  120,
	TotalPrizes: 24,
	TotalUsers:  75,
}

var Tenant2 = &entity.Tenant{
	Base:     entity.Base{ID: "1002"},
	ShopName: "Mini Mart",
	IsActive: false,
	Config:   entity.Map{},

	TotalSpins:  30,
	TotalPrizes: 6,
	TotalUsers:  18,
}

func CreateFixtureDb(ctx context.Context) {
	tenantRepo := repository.NewTenantRepository()

	for _, tenant := range []*entity.Tenant{Tenant1, Tenant2} {
		record := *tenant
		if err := tenantRepo.Create(ctx, &record); err != nil {
			panic(err)
		}
	}
}
