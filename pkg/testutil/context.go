package testutil

import (
	"context"
	"time"

	"github.com/luckyspin-lab/backend/config"
	"github.com/luckyspin-lab/backend/internal/entity"
	"github.com/luckyspin-lab/backend/pkg/logger"
	"github.com/luckyspin-lab/backend/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	cfg := config.Configs{
		Env: "test",
		Webhook: config.WebhookConfigs{
			VerifyToken:    "verify-secret",
			EngineURL:      "http://localhost:8080",
			ForwardTimeout: time.Second,
		},
		Page: config.PageConfigs{
			RateSumTolerance: 0.01,
			MinTokenLength:   50,
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}
