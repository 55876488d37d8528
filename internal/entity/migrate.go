package entity

import (
	"context"

	"github.com/luckyspin-lab/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&Tenant{},
	)
}
