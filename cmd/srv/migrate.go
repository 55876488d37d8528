package main

import (
	"context"
	"errors"

	"github.com/luckyspin-lab/backend/migration"
	"github.com/luckyspin-lab/backend/pkg/xcontext"

	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(ct *cli.Context) error {
	server.loadConfig()
	server.loadLogger()
	server.loadDatabase()

	if s.configs.Database.Driver == "redis" {
		return errors.New("the redis backend has no tables to migrate")
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, *s.configs)
	ctx = xcontext.WithLogger(ctx, s.logger)
	ctx = xcontext.WithDB(ctx, s.db)

	if err := migration.AutoMigrate(ctx); err != nil {
		return err
	}

	s.logger.Infof("Migration completed")
	return nil
}
