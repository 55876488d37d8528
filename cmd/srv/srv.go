package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/luckyspin-lab/backend/config"
	"github.com/luckyspin-lab/backend/internal/client"
	"github.com/luckyspin-lab/backend/internal/domain"
	"github.com/luckyspin-lab/backend/internal/repository"
	"github.com/luckyspin-lab/backend/pkg/logger"
	"github.com/luckyspin-lab/backend/pkg/router"
	"github.com/luckyspin-lab/backend/pkg/xcontext"
	"github.com/luckyspin-lab/backend/pkg/xredis"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App

	configs *config.Configs
	logger  logger.Logger

	db          *gorm.DB
	redisClient xredis.Client

	tenantRepo   repository.TenantRepository
	engineCaller client.EngineCaller

	pageDomain      domain.PageDomain
	webhookDomain   domain.WebhookDomain
	statisticDomain domain.StatisticDomain

	router *router.Router
	server *http.Server
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func (s *srv) loadConfig() {
	forwardTimeout, err := time.ParseDuration(getEnv("FORWARD_TIMEOUT", "5s"))
	if err != nil {
		panic(err)
	}

	rateSumTolerance, err := strconv.ParseFloat(getEnv("RATE_SUM_TOLERANCE", "0.01"), 64)
	if err != nil {
		panic(err)
	}

	minTokenLength, err := strconv.Atoi(getEnv("MIN_TOKEN_LENGTH", "50"))
	if err != nil {
		panic(err)
	}

	s.configs = &config.Configs{
		Env: getEnv("ENV", "local"),
		ApiServer: config.ServerConfigs{
			Host: getEnv("HOST", ""),
			Port: getEnv("PORT", "3000"),
		},
		Database: config.DatabaseConfigs{
			Driver:     getEnv("DB_DRIVER", "sqlite"),
			Connection: getEnv("DB_CONNECTION", "luckyspin.db"),
		},
		Redis: config.RedisConfigs{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
		},
		Webhook: config.WebhookConfigs{
			VerifyToken:    os.Getenv("FB_VERIFY_TOKEN"),
			EngineURL:      getEnv("AI_SERVICE_URL", "http://localhost:8080"),
			ForwardTimeout: forwardTimeout,
		},
		Page: config.PageConfigs{
			RateSumTolerance: rateSumTolerance,
			MinTokenLength:   minTokenLength,
		},
	}
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if s.configs.Env == "local" {
		level = logger.DEBUG
	}

	s.logger = logger.NewLogger(level)
}

func (s *srv) loadDatabase() {
	var err error
	switch s.configs.Database.Driver {
	case "mysql":
		s.db, err = gorm.Open(mysql.Open(s.configs.Database.Connection), &gorm.Config{})
	case "sqlite":
		s.db, err = gorm.Open(sqlite.Open(s.configs.Database.Connection), &gorm.Config{})
	case "redis":
		// The document-store variant has no relational connection.
		return
	default:
		panic("unknown database driver " + s.configs.Database.Driver)
	}

	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRedis() {
	if s.configs.Database.Driver != "redis" {
		return
	}

	ctx := xcontext.WithConfigs(context.Background(), *s.configs)
	redisClient, err := xredis.NewClient(ctx)
	if err != nil {
		panic(err)
	}

	s.redisClient = redisClient
}

func (s *srv) loadEngineClient() {
	s.engineCaller = client.NewEngineCaller(
		s.configs.Webhook.EngineURL, s.configs.Webhook.ForwardTimeout)
}

func (s *srv) loadRepos() {
	if s.configs.Database.Driver == "redis" {
		s.tenantRepo = repository.NewTenantDocumentRepository(s.redisClient)
	} else {
		s.tenantRepo = repository.NewTenantRepository()
	}
}

func (s *srv) loadDomains() {
	s.pageDomain = domain.NewPageDomain(s.tenantRepo)
	s.webhookDomain = domain.NewWebhookDomain(s.engineCaller)
	s.statisticDomain = domain.NewStatisticDomain(s.tenantRepo)
}
