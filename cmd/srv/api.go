package main

import (
	"net/http"

	"github.com/luckyspin-lab/backend/internal/middleware"
	"github.com/luckyspin-lab/backend/pkg/router"

	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(ct *cli.Context) error {
	server.loadConfig()
	server.loadLogger()
	server.loadDatabase()
	server.loadRedis()
	server.loadEngineClient()
	server.loadRepos()
	server.loadDomains()
	server.loadRouter()

	s.server = &http.Server{
		Addr:    s.configs.ApiServer.Address(),
		Handler: s.router.Handler(),
	}

	s.logger.Infof("Starting server on port: %s", s.configs.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}
	s.logger.Infof("server stop")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, *s.configs, s.logger)
	s.router.Before(middleware.AllowCors())
	s.router.AddCloser(middleware.Logger())

	// Page admin API
	router.GET(s.router, "/pages", s.pageDomain.GetList)
	router.GET(s.router, "/pages/{id}", s.pageDomain.Get)
	router.POST(s.router, "/pages", s.pageDomain.Create,
		router.WithSuccessStatus(http.StatusCreated))
	router.PUT(s.router, "/pages/{id}", s.pageDomain.UpdateByID)
	router.PUT(s.router, "/pages/{id}/token", s.pageDomain.UpdateToken)
	router.DELETE(s.router, "/pages/{id}", s.pageDomain.DeleteByID,
		router.WithSuccessStatus(http.StatusNoContent))

	// Stats API
	router.GET(s.router, "/stats", s.statisticDomain.GetStats)

	// Facebook webhook
	router.GET(s.router, "/webhook", s.webhookDomain.Verify)
	router.POST(s.router, "/webhook", s.webhookDomain.Receive)
}
