// Package app wires the JDBC bridge's services together.
package app

import (
	"database/sql"
	"log/slog"
	"net/http"

	"jdbc-bridge/internal/api"
	"jdbc-bridge/internal/config"
	"jdbc-bridge/internal/db/repository"
	"jdbc-bridge/internal/service"
)

// Deps holds everything App needs.
type Deps struct {
	Cfg     *config.Config
	WriteDB *sql.DB
	ReadDB  *sql.DB
	Logger  *slog.Logger
}

// App is the assembled application.
type App struct {
	Resources *service.ResourceService
	Tables    *service.TableService
	Handler   http.Handler

	cfg    *config.Config
	logger *slog.Logger
}

// New wires repositories and services into a ready-to-serve App.
func New(deps Deps) *App {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	repo := repository.NewResourceRepo(deps.WriteDB, deps.ReadDB)
	resources := service.NewResourceService(repo, logger.With("component", "resources"))
	tables := service.NewTableService(service.TableServiceDeps{
		Registry:           resources,
		DefaultSessionVars: deps.Cfg.SessionVariables,
		Logger:             logger.With("component", "tables"),
	})

	handler := api.NewHandler(resources, tables, logger.With("component", "api"))

	return &App{
		Resources: resources,
		Tables:    tables,
		Handler:   api.NewRouter(deps.Cfg, handler),
		cfg:       deps.Cfg,
		logger:    logger,
	}
}
