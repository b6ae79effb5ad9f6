package service

import (
	"context"
	"log/slog"

	"jdbc-bridge/internal/domain"
	"jdbc-bridge/internal/jdbc"
)

// TableService resolves external-table definitions into connection
// descriptors for the execution layer.
type TableService struct {
	registry domain.ResourceRegistry
	// defaultSessionVars is the server-level session-variable string applied
	// when a request carries none.
	defaultSessionVars string
	logger             *slog.Logger
}

// TableServiceDeps holds dependencies for TableService.
type TableServiceDeps struct {
	Registry           domain.ResourceRegistry
	DefaultSessionVars string
	Logger             *slog.Logger
}

// NewTableService creates a new TableService.
func NewTableService(deps TableServiceDeps) *TableService {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &TableService{
		registry:           deps.Registry,
		defaultSessionVars: deps.DefaultSessionVars,
		logger:             logger,
	}
}

// ResolveDescriptor validates the request's raw properties and produces the
// connection descriptor. The request's session-variable string, when non-nil,
// overrides the server default; an explicit empty string disables merging.
func (s *TableService) ResolveDescriptor(ctx context.Context, req domain.DescriptorRequest) (*domain.ConnectionDescriptor, error) {
	sessionVars := s.defaultSessionVars
	if req.SessionVariables != nil {
		sessionVars = *req.SessionVariables
	}

	desc, err := jdbc.ResolveDescriptor(ctx, s.registry, jdbc.Params{
		TableName:        req.TableName,
		Database:         req.Database,
		Catalog:          req.Catalog,
		Properties:       req.Properties,
		SessionVariables: domain.ParseSessionVariables(sessionVars),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("resolved external table descriptor",
		"table", desc.JDBCTable, "driver", desc.DriverName)
	return desc, nil
}
