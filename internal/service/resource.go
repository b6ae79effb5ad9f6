// Package service implements the application services of the JDBC bridge:
// the resource registry and external-table descriptor resolution.
package service

import (
	"context"
	"errors"
	"log/slog"
	"regexp"

	"jdbc-bridge/internal/domain"
)

// resourceNameRe constrains resource names to safe identifiers.
var resourceNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// jdbcRequiredProps must be present when registering a JDBC resource.
// Checksum is optional at registration time: older deployments computed it
// lazily when the driver jar was first fetched.
var jdbcRequiredProps = []string{
	domain.PropURI,
	domain.PropDriverURL,
	domain.PropDriverClass,
	domain.PropUser,
	domain.PropPassword,
}

// ResourceService manages the lifecycle of registered resources and serves
// as the resource registry for descriptor resolution.
type ResourceService struct {
	repo   domain.ResourceRepository
	logger *slog.Logger
}

// NewResourceService creates a new ResourceService.
func NewResourceService(repo domain.ResourceRepository, logger *slog.Logger) *ResourceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResourceService{repo: repo, logger: logger}
}

// Compile-time interface check: the service is the registry.
var _ domain.ResourceRegistry = (*ResourceService)(nil)

// Create validates and persists a new resource.
func (s *ResourceService) Create(ctx context.Context, req domain.CreateResourceRequest) (*domain.Resource, error) {
	if !resourceNameRe.MatchString(req.Name) {
		return nil, domain.ErrValidation("invalid resource name %q", req.Name)
	}

	kind := domain.ResourceKind(req.Kind)
	if !kind.Valid() {
		return nil, domain.ErrValidation("unsupported resource kind %q", req.Kind)
	}

	if kind == domain.ResourceKindJDBC {
		for _, key := range jdbcRequiredProps {
			if req.Properties[key] == "" {
				return nil, &domain.MissingPropertyError{Key: key}
			}
		}
	}

	// Duplicate check; the UNIQUE constraint backstops races.
	if _, err := s.repo.GetByName(ctx, req.Name); err == nil {
		return nil, domain.ErrConflict("resource %q already exists", req.Name)
	}

	props := req.Properties
	if props == nil {
		props = map[string]string{}
	}
	created, err := s.repo.Create(ctx, &domain.Resource{
		Name:       req.Name,
		Kind:       kind,
		Properties: props,
		Comment:    req.Comment,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("resource registered", "resource", created.Name, "kind", created.Kind)
	return created, nil
}

// Get returns a resource by name.
func (s *ResourceService) Get(ctx context.Context, name string) (*domain.Resource, error) {
	return s.repo.GetByName(ctx, name)
}

// List returns all registered resources.
func (s *ResourceService) List(ctx context.Context) ([]domain.Resource, error) {
	return s.repo.List(ctx)
}

// Delete removes a resource by name.
func (s *ResourceService) Delete(ctx context.Context, name string) error {
	if err := s.repo.Delete(ctx, name); err != nil {
		return err
	}
	s.logger.Info("resource deleted", "resource", name)
	return nil
}

// Lookup implements domain.ResourceRegistry for descriptor resolution.
func (s *ResourceService) Lookup(ctx context.Context, name string) (*domain.Resource, error) {
	return s.repo.GetByName(ctx, name)
}

// Seed registers the given resources, skipping any that already exist.
// Used for declarative startup seeding; individual conflicts are not errors.
func (s *ResourceService) Seed(ctx context.Context, reqs []domain.CreateResourceRequest) error {
	for _, req := range reqs {
		if _, err := s.Create(ctx, req); err != nil {
			if errors.As(err, new(*domain.ConflictError)) {
				s.logger.Debug("seed skipped, resource exists", "resource", req.Name)
				continue
			}
			return err
		}
	}
	return nil
}
