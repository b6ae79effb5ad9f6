package app

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"jdbc-bridge/internal/domain"
)

// seedFile is the on-disk shape of a resource seed file.
type seedFile struct {
	Resources []seedResource `yaml:"resources"`
}

type seedResource struct {
	Name       string            `yaml:"name"`
	Kind       string            `yaml:"kind"`
	Properties map[string]string `yaml:"properties"`
	Comment    string            `yaml:"comment"`
}

// SeedResources registers resources declared in the configured YAML file.
// Resources that already exist are skipped. No configured file is a no-op.
func (a *App) SeedResources(ctx context.Context) error {
	path := a.cfg.ResourcesFile
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // operator-supplied path
	if err != nil {
		return fmt.Errorf("read resources file %s: %w", path, err)
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse resources file %s: %w", path, err)
	}

	reqs := make([]domain.CreateResourceRequest, len(file.Resources))
	for i, r := range file.Resources {
		reqs[i] = domain.CreateResourceRequest{
			Name:       r.Name,
			Kind:       r.Kind,
			Properties: r.Properties,
			Comment:    r.Comment,
		}
	}

	if err := a.Resources.Seed(ctx, reqs); err != nil {
		return fmt.Errorf("seed resources from %s: %w", path, err)
	}
	a.logger.Info("seeded resources", "file", path, "count", len(reqs))
	return nil
}
