package domain

import "context"

// ResourceRegistry looks up named resources. The descriptor core calls it at
// most once per table construction; the registry owns any caching.
type ResourceRegistry interface {
	Lookup(ctx context.Context, name string) (*Resource, error)
}

// ResourceRepository persists registered resources in the control-plane
// database.
type ResourceRepository interface {
	Create(ctx context.Context, res *Resource) (*Resource, error)
	GetByName(ctx context.Context, name string) (*Resource, error)
	List(ctx context.Context) ([]Resource, error)
	Delete(ctx context.Context, name string) error
}
