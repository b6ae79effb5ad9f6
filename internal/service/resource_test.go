package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jdbc-bridge/internal/domain"
)

// mockResourceRepo is a func-field mock of domain.ResourceRepository.
type mockResourceRepo struct {
	createFn    func(ctx context.Context, res *domain.Resource) (*domain.Resource, error)
	getByNameFn func(ctx context.Context, name string) (*domain.Resource, error)
	listFn      func(ctx context.Context) ([]domain.Resource, error)
	deleteFn    func(ctx context.Context, name string) error
}

func (m *mockResourceRepo) Create(ctx context.Context, res *domain.Resource) (*domain.Resource, error) {
	return m.createFn(ctx, res)
}

func (m *mockResourceRepo) GetByName(ctx context.Context, name string) (*domain.Resource, error) {
	return m.getByNameFn(ctx, name)
}

func (m *mockResourceRepo) List(ctx context.Context) ([]domain.Resource, error) {
	return m.listFn(ctx)
}

func (m *mockResourceRepo) Delete(ctx context.Context, name string) error {
	return m.deleteFn(ctx, name)
}

func jdbcProps() map[string]string {
	return map[string]string{
		domain.PropURI:         "jdbc:mysql://127.0.0.1:3306/db0",
		domain.PropDriverURL:   "http://x.com/mysql.jar",
		domain.PropDriverClass: "com.mysql.cj.jdbc.Driver",
		domain.PropUser:        "user0",
		domain.PropPassword:    "password0",
	}
}

func TestResourceService_Create(t *testing.T) {
	repo := &mockResourceRepo{
		getByNameFn: func(ctx context.Context, name string) (*domain.Resource, error) {
			return nil, domain.ErrNotFound("resource %q not found", name)
		},
		createFn: func(ctx context.Context, res *domain.Resource) (*domain.Resource, error) {
			created := *res
			created.ID = 1
			return &created, nil
		},
	}
	svc := NewResourceService(repo, nil)

	created, err := svc.Create(context.Background(), domain.CreateResourceRequest{
		Name:       "jdbc0",
		Kind:       "jdbc",
		Properties: jdbcProps(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, domain.ResourceKindJDBC, created.Kind)
}

func TestResourceService_CreateInvalidName(t *testing.T) {
	svc := NewResourceService(&mockResourceRepo{}, nil)

	for _, name := range []string{"", "has space", "semi;colon", "dash-ed", "0leading"} {
		_, err := svc.Create(context.Background(), domain.CreateResourceRequest{
			Name:       name,
			Kind:       "jdbc",
			Properties: jdbcProps(),
		})
		assert.True(t, errors.As(err, new(*domain.ValidationError)), "name %q", name)
	}
}

func TestResourceService_CreateUnknownKind(t *testing.T) {
	svc := NewResourceService(&mockResourceRepo{}, nil)

	_, err := svc.Create(context.Background(), domain.CreateResourceRequest{
		Name: "r0",
		Kind: "clickhouse",
	})
	assert.True(t, errors.As(err, new(*domain.ValidationError)))
}

func TestResourceService_CreateJDBCMissingProperty(t *testing.T) {
	svc := NewResourceService(&mockResourceRepo{}, nil)

	for _, key := range []string{
		domain.PropURI, domain.PropDriverURL, domain.PropDriverClass,
		domain.PropUser, domain.PropPassword,
	} {
		props := jdbcProps()
		delete(props, key)

		_, err := svc.Create(context.Background(), domain.CreateResourceRequest{
			Name:       "jdbc0",
			Kind:       "jdbc",
			Properties: props,
		})
		var missing *domain.MissingPropertyError
		require.True(t, errors.As(err, &missing), "key %s", key)
		assert.Equal(t, key, missing.Key)
	}
}

func TestResourceService_CreateChecksumOptional(t *testing.T) {
	repo := &mockResourceRepo{
		getByNameFn: func(ctx context.Context, name string) (*domain.Resource, error) {
			return nil, domain.ErrNotFound("resource %q not found", name)
		},
		createFn: func(ctx context.Context, res *domain.Resource) (*domain.Resource, error) {
			return res, nil
		},
	}
	svc := NewResourceService(repo, nil)

	_, err := svc.Create(context.Background(), domain.CreateResourceRequest{
		Name:       "jdbc0",
		Kind:       "jdbc",
		Properties: jdbcProps(), // no checksum
	})
	assert.NoError(t, err)
}

func TestResourceService_CreateDuplicate(t *testing.T) {
	repo := &mockResourceRepo{
		getByNameFn: func(ctx context.Context, name string) (*domain.Resource, error) {
			return &domain.Resource{Name: name, Kind: domain.ResourceKindJDBC}, nil
		},
	}
	svc := NewResourceService(repo, nil)

	_, err := svc.Create(context.Background(), domain.CreateResourceRequest{
		Name:       "jdbc0",
		Kind:       "jdbc",
		Properties: jdbcProps(),
	})
	assert.True(t, errors.As(err, new(*domain.ConflictError)))
}

func TestResourceService_LookupIsRegistry(t *testing.T) {
	want := &domain.Resource{Name: "jdbc0", Kind: domain.ResourceKindJDBC}
	repo := &mockResourceRepo{
		getByNameFn: func(ctx context.Context, name string) (*domain.Resource, error) {
			assert.Equal(t, "jdbc0", name)
			return want, nil
		},
	}

	var registry domain.ResourceRegistry = NewResourceService(repo, nil)
	got, err := registry.Lookup(context.Background(), "jdbc0")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResourceService_SeedSkipsExisting(t *testing.T) {
	existing := map[string]bool{"jdbc0": true}
	var created []string
	repo := &mockResourceRepo{
		getByNameFn: func(ctx context.Context, name string) (*domain.Resource, error) {
			if existing[name] {
				return &domain.Resource{Name: name}, nil
			}
			return nil, domain.ErrNotFound("resource %q not found", name)
		},
		createFn: func(ctx context.Context, res *domain.Resource) (*domain.Resource, error) {
			created = append(created, res.Name)
			return res, nil
		},
	}
	svc := NewResourceService(repo, nil)

	err := svc.Seed(context.Background(), []domain.CreateResourceRequest{
		{Name: "jdbc0", Kind: "jdbc", Properties: jdbcProps()},
		{Name: "jdbc1", Kind: "jdbc", Properties: jdbcProps()},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"jdbc1"}, created)
}

func TestResourceService_DeleteNotFound(t *testing.T) {
	repo := &mockResourceRepo{
		deleteFn: func(ctx context.Context, name string) error {
			return domain.ErrNotFound("resource %q not found", name)
		},
	}
	svc := NewResourceService(repo, nil)

	err := svc.Delete(context.Background(), "nope")
	assert.True(t, errors.As(err, new(*domain.NotFoundError)))
}
