// Package repository implements domain repositories over the registry's
// SQLite database.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"jdbc-bridge/internal/domain"
)

// ResourceRepo implements domain.ResourceRepository using the control-plane
// SQLite database. Writes go through the single-connection write pool, reads
// through the wider read pool.
type ResourceRepo struct {
	write *sql.DB
	read  *sql.DB
}

// NewResourceRepo creates a new ResourceRepo over a write/read pool pair.
func NewResourceRepo(write, read *sql.DB) *ResourceRepo {
	return &ResourceRepo{write: write, read: read}
}

// Compile-time interface check.
var _ domain.ResourceRepository = (*ResourceRepo)(nil)

// Create persists a new resource.
func (r *ResourceRepo) Create(ctx context.Context, res *domain.Resource) (*domain.Resource, error) {
	props, err := json.Marshal(res.Properties)
	if err != nil {
		return nil, fmt.Errorf("marshal resource properties: %w", err)
	}

	result, err := r.write.ExecContext(ctx,
		`INSERT INTO resources (name, kind, properties, comment) VALUES (?, ?, ?, ?)`,
		res.Name, string(res.Kind), string(props), nullStrFromStr(res.Comment),
	)
	if err != nil {
		return nil, mapDBError(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("resource insert id: %w", err)
	}
	return r.getByID(ctx, id)
}

// GetByName returns a resource by name.
func (r *ResourceRepo) GetByName(ctx context.Context, name string) (*domain.Resource, error) {
	row := r.read.QueryRowContext(ctx,
		`SELECT id, name, kind, properties, comment, created_at, updated_at
		   FROM resources WHERE name = ?`, name)

	res, err := scanResource(row)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound("resource %q not found", name)
	}
	if err != nil {
		return nil, mapDBError(err)
	}
	return res, nil
}

// List returns all registered resources ordered by name.
func (r *ResourceRepo) List(ctx context.Context) ([]domain.Resource, error) {
	rows, err := r.read.QueryContext(ctx,
		`SELECT id, name, kind, properties, comment, created_at, updated_at
		   FROM resources ORDER BY name`)
	if err != nil {
		return nil, mapDBError(err)
	}
	defer rows.Close() //nolint:errcheck

	var result []domain.Resource
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *res)
	}
	return result, rows.Err()
}

// Delete removes a resource by name.
func (r *ResourceRepo) Delete(ctx context.Context, name string) error {
	result, err := r.write.ExecContext(ctx, `DELETE FROM resources WHERE name = ?`, name)
	if err != nil {
		return mapDBError(err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("resource delete rows: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound("resource %q not found", name)
	}
	return nil
}

func (r *ResourceRepo) getByID(ctx context.Context, id int64) (*domain.Resource, error) {
	// Read on the write pool so a just-committed insert is always visible.
	row := r.write.QueryRowContext(ctx,
		`SELECT id, name, kind, properties, comment, created_at, updated_at
		   FROM resources WHERE id = ?`, id)

	res, err := scanResource(row)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound("resource %d not found", id)
	}
	if err != nil {
		return nil, mapDBError(err)
	}
	return res, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanResource(s scanner) (*domain.Resource, error) {
	var (
		res     domain.Resource
		kind    string
		props   string
		comment sql.NullString
	)
	if err := s.Scan(&res.ID, &res.Name, &kind, &props, &comment, &res.CreatedAt, &res.UpdatedAt); err != nil {
		return nil, err
	}
	res.Kind = domain.ResourceKind(kind)
	res.Comment = comment.String
	if err := json.Unmarshal([]byte(props), &res.Properties); err != nil {
		return nil, fmt.Errorf("unmarshal resource properties: %w", err)
	}
	return &res, nil
}
