// Package category implements the Category repository using PostgreSQL.
package category

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/bookflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new category repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type categoryRow struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
}

func (r categoryRow) toDomain() *domain.Category {
	return &domain.Category{ID: r.ID, Name: r.Name, Description: r.Description}
}

// List returns all categories ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []categoryRow
	if err := pgxscan.Select(ctx, q, &rows, `SELECT id, name, description FROM categories ORDER BY name`); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	out := make([]domain.Category, len(rows))
	for i := range rows {
		out[i] = *rows[i].toDomain()
	}
	return out, nil
}

// GetByID returns a single category.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row categoryRow
	err := pgxscan.Get(ctx, q, &row, `SELECT id, name, description FROM categories WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return row.toDomain(), nil
}

// Exists reports whether a category with the given id exists.
func (r *Repo) Exists(ctx context.Context, id int64) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var ok bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("category exists: %w", err)
	}
	return ok, nil
}

// Create inserts a category. A duplicate name maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, name string, description *string) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row categoryRow
	err := pgxscan.Get(ctx, q, &row,
		`INSERT INTO categories (name, description) VALUES ($1, $2) RETURNING id, name, description`,
		name, description,
	)
	if err != nil {
		return nil, postgres.MapError(err, "category", 0)
	}
	return row.toDomain(), nil
}

// Update writes the non-nil params and returns the stored category.
func (r *Repo) Update(ctx context.Context, id int64, params domain.CategoryUpdateParams) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	set := make(map[string]any)
	if params.Name != nil {
		set["name"] = *params.Name
	}
	if params.Description != nil {
		if *params.Description == "" {
			set["description"] = nil
		} else {
			set["description"] = *params.Description
		}
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	sql, args, err := postgres.Builder().
		Update("categories").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, name, description").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update category: %w", err)
	}

	var row categoryRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return row.toDomain(), nil
}
