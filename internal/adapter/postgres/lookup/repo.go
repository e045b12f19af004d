// Package lookup reads the reference tables backing the lookup cache.
package lookup

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/bookflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

// Repo reads actions, target types, book states and roles.
type Repo struct {
	db postgres.Querier
}

// New creates a new lookup repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type namedRow struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
}

type stateRow struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	Order       int     `db:"sort_order"`
}

// Actions returns every row of the actions table.
func (r *Repo) Actions(ctx context.Context) ([]domain.ActionInfo, error) {
	rows, err := r.named(ctx, `SELECT id, name, description FROM actions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list actions: %w", err)
	}
	out := make([]domain.ActionInfo, len(rows))
	for i, row := range rows {
		out[i] = domain.ActionInfo{ID: row.ID, Name: row.Name, Description: row.Description}
	}
	return out, nil
}

// TargetTypes returns every row of the target_types table.
func (r *Repo) TargetTypes(ctx context.Context) ([]domain.TargetTypeInfo, error) {
	rows, err := r.named(ctx, `SELECT id, name, description FROM target_types ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list target types: %w", err)
	}
	out := make([]domain.TargetTypeInfo, len(rows))
	for i, row := range rows {
		out[i] = domain.TargetTypeInfo{ID: row.ID, Name: row.Name, Description: row.Description}
	}
	return out, nil
}

// Roles returns every persisted role.
func (r *Repo) Roles(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.named(ctx, `SELECT id, name, description FROM roles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	out := make([]domain.Role, len(rows))
	for i, row := range rows {
		out[i] = domain.Role{ID: row.ID, Name: domain.RoleName(row.Name), Description: row.Description}
	}
	return out, nil
}

// States returns the workflow states ordered by stage.
func (r *Repo) States(ctx context.Context) ([]domain.BookState, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []stateRow
	if err := pgxscan.Select(ctx, q, &rows, `SELECT id, name, description, sort_order FROM book_states ORDER BY sort_order`); err != nil {
		return nil, fmt.Errorf("list book states: %w", err)
	}
	out := make([]domain.BookState, len(rows))
	for i, row := range rows {
		out[i] = domain.BookState{ID: row.ID, Name: row.Name, Description: row.Description, Order: row.Order}
	}
	return out, nil
}

func (r *Repo) named(ctx context.Context, sql string) ([]namedRow, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []namedRow
	if err := pgxscan.Select(ctx, q, &rows, sql); err != nil {
		return nil, err
	}
	return rows, nil
}
