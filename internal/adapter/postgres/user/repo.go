// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/bookflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const userColumns = `u.id, u.first_name, u.last_name, u.email, u.password_hash, u.role_id,
	r.name AS role_name, u.active, u.created_at, u.updated_at`

const selectUserSQL = `
SELECT ` + userColumns + `
FROM users u
JOIN roles r ON r.id = u.role_id`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user with its role name.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, selectUserSQL+` WHERE u.id = $1`, id); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row.toDomain(), nil
}

// GetByEmail returns a user by email address, compared case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row userRow
	err := pgxscan.Get(ctx, q, &row, selectUserSQL+` WHERE lower(u.email) = $1`, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}
	return row.toDomain(), nil
}

// List returns the users matching filter ordered by id.
func (r *Repo) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select(userColumns).
		From("users u").
		Join("roles r ON r.id = u.role_id").
		OrderBy("u.id")

	if filter.Active != nil {
		query = query.Where(squirrel.Eq{"u.active": *filter.Active})
	}
	if filter.RoleID != nil {
		query = query.Where(squirrel.Eq{"u.role_id": *filter.RoleID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users: %w", err)
	}

	var rows []userRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]domain.User, len(rows))
	for i := range rows {
		users[i] = *rows[i].toDomain()
	}
	return users, nil
}

// GetByIDForUpdate returns a user and locks its row until the transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, selectUserSQL+` WHERE u.id = $1 FOR UPDATE OF u`, id); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row.toDomain(), nil
}

// Exists reports whether a user with the given id exists.
func (r *Repo) Exists(ctx context.Context, id int64) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var ok bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("user exists: %w", err)
	}
	return ok, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a user and returns it with its role name.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var id int64
	err := q.QueryRow(ctx,
		`INSERT INTO users (first_name, last_name, email, password_hash, role_id, active)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		u.FirstName, u.LastName, strings.ToLower(strings.TrimSpace(u.Email)), u.PasswordHash, u.RoleID, u.Active,
	).Scan(&id)
	if err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}
	return r.GetByID(ctx, id)
}

// Update writes the non-nil params. A duplicate email maps to
// domain.ErrAlreadyExists.
func (r *Repo) Update(ctx context.Context, id int64, params domain.UserUpdateParams) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	set := make(map[string]any)
	if params.FirstName != nil {
		set["first_name"] = *params.FirstName
	}
	if params.LastName != nil {
		set["last_name"] = *params.LastName
	}
	if params.Email != nil {
		set["email"] = strings.ToLower(strings.TrimSpace(*params.Email))
	}
	if params.RoleID != nil {
		set["role_id"] = *params.RoleID
	}
	if params.Active != nil {
		set["active"] = *params.Active
	}
	if len(set) == 0 {
		return nil
	}
	set["updated_at"] = squirrel.Expr("now()")

	sql, args, err := postgres.Builder().
		Update("users").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update user: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// UpdatePassword replaces the stored password hash.
func (r *Repo) UpdatePassword(ctx context.Context, id int64, hash string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2`, hash, id)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type userRow struct {
	ID           int64     `db:"id"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	RoleID       int64     `db:"role_id"`
	RoleName     string    `db:"role_name"`
	Active       bool      `db:"active"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r userRow) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		RoleID:       r.RoleID,
		RoleName:     domain.RoleName(r.RoleName),
		Active:       r.Active,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
