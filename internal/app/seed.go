package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/bookflow-backend/internal/adapter/postgres"
	categoryrepo "github.com/heartmarshall/bookflow-backend/internal/adapter/postgres/category"
	lookuprepo "github.com/heartmarshall/bookflow-backend/internal/adapter/postgres/lookup"
	userrepo "github.com/heartmarshall/bookflow-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/bookflow-backend/internal/auth"
	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

// DefaultCategories are created by Seed when no list is given.
var DefaultCategories = []string{"Historia", "Literatura", "Ciencia", "Arte", "Filosofía"}

// SeedOptions configures the initial data set.
type SeedOptions struct {
	AdminEmail     string
	AdminPassword  string
	AdminFirstName string
	AdminLastName  string
	Categories     []string
	BcryptCost     int
}

// SeedResult reports what Seed created.
type SeedResult struct {
	AdminCreated      bool
	CategoriesCreated int
}

// Seed creates the first administrator and the starter categories in one
// transaction. Rows that already exist are left alone, so it can be rerun.
func Seed(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger, opts SeedOptions) (*SeedResult, error) {
	email := strings.ToLower(strings.TrimSpace(opts.AdminEmail))
	if email == "" {
		return nil, domain.NewValidationError("email", "required")
	}
	if err := auth.ValidatePasswordPolicy("password", opts.AdminPassword); err != nil {
		return nil, err
	}
	if opts.Categories == nil {
		opts.Categories = DefaultCategories
	}

	users := userrepo.New(pool)
	categories := categoryrepo.New(pool)
	lookups := lookuprepo.New(pool)
	tx := postgres.NewTxManager(pool)

	res := &SeedResult{}
	err := tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, err := seedAdmin(txCtx, users, lookups, email, opts)
		if err != nil {
			return err
		}
		res.AdminCreated = created

		existing, err := categories.List(txCtx)
		if err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
		have := make(map[string]bool, len(existing))
		for _, c := range existing {
			have[strings.ToLower(c.Name)] = true
		}

		// A unique violation would abort the transaction, so skip known names.
		for _, name := range opts.Categories {
			if have[strings.ToLower(name)] {
				continue
			}
			if _, err := categories.Create(txCtx, name, nil); err != nil {
				return fmt.Errorf("seed category %q: %w", name, err)
			}
			have[strings.ToLower(name)] = true
			res.CategoriesCreated++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("seed complete",
		slog.Bool("admin_created", res.AdminCreated),
		slog.Int("categories_created", res.CategoriesCreated),
	)
	return res, nil
}

func seedAdmin(ctx context.Context, users *userrepo.Repo, lookups *lookuprepo.Repo, email string, opts SeedOptions) (bool, error) {
	_, err := users.GetByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return false, fmt.Errorf("seed admin lookup: %w", err)
	}

	roles, err := lookups.Roles(ctx)
	if err != nil {
		return false, fmt.Errorf("seed admin roles: %w", err)
	}
	var roleID int64
	for _, r := range roles {
		if r.Name == domain.RoleAdmin {
			roleID = r.ID
		}
	}
	if roleID == 0 {
		return false, fmt.Errorf("seed admin: role %s missing, run migrations first", domain.RoleAdmin)
	}

	hash, err := auth.HashPassword(opts.AdminPassword, opts.BcryptCost)
	if err != nil {
		return false, fmt.Errorf("seed admin hash: %w", err)
	}

	first := opts.AdminFirstName
	if first == "" {
		first = "Admin"
	}
	_, err = users.Create(ctx, &domain.User{
		FirstName:    first,
		LastName:     opts.AdminLastName,
		Email:        email,
		PasswordHash: hash,
		RoleID:       roleID,
		Active:       true,
	})
	if err != nil {
		return false, fmt.Errorf("seed admin create: %w", err)
	}
	return true, nil
}
