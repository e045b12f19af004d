package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an active user with the given role and password hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.RoleName, passwordHash string) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	user := domain.User{
		FirstName:    "Test",
		LastName:     "User " + suffix,
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: passwordHash,
		RoleName:     role,
		Active:       true,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO users (first_name, last_name, email, password_hash, role_id, active)
		 SELECT $1, $2, $3, $4, r.id, TRUE FROM roles r WHERE r.name = $5
		 RETURNING id, role_id, created_at, updated_at`,
		user.FirstName, user.LastName, user.Email, user.PasswordHash, string(role),
	).Scan(&user.ID, &user.RoleID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedCategory creates a category with a unique name.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()
	ctx := context.Background()

	c := domain.Category{Name: "Category " + uniqueSuffix()}
	err := pool.QueryRow(ctx,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`,
		c.Name,
	).Scan(&c.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}

	return c
}

// SeedBook creates a book in the named state.
func SeedBook(t *testing.T, pool *pgxpool.Pool, stateName string) domain.Book {
	t.Helper()
	ctx := context.Background()

	b := domain.Book{
		Title:     "Book " + uniqueSuffix(),
		Author:    "Author",
		PageCount: 100,
		Shelf:     "A1",
		Space:     "S1",
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO books (title, author, page_count, shelf, space, state_id)
		 SELECT $1, $2, $3, $4, $5, s.id FROM book_states s WHERE s.name = $6
		 RETURNING id, state_id, created_at, updated_at`,
		b.Title, b.Author, b.PageCount, b.Shelf, b.Space, stateName,
	).Scan(&b.ID, &b.StateID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedBook %q: %v", stateName, err)
	}

	return b
}

// StateID returns the id of a seeded book state.
func StateID(t *testing.T, pool *pgxpool.Pool, name string) int64 {
	t.Helper()

	var id int64
	if err := pool.QueryRow(context.Background(), `SELECT id FROM book_states WHERE name = $1`, name).Scan(&id); err != nil {
		t.Fatalf("testhelper: StateID %q: %v", name, err)
	}
	return id
}
