// Package book implements the Book repository using PostgreSQL.
package book

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

// Repo provides book persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new book repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const hydratedColumns = `b.id, b.isbn, b.title, b.author, b.publication_date, b.page_count,
	b.shelf, b.space, b.category_id, b.state_id, b.pdf_path, b.cover_image_path,
	b.created_at, b.updated_at,
	s.name AS state_name, s.description AS state_description, s.sort_order AS state_order,
	c.name AS category_name, c.description AS category_description`

const plainColumns = `id, isbn, title, author, publication_date, page_count, shelf, space,
	category_id, state_id, pdf_path, cover_image_path, created_at, updated_at`

const getHydratedSQL = `
SELECT ` + hydratedColumns + `
FROM books b
LEFT JOIN book_states s ON s.id = b.state_id
LEFT JOIN categories c ON c.id = b.category_id
WHERE b.id = $1`

const getForUpdateSQL = `SELECT ` + plainColumns + ` FROM books WHERE id = $1 FOR UPDATE`

const insertSQL = `
INSERT INTO books (isbn, title, author, publication_date, page_count, shelf, space,
	category_id, state_id, pdf_path, cover_image_path)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + plainColumns

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a book and returns the stored row (not hydrated).
func (r *Repo) Create(ctx context.Context, b *domain.Book) (*domain.Book, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row bookRow
	err := pgxscan.Get(ctx, q, &row, insertSQL,
		b.ISBN, b.Title, b.Author, b.PublicationDate, b.PageCount, b.Shelf, b.Space,
		b.CategoryID, b.StateID, b.PDFPath, b.CoverImagePath,
	)
	if err != nil {
		return nil, postgres.MapError(err, "book", 0)
	}

	return row.toDomain(), nil
}

// Update writes the non-nil params and bumps updated_at.
func (r *Repo) Update(ctx context.Context, id int64, params domain.BookUpdateParams) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Update("books").
		SetMap(updateMap(params)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update book: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "book", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("book %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete permanently removes a book row.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "book", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("book %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a book hydrated with its state and category.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row bookRow
	if err := pgxscan.Get(ctx, q, &row, getHydratedSQL, id); err != nil {
		return nil, postgres.MapError(err, "book", id)
	}
	return row.toDomain(), nil
}

// GetByIDForUpdate returns the plain book row and locks it until the
// surrounding transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Book, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row bookRow
	if err := pgxscan.Get(ctx, q, &row, getForUpdateSQL, id); err != nil {
		return nil, postgres.MapError(err, "book", id)
	}
	return row.toDomain(), nil
}

// List returns hydrated books matching filter, newest first.
func (r *Repo) List(ctx context.Context, filter domain.BookFilter) ([]domain.Book, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select(hydratedColumns).
		From("books b").
		LeftJoin("book_states s ON s.id = b.state_id").
		LeftJoin("categories c ON c.id = b.category_id").
		OrderBy("b.created_at DESC", "b.id DESC")

	if filter.StateID != nil {
		query = query.Where(squirrel.Eq{"b.state_id": *filter.StateID})
	}
	if filter.CategoryID != nil {
		query = query.Where(squirrel.Eq{"b.category_id": *filter.CategoryID})
	}
	if filter.Search != nil {
		pattern := likePattern(*filter.Search)
		query = query.Where(squirrel.Or{
			squirrel.ILike{"b.title": pattern},
			squirrel.ILike{"b.author": pattern},
			squirrel.ILike{"b.isbn": pattern},
		})
	}
	if filter.Title != nil {
		query = query.Where(squirrel.ILike{"b.title": likePattern(*filter.Title)})
	}
	if filter.Author != nil {
		query = query.Where(squirrel.ILike{"b.author": likePattern(*filter.Author)})
	}
	if filter.ISBN != nil {
		query = query.Where(squirrel.ILike{"b.isbn": likePattern(*filter.ISBN)})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list books: %w", err)
	}

	var rows []bookRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	books := make([]domain.Book, len(rows))
	for i := range rows {
		books[i] = *rows[i].toDomain()
	}
	return books, nil
}

// Count returns the number of stored books.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var n int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM books`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type bookRow struct {
	ID                  int64      `db:"id"`
	ISBN                *string    `db:"isbn"`
	Title               string     `db:"title"`
	Author              string     `db:"author"`
	PublicationDate     *time.Time `db:"publication_date"`
	PageCount           int        `db:"page_count"`
	Shelf               string     `db:"shelf"`
	Space               string     `db:"space"`
	CategoryID          *int64     `db:"category_id"`
	StateID             int64      `db:"state_id"`
	PDFPath             *string    `db:"pdf_path"`
	CoverImagePath      *string    `db:"cover_image_path"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
	StateName           *string    `db:"state_name"`
	StateDescription    *string    `db:"state_description"`
	StateOrder          *int       `db:"state_order"`
	CategoryName        *string    `db:"category_name"`
	CategoryDescription *string    `db:"category_description"`
}

func (r bookRow) toDomain() *domain.Book {
	b := &domain.Book{
		ID:              r.ID,
		ISBN:            r.ISBN,
		Title:           r.Title,
		Author:          r.Author,
		PublicationDate: r.PublicationDate,
		PageCount:       r.PageCount,
		Shelf:           r.Shelf,
		Space:           r.Space,
		CategoryID:      r.CategoryID,
		StateID:         r.StateID,
		PDFPath:         r.PDFPath,
		CoverImagePath:  r.CoverImagePath,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.StateName != nil {
		state := &domain.BookState{ID: r.StateID, Name: *r.StateName, Description: r.StateDescription}
		if r.StateOrder != nil {
			state.Order = *r.StateOrder
		}
		b.State = state
	}
	if r.CategoryID != nil && r.CategoryName != nil {
		b.Category = &domain.Category{ID: *r.CategoryID, Name: *r.CategoryName, Description: r.CategoryDescription}
	}
	return b
}

func updateMap(p domain.BookUpdateParams) map[string]any {
	m := make(map[string]any)
	if p.ISBN != nil {
		m["isbn"] = nullIfEmpty(*p.ISBN)
	}
	if p.Title != nil {
		m["title"] = *p.Title
	}
	if p.Author != nil {
		m["author"] = *p.Author
	}
	if p.PublicationDate != nil {
		m["publication_date"] = *p.PublicationDate
	}
	if p.PageCount != nil {
		m["page_count"] = *p.PageCount
	}
	if p.Shelf != nil {
		m["shelf"] = *p.Shelf
	}
	if p.Space != nil {
		m["space"] = *p.Space
	}
	if p.CategoryID != nil {
		m["category_id"] = *p.CategoryID
	}
	if p.StateID != nil {
		m["state_id"] = *p.StateID
	}
	if p.PDFPath != nil {
		m["pdf_path"] = nullIfEmpty(*p.PDFPath)
	}
	if p.CoverImagePath != nil {
		m["cover_image_path"] = nullIfEmpty(*p.CoverImagePath)
	}
	return m
}

// nullIfEmpty clears optional text columns on an empty string.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps s in % wildcards, escaping LIKE metacharacters.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(s)) + "%"
}
