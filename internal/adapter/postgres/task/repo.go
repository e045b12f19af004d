// Package task implements the Task repository using PostgreSQL.
package task

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/bookflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new task repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const taskColumns = `id, book_id, assignee_user_id, assigned_at, due_at, target_state_id, notes, created_at, updated_at`

const detailColumns = `t.id, t.book_id, t.assignee_user_id, t.assigned_at, t.due_at, t.target_state_id,
	t.notes, t.created_at, t.updated_at,
	b.title AS book_title, b.author AS book_author, c.name AS category_name,
	NULLIF(TRIM(u.first_name || ' ' || u.last_name), '') AS assignee_name,
	u.email AS assignee_email, s.name AS target_state_name`

const detailFrom = `tasks t
	LEFT JOIN books b ON b.id = t.book_id
	LEFT JOIN categories c ON c.id = b.category_id
	LEFT JOIN users u ON u.id = t.assignee_user_id
	LEFT JOIN book_states s ON s.id = t.target_state_id`

const insertSQL = `
INSERT INTO tasks (book_id, assignee_user_id, due_at, target_state_id, notes, assigned_at)
VALUES ($1, $2, $3, $4, $5, now())
RETURNING ` + taskColumns

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a task with assigned_at set to the database clock.
func (r *Repo) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row taskRow
	err := pgxscan.Get(ctx, q, &row, insertSQL, t.BookID, t.AssigneeUserID, t.DueAt, t.TargetStateID, t.Notes)
	if err != nil {
		return nil, postgres.MapError(err, "task", 0)
	}
	return row.toDomain(), nil
}

// Update writes the set columns of params and returns the stored task.
func (r *Repo) Update(ctx context.Context, id int64, params domain.TaskUpdateParams) (*domain.Task, error) {
	if params.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	set := make(map[string]any)
	if params.AssigneeUserID.Set {
		set["assignee_user_id"] = params.AssigneeUserID.Value
	}
	if params.TargetStateID.Set {
		set["target_state_id"] = params.TargetStateID.Value
	}
	if params.DueAt.Set {
		set["due_at"] = params.DueAt.Value
	}
	if params.Notes.Set {
		set["notes"] = params.Notes.Value
	}

	sql, args, err := postgres.Builder().
		Update("tasks").
		SetMap(set).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + taskColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update task: %w", err)
	}

	var row taskRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	return row.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the plain task row.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row taskRow
	if err := pgxscan.Get(ctx, q, &row, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id); err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	return row.toDomain(), nil
}

// GetDetails returns a task hydrated with book, assignee and state names.
func (r *Repo) GetDetails(ctx context.Context, id int64) (*domain.TaskDetails, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row detailsRow
	if err := pgxscan.Get(ctx, q, &row, `SELECT `+detailColumns+` FROM `+detailFrom+` WHERE t.id = $1`, id); err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	return row.toDomain(), nil
}

// Search returns hydrated tasks matching filter, ordered by id.
func (r *Repo) Search(ctx context.Context, filter domain.TaskFilter) ([]domain.TaskDetails, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select(detailColumns).
		From(detailFrom).
		OrderBy("t.id")

	if filter.BookID != nil {
		query = query.Where(squirrel.Eq{"t.book_id": *filter.BookID})
	}
	if filter.AssigneeUserID != nil {
		query = query.Where(squirrel.Eq{"t.assignee_user_id": *filter.AssigneeUserID})
	}
	if filter.TargetStateID != nil {
		query = query.Where(squirrel.Eq{"t.target_state_id": *filter.TargetStateID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search tasks: %w", err)
	}

	var rows []detailsRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("search tasks: %w", err)
	}

	out := make([]domain.TaskDetails, len(rows))
	for i := range rows {
		out[i] = *rows[i].toDomain()
	}
	return out, nil
}

// ListByBook returns the plain tasks of a book.
func (r *Repo) ListByBook(ctx context.Context, bookID int64) ([]domain.Task, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []taskRow
	err := pgxscan.Select(ctx, q, &rows, `SELECT `+taskColumns+` FROM tasks WHERE book_id = $1 ORDER BY id`, bookID)
	if err != nil {
		return nil, fmt.Errorf("list tasks by book %d: %w", bookID, err)
	}

	out := make([]domain.Task, len(rows))
	for i := range rows {
		out[i] = *rows[i].toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type taskRow struct {
	ID             int64      `db:"id"`
	BookID         int64      `db:"book_id"`
	AssigneeUserID *int64     `db:"assignee_user_id"`
	AssignedAt     time.Time  `db:"assigned_at"`
	DueAt          *time.Time `db:"due_at"`
	TargetStateID  *int64     `db:"target_state_id"`
	Notes          *string    `db:"notes"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

func (r taskRow) toDomain() *domain.Task {
	return &domain.Task{
		ID:             r.ID,
		BookID:         r.BookID,
		AssigneeUserID: r.AssigneeUserID,
		AssignedAt:     r.AssignedAt,
		DueAt:          r.DueAt,
		TargetStateID:  r.TargetStateID,
		Notes:          r.Notes,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

type detailsRow struct {
	ID              int64      `db:"id"`
	BookID          int64      `db:"book_id"`
	AssigneeUserID  *int64     `db:"assignee_user_id"`
	AssignedAt      time.Time  `db:"assigned_at"`
	DueAt           *time.Time `db:"due_at"`
	TargetStateID   *int64     `db:"target_state_id"`
	Notes           *string    `db:"notes"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
	BookTitle       *string    `db:"book_title"`
	BookAuthor      *string    `db:"book_author"`
	CategoryName    *string    `db:"category_name"`
	AssigneeName    *string    `db:"assignee_name"`
	AssigneeEmail   *string    `db:"assignee_email"`
	TargetStateName *string    `db:"target_state_name"`
}

func (r detailsRow) toDomain() *domain.TaskDetails {
	return &domain.TaskDetails{
		Task: domain.Task{
			ID:             r.ID,
			BookID:         r.BookID,
			AssigneeUserID: r.AssigneeUserID,
			AssignedAt:     r.AssignedAt,
			DueAt:          r.DueAt,
			TargetStateID:  r.TargetStateID,
			Notes:          r.Notes,
			CreatedAt:      r.CreatedAt,
			UpdatedAt:      r.UpdatedAt,
		},
		BookTitle:       r.BookTitle,
		BookAuthor:      r.BookAuthor,
		CategoryName:    r.CategoryName,
		AssigneeName:    r.AssigneeName,
		AssigneeEmail:   r.AssigneeEmail,
		TargetStateName: r.TargetStateName,
	}
}
