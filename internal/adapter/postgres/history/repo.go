// Package history implements the append-only audit history repository
// using PostgreSQL.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/bookflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

// Repo provides history persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new history repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const recordColumns = `h.id, h.occurred_at, h.actor_user_id, h.action_id, h.target_type_id, h.target_id, h.details,
	NULLIF(TRIM(au.first_name || ' ' || au.last_name), '') AS actor_name,
	au.email AS actor_email,
	a.name AS action_name, a.description AS action_description,
	tt.name AS target_type_name,
	CASE
		WHEN tt.name = 'book' THEN b.title
		WHEN tt.name = 'user' THEN NULLIF(TRIM(tu.first_name || ' ' || tu.last_name), '')
		WHEN tt.name = 'category' THEN c.name
		WHEN tt.name = 'task' THEN 'Task #' || t.id || ' - ' || COALESCE(tb.title, '')
		ELSE NULL
	END AS target_name`

// Target joins only match for the row's own target type.
const recordFrom = `history h
	LEFT JOIN users au ON au.id = h.actor_user_id
	LEFT JOIN actions a ON a.id = h.action_id
	LEFT JOIN target_types tt ON tt.id = h.target_type_id
	LEFT JOIN books b ON tt.name = 'book' AND b.id = h.target_id
	LEFT JOIN users tu ON tt.name = 'user' AND tu.id = h.target_id
	LEFT JOIN categories c ON tt.name = 'category' AND c.id = h.target_id
	LEFT JOIN tasks t ON tt.name = 'task' AND t.id = h.target_id
	LEFT JOIN books tb ON tb.id = t.book_id`

const insertSQL = `
INSERT INTO history (occurred_at, actor_user_id, action_id, target_type_id, target_id, details)
VALUES (COALESCE($1::timestamptz, now()), $2, $3, $4, $5, $6)
RETURNING id`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create appends a history row and returns its id.
func (r *Repo) Create(ctx context.Context, rec domain.NewHistoryRecord) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var details []byte
	if rec.Details != nil {
		var err error
		if details, err = json.Marshal(rec.Details); err != nil {
			return 0, fmt.Errorf("history marshal details: %w", err)
		}
	}

	var occurredAt *time.Time
	if !rec.OccurredAt.IsZero() {
		occurredAt = &rec.OccurredAt
	}

	var id int64
	err := q.QueryRow(ctx, insertSQL,
		occurredAt, rec.ActorUserID, rec.ActionID, rec.TargetTypeID, rec.TargetID, details,
	).Scan(&id)
	if err != nil {
		return 0, postgres.MapError(err, "history", 0)
	}
	return id, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns one page of records matching filter, newest first.
// The filter must already be normalized.
func (r *Repo) List(ctx context.Context, filter domain.HistoryFilter) ([]domain.HistoryRecord, error) {
	query := applyFilter(selectRecords(), filter).
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))
	return r.selectRecords(ctx, query)
}

// Count returns the number of records matching filter, ignoring paging.
func (r *Repo) Count(ctx context.Context, filter domain.HistoryFilter) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := applyFilter(postgres.Builder().Select("count(*)").From("history h"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count history: %w", err)
	}

	var n int
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count history: %w", err)
	}
	return n, nil
}

// GetByID returns a single hydrated record.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.HistoryRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := selectRecords().Where(squirrel.Eq{"h.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get history: %w", err)
	}

	var row recordRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "history", id)
	}
	return row.toDomain()
}

// ListByTarget returns every record about one target, newest first.
func (r *Repo) ListByTarget(ctx context.Context, targetTypeID, targetID int64) ([]domain.HistoryRecord, error) {
	return r.selectRecords(ctx, selectRecords().Where(squirrel.Eq{
		"h.target_type_id": targetTypeID,
		"h.target_id":      targetID,
	}))
}

// ListByActor returns the latest records produced by one user.
func (r *Repo) ListByActor(ctx context.Context, userID int64, limit int) ([]domain.HistoryRecord, error) {
	return r.selectRecords(ctx, selectRecords().
		Where(squirrel.Eq{"h.actor_user_id": userID}).
		Limit(uint64(limit)))
}

// Recent returns the latest records across all targets.
func (r *Repo) Recent(ctx context.Context, limit int) ([]domain.HistoryRecord, error) {
	return r.selectRecords(ctx, selectRecords().Limit(uint64(limit)))
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func selectRecords() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(recordColumns).
		From(recordFrom).
		OrderBy("h.occurred_at DESC", "h.id DESC")
}

func applyFilter(b squirrel.SelectBuilder, f domain.HistoryFilter) squirrel.SelectBuilder {
	if f.ActorUserID != nil {
		b = b.Where(squirrel.Eq{"h.actor_user_id": *f.ActorUserID})
	}
	if f.ActionID != nil {
		b = b.Where(squirrel.Eq{"h.action_id": *f.ActionID})
	}
	if f.TargetTypeID != nil {
		b = b.Where(squirrel.Eq{"h.target_type_id": *f.TargetTypeID})
	}
	if f.TargetID != nil {
		b = b.Where(squirrel.Eq{"h.target_id": *f.TargetID})
	}
	if f.From != nil {
		b = b.Where(squirrel.GtOrEq{"h.occurred_at": *f.From})
	}
	if f.To != nil {
		b = b.Where(squirrel.LtOrEq{"h.occurred_at": *f.To})
	}
	return b
}

func (r *Repo) selectRecords(ctx context.Context, b squirrel.SelectBuilder) ([]domain.HistoryRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select history: %w", err)
	}

	var rows []recordRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select history: %w", err)
	}

	out := make([]domain.HistoryRecord, 0, len(rows))
	for i := range rows {
		rec, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, nil
}

type recordRow struct {
	ID                int64     `db:"id"`
	OccurredAt        time.Time `db:"occurred_at"`
	ActorUserID       *int64    `db:"actor_user_id"`
	ActionID          int64     `db:"action_id"`
	TargetTypeID      int64     `db:"target_type_id"`
	TargetID          *int64    `db:"target_id"`
	Details           []byte    `db:"details"`
	ActorName         *string   `db:"actor_name"`
	ActorEmail        *string   `db:"actor_email"`
	ActionName        *string   `db:"action_name"`
	ActionDescription *string   `db:"action_description"`
	TargetTypeName    *string   `db:"target_type_name"`
	TargetName        *string   `db:"target_name"`
}

func (r recordRow) toDomain() (*domain.HistoryRecord, error) {
	rec := &domain.HistoryRecord{
		ID:                r.ID,
		OccurredAt:        r.OccurredAt,
		ActorUserID:       r.ActorUserID,
		ActionID:          r.ActionID,
		TargetTypeID:      r.TargetTypeID,
		TargetID:          r.TargetID,
		ActorName:         r.ActorName,
		ActorEmail:        r.ActorEmail,
		ActionName:        r.ActionName,
		ActionDescription: r.ActionDescription,
		TargetTypeName:    r.TargetTypeName,
		TargetName:        r.TargetName,
	}
	if len(r.Details) > 0 {
		if err := json.Unmarshal(r.Details, &rec.Details); err != nil {
			return nil, fmt.Errorf("history %d unmarshal details: %w", r.ID, err)
		}
	}
	return rec, nil
}
