package domain

import "time"

// HistoryRecord is one append-only audit entry, hydrated with display names.
type HistoryRecord struct {
	ID                int64
	OccurredAt        time.Time
	ActorUserID       *int64
	ActionID          int64
	TargetTypeID      int64
	TargetID          *int64
	Details           map[string]any
	ActorName         *string
	ActorEmail        *string
	ActionName        *string
	ActionDescription *string
	TargetTypeName    *string
	TargetName        *string
}

// NewHistoryRecord is the row written by the audit worker.
type NewHistoryRecord struct {
	ActorUserID  *int64
	ActionID     int64
	TargetTypeID int64
	TargetID     *int64
	Details      map[string]any
	OccurredAt   time.Time
}

// AuditEvent is a domain action queued for best-effort recording.
type AuditEvent struct {
	ActorID    int64
	Action     Action
	TargetType TargetType
	TargetID   *int64
	Details    map[string]any
	OccurredAt time.Time
}

// ActionInfo is a row of the actions reference table.
type ActionInfo struct {
	ID          int64
	Name        string
	Description *string
}

// TargetTypeInfo is a row of the target_types reference table.
type TargetTypeInfo struct {
	ID          int64
	Name        string
	Description *string
}

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// HistoryFilter holds the audit query filters and pagination.
type HistoryFilter struct {
	ActorUserID  *int64
	ActionID     *int64
	TargetTypeID *int64
	TargetID     *int64
	From         *time.Time
	To           *time.Time
	Limit        int
	Offset       int
}

// Normalize clamps Limit and Offset into their allowed ranges.
func (f *HistoryFilter) Normalize() {
	if f.Limit <= 0 {
		f.Limit = defaultHistoryLimit
	}
	if f.Limit > maxHistoryLimit {
		f.Limit = maxHistoryLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// Page returns the 1-based page number for the current offset.
func (f HistoryFilter) Page() int {
	if f.Limit <= 0 {
		return 1
	}
	return f.Offset/f.Limit + 1
}

// HistoryPage is a page of audit records with the total match count.
type HistoryPage struct {
	Records  []HistoryRecord
	Total    int
	Page     int
	PageSize int
}
