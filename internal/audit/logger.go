// Package audit records domain actions into the history table through a
// bounded in-process outbox. Recording is best effort: a full queue or a
// failed write never fails the business operation that produced the event.
package audit

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

var (
	// ErrQueueFull is returned by Enqueue when the outbox has no free slot.
	ErrQueueFull = errors.New("audit queue full")
	// ErrClosed is returned by Enqueue after Close.
	ErrClosed = errors.New("audit logger closed")
)

type historyWriter interface {
	Create(ctx context.Context, rec domain.NewHistoryRecord) (int64, error)
}

type nameResolver interface {
	ActionID(name string) (int64, error)
	TargetTypeID(name string) (int64, error)
}

type publisher interface {
	Publish(ctx context.Context, key string, body []byte) error
}

// Config controls queue capacity and timeouts.
type Config struct {
	QueueSize    int
	WriteTimeout time.Duration
	DrainTimeout time.Duration
}

// Logger is the audit outbox. Enqueue is safe for concurrent use; Run must
// be called exactly once.
type Logger struct {
	history historyWriter
	names   nameResolver
	pub     publisher
	cfg     Config
	log     *slog.Logger

	events chan domain.AuditEvent
	abort  chan struct{}
	done   chan struct{}

	mu      sync.RWMutex
	closed  bool
	started bool
}

// New creates a Logger. pub may be nil to disable fan-out.
func New(log *slog.Logger, cfg Config, history historyWriter, names nameResolver, pub publisher) *Logger {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1024
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 5 * time.Second
	}
	if cfg.DrainTimeout <= 0 {
		cfg.DrainTimeout = 5 * time.Second
	}
	return &Logger{
		history: history,
		names:   names,
		pub:     pub,
		cfg:     cfg,
		log:     log.With("component", "audit"),
		events:  make(chan domain.AuditEvent, cfg.QueueSize),
		abort:   make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Enqueue queues ev without blocking.
func (l *Logger) Enqueue(_ context.Context, ev domain.AuditEvent) error {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return ErrClosed
	}
	select {
	case l.events <- ev:
		return nil
	default:
		return ErrQueueFull
	}
}

// Run writes queued events until Close is called and the queue is drained.
// Cancelling ctx does not stop the worker; writes run on a context detached
// from ctx so shutdown can still flush.
func (l *Logger) Run(ctx context.Context) error {
	defer close(l.done)

	l.mu.Lock()
	l.started = true
	l.mu.Unlock()

	base := context.WithoutCancel(ctx)
	for {
		select {
		case <-l.abort:
			return nil
		case ev, ok := <-l.events:
			if !ok {
				return nil
			}
			l.write(base, ev)
		}
	}
}

// Close stops intake and waits up to the drain timeout for queued events.
// Events still queued after the deadline are dropped. Without a running
// worker Close returns at once and queued events stay unwritten.
func (l *Logger) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	close(l.events)
	started := l.started
	l.mu.Unlock()

	if !started {
		if n := len(l.events); n > 0 {
			l.log.Warn("audit closed before worker start", slog.Int("dropped", n))
		}
		return nil
	}

	timer := time.NewTimer(l.cfg.DrainTimeout)
	defer timer.Stop()

	select {
	case <-l.done:
		return nil
	case <-timer.C:
		close(l.abort)
		dropped := len(l.events)
		l.log.Warn("audit drain deadline exceeded", slog.Int("dropped", dropped))
		return errors.New("audit drain deadline exceeded")
	}
}

func (l *Logger) write(ctx context.Context, ev domain.AuditEvent) {
	log := l.log.With(
		slog.String("action", string(ev.Action)),
		slog.String("target_type", string(ev.TargetType)),
	)

	actionID, err := l.names.ActionID(string(ev.Action))
	if err != nil {
		log.Warn("audit event dropped: unknown action", slog.String("error", err.Error()))
		return
	}
	targetTypeID, err := l.names.TargetTypeID(string(ev.TargetType))
	if err != nil {
		log.Warn("audit event dropped: unknown target type", slog.String("error", err.Error()))
		return
	}

	rec := domain.NewHistoryRecord{
		ActorUserID:  actorRef(ev.ActorID),
		ActionID:     actionID,
		TargetTypeID: targetTypeID,
		TargetID:     ev.TargetID,
		Details:      ev.Details,
		OccurredAt:   ev.OccurredAt,
	}

	wctx, cancel := context.WithTimeout(ctx, l.cfg.WriteTimeout)
	_, err = l.history.Create(wctx, rec)
	cancel()
	if err != nil {
		log.Warn("audit write failed", slog.String("error", err.Error()))
	}

	if l.pub != nil {
		l.publish(ctx, log, ev)
	}
}

// message is the JSON body published for each event.
type message struct {
	ActorID    *int64         `json:"actorId"`
	Action     string         `json:"action"`
	TargetType string         `json:"targetType"`
	TargetID   *int64         `json:"targetId,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}

func (l *Logger) publish(ctx context.Context, log *slog.Logger, ev domain.AuditEvent) {
	body, err := json.Marshal(message{
		ActorID:    actorRef(ev.ActorID),
		Action:     string(ev.Action),
		TargetType: string(ev.TargetType),
		TargetID:   ev.TargetID,
		Details:    ev.Details,
		OccurredAt: ev.OccurredAt,
	})
	if err != nil {
		log.Warn("audit publish marshal failed", slog.String("error", err.Error()))
		return
	}

	pctx, cancel := context.WithTimeout(ctx, l.cfg.WriteTimeout)
	defer cancel()
	if err := l.pub.Publish(pctx, RoutingKey(ev), body); err != nil {
		log.Warn("audit publish failed", slog.String("error", err.Error()))
	}
}

// RoutingKey returns "<target_type>.<action>" for ev.
func RoutingKey(ev domain.AuditEvent) string {
	return string(ev.TargetType) + "." + string(ev.Action)
}

// actorRef maps the anonymous actor to a NULL reference.
func actorRef(id int64) *int64 {
	if id == domain.AnonymousUserID {
		return nil
	}
	return &id
}
