// Package lookup keeps an in-memory snapshot of the reference tables
// (actions, target types, book states and roles).
package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

type repository interface {
	Actions(ctx context.Context) ([]domain.ActionInfo, error)
	TargetTypes(ctx context.Context) ([]domain.TargetTypeInfo, error)
	States(ctx context.Context) ([]domain.BookState, error)
	Roles(ctx context.Context) ([]domain.Role, error)
}

// ErrNotLoaded is returned by queries issued before the first successful Load.
var ErrNotLoaded = errors.New("lookup cache not loaded")

// Cache serves reference data from an immutable snapshot that Load swaps in
// atomically. It is safe for concurrent use.
type Cache struct {
	repo repository
	log  *slog.Logger
	snap atomic.Pointer[snapshot]
}

type snapshot struct {
	actions      []domain.ActionInfo
	targetTypes  []domain.TargetTypeInfo
	actionIDs    map[string]int64
	targetIDs    map[string]int64
	roleIDs      map[string]int64
	roles        []domain.Role
	rolesByID    map[int64]domain.Role
	states       []domain.BookState
	statesByID   map[int64]domain.BookState
	statesByName map[string]domain.BookState
}

// New creates an empty cache. Call Load before serving traffic.
func New(log *slog.Logger, repo repository) *Cache {
	return &Cache{
		repo: repo,
		log:  log.With("component", "lookup"),
	}
}

// Load reads all reference tables and replaces the current snapshot.
// The previous snapshot stays in place if any read or check fails.
func (c *Cache) Load(ctx context.Context) error {
	var (
		actions []domain.ActionInfo
		targets []domain.TargetTypeInfo
		states  []domain.BookState
		roles   []domain.Role
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		actions, err = c.repo.Actions(gctx)
		return err
	})
	g.Go(func() (err error) {
		targets, err = c.repo.TargetTypes(gctx)
		return err
	})
	g.Go(func() (err error) {
		states, err = c.repo.States(gctx)
		return err
	})
	g.Go(func() (err error) {
		roles, err = c.repo.Roles(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load lookup tables: %w", err)
	}

	s := build(actions, targets, states, roles)
	if err := s.validate(); err != nil {
		return err
	}

	c.snap.Store(s)
	c.log.Info("lookup cache loaded",
		slog.Int("actions", len(actions)),
		slog.Int("target_types", len(targets)),
		slog.Int("states", len(states)),
		slog.Int("roles", len(roles)),
	)
	return nil
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func build(actions []domain.ActionInfo, targets []domain.TargetTypeInfo, states []domain.BookState, roles []domain.Role) *snapshot {
	s := &snapshot{
		actions:      actions,
		targetTypes:  targets,
		actionIDs:    make(map[string]int64, len(actions)),
		targetIDs:    make(map[string]int64, len(targets)),
		roleIDs:      make(map[string]int64, len(roles)),
		roles:        roles,
		rolesByID:    make(map[int64]domain.Role, len(roles)),
		states:       make([]domain.BookState, len(states)),
		statesByID:   make(map[int64]domain.BookState, len(states)),
		statesByName: make(map[string]domain.BookState, len(states)),
	}
	for _, a := range actions {
		s.actionIDs[key(a.Name)] = a.ID
	}
	for _, t := range targets {
		s.targetIDs[key(t.Name)] = t.ID
	}
	for _, r := range roles {
		s.roleIDs[key(string(r.Name))] = r.ID
		s.rolesByID[r.ID] = r
	}

	copy(s.states, states)
	sort.SliceStable(s.states, func(i, j int) bool { return s.states[i].Order < s.states[j].Order })
	for _, st := range s.states {
		s.statesByID[st.ID] = st
		s.statesByName[key(st.Name)] = st
	}
	return s
}

func (s *snapshot) validate() error {
	var missing []string
	for _, a := range domain.AllActions() {
		if _, ok := s.actionIDs[string(a)]; !ok {
			missing = append(missing, "action "+string(a))
		}
	}
	for _, t := range domain.AllTargetTypes() {
		if _, ok := s.targetIDs[string(t)]; !ok {
			missing = append(missing, "target type "+string(t))
		}
	}
	for _, r := range domain.PersistedRoles() {
		if _, ok := s.roleIDs[key(string(r))]; !ok {
			missing = append(missing, "role "+string(r))
		}
	}
	if len(s.states) == 0 {
		missing = append(missing, "book states")
	} else if _, ok := s.statesByName[key(domain.DefaultStateName)]; !ok {
		missing = append(missing, "state "+domain.DefaultStateName)
	}
	if len(missing) > 0 {
		return fmt.Errorf("lookup cache: missing reference data: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Ready reports whether a snapshot has been loaded.
func (c *Cache) Ready(_ context.Context) error {
	_, err := c.current()
	return err
}

func (c *Cache) current() (*snapshot, error) {
	s := c.snap.Load()
	if s == nil {
		return nil, ErrNotLoaded
	}
	return s, nil
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// ActionID resolves an action name or alias to its id.
func (c *Cache) ActionID(name string) (int64, error) {
	s, err := c.current()
	if err != nil {
		return 0, err
	}
	a := domain.NormalizeAction(name)
	id, ok := s.actionIDs[string(a)]
	if !ok {
		return 0, fmt.Errorf("action %q: %w", name, domain.ErrNotFound)
	}
	return id, nil
}

// TargetTypeID resolves a target type name or alias to its id.
func (c *Cache) TargetTypeID(name string) (int64, error) {
	s, err := c.current()
	if err != nil {
		return 0, err
	}
	t := domain.NormalizeTargetType(name)
	id, ok := s.targetIDs[string(t)]
	if !ok {
		return 0, fmt.Errorf("target type %q: %w", name, domain.ErrNotFound)
	}
	return id, nil
}

// RoleID resolves a role name to its id.
func (c *Cache) RoleID(name domain.RoleName) (int64, error) {
	s, err := c.current()
	if err != nil {
		return 0, err
	}
	id, ok := s.roleIDs[key(string(name))]
	if !ok {
		return 0, fmt.Errorf("role %q: %w", name, domain.ErrNotFound)
	}
	return id, nil
}

// Roles returns every persisted role.
func (c *Cache) Roles() ([]domain.Role, error) {
	s, err := c.current()
	if err != nil {
		return nil, err
	}
	return append([]domain.Role(nil), s.roles...), nil
}

// RoleByID returns the role with the given id.
func (c *Cache) RoleByID(id int64) (domain.Role, error) {
	s, err := c.current()
	if err != nil {
		return domain.Role{}, err
	}
	r, ok := s.rolesByID[id]
	if !ok {
		return domain.Role{}, fmt.Errorf("role %d: %w", id, domain.ErrNotFound)
	}
	return r, nil
}

// Actions returns every known action.
func (c *Cache) Actions() ([]domain.ActionInfo, error) {
	s, err := c.current()
	if err != nil {
		return nil, err
	}
	return append([]domain.ActionInfo(nil), s.actions...), nil
}

// TargetTypes returns every known target type.
func (c *Cache) TargetTypes() ([]domain.TargetTypeInfo, error) {
	s, err := c.current()
	if err != nil {
		return nil, err
	}
	return append([]domain.TargetTypeInfo(nil), s.targetTypes...), nil
}

// States returns the workflow states ordered by stage.
func (c *Cache) States() ([]domain.BookState, error) {
	s, err := c.current()
	if err != nil {
		return nil, err
	}
	return append([]domain.BookState(nil), s.states...), nil
}

// StateByID returns the state with the given id.
func (c *Cache) StateByID(id int64) (domain.BookState, error) {
	s, err := c.current()
	if err != nil {
		return domain.BookState{}, err
	}
	st, ok := s.statesByID[id]
	if !ok {
		return domain.BookState{}, fmt.Errorf("state %d: %w", id, domain.ErrNotFound)
	}
	return st, nil
}

// StateByName returns the state with the given name, compared case-insensitively.
func (c *Cache) StateByName(name string) (domain.BookState, error) {
	s, err := c.current()
	if err != nil {
		return domain.BookState{}, err
	}
	st, ok := s.statesByName[key(name)]
	if !ok {
		return domain.BookState{}, fmt.Errorf("state %q: %w", name, domain.ErrNotFound)
	}
	return st, nil
}

// DefaultState returns the state new books are created in.
func (c *Cache) DefaultState() (domain.BookState, error) {
	return c.StateByName(domain.DefaultStateName)
}

// PublishedState returns the terminal state, the one with the highest order.
func (c *Cache) PublishedState() (domain.BookState, error) {
	s, err := c.current()
	if err != nil {
		return domain.BookState{}, err
	}
	return s.states[len(s.states)-1], nil
}
