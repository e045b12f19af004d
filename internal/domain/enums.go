package domain

import "strings"

// RoleName is the name of an authorization role.
type RoleName string

const (
	RoleAdmin     RoleName = "Admin"
	RoleLibrarian RoleName = "Bibliotecario"
	RoleDigitizer RoleName = "Digitalizador"
	RoleReviewer  RoleName = "Revisor"
	RoleRestorer  RoleName = "Restaurador"
	RoleReader    RoleName = "Lector" // anonymous pseudo-role, never persisted
)

func (r RoleName) String() string { return string(r) }

func (r RoleName) IsValid() bool {
	switch r {
	case RoleAdmin, RoleLibrarian, RoleDigitizer, RoleReviewer, RoleRestorer, RoleReader:
		return true
	}
	return false
}

// IsElevated reports whether the role may see books in every workflow state.
func (r RoleName) IsElevated() bool {
	switch r {
	case RoleAdmin, RoleLibrarian, RoleDigitizer, RoleReviewer, RoleRestorer:
		return true
	}
	return false
}

// PersistedRoles lists the roles that must exist in the roles table.
func PersistedRoles() []RoleName {
	return []RoleName{RoleAdmin, RoleLibrarian, RoleDigitizer, RoleReviewer, RoleRestorer}
}

// Action is the name of an audited action.
type Action string

const (
	ActionCreate         Action = "create"
	ActionUpdate         Action = "update"
	ActionDelete         Action = "delete"
	ActionLogin          Action = "login"
	ActionLogout         Action = "logout"
	ActionAssign         Action = "assign"
	ActionPasswordChange Action = "password_change"
)

func (a Action) String() string { return string(a) }

func (a Action) IsValid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDelete, ActionLogin, ActionLogout, ActionAssign, ActionPasswordChange:
		return true
	}
	return false
}

// AllActions lists every action the audit log can record.
func AllActions() []Action {
	return []Action{ActionCreate, ActionUpdate, ActionDelete, ActionLogin, ActionLogout, ActionAssign, ActionPasswordChange}
}

// TargetType is the kind of entity an audit record refers to.
type TargetType string

const (
	TargetBook     TargetType = "book"
	TargetUser     TargetType = "user"
	TargetCategory TargetType = "category"
	TargetTask     TargetType = "task"
	TargetSystem   TargetType = "system"
)

func (t TargetType) String() string { return string(t) }

func (t TargetType) IsValid() bool {
	switch t {
	case TargetBook, TargetUser, TargetCategory, TargetTask, TargetSystem:
		return true
	}
	return false
}

// AllTargetTypes lists every target type the audit log can record.
func AllTargetTypes() []TargetType {
	return []TargetType{TargetBook, TargetUser, TargetCategory, TargetTask, TargetSystem}
}

var actionAliases = map[string]Action{
	"crear":     ActionCreate,
	"modificar": ActionUpdate,
	"editar":    ActionUpdate,
	"edit":      ActionUpdate,
	"eliminar":  ActionDelete,
	"asignar":   ActionAssign,
}

var targetTypeAliases = map[string]TargetType{
	"libro":     TargetBook,
	"usuario":   TargetUser,
	"categoria": TargetCategory,
	"tarea":     TargetTask,
	"sistema":   TargetSystem,
}

// NormalizeAction lowercases name and resolves legacy aliases.
func NormalizeAction(name string) Action {
	key := strings.ToLower(strings.TrimSpace(name))
	if a, ok := actionAliases[key]; ok {
		return a
	}
	return Action(key)
}

// NormalizeTargetType lowercases name and resolves legacy aliases.
func NormalizeTargetType(name string) TargetType {
	key := strings.ToLower(strings.TrimSpace(name))
	if t, ok := targetTypeAliases[key]; ok {
		return t
	}
	return TargetType(key)
}
