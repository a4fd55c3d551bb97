package identity

// Identity is the opaque caller id resolved by the upstream identity
// provider. Empty means anonymous.
type Identity string

func (id Identity) Anonymous() bool {
	return id == ""
}

// Action names a mutating operation for authorization purposes.
type Action string

const (
	ActionCreateBot  Action = "bot:create"
	ActionUpdateBot  Action = "bot:update"
	ActionDeleteBot  Action = "bot:delete"
	ActionToggleBot  Action = "bot:toggle"
	ActionClearCache Action = "cache:clear"
)

// Policy decides whether a caller may perform an action. Call sites
// depend only on this interface so a role-based model can replace the
// single-admin one without touching them.
type Policy interface {
	IsAuthorized(caller Identity, action Action) bool
}

// SingleAdminPolicy authorizes exactly one configured identity for
// every action.
type SingleAdminPolicy struct {
	AdminID Identity
}

func NewSingleAdminPolicy(adminID string) SingleAdminPolicy {
	return SingleAdminPolicy{AdminID: Identity(adminID)}
}

func (p SingleAdminPolicy) IsAuthorized(caller Identity, _ Action) bool {
	if caller.Anonymous() || p.AdminID.Anonymous() {
		return false
	}
	return caller == p.AdminID
}
