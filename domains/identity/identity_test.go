package identity

import "testing"

func TestSingleAdminPolicy(t *testing.T) {
	policy := NewSingleAdminPolicy("user_admin1")

	if !policy.IsAuthorized("user_admin1", ActionCreateBot) {
		t.Error("the configured admin must be authorized")
	}
	if policy.IsAuthorized("user_other", ActionCreateBot) {
		t.Error("a non-admin caller must be rejected")
	}
	if policy.IsAuthorized("", ActionDeleteBot) {
		t.Error("an anonymous caller must be rejected")
	}
}

func TestSingleAdminPolicy_UnsetAdmin(t *testing.T) {
	policy := NewSingleAdminPolicy("")

	// With no admin configured nobody is authorized, not even an
	// empty caller matching the empty admin id.
	if policy.IsAuthorized("", ActionUpdateBot) {
		t.Error("unset admin must never authorize anonymous callers")
	}
	if policy.IsAuthorized("user_any", ActionToggleBot) {
		t.Error("unset admin must never authorize any caller")
	}
}
