package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zanyar-dev/botarium/domains/identity"
)

const (
	// IdentityHeader carries the caller id resolved by the fronting
	// identity provider. Session handling happens there, not here.
	IdentityHeader = "X-User-Id"
	identityKey    = "identity"
)

// Identity lifts the upstream caller id into the request context.
// Absent header means anonymous; authorization is enforced per
// operation in the usecase layer.
func Identity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(identityKey, identity.Identity(c.Get(IdentityHeader)))
		return c.Next()
	}
}

// IdentityFrom returns the caller identity resolved by the Identity
// middleware, or the anonymous identity.
func IdentityFrom(c *fiber.Ctx) identity.Identity {
	if id, ok := c.Locals(identityKey).(identity.Identity); ok {
		return id
	}
	return identity.Identity("")
}
