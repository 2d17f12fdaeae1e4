package middleware

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

// Identity is verified upstream (the community app's gateway); this service
// only reads the forwarded principal headers.
const (
	HeaderActorID   = "X-Actor-ID"
	HeaderActorRole = "X-Actor-Role"

	ctxActorID   = "actor_id"
	ctxActorRole = "actor_role"

	RoleOwner = "owner"
	RoleAdmin = "admin"
)

func Principal() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		c.Set(ctxActorID, c.GetHeader(HeaderActorID))
		c.Set(ctxActorRole, c.GetHeader(HeaderActorRole))
		c.Next()
	}
}

// RequireRole aborts with 403 unless the forwarded role is one of roles.
// Admin passes every gate.
func RequireRole(roles ...string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		role := ActorRole(c)
		if role == RoleAdmin {
			c.Next()
			return
		}
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden,
			ginext.H{"error": "forbidden"},
		)
	}
}

func ActorID(c *ginext.Context) string {
	return c.GetString(ctxActorID)
}

func ActorRole(c *ginext.Context) string {
	return c.GetString(ctxActorRole)
}
