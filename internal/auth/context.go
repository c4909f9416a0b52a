package auth

import "github.com/gin-gonic/gin"

const (
	CtxIdentity = "auth_identity"
)

// IdentityFromContext returns the verified caller identity set by the bearer
// middleware, or nil on unauthenticated requests.
func IdentityFromContext(c *gin.Context) *Identity {
	if v, ok := c.Get(CtxIdentity); ok {
		if id, ok := v.(*Identity); ok {
			return id
		}
	}
	return nil
}
