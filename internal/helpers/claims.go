package helpers

import "github.com/gin-gonic/gin"

// UnknownUser stands in for the uid whenever no one is signed in.
const UnknownUser = "Unknown"

// IdentityKey is the gin context key the auth middleware stores the identity under.
const IdentityKey = "user"

// Identity is the authenticated caller as seen by the services.
type Identity struct {
	*CustomClaims
	UID   string `json:"id"`
	Email string `json:"email,omitempty"`
}

func NewIdentity(claims *CustomClaims) *Identity {
	return &Identity{
		CustomClaims: claims,
		UID:          claims.Subject,
		Email:        claims.Email,
	}
}

// Authenticated is nil-safe.
func (id *Identity) Authenticated() bool {
	return id != nil && id.UID != ""
}

// UIDOr returns the caller's uid, or fallback when there is no caller.
func (id *Identity) UIDOr(fallback string) string {
	if !id.Authenticated() {
		return fallback
	}
	return id.UID
}

func (id *Identity) EmailOrEmpty() string {
	if id == nil {
		return ""
	}
	return id.Email
}

// IdentityFrom returns the identity set by the auth middleware, or nil.
func IdentityFrom(c *gin.Context) *Identity {
	v, exists := c.Get(IdentityKey)
	if !exists {
		return nil
	}
	identity, ok := v.(*Identity)
	if !ok {
		return nil
	}
	return identity
}
