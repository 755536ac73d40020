package types

import "github.com/golang-jwt/jwt/v5"

// Claims identify the caller of an authenticated request. Subject carries
// the service or person the token was issued to.
type Claims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// RequestMeta is attached to every request context and recorded on audit logs.
type RequestMeta struct {
	Actor     string
	IP        string
	UserAgent string
}
