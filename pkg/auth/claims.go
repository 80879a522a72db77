package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenClaims represents the typed JWT issued to clients. The username
// is the only application claim; everything else lives in RegisteredClaims.
type AccessTokenClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
