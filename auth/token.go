package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/premstore-git/premium-store-api/models"
)

// Roles carried in the token's "role" claim.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// IssueToken signs a 24h HS256 token for the user. The role claim mirrors
// IsAdmin at issue time; admin routes re-check the directory as well, so a
// stale role claim cannot grant access on its own.
func IssueToken(user models.User) (string, error) {
	role := RoleUser
	if user.IsAdmin {
		role = RoleAdmin
	}
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
