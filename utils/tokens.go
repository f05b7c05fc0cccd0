package utils

import (
	"context"
	"os"
	"time"

	"rental-house-server/storage"

	"github.com/kataras/iris/v12/middleware/jwt"
)

var bgContext = context.Background()

const adminSessionTTL = 24 * time.Hour

// AdminToken is the access token claim set for the admin panel. The panel is
// gated by an email allow-list rather than credentials; this is a usability
// gate for a family-run site, not a security boundary.
type AdminToken struct {
	Email string `json:"email"`
}

// CreateAdminToken signs a session token for an allow-listed admin email and
// registers it in Redis so logout can revoke it before expiry.
func CreateAdminToken(email string) (string, error) {
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), adminSessionTTL)

	token, err := signer.Sign(AdminToken{Email: email})
	if err != nil {
		return "", err
	}

	storage.Redis.Set(bgContext, adminSessionKey(string(token)), "true", adminSessionTTL+5*time.Minute)

	return string(token), nil
}

// AdminSessionActive reports whether the token is still registered (i.e. has
// not been revoked by logout).
func AdminSessionActive(token string) bool {
	valid, err := storage.Redis.Get(bgContext, adminSessionKey(token)).Result()
	return err == nil && valid == "true"
}

// RevokeAdminToken removes the token from the session registry.
func RevokeAdminToken(token string) {
	storage.Redis.Del(bgContext, adminSessionKey(token))
}

func adminSessionKey(token string) string {
	return "admin_session:" + token
}
