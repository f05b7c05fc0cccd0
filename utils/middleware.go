package utils

import (
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// AdminSessionMiddleware runs after the JWT verifier and rejects tokens that
// were revoked by logout. It also exposes the admin email to handlers.
func AdminSessionMiddleware(ctx iris.Context) {
	verified := jwt.GetVerifiedToken(ctx)
	if verified == nil {
		ctx.StatusCode(iris.StatusUnauthorized)
		ctx.JSON(iris.Map{"error": "Unauthorized", "message": "missing or invalid token"})
		return
	}

	if !AdminSessionActive(string(verified.Token)) {
		ctx.StatusCode(iris.StatusUnauthorized)
		ctx.JSON(iris.Map{"error": "Unauthorized", "message": "session has been revoked"})
		return
	}

	claims := jwt.Get(ctx).(*AdminToken)
	ctx.Values().Set("adminEmail", claims.Email)
	ctx.Next()
}
