package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"rental-house-server/storage"
	"rental-house-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// buildAdminTestApp creates a minimal Iris app with the admin login route and
// the protected party wired the same way as main.go.
func buildAdminTestApp() *iris.Application {
	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")
	storage.InitializeRedis()

	app := iris.New()

	verifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	verifierMiddleware := verifier.Verify(func() interface{} { return new(utils.AdminToken) })

	admin := app.Party("/api/admin")
	admin.Post("/login", AdminLogin)

	protected := admin.Party("/", verifierMiddleware, utils.AdminSessionMiddleware)
	protected.Post("/logout", AdminLogout)

	if err := app.Build(); err != nil {
		panic(err)
	}
	return app
}

func TestIsAuthorizedAdmin(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "owner@example.com, second@example.com")

	if !isAuthorizedAdmin("owner@example.com") {
		t.Error("expected listed email to be authorized")
	}
	// The allow-list match ignores case.
	if !isAuthorizedAdmin("OWNER@Example.COM") {
		t.Error("expected case-insensitive match")
	}
	if !isAuthorizedAdmin("second@example.com") {
		t.Error("expected second listed email to be authorized")
	}
	if isAuthorizedAdmin("stranger@example.com") {
		t.Error("expected unlisted email to be rejected")
	}

	t.Setenv("ADMIN_EMAILS", "")
	if isAuthorizedAdmin("owner@example.com") {
		t.Error("expected empty allow-list to reject everyone")
	}
}

func TestAdminLoginAllowList(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "owner@example.com")
	app := buildAdminTestApp()

	// Unlisted email -> 403
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"email":"stranger@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for unlisted email, got %d", resp.Code)
	}

	// Listed email -> 200 with a token
	req2 := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"email":"owner@example.com"}`))
	req2.Header.Set("Content-Type", "application/json")
	resp2 := httptest.NewRecorder()
	app.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusOK {
		t.Fatalf("expected 200 for listed email, got %d: %s", resp2.Code, resp2.Body.String())
	}
	if !strings.Contains(resp2.Body.String(), "token") {
		t.Fatalf("expected a token in the response, got %s", resp2.Body.String())
	}
}

func TestAdminProtectedPartyRequiresSession(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "owner@example.com")
	app := buildAdminTestApp()

	// No token -> rejected by the verifier
	req := httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code == http.StatusOK {
		t.Fatalf("expected non-200 without token, got %d", resp.Code)
	}

	// A well-signed token whose session is not registered (revoked or never
	// issued through login) -> 401
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), 0)
	token, err := signer.Sign(utils.AdminToken{Email: "owner@example.com"})
	if err != nil {
		t.Fatal(err)
	}
	req2 := httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
	req2.Header.Set("Authorization", "Bearer "+string(token))
	resp2 := httptest.NewRecorder()
	app.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unregistered session, got %d", resp2.Code)
	}
}
