package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"itam/internal/models"
)

const testKey = "test-signature-key"

func signToken(t *testing.T, claims Claims, key string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func testClaims(role string) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		ID:    42,
		Name:  "Alice Mburu",
		Email: "alice@example.com",
		Role:  role,
	}
}

func TestParseTokenRoundTrip(t *testing.T) {
	token := signToken(t, testClaims(models.RoleUser), testKey)

	claims, err := ParseToken(token, testKey)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.ID != 42 || claims.Email != "alice@example.com" || claims.Role != models.RoleUser {
		t.Fatalf("claims round-trip mismatch: %+v", claims)
	}
}

func TestParseTokenWrongKey(t *testing.T) {
	token := signToken(t, testClaims(models.RoleUser), "some-other-key")
	if _, err := ParseToken(token, testKey); err == nil {
		t.Fatalf("token signed with a different key accepted")
	}
}

func TestParseTokenExpired(t *testing.T) {
	claims := testClaims(models.RoleUser)
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	token := signToken(t, claims, testKey)
	if _, err := ParseToken(token, testKey); err == nil {
		t.Fatalf("expired token accepted")
	}
}

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(testKey), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":   c.GetUint(ContextUserID),
			"role": c.GetString(ContextUserRole),
		})
	})
	r.DELETE("/admin-only", RequireAuth(testKey), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	r := authTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no header: status %d, want 401", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: status %d, want 401", w.Code)
	}

	token := signToken(t, testClaims(models.RoleUser), testKey)
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("valid token: status %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestRequireAdmin(t *testing.T) {
	r := authTestRouter()

	token := signToken(t, testClaims(models.RoleUser), testKey)
	req := httptest.NewRequest(http.MethodDelete, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("user role: status %d, want 403", w.Code)
	}

	token = signToken(t, testClaims(models.RoleAdmin), testKey)
	req = httptest.NewRequest(http.MethodDelete, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("admin role: status %d, want 200", w.Code)
	}
}
