package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oretina/assettrack/internal/entity"
	"github.com/oretina/assettrack/pkg/credential"
)

const testSecret = "test-secret"

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	auth := NewAuthMiddleware(testSecret)

	router := gin.New()
	api := router.Group("/api")
	api.Use(auth.RequireAuth())

	ok := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	}

	api.DELETE("/maintenance/:id", auth.RequireRoles(entity.RoleAdmin), ok)
	api.POST("/maintenance/:assetId", auth.RequireRoles(entity.RoleAdmin, entity.RoleManager), ok)
	api.GET("/assets", ok)

	return router
}

func issueToken(t *testing.T, role string) string {
	t.Helper()
	token, _, err := credential.IssueToken(testSecret, credential.Claims{
		UserID: "11111111-1111-1111-1111-111111111111",
		Email:  "caller@example.com",
		Name:   "Caller",
		Role:   role,
	}, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func doRequest(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"garbage token", "not-a-jwt", http.StatusUnauthorized},
		{"wrong secret", mustSign(t, "other-secret"), http.StatusUnauthorized},
		{"valid token", issueToken(t, entity.RoleEmployee), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodGet, "/api/assets", tt.token)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireRolesGatesDelete(t *testing.T) {
	router := newTestRouter()
	path := "/api/maintenance/11111111-1111-1111-1111-111111111111"

	// Deletion is admin territory; a manager holds scheduling rights only.
	w := doRequest(router, http.MethodDelete, path, issueToken(t, entity.RoleManager))
	if w.Code != http.StatusForbidden {
		t.Errorf("manager delete: status = %d, want 403", w.Code)
	}

	w = doRequest(router, http.MethodDelete, path, issueToken(t, entity.RoleAdmin))
	if w.Code != http.StatusOK {
		t.Errorf("admin delete: status = %d, want 200", w.Code)
	}
}

func TestRequireRolesAllowsAnyListedRole(t *testing.T) {
	router := newTestRouter()
	path := "/api/maintenance/11111111-1111-1111-1111-111111111111"

	for _, role := range []string{entity.RoleAdmin, entity.RoleManager} {
		w := doRequest(router, http.MethodPost, path, issueToken(t, role))
		if w.Code != http.StatusOK {
			t.Errorf("%s schedule: status = %d, want 200", role, w.Code)
		}
	}

	w := doRequest(router, http.MethodPost, path, issueToken(t, entity.RoleEmployee))
	if w.Code != http.StatusForbidden {
		t.Errorf("employee schedule: status = %d, want 403", w.Code)
	}
}

func mustSign(t *testing.T, secret string) string {
	t.Helper()
	token, _, err := credential.IssueToken(secret, credential.Claims{
		UserID: "11111111-1111-1111-1111-111111111111",
		Role:   entity.RoleAdmin,
	}, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}
