package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/motorlot/motorlot/config"
	"github.com/motorlot/motorlot/internal/core/auth"
)

func newAuthTestRig(t *testing.T) (*auth.Service, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := auth.NewService(&config.AuthConfig{
		MasterKey: "clave-de-prueba",
		JWTSecret: "secreto-de-prueba",
		TokenTTL:  time.Minute,
	})

	engine := gin.New()
	engine.Use(NewAuthMiddleware(svc).Authenticate())
	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return svc, engine
}

func doRequest(engine *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	_, engine := newAuthTestRig(t)

	w := doRequest(engine, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	_, engine := newAuthTestRig(t)

	for _, header := range []string{"clave-de-prueba", "Basic clave-de-prueba", "Bearer "} {
		w := doRequest(engine, header)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %d", header, w.Code)
		}
	}
}

func TestAuthenticate_MasterKey(t *testing.T) {
	_, engine := newAuthTestRig(t)

	w := doRequest(engine, "Bearer clave-de-prueba")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(engine, "Bearer clave-equivocada")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong key, got %d", w.Code)
	}
}

func TestAuthenticate_IssuedToken(t *testing.T) {
	svc, engine := newAuthTestRig(t)

	token, _, err := svc.IssueToken()
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	w := doRequest(engine, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with issued token, got %d: %s", w.Code, w.Body.String())
	}
}
