package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	"mindlyst/internal/auth"
	"mindlyst/internal/model"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                 {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Info(ctx context.Context, args ...any)                  {}
func (noopLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Warn(ctx context.Context, args ...any)                  {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Error(ctx context.Context, args ...any)                 {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (noopLogger) DPanic(ctx context.Context, args ...any)                {}
func (noopLogger) DPanicf(ctx context.Context, format string, args ...any) {
}
func (noopLogger) Panic(ctx context.Context, args ...any)                 {}
func (noopLogger) Panicf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Fatal(ctx context.Context, args ...any)                 {}
func (noopLogger) Fatalf(ctx context.Context, format string, args ...any) {}

func newTestMiddleware(t *testing.T) (Middleware, *auth.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := auth.NewStore(time.Hour, 100)
	mw := New(noopLogger{}, store, auth.Config{
		CookieName: "test_session",
		SessionTTL: time.Hour,
	})
	return mw, store
}

func TestSessionMiddleware(t *testing.T) {
	t.Run("Creates Session For New Client", func(t *testing.T) {
		mw, store := newTestMiddleware(t)

		var sc model.Scope
		r := gin.New()
		r.GET("/", mw.Session(), func(c *gin.Context) {
			sc = GetScope(c)
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		if sc.SessionID == "" {
			t.Fatal("expected a session id in scope")
		}
		if _, err := store.Get(sc.SessionID); err != nil {
			t.Errorf("session %s not in store: %v", sc.SessionID, err)
		}
		cookies := w.Result().Cookies()
		if len(cookies) == 0 || cookies[0].Name != "test_session" {
			t.Errorf("expected test_session cookie, got %v", cookies)
		}
	})

	t.Run("Reuses Existing Session", func(t *testing.T) {
		mw, store := newTestMiddleware(t)

		sess := store.Create()
		sess.User = &auth.GoogleUser{ID: "u1", Email: "u@example.com", Name: "U"}
		sess.Token = &oauth2.Token{AccessToken: "tok"}
		store.Save(sess)

		var sc model.Scope
		r := gin.New()
		r.GET("/", mw.Session(), func(c *gin.Context) {
			sc = GetScope(c)
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "test_session", Value: sess.ID})
		r.ServeHTTP(httptest.NewRecorder(), req)

		if sc.SessionID != sess.ID {
			t.Errorf("expected session %s, got %s", sess.ID, sc.SessionID)
		}
		if sc.AccessToken != "tok" || sc.Email != "u@example.com" {
			t.Errorf("scope not populated from session: %+v", sc)
		}
	})
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("Rejects Anonymous Session", func(t *testing.T) {
		mw, _ := newTestMiddleware(t)

		r := gin.New()
		r.POST("/", mw.Session(), mw.Auth(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Passes Authenticated Session", func(t *testing.T) {
		mw, store := newTestMiddleware(t)

		sess := store.Create()
		sess.User = &auth.GoogleUser{ID: "u1"}
		sess.Token = &oauth2.Token{AccessToken: "tok"}
		store.Save(sess)

		r := gin.New()
		r.POST("/", mw.Session(), mw.Auth(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.AddCookie(&http.Cookie{Name: "test_session", Value: sess.ID})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})
}

func TestRateLimit(t *testing.T) {
	mw, _ := newTestMiddleware(t)

	// 60/min gives burst 6; the 7th immediate request must be throttled.
	r := gin.New()
	r.POST("/", mw.RateLimit(60), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	var last int
	for i := 0; i < 7; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))
		last = w.Code
	}

	if last != http.StatusTooManyRequests {
		t.Errorf("expected 429 after burst, got %d", last)
	}
}
