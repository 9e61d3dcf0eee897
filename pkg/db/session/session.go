// Package session scopes one store connection to one HTTP request.
package session

import (
	"context"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type (
	ctxKey   struct{}
	hooksKey struct{}
)

type releaseHooks struct {
	mu  sync.Mutex
	fns []func()
}

func (h *releaseHooks) add(fn func()) {
	h.mu.Lock()
	h.fns = append(h.fns, fn)
	h.mu.Unlock()
}

func (h *releaseHooks) run() {
	h.mu.Lock()
	fns := h.fns
	h.fns = nil
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Middleware pins a dedicated connection from db's pool for the duration of
// the request and releases it when the handler returns, fails or panics.
// Work registered with AfterRelease runs once the connection is back in the
// pool and a committed response has been flushed.
func Middleware(db *gorm.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			hooks := &releaseHooks{}
			req := c.Request()
			ctx := context.WithValue(req.Context(), hooksKey{}, hooks)

			err := db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
				s := conn.Session(&gorm.Session{NewDB: true})
				c.SetRequest(req.WithContext(IntoContext(ctx, s)))
				return next(c)
			})

			if c.Response().Committed {
				_ = http.NewResponseController(c.Response().Writer).Flush()
			}
			hooks.run()
			return err
		}
	}
}

// AfterRelease defers fn until the request's session has been released.
// Outside a session-scoped request fn runs immediately.
func AfterRelease(ctx context.Context, fn func()) {
	if h, ok := ctx.Value(hooksKey{}).(*releaseHooks); ok {
		h.add(fn)
		return
	}
	fn()
}

func IntoContext(ctx context.Context, s *gorm.DB) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the request's session, or fallback bound to ctx when
// ctx carries none.
func FromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if s, ok := ctx.Value(ctxKey{}).(*gorm.DB); ok && s != nil {
		return s.WithContext(ctx)
	}
	return fallback.WithContext(ctx)
}
