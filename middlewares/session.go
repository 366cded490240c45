package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	sessionCookie                  = "session_id"
	sessionContextKey   ContextKey = "session"
	sessionCookieMaxAge            = 24 * time.Hour
)

// SessionMiddleware assigns an anonymous session id to every request. Carts
// and UI state are keyed by this id; no login is needed to browse or build a
// cart.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := ""
		if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
			sessionID = cookie.Value
		}

		if sessionID == "" {
			sessionID = uuid.New().String()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    sessionID,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
				Path:     "/",
				Expires:  time.Now().Add(sessionCookieMaxAge),
			})
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID returns the session id assigned by SessionMiddleware.
func SessionID(r *http.Request) string {
	if id, ok := r.Context().Value(sessionContextKey).(string); ok {
		return id
	}
	return ""
}
