package httpx

import (
	"context"
	"github.com/google/uuid"
	"net/http"
	"time"
)

const sessionCookie = "cal_session"

type sessionKey struct{}

// WithSessionID makes sure every request carries a session id. The cookie is
// re-issued on every request so it expires with the stored session, not
// ttl after first contact.
func WithSessionID(ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if c, err := r.Cookie(sessionCookie); err == nil {
				if _, err := uuid.Parse(c.Value); err == nil {
					id = c.Value
				}
			}
			if id == "" {
				id = uuid.NewString()
			}
			c := &http.Cookie{
				Name:     sessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			}
			if ttl > 0 {
				c.MaxAge = int(ttl / time.Second)
			}
			http.SetCookie(w, c)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, id)))
		})
	}
}

func sessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}
