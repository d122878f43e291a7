package middleware

import (
	"getaway/internal/shared/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKeySessionID is the gin context key the session middleware sets.
const ContextKeySessionID = "session_id"

// Session assigns every client a session id carried in a cookie. The id
// namespaces all per-session flow state (cart, order draft, confirmation)
// in Redis, which is what lets a page reload resume an in-progress purchase.
func Session(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cfg.Session.CookieName)
		if err != nil || sessionID == "" || uuid.Validate(sessionID) != nil {
			sessionID = uuid.NewString()
			c.SetCookie(
				cfg.Session.CookieName,
				sessionID,
				int(cfg.Session.CookieMaxAge.Seconds()),
				"/",
				"",
				cfg.Session.CookieSecure,
				true, // HttpOnly
			)
		}

		c.Set(ContextKeySessionID, sessionID)
		c.Next()
	}
}

// SessionID returns the session id set by the Session middleware.
// A missing id means a route was wired without the middleware; that is a
// programming error, not a user error, so it panics and lets gin.Recovery
// turn it into a 500.
func SessionID(c *gin.Context) string {
	sessionID, exists := c.Get(ContextKeySessionID)
	if !exists {
		panic("session middleware not installed on this route")
	}
	id, ok := sessionID.(string)
	if !ok || id == "" {
		panic("session id in context is not a string")
	}
	return id
}
