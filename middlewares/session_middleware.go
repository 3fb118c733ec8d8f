package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/pdemaers/skb-voedingsdagboek/services"
)

// SessionKey is the gin context key holding the resolved session id.
const SessionKey = "session_id"

// SessionHeader carries the session id between the shell and the backend.
const SessionHeader = "X-Session-ID"

// SessionMiddleware resolves the caller's session from the X-Session-ID
// header, minting a fresh id when the header is absent. The id is always
// echoed back so the shell can hold on to it.
func SessionMiddleware(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := sessions.Touch(c.GetHeader(SessionHeader))
		c.Set(SessionKey, id)
		c.Header(SessionHeader, id)
		c.Next()
	}
}
