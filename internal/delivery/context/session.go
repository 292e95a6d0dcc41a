package context

import (
	"recipebox/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeySession is the echo.Context key holding the request's *entity.Session.
const KeySession ContextKey = "session"

// SetSession stores the resolved session for the rest of the request.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(string(KeySession), session)
}

// GetSession returns the request's session, or nil when the client has none yet.
func GetSession(c echo.Context) *entity.Session {
	session, _ := c.Get(string(KeySession)).(*entity.Session)

	return session
}

// SessionUserID returns the logged-in user id carried by the request's session.
func SessionUserID(c echo.Context) (uint, bool) {
	session := GetSession(c)
	if !session.IsAuthenticated() {
		return 0, false
	}

	return *session.UserID, true
}
