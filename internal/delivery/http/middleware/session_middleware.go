package middleware

import (
	"net/http"
	"time"

	"recipebox/config"
	deliverycontext "recipebox/internal/delivery/context"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionMiddleware resolves the session cookie and guards routes that need a logged-in user.
type SessionMiddleware struct {
	sessions   usecase.SessionUsecase
	cookieName string
	secure     bool
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessions usecase.SessionUsecase, cfg *config.Config) *SessionMiddleware {
	m := &SessionMiddleware{sessions: sessions, cookieName: "session"}
	if cfg != nil && cfg.Session != nil {
		if cfg.Session.CookieName != "" {
			m.cookieName = cfg.Session.CookieName
		}
		m.secure = cfg.Session.Secure
	}

	return m
}

// Load attaches the cookie's session, if any, to the request.
// Missing, unknown and expired cookies all leave the request anonymous.
func (m *SessionMiddleware) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return next(c)
		}

		session, err := m.sessions.Load(c.Request().Context(), cookie.Value)
		if err != nil {
			return errors.Wrap(err, "failed to load session")
		}
		if session != nil {
			deliverycontext.SetSession(c, session)
		}

		return next(c)
	}
}

// RequireUser rejects requests whose session carries no user identity.
func (m *SessionMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := deliverycontext.SessionUserID(c); !ok {
			return domainerrors.ErrNotAuthorized
		}

		return next(c)
	}
}

// WriteCookie hands a freshly issued session token to the client.
func (m *SessionMiddleware) WriteCookie(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ExpireCookie tells the client to drop its session cookie.
func (m *SessionMiddleware) ExpireCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
