package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"homeiota.xyz/home-monitor-service/pkg/common"
	"homeiota.xyz/home-monitor-service/pkg/models"
)

const (
	SessionCookieName = "session"
	sessionMaxAge     = 60 * 60 * 24 * 7 // seconds, one week

	ctxKeyUser      = "currentUser"
	ctxKeySessionID = "sessionID"
)

// SessionMiddleware resolves the session cookie on every request. A valid
// session attaches the user; an expired or unknown one clears the cookie
// (the expired row is already deleted by GetSession). Requests without a
// valid session simply continue unauthenticated.
func (rs *RestfulServer) SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			c.Next()
			return
		}

		session, err := rs.Home.Session.GetSession(sessionID)
		if err != nil {
			logger := common.GetLoggerWith(common.LoggerNameRestfulServer)
			logger.Error("Failed to resolve session", zap.Error(err))
			c.Next()
			return
		}

		if session == nil {
			clearSessionCookie(c)
			c.Next()
			return
		}

		c.Set(ctxKeyUser, &session.User)
		c.Set(ctxKeySessionID, sessionID)
		c.Next()
	}
}

func (rs *RestfulServer) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session not found"})
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(ctxKeyUser)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

func currentSessionID(c *gin.Context) string {
	value, exists := c.Get(ctxKeySessionID)
	if !exists {
		return ""
	}
	id, _ := value.(string)
	return id
}

func setSessionCookie(c *gin.Context, sessionID string, sameSite http.SameSite) {
	c.SetSameSite(sameSite)
	c.SetCookie(SessionCookieName, sessionID, sessionMaxAge, "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}
