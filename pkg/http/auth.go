package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"homeiota.xyz/home-monitor-service/pkg/common"
	"homeiota.xyz/home-monitor-service/pkg/home"
	"homeiota.xyz/home-monitor-service/pkg/models"
)

// PostAuth handles both login and registration from the same form-encoded
// endpoint, switching on the isLogin field. On success a session cookie is
// set and the browser is redirected to the dashboard.
func (rs *RestfulServer) PostAuth(c *gin.Context) {
	logger := common.GetLoggerWith(
		common.LoggerNameRestfulServer,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySession),
	)

	email := c.PostForm("email")
	password := c.PostForm("password")
	name := c.PostForm("name")
	isLogin := c.PostForm("isLogin") == "true"

	if email == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	var user *models.User
	var err error

	if isLogin {
		user, err = rs.Home.Account.Authenticate(email, password)
		if errors.Is(err, home.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
			return
		}
	} else {
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
			return
		}
		user, err = rs.Home.Account.Register(email, name, password)
		if errors.Is(err, home.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
	}
	if err != nil {
		logger.Error("Auth failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
		return
	}

	session, err := rs.Home.Session.CreateSession(user.ID)
	if err != nil {
		logger.Error("Failed to create session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
		return
	}

	setSessionCookie(c, session.ID, http.SameSiteLaxMode)
	c.Redirect(http.StatusSeeOther, "/")
}

func (rs *RestfulServer) PostLogout(c *gin.Context) {
	sessionID, err := c.Cookie(SessionCookieName)
	if err == nil && sessionID != "" {
		if err := rs.Home.Session.DeleteSession(sessionID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
			return
		}
	}

	clearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/")
}

// PostSettings applies the settings form: profile fields, the typed
// thresholds, and the per-location preference list (both JSON-encoded form
// fields).
func (rs *RestfulServer) PostSettings(c *gin.Context) {
	logger := common.GetLoggerWith(
		common.LoggerNameRestfulServer,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryPrefs),
	)

	user := CurrentUser(c)

	name := c.PostForm("name")
	email := c.PostForm("email")
	gotifyToken := c.PostForm("gotifyToken")

	var locationPrefs []home.LocationPreferenceInput
	if raw := c.PostForm("uiAlertPreferences"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &locationPrefs); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid alert preferences"})
			return
		}
	}

	var thresholds *models.AlertPreferences
	if raw := c.PostForm("thresholds"); raw != "" {
		var parsed models.AlertPreferences
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid thresholds"})
			return
		}
		thresholds = &parsed
	}

	if name != "" && email != "" {
		if err := rs.Home.Preference.UpdateProfile(user.ID, name, email, gotifyToken); err != nil {
			logger.Error("Failed to update profile", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
			return
		}
	}

	if thresholds != nil {
		if err := rs.Home.Preference.UpdateThresholds(user.ID, *thresholds); err != nil {
			logger.Error("Failed to update thresholds", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
			return
		}
	}

	if len(locationPrefs) > 0 {
		if err := rs.Home.Preference.UpsertLocationPreferences(user.ID, locationPrefs); err != nil {
			logger.Error("Failed to update location preferences", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
			return
		}
	}

	// refresh the cookie so an active user is not logged out mid-session
	if sessionID := currentSessionID(c); sessionID != "" {
		setSessionCookie(c, sessionID, http.SameSiteStrictMode)
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
