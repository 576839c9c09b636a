package home

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"homeiota.xyz/home-monitor-service/pkg/common"
	"homeiota.xyz/home-monitor-service/pkg/models"
)

const SessionTTL = 7 * 24 * time.Hour

func (h *Home) createSession(userID string) (*models.Session, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySession),
	)

	now := time.Now()
	session := models.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(SessionTTL),
	}

	if err := h.Db.Conn.Create(&session).Error; err != nil {
		return nil, err
	}

	logger.Info("Session created", zap.String("session_id", session.ID), zap.String("user_id", userID))
	return &session, nil
}

// getSession resolves a session id to a non-expired session with its user
// preloaded. Missing and expired sessions both resolve to nil without error;
// an expired row is deleted on detection.
func (h *Home) getSession(id string) (*models.Session, error) {
	var session models.Session
	err := h.Db.Conn.Preload("User").First(&session, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if session.ExpiresAt.Before(time.Now()) {
		if err := h.deleteSession(id); err != nil {
			return nil, err
		}
		return nil, nil
	}

	return &session, nil
}

// deleteSession is idempotent: deleting an already-absent session succeeds.
func (h *Home) deleteSession(id string) error {
	return h.Db.Conn.Delete(&models.Session{}, "id = ?", id).Error
}

type ISessionImpl struct {
	home *Home
}

func (is *ISessionImpl) CreateSession(userID string) (*models.Session, error) {
	return is.home.createSession(userID)
}

func (is *ISessionImpl) GetSession(id string) (*models.Session, error) {
	return is.home.getSession(id)
}

func (is *ISessionImpl) DeleteSession(id string) error {
	return is.home.deleteSession(id)
}

func (h *Home) GetISession() ISession {
	return &ISessionImpl{home: h}
}
