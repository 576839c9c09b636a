package home

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"homeiota.xyz/home-monitor-service/pkg/common"
	"homeiota.xyz/home-monitor-service/pkg/models"
)

// UserPreferences bundles the typed per-user thresholds with the
// per-location override list.
type UserPreferences struct {
	Thresholds models.AlertPreferences  `json:"thresholds"`
	Locations  []models.AlertPreference `json:"alertPreferences"`
}

// LocationPreferenceInput matches the settings form payload: one entry per
// sensor shown in the UI.
type LocationPreferenceInput struct {
	Name             string   `json:"name"`
	Threshold        float64  `json:"threshold"`
	Enabled          bool     `json:"enabled"`
	OfflineThreshold *float64 `json:"offlineThreshold"`
}

func (h *Home) getPreferences(userID string) (*UserPreferences, error) {
	var thresholds models.AlertPreferences
	err := h.Db.Conn.First(&thresholds, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		thresholds = models.AlertPreferences{UserID: userID}
	} else if err != nil {
		return nil, err
	}

	var locations []models.AlertPreference
	if err := h.Db.Conn.Where("user_id = ?", userID).Order("location").Find(&locations).Error; err != nil {
		return nil, err
	}

	return &UserPreferences{Thresholds: thresholds, Locations: locations}, nil
}

func (h *Home) updateProfile(userID, name, email, gotifyToken string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryPrefs),
	)

	err := h.Db.Conn.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"name":         name,
		"email":        email,
		"gotify_token": gotifyToken,
	}).Error
	if err == nil {
		logger.Info("Updated profile", zap.String("user_id", userID))
	}
	return err
}

func (h *Home) updateThresholds(userID string, thresholds models.AlertPreferences) error {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryPrefs),
	)

	thresholds.UserID = userID
	err := h.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(&thresholds).Error

	if err == nil {
		logger.Info("Upserted thresholds", zap.String("user_id", userID), zap.Reflect("thresholds", thresholds))
	}

	return err
}

func (h *Home) upsertLocationPreferences(userID string, prefs []LocationPreferenceInput) error {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryPrefs),
	)

	for _, pref := range prefs {
		row := models.AlertPreference{
			UserID:           userID,
			Location:         pref.Name,
			Threshold:        pref.Threshold,
			Enabled:          pref.Enabled,
			OfflineThreshold: pref.OfflineThreshold,
		}
		err := h.Db.Conn.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "location"}},
			UpdateAll: true,
		}).Create(&row).Error
		if err != nil {
			return err
		}
	}

	logger.Info("Upserted location preferences", zap.String("user_id", userID), zap.Int("count", len(prefs)))
	return nil
}

type IPreferenceImpl struct {
	home *Home
}

func (ip *IPreferenceImpl) GetPreferences(userID string) (*UserPreferences, error) {
	return ip.home.getPreferences(userID)
}

func (ip *IPreferenceImpl) UpdateProfile(userID, name, email, gotifyToken string) error {
	return ip.home.updateProfile(userID, name, email, gotifyToken)
}

func (ip *IPreferenceImpl) UpdateThresholds(userID string, thresholds models.AlertPreferences) error {
	return ip.home.updateThresholds(userID, thresholds)
}

func (ip *IPreferenceImpl) UpsertLocationPreferences(userID string, prefs []LocationPreferenceInput) error {
	return ip.home.upsertLocationPreferences(userID, prefs)
}

func (h *Home) GetIPreference() IPreference {
	return &IPreferenceImpl{home: h}
}
