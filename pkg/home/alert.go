package home

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"homeiota.xyz/home-monitor-service/pkg/common"
	"homeiota.xyz/home-monitor-service/pkg/models"
	"homeiota.xyz/home-monitor-service/pkg/notify"
)

// EvalResult is the per-recipient outcome of one evaluation pass. Delivery
// failures are carried here instead of being thrown, so a caller can see
// which recipients failed without one failure aborting the batch.
type EvalResult struct {
	UserID    string
	AlertID   uint
	Type      models.AlertType
	Delivered bool
	Err       error
}

// evaluateDevice compares a device snapshot against every user's alert
// preferences. Each triggered condition persists an Alert row as pending,
// attempts delivery, and settles the row to sent or failed. The offline and
// temperature conditions fire independently and can both trigger in one pass.
func (h *Home) evaluateDevice(ctx context.Context, dev *DeviceSnapshot, now time.Time) ([]EvalResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlert),
	)

	var users []models.User
	if err := h.Db.Conn.Preload("Preferences").Preload("LocationPreferences").Find(&users).Error; err != nil {
		return nil, err
	}

	var results []EvalResult
	for _, user := range users {
		cond := resolveConditions(&user, dev.ID)

		if cond.offlineEnabled {
			minutesOffline := MinutesAgo(dev.LastSeen, now)
			if minutesOffline > cond.offlineGraceMinutes {
				message := fmt.Sprintf("Device %s has been offline for %d minutes", dev.Name, minutesOffline)
				title, body := notify.OfflineAlert(dev.Name, minutesOffline)
				results = append(results,
					h.fireAlert(ctx, logger, &user, dev.ID, models.AlertTypeOffline, message, title, body, notify.PriorityOffline, now))
			}
		}

		// A device with no current reading never enters the comparison.
		if dev.Kind == models.DeviceKindTemperature &&
			cond.temperatureEnabled &&
			dev.CurrentValue != nil &&
			*dev.CurrentValue > cond.temperatureValue {
			message := fmt.Sprintf("Temperature sensor %s is reading %g°F (threshold: %g°F)",
				dev.Name, *dev.CurrentValue, cond.temperatureValue)
			title, body := notify.TemperatureAlert(dev.Name, *dev.CurrentValue, cond.temperatureValue)
			results = append(results,
				h.fireAlert(ctx, logger, &user, dev.ID, models.AlertTypeTemperature, message, title, body, notify.PriorityTemperature, now))
		}
	}

	return results, nil
}

// alertConditions is one user's effective thresholds for one device, after any
// per-location override has been applied on top of the account-wide defaults.
type alertConditions struct {
	temperatureEnabled  bool
	temperatureValue    float64
	offlineEnabled      bool
	offlineGraceMinutes int
}

// resolveConditions starts from the user's account-wide preferences and lets a
// location row for this device override them. A location row always decides
// the temperature condition; it only touches the offline condition when it
// carries an offline threshold of its own.
func resolveConditions(user *models.User, deviceID string) alertConditions {
	cond := alertConditions{
		temperatureEnabled:  user.Preferences.TemperatureEnabled,
		temperatureValue:    user.Preferences.TemperatureValue,
		offlineEnabled:      user.Preferences.OfflineEnabled,
		offlineGraceMinutes: user.Preferences.OfflineGraceMinutes,
	}

	for _, lp := range user.LocationPreferences {
		if lp.Location != deviceID {
			continue
		}
		cond.temperatureEnabled = lp.Enabled
		cond.temperatureValue = lp.Threshold
		if lp.OfflineThreshold != nil {
			cond.offlineEnabled = lp.Enabled
			cond.offlineGraceMinutes = int(*lp.OfflineThreshold)
		}
		break
	}

	return cond
}

// fireAlert persists one pending Alert, attempts delivery, and settles the
// row. The status only moves pending->sent when the notification call
// actually succeeded. Delivery goes to the user's own channel key; users
// without one get the sender's default channel.
func (h *Home) fireAlert(ctx context.Context, logger *zap.Logger, user *models.User, deviceID string,
	alertType models.AlertType, message, title, body string, priority int, now time.Time) EvalResult {

	alert := models.Alert{
		UserID:    user.ID,
		DeviceID:  deviceID,
		Type:      alertType,
		Message:   message,
		Status:    models.AlertStatusPending,
		CreatedAt: now,
	}

	if err := h.Db.Conn.Create(&alert).Error; err != nil {
		logger.Error("Failed to persist alert", zap.Error(err), zap.String("user_id", user.ID))
		return EvalResult{UserID: user.ID, Type: alertType, Err: err}
	}

	logger.Info("Alert found", zap.Reflect("alert", alert))

	result := EvalResult{UserID: user.ID, AlertID: alert.ID, Type: alertType}

	if err := h.Notifier.Send(ctx, user.GotifyToken, title, body, priority); err != nil {
		logger.Warn("Failed to deliver alert", zap.Error(err), zap.Uint("alert_id", alert.ID))
		if dbErr := h.Db.Conn.Model(&alert).Update("status", models.AlertStatusFailed).Error; dbErr != nil {
			logger.Error("Failed to mark alert failed", zap.Error(dbErr), zap.Uint("alert_id", alert.ID))
		}
		result.Err = err
		return result
	}

	sentAt := time.Now()
	if err := h.Db.Conn.Model(&alert).Updates(map[string]any{
		"status":  models.AlertStatusSent,
		"sent_at": sentAt,
	}).Error; err != nil {
		logger.Error("Failed to mark alert sent", zap.Error(err), zap.Uint("alert_id", alert.ID))
		result.Err = err
		return result
	}

	logger.Info("Alert sent", zap.Reflect("alert", alert))
	result.Delivered = true
	return result
}

func (h *Home) getUserAlerts(userID string) ([]models.Alert, error) {
	var alerts []models.Alert
	err := h.Db.Conn.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&alerts).Error
	return alerts, err
}

type IAlertImpl struct {
	home *Home
}

func (ia *IAlertImpl) EvaluateDevice(ctx context.Context, dev *DeviceSnapshot, now time.Time) ([]EvalResult, error) {
	return ia.home.evaluateDevice(ctx, dev, now)
}

func (ia *IAlertImpl) GetUserAlerts(userID string) ([]models.Alert, error) {
	return ia.home.getUserAlerts(userID)
}

func (h *Home) GetIAlert() IAlert {
	return &IAlertImpl{home: h}
}
