package models

import "time"

type AlertType string

const (
	AlertTypeTemperature AlertType = "temperature"
	AlertTypeOffline     AlertType = "offline"
)

type AlertStatus string

const (
	AlertStatusPending AlertStatus = "pending"
	AlertStatusSent    AlertStatus = "sent"
	AlertStatusFailed  AlertStatus = "failed"
)

type DeviceKind string

const (
	DeviceKindPump        DeviceKind = "pump"
	DeviceKindTemperature DeviceKind = "temperature"
)

// TemperatureReading is one measurement for a named location. Append-only.
type TemperatureReading struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Value     float64   `json:"value"`
	Location  string    `gorm:"index" json:"location"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
}

func (TemperatureReading) TableName() string { return "temperatures" }

// PumpRunTime is one well-pump run: duration in seconds and draw in amps.
type PumpRunTime struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RunTime    int       `json:"run_time"`
	Current    float64   `json:"current"`
	LowCurrent bool      `json:"low_current"`
	Timestamp  time.Time `gorm:"index" json:"timestamp"`
}

func (PumpRunTime) TableName() string { return "pump_run_times" }

// PumpRunTimeCritical mirrors low-current runs into their own table so the
// dashboard can scan a short table instead of the full run history.
type PumpRunTimeCritical struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RunTime    int       `json:"run_time"`
	Current    float64   `json:"current"`
	LowCurrent bool      `json:"low_current"`
	Timestamp  time.Time `gorm:"index" json:"timestamp"`
}

func (PumpRunTimeCritical) TableName() string { return "pump_run_times_critical" }

type DeviceHeartbeat struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DeviceID  string    `gorm:"index" json:"device_id"`
	Pump      bool      `json:"pump"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
}

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	GotifyToken  string    `json:"gotifyToken"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Preferences         AlertPreferences  `gorm:"foreignKey:UserID" json:"preferences"`
	LocationPreferences []AlertPreference `gorm:"foreignKey:UserID" json:"-"`
}

// AlertPreferences holds the per-user threshold configuration: one row per
// user, enumerated fields instead of a loose JSON blob.
type AlertPreferences struct {
	UserID              string  `gorm:"primaryKey" json:"userId"`
	TemperatureEnabled  bool    `json:"temperatureEnabled"`
	TemperatureValue    float64 `json:"temperatureValue"`
	OfflineEnabled      bool    `json:"offlineEnabled"`
	OfflineGraceMinutes int     `json:"offlineGraceMinutes"`
}

func (AlertPreferences) TableName() string { return "alert_preferences" }

// AlertPreference is a per-location override keyed by user+location.
type AlertPreference struct {
	ID               uint     `gorm:"primaryKey" json:"id"`
	UserID           string   `gorm:"index:idx_user_location,unique" json:"userId"`
	Location         string   `gorm:"index:idx_user_location,unique" json:"location"`
	Threshold        float64  `json:"threshold"`
	Enabled          bool     `json:"enabled"`
	OfflineThreshold *float64 `json:"offlineThreshold"`
}

func (AlertPreference) TableName() string { return "location_preferences" }

type Session struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index" json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

type Alert struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	UserID    string      `gorm:"index" json:"userId"`
	DeviceID  string      `gorm:"index" json:"deviceId"`
	Type      AlertType   `gorm:"type:varchar(20);check:type IN ('temperature','offline')" json:"type"`
	Message   string      `json:"message"`
	Status    AlertStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	SentAt    *time.Time  `json:"sentAt"`
}
