package home

import (
	"context"
	"time"

	"homeiota.xyz/home-monitor-service/pkg/db"
	"homeiota.xyz/home-monitor-service/pkg/models"
	"homeiota.xyz/home-monitor-service/pkg/notify"
)

type IDevice interface {
	DeviceSummaries(now time.Time) ([]DeviceSummary, error)
	PumpHistory() ([]models.PumpRunTime, error)
	TemperatureHistory(location string, limit int) ([]models.TemperatureReading, error)
	CriticalPumpHistory() ([]models.PumpRunTimeCritical, error)
	TemperatureDevices() ([]TemperatureDevice, error)
	PumpSnapshot() (*DeviceSnapshot, error)
	TemperatureSnapshot(location string) (*DeviceSnapshot, error)
}

type IAlert interface {
	EvaluateDevice(ctx context.Context, dev *DeviceSnapshot, now time.Time) ([]EvalResult, error)
	GetUserAlerts(userID string) ([]models.Alert, error)
}

type ISession interface {
	CreateSession(userID string) (*models.Session, error)
	GetSession(id string) (*models.Session, error)
	DeleteSession(id string) error
}

type IAccount interface {
	Register(email, name, password string) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
}

type IIngest interface {
	RecordTemperature(value float64, location string, ts time.Time) (*models.TemperatureReading, error)
	ListTemperatures(location string) ([]models.TemperatureReading, error)
	GetTemperature(id uint) (*models.TemperatureReading, error)
	DeleteTemperature(id uint) error
	RecordPumpRun(runTime int, current float64, lowCurrent bool, ts time.Time) (*models.PumpRunTime, error)
	ListPumpRuns() ([]models.PumpRunTime, error)
	GetPumpRun(id uint) (*models.PumpRunTime, error)
	DeletePumpRun(id uint) error
	RecordHeartbeat(deviceID string, pump bool, ts time.Time) (*models.DeviceHeartbeat, error)
}

type IPreference interface {
	GetPreferences(userID string) (*UserPreferences, error)
	UpdateProfile(userID, name, email, gotifyToken string) error
	UpdateThresholds(userID string, thresholds models.AlertPreferences) error
	UpsertLocationPreferences(userID string, prefs []LocationPreferenceInput) error
}

type Home struct {
	Db       db.DB
	Notifier notify.Notifier

	Device     IDevice
	Alert      IAlert
	Session    ISession
	Account    IAccount
	Ingest     IIngest
	Preference IPreference
}

type ServiceOpts struct {
	Device     IDevice
	Alert      IAlert
	Session    ISession
	Account    IAccount
	Ingest     IIngest
	Preference IPreference
}

func (h *Home) WithServices(opts ServiceOpts) *Home {
	if opts.Device != nil {
		h.Device = opts.Device
	}
	if opts.Alert != nil {
		h.Alert = opts.Alert
	}
	if opts.Session != nil {
		h.Session = opts.Session
	}
	if opts.Account != nil {
		h.Account = opts.Account
	}
	if opts.Ingest != nil {
		h.Ingest = opts.Ingest
	}
	if opts.Preference != nil {
		h.Preference = opts.Preference
	}
	return h
}
