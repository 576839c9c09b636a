package home

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"homeiota.xyz/home-monitor-service/pkg/common"
	"homeiota.xyz/home-monitor-service/pkg/models"
)

const (
	PumpDeviceID   = "pump"
	PumpDeviceName = "Well Pump"

	// Two low-current runs at most this far apart count as a sustained
	// low-current window (a possible dry well).
	sustainedLowWindow = 6 * time.Hour
)

// DeviceSummary is the uniform shape the dashboard renders per device.
type DeviceSummary struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Status        DeviceStatus   `json:"status"`
	CurrentValue  float64        `json:"currentValue"`
	LastHeartbeat *time.Time     `json:"lastHeartbeat,omitempty"`
	LastUpdate    time.Time      `json:"lastUpdate"`
	LastLowUpdate *time.Time     `json:"lastLowUpdate,omitempty"`
	MinutesAgo    int            `json:"minutesAgo"`
	Details       map[string]any `json:"details"`
}

type TemperatureDevice struct {
	Location           string  `json:"location"`
	SuggestedThreshold float64 `json:"suggestedThreshold"`
}

// DeviceSnapshot is the evaluator's view of a device at one point in time.
// CurrentValue is nil when the device has no reading to compare.
type DeviceSnapshot struct {
	ID           string
	Name         string
	Kind         models.DeviceKind
	LastSeen     time.Time
	CurrentValue *float64
}

func (h *Home) latestTemperaturePerLocation() ([]models.TemperatureReading, error) {
	var temps []models.TemperatureReading
	err := h.Db.Conn.Raw(`
		SELECT t.id, t.value, t.location, t.timestamp
		FROM temperatures t
		JOIN (
			SELECT location, MAX(timestamp) AS ts
			FROM temperatures
			GROUP BY location
		) latest ON t.location = latest.location AND t.timestamp = latest.ts
		ORDER BY t.location`).Scan(&temps).Error
	return temps, err
}

// latestSustainedLowWindow finds the most recent pair of low-current runs
// within sustainedLowWindow of each other and returns the earlier timestamp
// of the pair, or nil when no such pair exists.
func (h *Home) latestSustainedLowWindow() (*time.Time, error) {
	var rows []models.PumpRunTimeCritical
	err := h.Db.Conn.
		Where("low_current = ?", true).
		Order("timestamp desc").
		Limit(100).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	// rows are newest first; the first earlier row with a later partner in
	// range wins.
	for i := 1; i < len(rows); i++ {
		for j := 0; j < i; j++ {
			gap := rows[j].Timestamp.Sub(rows[i].Timestamp)
			if gap > 0 && gap <= sustainedLowWindow {
				ts := rows[i].Timestamp
				return &ts, nil
			}
		}
	}
	return nil, nil
}

func (h *Home) deviceSummaries(now time.Time) ([]DeviceSummary, error) {
	var lastPump models.PumpRunTime
	havePump := true
	if err := h.Db.Conn.Order("timestamp desc").First(&lastPump).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		havePump = false
	}

	var lastHeartbeat models.DeviceHeartbeat
	haveHeartbeat := true
	if err := h.Db.Conn.Where("pump = ?", true).Order("timestamp desc").First(&lastHeartbeat).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		haveHeartbeat = false
	}

	lastLow, err := h.latestSustainedLowWindow()
	if err != nil {
		return nil, err
	}

	temps, err := h.latestTemperaturePerLocation()
	if err != nil {
		return nil, err
	}

	// Pump liveness prefers the heartbeat; the last run is the fallback.
	pumpSeen := time.Time{}
	if havePump {
		pumpSeen = lastPump.Timestamp
	}
	if haveHeartbeat {
		pumpSeen = lastHeartbeat.Timestamp
	}

	var summaries []DeviceSummary

	// A pump the system has never heard from gets no card at all; a
	// zero-value row would render as offline since the epoch.
	if havePump || haveHeartbeat {
		pump := DeviceSummary{
			ID:            PumpDeviceID,
			Name:          PumpDeviceName,
			Status:        DeriveStatus(pumpSeen, now),
			CurrentValue:  lastPump.Current,
			LastUpdate:    pumpSeen,
			LastLowUpdate: lastLow,
			MinutesAgo:    MinutesAgo(pumpSeen, now),
			Details: map[string]any{
				"runTime":    lastPump.RunTime,
				"lowCurrent": lastPump.LowCurrent,
			},
		}
		if haveHeartbeat {
			pump.LastHeartbeat = &lastHeartbeat.Timestamp
		}
		summaries = append(summaries, pump)
	}
	for _, temp := range temps {
		summaries = append(summaries, DeviceSummary{
			ID:           temp.Location,
			Name:         fmt.Sprintf("Temperature - %s", temp.Location),
			Status:       DeriveStatus(temp.Timestamp, now),
			CurrentValue: temp.Value,
			LastUpdate:   temp.Timestamp,
			MinutesAgo:   MinutesAgo(temp.Timestamp, now),
			Details: map[string]any{
				"location": temp.Location,
			},
		})
	}

	return summaries, nil
}

func (h *Home) pumpHistory() ([]models.PumpRunTime, error) {
	var runs []models.PumpRunTime
	err := h.Db.Conn.Order("timestamp desc").Find(&runs).Error
	return runs, err
}

func (h *Home) temperatureHistory(location string, limit int) ([]models.TemperatureReading, error) {
	var readings []models.TemperatureReading
	err := h.Db.Conn.
		Where("location = ?", location).
		Order("timestamp desc").
		Limit(limit).
		Find(&readings).Error
	return readings, err
}

func (h *Home) criticalPumpHistory() ([]models.PumpRunTimeCritical, error) {
	var rows []models.PumpRunTimeCritical
	err := h.Db.Conn.Order("timestamp desc").Find(&rows).Error
	return rows, err
}

func (h *Home) temperatureDevices() ([]TemperatureDevice, error) {
	temps, err := h.latestTemperaturePerLocation()
	if err != nil {
		return nil, err
	}

	return common.Mapper(temps, func(temp models.TemperatureReading) TemperatureDevice {
		return TemperatureDevice{
			Location:           temp.Location,
			SuggestedThreshold: temp.Value,
		}
	}), nil
}

func (h *Home) pumpSnapshot() (*DeviceSnapshot, error) {
	snap := DeviceSnapshot{
		ID:   PumpDeviceID,
		Name: PumpDeviceName,
		Kind: models.DeviceKindPump,
	}

	var lastPump models.PumpRunTime
	if err := h.Db.Conn.Order("timestamp desc").First(&lastPump).Error; err == nil {
		value := lastPump.Current
		snap.CurrentValue = &value
		snap.LastSeen = lastPump.Timestamp
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var lastHeartbeat models.DeviceHeartbeat
	if err := h.Db.Conn.Where("pump = ?", true).Order("timestamp desc").First(&lastHeartbeat).Error; err == nil {
		snap.LastSeen = lastHeartbeat.Timestamp
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return &snap, nil
}

func (h *Home) temperatureSnapshot(location string) (*DeviceSnapshot, error) {
	var last models.TemperatureReading
	if err := h.Db.Conn.Where("location = ?", location).Order("timestamp desc").First(&last).Error; err != nil {
		return nil, err
	}

	value := last.Value
	return &DeviceSnapshot{
		ID:           location,
		Name:         fmt.Sprintf("Temperature - %s", location),
		Kind:         models.DeviceKindTemperature,
		LastSeen:     last.Timestamp,
		CurrentValue: &value,
	}, nil
}

type IDeviceImpl struct {
	home *Home
}

func (id *IDeviceImpl) DeviceSummaries(now time.Time) ([]DeviceSummary, error) {
	return id.home.deviceSummaries(now)
}

func (id *IDeviceImpl) PumpHistory() ([]models.PumpRunTime, error) {
	return id.home.pumpHistory()
}

func (id *IDeviceImpl) TemperatureHistory(location string, limit int) ([]models.TemperatureReading, error) {
	return id.home.temperatureHistory(location, limit)
}

func (id *IDeviceImpl) CriticalPumpHistory() ([]models.PumpRunTimeCritical, error) {
	return id.home.criticalPumpHistory()
}

func (id *IDeviceImpl) TemperatureDevices() ([]TemperatureDevice, error) {
	return id.home.temperatureDevices()
}

func (id *IDeviceImpl) PumpSnapshot() (*DeviceSnapshot, error) {
	return id.home.pumpSnapshot()
}

func (id *IDeviceImpl) TemperatureSnapshot(location string) (*DeviceSnapshot, error) {
	return id.home.temperatureSnapshot(location)
}

func (h *Home) GetIDevice() IDevice {
	return &IDeviceImpl{home: h}
}
